package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atomicstack/save-point/internal/backend"
	"github.com/atomicstack/save-point/internal/format/table"
	"github.com/atomicstack/save-point/internal/handoff"
	"github.com/atomicstack/save-point/internal/logging"
	"github.com/atomicstack/save-point/internal/logging/events"
	"github.com/atomicstack/save-point/internal/store"
	"github.com/atomicstack/save-point/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const watchDebounce = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	StoreDir    string
	HandoffPath string
	Width       int
	Height      int
	ShowFooter  bool
	Preview     bool
	Refresh     time.Duration
	// Keys maps action names to replacement key lists.
	Keys map[string][]string
	List bool
}

// runProgram is replaced in tests to drive the model without a terminal.
var runProgram = func(model *ui.Model) (*ui.Model, error) {
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(*ui.Model); ok {
		return m, nil
	}
	return model, nil
}

// DefaultStoreDir is ~/.config/save-point.
func DefaultStoreDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "save-point"), nil
}

// Run loads the bookmarks, runs the interactive list and persists the result.
// With cfg.List set it prints the bookmarks to out instead.
func Run(cfg Config, out io.Writer) error {
	dir := cfg.StoreDir
	if dir == "" {
		var err error
		if dir, err = DefaultStoreDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create bookmark directory: %w", err)
	}
	desc := store.Init(dir)
	if cfg.List {
		return List(out, desc.Bookmarks)
	}

	keys := ui.DefaultKeyMap()
	if err := keys.ApplyOverrides(cfg.Keys); err != nil {
		return err
	}
	watcher, err := backend.NewWatcher(desc.Path, watchDebounce)
	if err != nil {
		logging.Error(fmt.Errorf("store watcher disabled: %w", err))
		watcher = nil
	}
	home, _ := os.UserHomeDir()

	model := ui.NewModel(ui.Options{
		Bookmarks:       desc.Bookmarks,
		StorePath:       desc.Path,
		Warning:         recoveredWarning(desc.Recovered),
		Width:           cfg.Width,
		Height:          cfg.Height,
		ShowFooter:      cfg.ShowFooter,
		Preview:         cfg.Preview,
		RefreshInterval: cfg.Refresh,
		Keys:            &keys,
		Watcher:         watcher,
		Home:            home,
	})
	final, err := runProgram(model)
	// The watcher goes first so our own save is not reported back to us.
	if watcher != nil {
		watcher.Stop()
		watcher.Wait()
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run bookmark list: %w", err)
	}
	handoffPath := cfg.HandoffPath
	if handoffPath == "" {
		handoffPath = handoff.DefaultPath()
	}
	return Finish(&desc, final.Command(), final.Paths(), handoffPath)
}

// Finish saves the final list and, when a bookmark was chosen, hands it to
// the shell wrapper. The save happens first so a hand-off failure never loses
// edits.
func Finish(desc *store.Descriptor, cmd ui.Command, paths []string, handoffPath string) error {
	desc.Replace(paths)
	if err := desc.Save(); err != nil {
		return err
	}
	events.App.Exit(cmd.Kind.String(), cmd.Target)
	if cmd.Kind != ui.ExitNavigate {
		return nil
	}
	return handoff.Write(handoffPath, cmd.Target)
}

// List prints the bookmarks numbered from 1.
func List(out io.Writer, bookmarks store.Collection) error {
	events.App.List(len(bookmarks))
	rows := make([][]string, 0, len(bookmarks))
	for i, path := range bookmarks {
		rows = append(rows, []string{strconv.Itoa(i + 1), path})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft}) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write bookmark list: %w", err)
		}
	}
	return nil
}

func recoveredWarning(err error) string {
	switch {
	case err == nil, errors.Is(err, store.ErrNotFound):
		return ""
	case errors.Is(err, store.ErrParse):
		return "bookmark file is unreadable; starting empty and it will be overwritten on exit"
	default:
		return fmt.Sprintf("could not read bookmark file (%v); starting empty", err)
	}
}
