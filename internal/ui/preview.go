package ui

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const previewEntryLimit = 64

type previewData struct {
	target  string
	lines   []string
	err     string
	loading bool
	seq     int
}

type previewLoadedMsg struct {
	target string
	seq    int
	lines  []string
	err    error
}

var readDirPreview = listDirectory

// listDirectory returns the entries of dir, directories first and suffixed
// with "/", capped at limit lines. Escape sequences in names are stripped so
// a hostile file name cannot repaint the terminal.
func listDirectory(dir string, limit int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})
	lines := make([]string, 0, min(len(entries), limit+1))
	for i, entry := range entries {
		if i == limit {
			lines = append(lines, fmt.Sprintf("… %d more", len(entries)-limit))
			break
		}
		name := ansi.Strip(entry.Name())
		if entry.IsDir() {
			name += "/"
		}
		lines = append(lines, name)
	}
	if len(lines) == 0 {
		return []string{"(empty)"}, nil
	}
	return lines, nil
}

// ensurePreview starts loading the listing for the selected bookmark unless
// it is already shown or on its way.
func (m *Model) ensurePreview() tea.Cmd {
	if !m.showPreview {
		return nil
	}
	target, ok := m.list.Selected()
	if !ok {
		m.preview = nil
		return nil
	}
	if m.preview != nil && m.preview.target == target {
		return nil
	}
	m.previewSeq++
	seq := m.previewSeq
	m.preview = &previewData{target: target, loading: true, seq: seq}
	return func() tea.Msg {
		lines, err := readDirPreview(target, previewEntryLimit)
		return previewLoadedMsg{target: target, seq: seq, lines: lines, err: err}
	}
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	data := m.preview
	if data == nil || data.seq != update.seq || data.target != update.target {
		return nil
	}
	data.loading = false
	if update.err != nil {
		data.err = update.err.Error()
		data.lines = nil
		return nil
	}
	data.err = ""
	data.lines = update.lines
	return nil
}
