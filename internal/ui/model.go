package ui

import (
	"os"
	"reflect"
	"time"

	"github.com/atomicstack/save-point/internal/backend"
	"github.com/atomicstack/save-point/internal/logging/events"
	"github.com/atomicstack/save-point/internal/theme"
	"github.com/atomicstack/save-point/internal/ui/command"
	uistate "github.com/atomicstack/save-point/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const infoLifetime = 5 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a bookmark session.
type Options struct {
	Bookmarks []string
	StorePath string
	// Warning stays on screen for the whole session, e.g. when the bookmark
	// file was unreadable and the list started empty.
	Warning    string
	Width      int
	Height     int
	ShowFooter bool
	Preview    bool
	// RefreshInterval paces the periodic redraw tick. Zero disables it.
	RefreshInterval time.Duration
	Keys            *KeyMap
	Watcher         *backend.Watcher
	Getwd           func() (string, error)
	Home            string
}

// Model implements the Bubble Tea model for the bookmark list.
type Model struct {
	list    *uistate.List
	command Command

	errMsg     string
	warnMsg    string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	showPreview bool
	refresh     time.Duration

	keys KeyMap
	help help.Model

	preview    *previewData
	previewSeq int

	handlers map[reflect.Type]msgHandler

	backend   *backend.Watcher
	bus       *command.Bus
	getwd     func() (string, error)
	home      string
	storePath string
}

// NewModel seeds the session list from the stored bookmarks.
func NewModel(opts Options) *Model {
	list, skipped := uistate.NewList(opts.Bookmarks)
	events.Session.Seed(list.Len(), skipped)
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	getwd := opts.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	m := &Model{
		list:        list,
		warnMsg:     opts.Warning,
		showFooter:  opts.ShowFooter,
		showPreview: opts.Preview,
		refresh:     opts.RefreshInterval,
		keys:        keys,
		help:        help.New(),
		backend:     opts.Watcher,
		bus:         command.New(),
		getwd:       getwd,
		home:        opts.Home,
		storePath:   opts.StorePath,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if m.refresh > 0 {
		cmds = append(cmds, tick(m.refresh))
	}
	if cmd := m.ensurePreview(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.command.Done() {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Command returns the terminal outcome; Kind is ExitNone while running.
func (m *Model) Command() Command {
	return m.command
}

// Paths returns the current ordered bookmark list.
func (m *Model) Paths() []string {
	return m.list.Snapshot()
}

// Cursor returns the selected index.
func (m *Model) Cursor() int {
	return m.list.Cursor
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(command.Result{}):    m.handleActionResultMsg,
		reflect.TypeOf(previewLoadedMsg{}):  m.handlePreviewLoadedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

type tickMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// handleTickMsg expires stale info messages; the returned tick keeps the
// view redrawing even without input.
func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	m.currentInfo()
	if m.refresh <= 0 {
		return nil
	}
	return tick(m.refresh)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
