package ui

import (
	"github.com/atomicstack/save-point/internal/backend"
	"github.com/atomicstack/save-point/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

const externalChangeWarning = "bookmark file changed on disk; quitting will overwrite it"

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent never reloads the list. The in-session copy stays
// authoritative and is written back on exit, so the user is only warned.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.warnMsg = "watching bookmark file failed: " + evt.Err.Error()
		return
	}
	m.warnMsg = externalChangeWarning
}
