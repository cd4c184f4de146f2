package ui

import (
	"fmt"

	"github.com/atomicstack/save-point/internal/logging"
	"github.com/atomicstack/save-point/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.handleQuitKey()
	case key.Matches(keyMsg, m.keys.Confirm):
		return m.handleConfirmKey()
	case key.Matches(keyMsg, m.keys.Add):
		return m.handleAddKey()
	case key.Matches(keyMsg, m.keys.Delete):
		return m.handleDeleteKey()
	case key.Matches(keyMsg, m.keys.Yank):
		return m.handleYankKey()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.syncViewport()
		return nil
	case key.Matches(keyMsg, m.keys.Up):
		return m.afterMove(m.list.MoveUp())
	case key.Matches(keyMsg, m.keys.Down):
		return m.afterMove(m.list.MoveDown())
	case key.Matches(keyMsg, m.keys.Top):
		return m.afterMove(m.list.MoveHome())
	case key.Matches(keyMsg, m.keys.Bottom):
		return m.afterMove(m.list.MoveEnd())
	case key.Matches(keyMsg, m.keys.PageUp):
		return m.afterMove(m.list.MovePageUp(m.maxVisibleItems()))
	case key.Matches(keyMsg, m.keys.PageDown):
		return m.afterMove(m.list.MovePageDown(m.maxVisibleItems()))
	}
	return nil
}

func (m *Model) handleQuitKey() tea.Cmd {
	m.command = Command{Kind: ExitClose}
	events.Session.Quit(m.list.Len())
	return tea.Quit
}

func (m *Model) handleConfirmKey() tea.Cmd {
	target, ok := m.list.Selected()
	if !ok {
		return nil
	}
	m.command = Command{Kind: ExitNavigate, Target: target}
	events.Session.Confirm(target)
	return tea.Quit
}

func (m *Model) handleAddKey() tea.Cmd {
	dir, err := m.getwd()
	if err != nil {
		logging.Error(err)
		events.Session.AddError(err)
		m.errMsg = fmt.Sprintf("cannot read current directory: %v", err)
		return nil
	}
	m.errMsg = ""
	added := m.list.Add(dir)
	events.Session.Add(dir, added)
	if added {
		m.setInfo("added " + m.displayPath(dir))
	} else {
		m.setInfo("already bookmarked: " + m.displayPath(dir))
	}
	m.syncViewport()
	return m.ensurePreview()
}

func (m *Model) handleDeleteKey() tea.Cmd {
	removed, ok := m.list.Delete()
	if !ok {
		return nil
	}
	events.Session.Delete(removed, m.list.Cursor)
	m.errMsg = ""
	m.setInfo("removed " + m.displayPath(removed))
	m.syncViewport()
	return m.ensurePreview()
}

func (m *Model) afterMove(moved bool) tea.Cmd {
	m.syncViewport()
	if !moved {
		return nil
	}
	events.Session.Cursor(m.list.Cursor)
	return m.ensurePreview()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}
