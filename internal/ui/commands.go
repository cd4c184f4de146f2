package ui

import (
	"github.com/atomicstack/save-point/internal/logging/events"
	"github.com/atomicstack/save-point/internal/ui/command"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped out in tests so they never touch the system
// clipboard.
var clipboardWrite = clipboard.WriteAll

func (m *Model) handleYankKey() tea.Cmd {
	target, ok := m.list.Selected()
	if !ok {
		return nil
	}
	label := m.displayPath(target)
	return m.bus.Execute(command.Request{
		ID:    "yank",
		Label: target,
		Run: func() (string, error) {
			if err := clipboardWrite(target); err != nil {
				return "", err
			}
			return "copied " + label, nil
		},
	})
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}
