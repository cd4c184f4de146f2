package command

import (
	"github.com/atomicstack/save-point/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a side-effecting action triggered from the list.
type Request struct {
	ID    string
	Label string
	Run   func() (string, error)
}

// Result carries the outcome of a Request back into the update loop.
type Result struct {
	ID    string
	Label string
	Info  string
	Err   error
}

// Bus coordinates the execution of list actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		info, err := req.Run()
		res := Result{ID: req.ID, Label: req.Label, Info: info, Err: err}
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		events.Command.Result(req.ID, req.Label, outcome)
		return res
	}
}
