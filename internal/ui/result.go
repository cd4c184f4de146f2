package ui

// ExitKind tags how a session ended.
type ExitKind int

const (
	// ExitNone means the loop is still running.
	ExitNone ExitKind = iota
	// ExitClose asks the host to save the list and exit.
	ExitClose
	// ExitNavigate asks the host to save and hand Target to the shell wrapper.
	ExitNavigate
)

func (k ExitKind) String() string {
	switch k {
	case ExitClose:
		return "close"
	case ExitNavigate:
		return "navigate"
	default:
		return "running"
	}
}

// Command is the terminal outcome of a session.
type Command struct {
	Kind   ExitKind
	Target string
}

// Done reports whether the session has reached a terminal state.
func (c Command) Done() bool {
	return c.Kind != ExitNone
}
