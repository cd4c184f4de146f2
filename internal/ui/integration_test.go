package ui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/save-point/internal/backend"
	"github.com/atomicstack/save-point/internal/ui/command"
)

func TestHarnessDeleteThenConfirm(t *testing.T) {
	h := NewHarness(newTestModel("/a", "/b"))
	h.Init()

	h.SendKey("down")
	if h.Model().Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", h.Model().Cursor())
	}
	h.SendKey("d")
	if got := h.Model().Paths(); !reflect.DeepEqual(got, []string{"/a"}) {
		t.Fatalf("unexpected paths %v", got)
	}
	if h.Model().Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", h.Model().Cursor())
	}
	h.SendKey("enter")
	if got := h.Model().Command(); got.Kind != ExitNavigate || got.Target != "/a" {
		t.Fatalf("unexpected command %+v", got)
	}
}

func TestHarnessAddToEmptyListThenQuit(t *testing.T) {
	h := NewHarness(newTestModel())
	h.SendKey("a")
	h.SendKey("a")
	if got := h.Model().Paths(); !reflect.DeepEqual(got, []string{"/work"}) {
		t.Fatalf("unexpected paths %v", got)
	}
	if view := h.View(); !strings.Contains(view, "/work") {
		t.Fatalf("expected added path in view, got:\n%s", view)
	}
	h.SendKey("q")
	if got := h.Model().Command(); got.Kind != ExitClose {
		t.Fatalf("unexpected command %+v", got)
	}
}

func TestYankCopiesSelection(t *testing.T) {
	restore := clipboardWrite
	defer func() { clipboardWrite = restore }()
	var copied string
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	h := NewHarness(newTestModel("/a", "/b"))
	h.SendKey("j")
	h.SendKey("y")
	if copied != "/b" {
		t.Fatalf("expected /b copied, got %q", copied)
	}
	if !strings.Contains(h.View(), "copied /b") {
		t.Fatalf("expected copy notice, got:\n%s", h.View())
	}
}

func TestYankFailureIsReported(t *testing.T) {
	restore := clipboardWrite
	defer func() { clipboardWrite = restore }()
	clipboardWrite = func(string) error { return errors.New("no clipboard utility") }
	h := NewHarness(newTestModel("/a"))
	h.SendKey("y")
	if !strings.Contains(h.View(), "Error: no clipboard utility") {
		t.Fatalf("expected clipboard error, got:\n%s", h.View())
	}
	if h.Model().Command().Done() {
		t.Fatalf("expected session to keep running")
	}
}

func TestActionResultClearsPreviousError(t *testing.T) {
	m := newTestModel("/a")
	m.errMsg = "stale"
	m.Update(command.Result{ID: "yank", Info: "copied /a"})
	if m.errMsg != "" || m.infoMsg != "copied /a" {
		t.Fatalf("unexpected status err=%q info=%q", m.errMsg, m.infoMsg)
	}
}

func TestBackendEventRaisesWarning(t *testing.T) {
	m := newTestModel("/a")
	m.Update(backendEventMsg{event: backend.Event{Op: "WRITE", Path: "/x/memories.json"}})
	if m.warnMsg != externalChangeWarning {
		t.Fatalf("expected external change warning, got %q", m.warnMsg)
	}
	if got := m.Paths(); !reflect.DeepEqual(got, []string{"/a"}) {
		t.Fatalf("expected list untouched, got %v", got)
	}
	if !strings.Contains(m.View(), externalChangeWarning) {
		t.Fatalf("expected warning in view")
	}
}

func TestBackendErrorIsSurfaced(t *testing.T) {
	m := newTestModel("/a")
	m.Update(backendEventMsg{event: backend.Event{Err: errors.New("overflow")}})
	if !strings.Contains(m.warnMsg, "overflow") {
		t.Fatalf("expected watcher error surfaced, got %q", m.warnMsg)
	}
}

func TestBackendDoneDetachesWatcher(t *testing.T) {
	m := newTestModel("/a")
	if cmd := m.handleBackendDoneMsg(backendDoneMsg{}); cmd != nil {
		t.Fatalf("expected no follow-up command")
	}
	if m.backend != nil {
		t.Fatalf("expected watcher detached")
	}
}
