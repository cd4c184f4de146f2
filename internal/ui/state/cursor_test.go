package state

import "testing"

func newTestList(paths ...string) *List {
	l, _ := NewList(paths)
	return l
}

func TestMoveUpDownClampWithoutWrapping(t *testing.T) {
	l := newTestList("/a", "/b", "/c")
	if l.MoveUp() {
		t.Fatalf("expected no movement above first entry")
	}
	if !l.MoveDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if !l.MoveDown() || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveDown() {
		t.Fatalf("expected no movement past last entry")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", l.Cursor)
	}
	if !l.MoveUp() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1 after up, got %d", l.Cursor)
	}
}

func TestMoveOnEmptyList(t *testing.T) {
	l := newTestList()
	l.Cursor = 3
	if l.MoveUp() || l.MoveDown() || l.MoveHome() || l.MoveEnd() || l.MovePageDown(5) || l.MovePageUp(5) {
		t.Fatalf("expected no movement on empty list")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", l.Cursor)
	}
}

func TestMoveHomeEnd(t *testing.T) {
	l := newTestList("/a", "/b", "/c")
	l.Cursor = 1
	if !l.MoveHome() || l.Cursor != 0 {
		t.Fatalf("expected home to set cursor to 0, got %d", l.Cursor)
	}
	if l.MoveHome() {
		t.Fatalf("expected no movement when already at home")
	}
	if !l.MoveEnd() || l.Cursor != 2 {
		t.Fatalf("expected end to set cursor to last entry, got %d", l.Cursor)
	}
	if l.MoveEnd() {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestMovePaging(t *testing.T) {
	l := newTestList("/a", "/b", "/c", "/d", "/e")
	if !l.MovePageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MovePageDown(2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MovePageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MovePageUp(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MovePageUp(10) || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
	l.Cursor = 1
	if !l.MovePageDown(0) || l.Cursor != 4 {
		t.Fatalf("expected jump to end with unknown page size, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("/a", "/b", "/c", "/d", "/e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

func TestEnsureCursorVisibleScrollsMinimally(t *testing.T) {
	l := newTestList("/a", "/b", "/c", "/d", "/e", "/f")
	steps := []int{0, 0, 1, 2, 3}
	for i, want := range steps {
		l.MoveDown()
		l.EnsureCursorVisible(3)
		if l.ViewportOffset != want {
			t.Fatalf("step %d: expected offset %d, got %d", i, want, l.ViewportOffset)
		}
	}
	l.MoveUp()
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset to hold while cursor stays in view, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 5
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset capped so the last page is full, got %d", l.ViewportOffset)
	}

	l.Paths = nil
	l.ViewportOffset = 2
	l.EnsureCursorVisible(3)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected empty list to reset cursor and offset, got %d/%d", l.Cursor, l.ViewportOffset)
	}
}
