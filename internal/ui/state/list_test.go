package state

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func TestNewListSkipsUndisplayablePaths(t *testing.T) {
	l, skipped := NewList([]string{"/a", "", "/b", string([]byte{0xff, 0xfe}), "/a"})
	if skipped != 2 {
		t.Fatalf("expected 2 skipped entries, got %d", skipped)
	}
	want := []string{"/a", "/b", "/a"}
	if !reflect.DeepEqual(l.Paths, want) {
		t.Fatalf("expected %v, got %v", want, l.Paths)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
}

func TestNewListCopiesInput(t *testing.T) {
	input := []string{"/a", "/b"}
	l, _ := NewList(input)
	input[0] = "/changed"
	if l.Paths[0] != "/a" {
		t.Fatalf("expected list to own its paths, got %q", l.Paths[0])
	}
}

func TestAddDeduplicatesAndSelectsLast(t *testing.T) {
	l := newTestList("/a", "/b")
	if !l.Add("/c") {
		t.Fatalf("expected new path to be added")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor on new entry, got %d", l.Cursor)
	}
	l.Cursor = 0
	if l.Add("/c") {
		t.Fatalf("expected duplicate to be rejected")
	}
	if l.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", l.Len())
	}
	if l.Cursor != 2 {
		t.Fatalf("expected last entry selected after duplicate add, got %d", l.Cursor)
	}
	if l.Add("") {
		t.Fatalf("expected empty path to be rejected")
	}
}

func TestAddSamePathTwiceYieldsOneOccurrence(t *testing.T) {
	l := newTestList()
	l.Add("/work")
	l.Add("/work")
	count := 0
	for _, p := range l.Paths {
		if p == "/work" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one occurrence, got %d", count)
	}
}

func TestDeleteClampsCursor(t *testing.T) {
	l := newTestList("/a", "/b", "/c")
	l.Cursor = 2
	removed, ok := l.Delete()
	if !ok || removed != "/c" {
		t.Fatalf("expected /c removed, got %q (%v)", removed, ok)
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", l.Cursor)
	}
	l.Cursor = 0
	if removed, _ := l.Delete(); removed != "/a" {
		t.Fatalf("expected /a removed, got %q", removed)
	}
	if l.Cursor != 0 || l.Paths[0] != "/b" {
		t.Fatalf("unexpected state %#v", l)
	}
}

func TestDeleteOnEmptyListIsNoOp(t *testing.T) {
	l := newTestList()
	removed, ok := l.Delete()
	if ok || removed != "" {
		t.Fatalf("expected no-op delete, got %q (%v)", removed, ok)
	}
	if l.Cursor != 0 || l.Len() != 0 {
		t.Fatalf("unexpected state after empty delete %#v", l)
	}
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection on empty list")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	l := newTestList("/a")
	snap := l.Snapshot()
	snap[0] = "/b"
	if l.Paths[0] != "/a" {
		t.Fatalf("expected snapshot to be a copy")
	}
}

func TestCursorInvariantUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := newTestList()
	for i := 0; i < 2000; i++ {
		switch rng.Intn(5) {
		case 0, 1:
			l.Add(fmt.Sprintf("/dir/%d", rng.Intn(12)))
		case 2:
			l.Delete()
		case 3:
			l.MoveUp()
		case 4:
			l.MoveDown()
		}
		if n := l.Len(); n > 0 {
			if l.Cursor < 0 || l.Cursor >= n {
				t.Fatalf("step %d: cursor %d out of range for length %d", i, l.Cursor, n)
			}
		} else if l.Cursor != 0 {
			t.Fatalf("step %d: expected cursor 0 on empty list, got %d", i, l.Cursor)
		}
	}
}
