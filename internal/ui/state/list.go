package state

import "unicode/utf8"

// List is the in-session bookmark list plus the selection cursor and the
// first visible row. Cursor stays within [0, len(Paths)-1] whenever the list
// is non-empty and is 0 when it is empty.
type List struct {
	Paths          []string
	Cursor         int
	ViewportOffset int
}

// NewList copies paths into a fresh list. Entries that are empty or not valid
// UTF-8 cannot be displayed or navigated to and are dropped; skipped reports
// how many.
func NewList(paths []string) (l *List, skipped int) {
	l = &List{Paths: make([]string, 0, len(paths))}
	for _, p := range paths {
		if p == "" || !utf8.ValidString(p) {
			skipped++
			continue
		}
		l.Paths = append(l.Paths, p)
	}
	return l, skipped
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.Paths)
}

// Selected returns the path under the cursor.
func (l *List) Selected() (string, bool) {
	if len(l.Paths) == 0 {
		return "", false
	}
	l.clamp()
	return l.Paths[l.Cursor], true
}

// Contains reports whether path is already listed.
func (l *List) Contains(path string) bool {
	for _, p := range l.Paths {
		if p == path {
			return true
		}
	}
	return false
}

// Add appends path unless it is already listed, then selects the last entry.
// It reports whether the list grew.
func (l *List) Add(path string) bool {
	if path == "" {
		return false
	}
	added := false
	if !l.Contains(path) {
		l.Paths = append(l.Paths, path)
		added = true
	}
	l.Cursor = len(l.Paths) - 1
	return added
}

// Delete removes the entry under the cursor and clamps the cursor to the
// shorter list.
func (l *List) Delete() (string, bool) {
	if len(l.Paths) == 0 {
		l.Cursor = 0
		return "", false
	}
	l.clamp()
	removed := l.Paths[l.Cursor]
	l.Paths = append(l.Paths[:l.Cursor], l.Paths[l.Cursor+1:]...)
	l.clamp()
	return removed, true
}

// Snapshot returns a copy of the current ordering.
func (l *List) Snapshot() []string {
	dup := make([]string, len(l.Paths))
	copy(dup, l.Paths)
	return dup
}

func (l *List) clamp() {
	if len(l.Paths) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Paths) {
		l.Cursor = len(l.Paths) - 1
	}
}
