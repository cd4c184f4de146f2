package state

// Every move funnels through moveTo, which pins the target to the list and
// reports whether the selection changed. None of them wrap.

func (l *List) MoveUp() bool   { return l.moveTo(l.Cursor - 1) }
func (l *List) MoveDown() bool { return l.moveTo(l.Cursor + 1) }
func (l *List) MoveHome() bool { return l.moveTo(0) }
func (l *List) MoveEnd() bool  { return l.moveTo(len(l.Paths) - 1) }

// MovePageUp moves one page towards the top. A page is maxVisible rows, or
// the whole list when the row count is unknown.
func (l *List) MovePageUp(maxVisible int) bool {
	return l.moveTo(l.Cursor - l.page(maxVisible))
}

func (l *List) MovePageDown(maxVisible int) bool {
	return l.moveTo(l.Cursor + l.page(maxVisible))
}

func (l *List) moveTo(target int) bool {
	if len(l.Paths) == 0 {
		l.Cursor = 0
		return false
	}
	prev := l.Cursor
	l.Cursor = bound(target, 0, len(l.Paths)-1)
	return l.Cursor != prev
}

func (l *List) page(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Paths) {
		return max(len(l.Paths), 1)
	}
	return maxVisible
}

// EnsureCursorVisible scrolls as little as possible to keep the cursor within
// the maxVisible rows starting at ViewportOffset, never leaving blank rows
// below the last entry.
func (l *List) EnsureCursorVisible(maxVisible int) {
	l.clamp()
	if len(l.Paths) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	lastOffset := max(len(l.Paths)-maxVisible, 0)
	offset := bound(l.ViewportOffset, l.Cursor-maxVisible+1, l.Cursor)
	l.ViewportOffset = bound(offset, 0, lastOffset)
}

func bound(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
