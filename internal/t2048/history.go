package t2048

import "fmt"

// DefaultHistoryLimit bounds the undo stack.
const DefaultHistoryLimit = 50

// HistoryEntry is an immutable pre-move snapshot.
type HistoryEntry struct {
	Grid    Grid
	Score   int
	Reached bool // the target had been reached before this move
}

// History is a bounded undo stack. Once full, pushing drops the oldest entry.
type History struct {
	entries []HistoryEntry // oldest first
	limit   int
}

// NewHistory creates an empty history holding at most limit entries.
func NewHistory(limit int) *History {
	if limit < 1 {
		panic(fmt.Sprintf("t2048: history limit %d, need at least 1", limit))
	}
	return &History{
		entries: make([]HistoryEntry, 0, limit),
		limit:   limit,
	}
}

// Push stores e with a deep copy of its grid.
func (h *History) Push(e HistoryEntry) {
	if len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	e.Grid = e.Grid.Clone()
	h.entries = append(h.entries, e)
}

// Pop removes and returns the most recent entry.
func (h *History) Pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = HistoryEntry{}
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Limit returns the capacity.
func (h *History) Limit() int {
	return h.limit
}

// Clear drops every entry.
func (h *History) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
}

// Entries returns a copy of the stack, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
