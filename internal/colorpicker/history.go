package colorpicker

// History is a linear undo stack of canonical values. The first entry is the
// value the panel was mounted with and may be absent.
type History struct {
	entries []Value
	index   int
}

// NewHistory starts a history at initial.
func NewHistory(initial Value) *History {
	return &History{entries: []Value{initial}}
}

// Push discards every entry after the current index, appends v and moves
// the index onto it.
func (h *History) Push(v Value) {
	h.entries = append(h.entries[:h.index+1], v)
	h.index++
}

// Undo moves one entry back and returns it.
func (h *History) Undo() (Value, bool) {
	if h.index-1 < 0 {
		return Value{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Redo moves one entry forward and returns it.
func (h *History) Redo() (Value, bool) {
	if h.index < 0 || h.index+1 >= len(h.entries) {
		return Value{}, false
	}
	h.index++
	return h.entries[h.index], true
}

// Undoable reports whether Undo would move.
func (h *History) Undoable() bool {
	return h.index >= 1
}

// Redoable reports whether Redo would move.
func (h *History) Redoable() bool {
	return len(h.entries) > 1 && h.index < len(h.entries)-1
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the current position.
func (h *History) Index() int {
	return h.index
}

// Entries returns a copy of the stack.
func (h *History) Entries() []Value {
	out := make([]Value, len(h.entries))
	copy(out, h.entries)
	return out
}
