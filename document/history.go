package document

// History is a bounded undo/redo stack over Document snapshots. Snapshots
// are cheap: a Document is a string plus two ints.
type History struct {
	limit int
	undo  []Document
	redo  []Document
}

// NewHistory returns a History that keeps at most limit undo snapshots.
// A non-positive limit falls back to 1000.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1000
	}
	return &History{limit: limit}
}

// Push records the state that the next edit is about to replace and clears
// the redo stack.
func (h *History) Push(d Document) {
	h.undo = append(h.undo, d)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = h.redo[:0]
}

// Undo exchanges current for the most recent snapshot. ok is false when
// there is nothing to undo.
func (h *History) Undo(current Document) (Document, bool) {
	if len(h.undo) == 0 {
		return current, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo reverses the most recent Undo.
func (h *History) Redo(current Document) (Document, bool) {
	if len(h.redo) == 0 {
		return current, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return next, true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
