package document

// Selection is a possibly-empty range in byte offsets. Anchor is the fixed
// end, Caret the moving end; Anchor may be greater than Caret when the user
// selected backwards. Anchor == Caret is a collapsed cursor.
type Selection struct {
	Anchor int
	Caret  int
}

// Document is the full editor state: text plus selection.
//
// Invariant (after Clamp): 0 <= min(Anchor, Caret) <= max(Anchor, Caret) <= len(Text).
type Document struct {
	Text      string
	Selection Selection
}

// New returns a Document with a collapsed cursor at the end of text.
func New(text string) Document {
	return Document{
		Text:      text,
		Selection: Collapsed(len(text)),
	}
}

// Collapsed returns a zero-width selection at off.
func Collapsed(off int) Selection {
	return Selection{Anchor: off, Caret: off}
}

// Normalized returns the selection bounds in document order.
func (s Selection) Normalized() (start, end int) {
	if s.Anchor <= s.Caret {
		return s.Anchor, s.Caret
	}
	return s.Caret, s.Anchor
}

// IsCollapsed reports whether the selection is a plain cursor.
func (s Selection) IsCollapsed() bool { return s.Anchor == s.Caret }

// Backward reports whether the caret precedes the anchor.
func (s Selection) Backward() bool { return s.Caret < s.Anchor }

// withBounds rebuilds a selection over [start, end) preserving direction.
func (s Selection) withBounds(start, end int) Selection {
	if s.Backward() {
		return Selection{Anchor: end, Caret: start}
	}
	return Selection{Anchor: start, Caret: end}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampSelection clamps both ends of s into [0, len(text)].
func ClampSelection(s Selection, text string) Selection {
	return Selection{
		Anchor: clampInt(s.Anchor, 0, len(text)),
		Caret:  clampInt(s.Caret, 0, len(text)),
	}
}

// Clamp returns d with the selection forced into bounds.
func (d Document) Clamp() Document {
	d.Selection = ClampSelection(d.Selection, d.Text)
	return d
}

// SelectedText returns the substring covered by the selection.
func (d Document) SelectedText() string {
	start, end := ClampSelection(d.Selection, d.Text).Normalized()
	return d.Text[start:end]
}

// WithSelection returns d with the selection replaced (and clamped).
func (d Document) WithSelection(s Selection) Document {
	d.Selection = ClampSelection(s, d.Text)
	return d
}

// Replace splices repl over text[start:end) and returns the new text.
// Bounds are clamped and reordered, never rejected.
func Replace(text string, start, end int, repl string) string {
	start = clampInt(start, 0, len(text))
	end = clampInt(end, 0, len(text))
	if end < start {
		start, end = end, start
	}
	return text[:start] + repl + text[end:]
}
