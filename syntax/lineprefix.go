package syntax

import (
	"strings"

	"github.com/markpad/markpad/document"
)

// splice is one localized text edit in original-text coordinates. Edits in a
// batch are disjoint and sorted ascending, so selection offsets can be
// remapped with a single running delta.
type splice struct {
	pos    int
	oldLen int
	text   string
}

// ToggleLinePrefix applies or removes a line marker across every line
// covered by the selection.
//
// Policy is all-or-add-missing: when every covered line already carries the
// marker (or one of its alternate spellings) the marker is removed from all
// of them, otherwise it is added to exactly the lines that lack it. This
// keeps a mixed selection from flip-flopping into an inconsistent state.
//
// A marker counts as present when preceded by at most one level of
// indentation (up to two spaces or a single tab). Application always inserts
// the canonical marker plus a space at column 0.
func ToggleLinePrefix(d document.Document, spec LinePrefixSpec) document.Document {
	d = d.Clamp()
	spans := document.Lines(d.Text)
	first, last := document.CoveredLines(d.Text, d.Selection)

	allMarked := true
	for i := first; i <= last; i++ {
		line := d.Text[spans[i].Start:spans[i].End]
		if _, _, ok := markerAt(line, spec); !ok {
			allMarked = false
			break
		}
	}

	var edits []splice
	for i := first; i <= last; i++ {
		line := d.Text[spans[i].Start:spans[i].End]
		pos, n, ok := markerAt(line, spec)
		if allMarked {
			// Strip the marker and exactly one following space.
			if pos+n < len(line) && line[pos+n] == ' ' {
				n++
			}
			edits = append(edits, splice{pos: spans[i].Start + pos, oldLen: n})
			continue
		}
		if ok {
			continue
		}
		edits = append(edits, splice{pos: spans[i].Start, text: spec.Marker + " "})
	}

	return applySplices(d, edits)
}

// markerAt locates spec's marker (canonical or alternate) at the start of
// line. pos is the byte offset of the marker within line, n its length.
func markerAt(line string, spec LinePrefixSpec) (pos, n int, ok bool) {
	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	switch line[:indent] {
	case "", " ", "  ", "\t":
	default:
		return 0, 0, false
	}

	rest := line[indent:]
	if strings.HasPrefix(rest, spec.Marker) {
		return indent, len(spec.Marker), true
	}
	for _, alt := range spec.AltMarkers {
		if strings.HasPrefix(rest, alt) {
			return indent, len(alt), true
		}
	}
	return 0, 0, false
}

// applySplices rebuilds the text with edits applied and remaps the selection
// with a running offset delta, preserving direction.
func applySplices(d document.Document, edits []splice) document.Document {
	if len(edits) == 0 {
		return d
	}

	var sb strings.Builder
	prev := 0
	for _, e := range edits {
		sb.WriteString(d.Text[prev:e.pos])
		sb.WriteString(e.text)
		prev = e.pos + e.oldLen
	}
	sb.WriteString(d.Text[prev:])

	sel := document.Selection{
		Anchor: remapOffset(d.Selection.Anchor, edits),
		Caret:  remapOffset(d.Selection.Caret, edits),
	}
	d.Text = sb.String()
	return d.WithSelection(sel)
}

// remapOffset maps a pre-edit offset to its post-edit position. An offset
// inside a removed span snaps to the removal point; an offset at an
// insertion point moves past the inserted text.
func remapOffset(o int, edits []splice) int {
	n := o
	for _, e := range edits {
		if e.oldLen == 0 {
			if o >= e.pos {
				n += len(e.text)
			}
			continue
		}
		switch {
		case o <= e.pos:
		case o < e.pos+e.oldLen:
			n -= o - e.pos
		default:
			n += len(e.text) - e.oldLen
		}
	}
	return n
}
