package syntax

import (
	"strings"

	"github.com/markpad/markpad/document"
)

// ToggleWrap applies or removes a prefix/suffix construct around the
// selection.
//
// Detection of an existing wrapping always wins over wrapping again, so two
// consecutive applications restore the original text. A collapsed cursor
// inserts an empty pair with the caret between the markers, and removes the
// pair again when invoked inside one.
func ToggleWrap(d document.Document, spec WrapSpec) document.Document {
	d = d.Clamp()
	start, end := d.Selection.Normalized()
	text := d.Text

	if start == end {
		return toggleWrapCollapsed(d, spec, start)
	}

	sel := text[start:end]
	if len(sel) >= len(spec.Prefix)+len(spec.Suffix) &&
		strings.HasPrefix(sel, spec.Prefix) && strings.HasSuffix(sel, spec.Suffix) {
		inner := sel[len(spec.Prefix) : len(sel)-len(spec.Suffix)]
		d.Text = document.Replace(text, start, end, inner)
		return d.WithSelection(remap(d.Selection, start, start+len(inner)))
	}

	// The new selection spans the whole wrapped construct, so the next
	// invocation hits the strip branch above.
	d.Text = document.Replace(text, start, end, spec.Prefix+sel+spec.Suffix)
	return d.WithSelection(remap(d.Selection, start, start+len(spec.Prefix)+len(sel)+len(spec.Suffix)))
}

func toggleWrapCollapsed(d document.Document, spec WrapSpec, c int) document.Document {
	text := d.Text
	if c >= len(spec.Prefix) && c+len(spec.Suffix) <= len(text) &&
		text[c-len(spec.Prefix):c] == spec.Prefix && text[c:c+len(spec.Suffix)] == spec.Suffix {
		d.Text = document.Replace(text, c-len(spec.Prefix), c+len(spec.Suffix), "")
		return d.WithSelection(document.Collapsed(c - len(spec.Prefix)))
	}

	d.Text = document.Replace(text, c, c, spec.Prefix+spec.Suffix)
	return d.WithSelection(document.Collapsed(c + len(spec.Prefix)))
}

// remap rebuilds a selection over [start, end) keeping its direction.
func remap(s document.Selection, start, end int) document.Selection {
	if s.Backward() {
		return document.Selection{Anchor: end, Caret: start}
	}
	return document.Selection{Anchor: start, Caret: end}
}
