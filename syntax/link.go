package syntax

import "github.com/markpad/markpad/document"

// InsertLink wraps the selection in markdown link syntax.
//
// A non-empty selection S becomes "[S](url)" with the url placeholder
// selected for immediate overtype. A collapsed cursor inserts the full
// "[title](url)" template with the title placeholder selected, so the next
// keystroke replaces the title first.
func InsertLink(d document.Document) document.Document {
	d = d.Clamp()
	start, end := d.Selection.Normalized()

	if start == end {
		repl := "[" + linkTitlePlaceholder + "](" + linkURLPlaceholder + ")"
		d.Text = document.Replace(d.Text, start, end, repl)
		titleStart := start + 1
		return d.WithSelection(document.Selection{
			Anchor: titleStart,
			Caret:  titleStart + len(linkTitlePlaceholder),
		})
	}

	sel := d.Text[start:end]
	repl := "[" + sel + "](" + linkURLPlaceholder + ")"
	d.Text = document.Replace(d.Text, start, end, repl)
	urlStart := start + 1 + len(sel) + 2
	return d.WithSelection(document.Selection{
		Anchor: urlStart,
		Caret:  urlStart + len(linkURLPlaceholder),
	})
}
