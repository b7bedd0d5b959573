package emoji

import "strings"

// Substitute rewrites a just-completed ":shortcode:" span into its glyph.
//
// It compares oldText and newText to find what the edit inserted, and fires
// only when that insertion ends with a ':' sitting at or before caret. The
// scan runs backward from that closing colon to the nearest opening ':';
// settled colons elsewhere in the text are never re-examined, so editing
// other parts of the document cannot retroactively convert literal colons.
//
// Unknown shortcodes and edits that did not insert a closing ':' pass
// through unchanged. The returned caret accounts for the length difference
// between the shortcode span and the glyph.
func Substitute(oldText, newText string, caret int) (string, int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(newText) {
		caret = len(newText)
	}
	if len(newText) <= len(oldText) {
		return newText, caret
	}

	p := commonPrefixLen(oldText, newText)
	s := commonSuffixLen(oldText, newText, p)
	insEnd := len(newText) - s
	if insEnd <= p || !strings.HasSuffix(newText[p:insEnd], ":") {
		return newText, caret
	}
	if insEnd > caret {
		return newText, caret
	}

	colon := insEnd - 1
	open := -1
	for i := colon - 1; i >= 0; i-- {
		c := newText[i]
		if c == ':' {
			open = i
			break
		}
		if !isShortcodeChar(c) {
			return newText, caret
		}
	}
	if open < 0 || open == colon-1 {
		return newText, caret
	}

	glyph, ok := Lookup(newText[open+1 : colon])
	if !ok {
		return newText, caret
	}

	span := colon + 1 - open
	return newText[:open] + glyph + newText[colon+1:], caret + len(glyph) - span
}

// Shortcode keys are lowercase alphanumerics plus '_', '+', and '-' (the
// latter two for keys like "+1").
func isShortcodeChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '+' || c == '-':
		return true
	}
	return false
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// commonSuffixLen is bounded so the suffix never overlaps the shared prefix.
func commonSuffixLen(a, b string, prefix int) int {
	n := len(a) - prefix
	if m := len(b) - prefix; m < n {
		n = m
	}
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}
