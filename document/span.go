package document

import "strings"

// LineSpan describes one logical line of the text. Start and End are byte
// offsets; End excludes the terminating '\n'. Index is the 0-based line
// number.
type LineSpan struct {
	Start int
	End   int
	Index int
}

// Len returns the line length in bytes, excluding the newline.
func (s LineSpan) Len() int { return s.End - s.Start }

// Lines splits text on '\n' into an ordered sequence of LineSpans that
// partitions the text exactly. An empty text yields a single zero-length
// span; text ending in '\n' yields a trailing empty span.
func Lines(text string) []LineSpan {
	spans := make([]LineSpan, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; ; i++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			spans = append(spans, LineSpan{Start: start, End: len(text), Index: i})
			return spans
		}
		spans = append(spans, LineSpan{Start: start, End: start + nl, Index: i})
		start += nl + 1
	}
}

// LineOf returns the index of the line containing caret.
//
// A caret sitting exactly on a line/newline boundary belongs to the line the
// boundary terminates, not the following line: in "ab\ncd", offset 2 is line
// 0 and offset 3 is line 1. Out-of-range carets clamp to the first or last
// line instead of failing.
func LineOf(text string, caret int) int {
	if caret <= 0 {
		return 0
	}
	spans := Lines(text)
	for _, s := range spans {
		if caret <= s.End {
			return s.Index
		}
	}
	return spans[len(spans)-1].Index
}

// CoveredLines returns the inclusive range of line indices touched by sel.
// A collapsed selection covers just the caret line. A non-empty selection
// ending exactly at the start of a line does not cover that line: it holds
// none of the line's characters.
func CoveredLines(text string, sel Selection) (first, last int) {
	start, end := ClampSelection(sel, text).Normalized()
	first = LineOf(text, start)
	if end == start {
		return first, first
	}
	last = LineOf(text, end)
	if last > first {
		spans := Lines(text)
		if end == spans[last].Start {
			last--
		}
	}
	return first, last
}
