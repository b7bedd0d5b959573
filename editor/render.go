package editor

import (
	"fmt"
	"strings"

	"github.com/markpad/markpad/document"
	"github.com/markpad/markpad/internal/grapheme"
)

func (m *Model) renderContent() string {
	text := m.doc.Text
	spans := document.Lines(text)
	cursorLine := document.LineOf(text, m.doc.Selection.Caret)

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(spans))
	}

	rows := make([]string, 0, len(spans))
	for _, sp := range spans {
		line := text[sp.Start:sp.End]

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && sp.Index == cursorLine {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, sp.Index+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		if m.focused && sp.Index == cursorLine {
			sb.WriteString(m.renderRawLine(line, sp))
		} else {
			sb.WriteString(m.cfg.Renderer.RenderLine(line))
		}
		rows = append(rows, sb.String())

		if m.sug.open && sp.Index == cursorLine {
			rows = append(rows, m.renderSuggestRows(digits)...)
		}
	}
	return strings.Join(rows, "\n")
}

// renderRawLine draws the focused line's raw markup with selection and
// cursor styling. pos walks byte offsets in document coordinates.
func (m *Model) renderRawLine(line string, sp document.LineSpan) string {
	selStart, selEnd := m.doc.Selection.Normalized()
	hasSel := selStart != selEnd
	caret := m.doc.Selection.Caret

	var sb strings.Builder
	pos := sp.Start
	for _, cluster := range grapheme.Split(line) {
		style := m.cfg.Style.Text
		if hasSel && selStart <= pos && pos < selEnd {
			style = m.cfg.Style.Selection
		}
		if pos == caret {
			style = m.cfg.Style.Cursor
		}
		if cluster == "\t" {
			sb.WriteString(style.Render(strings.Repeat(" ", tabWidth)))
		} else {
			sb.WriteString(style.Render(cluster))
		}
		pos += len(cluster)
	}
	if caret == sp.End {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	return sb.String()
}

const tabWidth = 4

func gutterDigits(rowCount int) int {
	digits := 1
	for rowCount >= 10 {
		rowCount /= 10
		digits++
	}
	return digits
}
