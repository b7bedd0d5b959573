package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markpad/markpad/document"
	"github.com/markpad/markpad/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.insertText(string(msg.Runes)), nil
	}

	// The suggestion popup captures its navigation keys first.
	if m.sug.open {
		if handled, next := m.updateSuggestKey(msg); handled {
			return next, nil
		}
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		return m.moveHorizontal(-1, false), nil
	case key.Matches(msg, km.Right):
		return m.moveHorizontal(1, false), nil
	case key.Matches(msg, km.ShiftLeft):
		return m.moveHorizontal(-1, true), nil
	case key.Matches(msg, km.ShiftRight):
		return m.moveHorizontal(1, true), nil

	case key.Matches(msg, km.WordLeft):
		return m.moveWord(-1), nil
	case key.Matches(msg, km.WordRight):
		return m.moveWord(1), nil

	case key.Matches(msg, km.Up):
		return m.moveVertical(-1, false), nil
	case key.Matches(msg, km.Down):
		return m.moveVertical(1, false), nil
	case key.Matches(msg, km.ShiftUp):
		return m.moveVertical(-1, true), nil
	case key.Matches(msg, km.ShiftDown):
		return m.moveVertical(1, true), nil

	case key.Matches(msg, km.Home):
		return m.moveLineEdge(false), nil
	case key.Matches(msg, km.End):
		return m.moveLineEdge(true), nil

	case key.Matches(msg, km.Backspace):
		return m.deleteBackward(), nil
	case key.Matches(msg, km.Delete):
		return m.deleteForward(), nil
	case key.Matches(msg, km.Enter):
		return m.insertText("\n"), nil

	case key.Matches(msg, km.Undo):
		return m.Undo(), nil
	case key.Matches(msg, km.Redo):
		return m.Redo(), nil

	case key.Matches(msg, km.Copy):
		m.copySelection()
		return m, nil
	case key.Matches(msg, km.Cut):
		return m.cutSelection(), nil
	case key.Matches(msg, km.Paste):
		return m.pasteClipboard(), nil

	case key.Matches(msg, km.Bold):
		return m.ApplyCommand(CmdBold), nil
	case key.Matches(msg, km.Italic):
		return m.ApplyCommand(CmdItalic), nil
	case key.Matches(msg, km.Strikethrough):
		return m.ApplyCommand(CmdStrikethrough), nil
	case key.Matches(msg, km.CodeSpan):
		return m.ApplyCommand(CmdCode), nil
	case key.Matches(msg, km.Quote):
		return m.ApplyCommand(CmdQuote), nil
	case key.Matches(msg, km.List):
		return m.ApplyCommand(CmdUnorderedList), nil
	case key.Matches(msg, km.Checkbox):
		return m.ApplyCommand(CmdCheckboxList), nil
	case key.Matches(msg, km.Link):
		return m.ApplyCommand(CmdLink), nil
	case key.Matches(msg, km.Heading1):
		return m.ApplyCommand(CmdHeading1), nil
	case key.Matches(msg, km.Heading2):
		return m.ApplyCommand(CmdHeading2), nil
	case key.Matches(msg, km.Heading3):
		return m.ApplyCommand(CmdHeading3), nil
	}

	if msg.Type == tea.KeyTab {
		return m.insertText("\t"), nil
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
		return m.insertText(string(msg.Runes)), nil
	}
	return m, nil
}

func (m Model) moveHorizontal(dir int, extend bool) Model {
	old := m.doc
	sel := old.Selection

	if !extend && !sel.IsCollapsed() {
		// Plain arrows collapse the selection to its edge.
		start, end := sel.Normalized()
		caret := start
		if dir > 0 {
			caret = end
		}
		return m.commit(old, old.WithSelection(document.Collapsed(caret)), false)
	}

	caret := sel.Caret
	if dir < 0 {
		caret = grapheme.PrevBoundary(old.Text, caret)
	} else {
		caret = grapheme.NextBoundary(old.Text, caret)
	}
	next := document.Collapsed(caret)
	if extend {
		next = document.Selection{Anchor: sel.Anchor, Caret: caret}
	}
	return m.commit(old, old.WithSelection(next), false)
}

// moveWord jumps to the previous or next word boundary: skip whitespace,
// then a run of non-whitespace. Newlines are hard boundaries, so word
// motion never leaves the current line.
func (m Model) moveWord(dir int) Model {
	old := m.doc
	spans := document.Lines(old.Text)
	span := spans[document.LineOf(old.Text, old.Selection.Caret)]
	line := old.Text[span.Start:span.End]
	col := old.Selection.Caret - span.Start

	if dir < 0 {
		col = prevWordBoundary(line, col)
	} else {
		col = nextWordBoundary(line, col)
	}
	return m.commit(old, old.WithSelection(document.Collapsed(span.Start+col)), false)
}

func prevWordBoundary(line string, col int) int {
	i := col
	for i > 0 {
		p := grapheme.PrevBoundary(line, i)
		if !grapheme.IsSpace(line[p:i]) {
			break
		}
		i = p
	}
	for i > 0 {
		p := grapheme.PrevBoundary(line, i)
		if grapheme.IsSpace(line[p:i]) {
			break
		}
		i = p
	}
	return i
}

func nextWordBoundary(line string, col int) int {
	i := col
	for i < len(line) {
		n := grapheme.NextBoundary(line, i)
		if !grapheme.IsSpace(line[i:n]) {
			break
		}
		i = n
	}
	for i < len(line) {
		n := grapheme.NextBoundary(line, i)
		if grapheme.IsSpace(line[i:n]) {
			break
		}
		i = n
	}
	return i
}

func (m Model) moveVertical(dir int, extend bool) Model {
	old := m.doc
	spans := document.Lines(old.Text)
	row := document.LineOf(old.Text, old.Selection.Caret)
	target := row + dir
	if target < 0 || target >= len(spans) {
		return m
	}

	col := old.Selection.Caret - spans[row].Start
	caret := spans[target].Start + col
	if caret > spans[target].End {
		caret = spans[target].End
	}
	caret = snapToCluster(old.Text, spans[target].Start, caret)

	next := document.Collapsed(caret)
	if extend {
		next = document.Selection{Anchor: old.Selection.Anchor, Caret: caret}
	}
	return m.commit(old, old.WithSelection(next), false)
}

func (m Model) moveLineEdge(end bool) Model {
	old := m.doc
	spans := document.Lines(old.Text)
	span := spans[document.LineOf(old.Text, old.Selection.Caret)]
	caret := span.Start
	if end {
		caret = span.End
	}
	return m.commit(old, old.WithSelection(document.Collapsed(caret)), false)
}

func (m Model) deleteBackward() Model {
	old := m.doc
	if !old.Selection.IsCollapsed() {
		return m.deleteSelection()
	}
	caret := old.Selection.Caret
	if caret == 0 {
		return m
	}
	prev := grapheme.PrevBoundary(old.Text, caret)
	next := document.Document{
		Text:      document.Replace(old.Text, prev, caret, ""),
		Selection: document.Collapsed(prev),
	}
	return m.commit(old, next, true)
}

func (m Model) deleteForward() Model {
	old := m.doc
	if !old.Selection.IsCollapsed() {
		return m.deleteSelection()
	}
	caret := old.Selection.Caret
	if caret >= len(old.Text) {
		return m
	}
	end := grapheme.NextBoundary(old.Text, caret)
	next := document.Document{
		Text:      document.Replace(old.Text, caret, end, ""),
		Selection: document.Collapsed(caret),
	}
	return m.commit(old, next, true)
}

func (m Model) deleteSelection() Model {
	old := m.doc
	start, end := old.Selection.Normalized()
	if start == end {
		return m
	}
	next := document.Document{
		Text:      document.Replace(old.Text, start, end, ""),
		Selection: document.Collapsed(start),
	}
	return m.commit(old, next, true)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.doc.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() Model {
	m.copySelection()
	if m.doc.Selection.IsCollapsed() {
		return m
	}
	return m.deleteSelection()
}

func (m Model) pasteClipboard() Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return m
	}
	return m.insertText(s)
}

// snapToCluster walks cluster boundaries from lineStart and returns the last
// boundary at or before off, so vertical moves never land inside a cluster.
func snapToCluster(text string, lineStart, off int) int {
	pos := lineStart
	for pos < off {
		next := grapheme.NextBoundary(text, pos)
		if next > off {
			break
		}
		pos = next
	}
	return pos
}
