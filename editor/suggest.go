package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markpad/markpad/document"
	"github.com/markpad/markpad/emoji"
)

// suggestMinPrefix is the shortcode prefix length that opens the popup.
const suggestMinPrefix = 2

// suggestMaxRows caps the popup height.
const suggestMaxRows = 5

// suggestState tracks the emoji completion popup. start is the byte offset
// of the opening ':'.
type suggestState struct {
	open    bool
	start   int
	prefix  string
	matches []emoji.Match
	index   int
}

// refreshSuggest recomputes the popup from the committed document. It runs
// after every text commit, so the popup always reflects post-substitution
// text.
func (m *Model) refreshSuggest() {
	m.sug = suggestState{}
	if !m.cfg.EmojiSuggest || !m.doc.Selection.IsCollapsed() {
		return
	}

	text := m.doc.Text
	caret := m.doc.Selection.Caret
	open := -1
	for i := caret - 1; i >= 0; i-- {
		c := text[i]
		if c == ':' {
			open = i
			break
		}
		if !isSuggestChar(c) {
			return
		}
	}
	if open < 0 {
		return
	}

	prefix := text[open+1 : caret]
	if len(prefix) < suggestMinPrefix {
		return
	}
	matches := emoji.Search(prefix)
	if len(matches) == 0 {
		return
	}
	if len(matches) > suggestMaxRows {
		matches = matches[:suggestMaxRows]
	}
	m.sug = suggestState{open: true, start: open, prefix: prefix, matches: matches}
}

func isSuggestChar(c byte) bool {
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

// updateSuggestKey handles popup navigation. handled is false for keys the
// popup does not consume, which then fall through to normal editing.
func (m Model) updateSuggestKey(msg tea.KeyMsg) (bool, Model) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.sug.index--
		if m.sug.index < 0 {
			m.sug.index = len(m.sug.matches) - 1
		}
		m.rebuildContent()
		return true, m
	case key.Matches(msg, km.Down):
		m.sug.index++
		if m.sug.index >= len(m.sug.matches) {
			m.sug.index = 0
		}
		m.rebuildContent()
		return true, m
	case key.Matches(msg, km.Enter), msg.Type == tea.KeyTab:
		return true, m.acceptSuggest()
	case msg.Type == tea.KeyEsc:
		m.sug = suggestState{}
		m.rebuildContent()
		return true, m
	}
	return false, m
}

// acceptSuggest splices the selected glyph over the ":prefix" span through
// the normal commit pipeline.
func (m Model) acceptSuggest() Model {
	if !m.sug.open || len(m.sug.matches) == 0 {
		return m
	}
	match := m.sug.matches[m.sug.index]
	old := m.doc
	caret := old.Selection.Caret

	next := document.Document{
		Text:      document.Replace(old.Text, m.sug.start, caret, match.Glyph),
		Selection: document.Collapsed(m.sug.start + len(match.Glyph)),
	}
	m.cfg.Logger.Debug().Str("shortcode", match.Key).Msg("emoji suggestion accepted")

	prefix, index := m.sug.prefix, m.sug.index
	m = m.commit(old, next, true)
	if !m.cfg.AutoCloseSuggest {
		// Keep the popup open for repeated insertion, rebuilt from a fresh
		// search at the new caret rather than the pre-accept state.
		matches := emoji.Search(prefix)
		if len(matches) > suggestMaxRows {
			matches = matches[:suggestMaxRows]
		}
		if len(matches) > 0 {
			if index >= len(matches) {
				index = 0
			}
			m.sug = suggestState{
				open:    true,
				start:   m.doc.Selection.Caret,
				prefix:  prefix,
				matches: matches,
				index:   index,
			}
			m.rebuildContent()
		}
	}
	return m
}

// renderSuggestRows draws the popup rows inserted below the cursor line.
func (m *Model) renderSuggestRows(gutterWidth int) []string {
	pad := ""
	if m.cfg.ShowLineNums {
		pad = m.cfg.Style.Gutter.Render(padSpaces(gutterWidth + 1))
	}

	rows := make([]string, 0, len(m.sug.matches))
	for i, match := range m.sug.matches {
		style := m.cfg.Style.SuggestItem
		if i == m.sug.index {
			style = m.cfg.Style.SuggestSelected
		}
		rows = append(rows, pad+style.Render(match.Glyph+" :"+match.Key+":"))
	}
	return rows
}

func padSpaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
