package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markpad/markpad/document"
	"github.com/markpad/markpad/emoji"
)

// Model is a Bubble Tea component that edits a markdown document.
//
// It owns the single live Document. Every input event produces exactly one
// new Document state through a fixed pipeline — substitute, commit,
// recompute lines, decide render mode — with no re-entrant second pass.
type Model struct {
	cfg Config
	doc document.Document

	version uint64
	focused bool

	viewport viewport.Model
	hist     *document.History
	sug      suggestState
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg:      cfg,
		doc:      document.Document{Text: cfg.Text, Selection: document.Collapsed(0)},
		focused:  true,
		viewport: viewport.New(0, 0),
		hist:     document.NewHistory(cfg.HistoryLimit),
	}
	m.rebuildContent()
	return m
}

// Document returns the current document state.
func (m Model) Document() document.Document { return m.doc }

// SetSelection replaces the selection, for host-driven selection surfaces
// (mouse handling, programmatic focus). The selection clamps into bounds.
func (m Model) SetSelection(sel document.Selection) Model {
	old := m.doc
	next := old.WithSelection(sel)
	if next.Selection == old.Selection {
		return m
	}
	return m.commit(old, next, false)
}

// SetText resets the document to text with a collapsed cursor at the start.
func (m Model) SetText(text string) Model {
	old := m.doc
	next := document.Document{Text: text, Selection: document.Collapsed(0)}
	return m.commit(old, next, true)
}

// Text returns the current markdown source.
func (m Model) Text() string { return m.doc.Text }

// Version increments on every committed state change.
func (m Model) Version() uint64 { return m.version }

// CursorLine returns the line index holding the caret.
func (m Model) CursorLine() int {
	return document.LineOf(m.doc.Text, m.doc.Selection.Caret)
}

// IsRawLine reports whether line index shows raw markup instead of the
// rendered preview: only the caret line of a focused editor is raw.
func (m Model) IsRawLine(index int) bool {
	return m.focused && index == m.CursorLine()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focused() bool { return m.focused }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.cfg.Logger.Debug().Msg("editor focused")
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.sug = suggestState{}
		m.cfg.Logger.Debug().Msg("editor blurred")
		m.rebuildContent()
	}
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string { return m.viewport.View() }

// ApplyCommand runs a toolbar command against the current document and
// commits the result as a synthetic edit. Toolbar edits bypass emoji
// substitution.
func (m Model) ApplyCommand(c Command) Model {
	old := m.doc
	next := applyCommand(old, c, m.cfg.MaxHeadingLevel)
	m.cfg.Logger.Debug().Str("command", c.String()).Msg("apply command")
	if next.Text == old.Text && next.Selection == old.Selection {
		return m
	}
	return m.commit(old, next, next.Text != old.Text)
}

// Undo reverts the last text edit.
func (m Model) Undo() Model {
	next, ok := m.hist.Undo(m.doc)
	if !ok {
		return m
	}
	m.doc = next.Clamp()
	m.version++
	m.sug = suggestState{}
	m.emitChange()
	m.rebuildContent()
	m.followCursor()
	return m
}

// Redo reverses the last Undo.
func (m Model) Redo() Model {
	next, ok := m.hist.Redo(m.doc)
	if !ok {
		return m
	}
	m.doc = next.Clamp()
	m.version++
	m.sug = suggestState{}
	m.emitChange()
	m.rebuildContent()
	m.followCursor()
	return m
}

// insertText replaces the selection (or splices at the caret) with s,
// running the full input pipeline including emoji substitution.
func (m Model) insertText(s string) Model {
	old := m.doc
	start, end := old.Selection.Normalized()
	text := document.Replace(old.Text, start, end, s)
	caret := start + len(s)

	if m.cfg.EmojiConvert {
		formatted, fcaret := emoji.Substitute(old.Text, text, caret)
		if formatted != text {
			m.cfg.Logger.Debug().Int("caret", fcaret).Msg("emoji substituted")
		}
		text, caret = formatted, fcaret
	}

	next := document.Document{Text: text, Selection: document.Collapsed(caret)}
	return m.commit(old, next, true)
}

// commit is the single state-replacement point. textChanged edits are
// recorded in history and produce a ChangeEvent; pure selection moves only
// bump the version.
func (m Model) commit(old document.Document, next document.Document, textChanged bool) Model {
	if textChanged {
		m.hist.Push(old)
	}
	m.doc = next.Clamp()
	m.version++

	if textChanged {
		m.refreshSuggest()
		m.emitChange()
	} else {
		// A caret move leaves the popup's shortcode span behind; accepting
		// against the old span would splice over unrelated text.
		m.sug = suggestState{}
	}
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m *Model) emitChange() {
	if m.cfg.OnChange == nil {
		return
	}
	m.cfg.OnChange(ChangeEvent{
		Version:    m.version,
		Text:       m.doc.Text,
		Selection:  m.doc.Selection,
		CursorLine: document.LineOf(m.doc.Text, m.doc.Selection.Caret),
	})
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.CursorLine()
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
	} else if row >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
