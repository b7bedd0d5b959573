package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/markpad/markpad/document"
)

func TestUpdate_RunesInsertAtCaret(t *testing.T) {
	m := New(Config{Text: ""})
	m = typeRunes(m, "hi")
	if got := m.Text(); got != "hi" {
		t.Fatalf("text: got %q", got)
	}
	if got := m.Document().Selection; got != document.Collapsed(2) {
		t.Fatalf("caret: got %+v", got)
	}
}

func TestUpdate_EnterInsertsNewline(t *testing.T) {
	m := New(Config{Text: ""})
	m = typeRunes(m, "a")
	m = pressKey(m, tea.KeyEnter)
	m = typeRunes(m, "b")
	if got := m.Text(); got != "a\nb" {
		t.Fatalf("text: got %q", got)
	}
	if got := m.CursorLine(); got != 1 {
		t.Fatalf("cursor line: got %d, want 1", got)
	}
}

func TestUpdate_BackspaceDeletesGrapheme(t *testing.T) {
	m := New(Config{Text: ""})
	m = typeRunes(m, "a😃")
	m = pressKey(m, tea.KeyBackspace)
	if got := m.Text(); got != "a" {
		t.Fatalf("text after emoji backspace: got %q", got)
	}
}

func TestUpdate_ArrowMovesByGrapheme(t *testing.T) {
	m := New(Config{Text: "a😃b"})
	m = pressKey(m, tea.KeyRight)
	if got := m.Document().Selection.Caret; got != 1 {
		t.Fatalf("caret after right: got %d, want 1", got)
	}
	m = pressKey(m, tea.KeyRight)
	if got := m.Document().Selection.Caret; got != 5 {
		t.Fatalf("caret must skip the whole emoji: got %d, want 5", got)
	}
	m = pressKey(m, tea.KeyLeft)
	if got := m.Document().Selection.Caret; got != 1 {
		t.Fatalf("caret after left: got %d, want 1", got)
	}
}

func TestUpdate_ShiftArrowsExtendSelection(t *testing.T) {
	m := New(Config{Text: "abc"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	sel := m.Document().Selection
	if sel.Anchor != 0 || sel.Caret != 2 {
		t.Fatalf("selection: got %+v, want anchor=0 caret=2", sel)
	}
	if got := m.Document().SelectedText(); got != "ab" {
		t.Fatalf("selected: got %q", got)
	}
}

func TestUpdate_PlainArrowCollapsesSelection(t *testing.T) {
	m := New(Config{Text: "abc"})
	m = m.SetSelection(document.Selection{Anchor: 0, Caret: 2})
	m = pressKey(m, tea.KeyLeft)

	sel := m.Document().Selection
	if !sel.IsCollapsed() || sel.Caret != 0 {
		t.Fatalf("selection after left: got %+v, want collapsed at 0", sel)
	}
}

func TestUpdate_VerticalMoveClampsColumn(t *testing.T) {
	m := New(Config{Text: "wide line\nab"})
	m = m.SetSelection(document.Collapsed(7))
	m = pressKey(m, tea.KeyDown)

	if got := m.Document().Selection.Caret; got != len("wide line\nab") {
		t.Fatalf("caret after down: got %d, want end of short line", got)
	}
	m = pressKey(m, tea.KeyUp)
	if got := m.CursorLine(); got != 0 {
		t.Fatalf("cursor line after up: got %d, want 0", got)
	}
}

func TestUpdate_WordMovement(t *testing.T) {
	m := New(Config{Text: "one  two\nthree"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	if got := m.Document().Selection.Caret; got != 3 {
		t.Fatalf("word right: got %d, want 3", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	if got := m.Document().Selection.Caret; got != 8 {
		t.Fatalf("word right: got %d, want 8", got)
	}
	// Newline is a hard boundary.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	if got := m.Document().Selection.Caret; got != 8 {
		t.Fatalf("word right at line end: got %d, want 8", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	if got := m.Document().Selection.Caret; got != 5 {
		t.Fatalf("word left: got %d, want 5", got)
	}
}

func TestUpdate_HomeEnd(t *testing.T) {
	m := New(Config{Text: "one\ntwo"})
	m = m.SetSelection(document.Collapsed(5))

	m = pressKey(m, tea.KeyEnd)
	if got := m.Document().Selection.Caret; got != 7 {
		t.Fatalf("end: got %d, want 7", got)
	}
	m = pressKey(m, tea.KeyHome)
	if got := m.Document().Selection.Caret; got != 4 {
		t.Fatalf("home: got %d, want 4", got)
	}
}

func TestUpdate_CommandShortcuts(t *testing.T) {
	m := New(Config{Text: "hello"})
	m = m.SetSelection(document.Selection{Anchor: 0, Caret: 5})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if got := m.Text(); got != "**hello**" {
		t.Fatalf("ctrl+b: got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})
	if got := m.Text(); got != "## **hello**" {
		t.Fatalf("alt+2: got %q", got)
	}
}

func TestUpdate_SelectionTypedOverIsReplaced(t *testing.T) {
	m := New(Config{Text: "hello"})
	m = m.SetSelection(document.Selection{Anchor: 0, Caret: 5})
	m = typeRunes(m, "x")
	if got := m.Text(); got != "x" {
		t.Fatalf("text: got %q", got)
	}
}

func TestUpdate_ClipboardCopyCutPaste(t *testing.T) {
	clip := &MemoryClipboard{}
	m := New(Config{Text: "hello", Clipboard: clip})
	m = m.SetSelection(document.Selection{Anchor: 0, Caret: 5})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.Text(); got != "" {
		t.Fatalf("cut: got %q", got)
	}
	if s, _ := clip.ReadText(); s != "hello" {
		t.Fatalf("clipboard: got %q", s)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Text(); got != "hello" {
		t.Fatalf("paste: got %q", got)
	}
}

func TestUpdate_CopyLeavesTextIntact(t *testing.T) {
	clip := &MemoryClipboard{}
	m := New(Config{Text: "hello", Clipboard: clip})
	m = m.SetSelection(document.Selection{Anchor: 0, Caret: 5})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := m.Text(); got != "hello" {
		t.Fatalf("copy must not edit: got %q", got)
	}
	if s, _ := clip.ReadText(); s != "hello" {
		t.Fatalf("clipboard: got %q", s)
	}
}

func TestUpdate_PasteRunesNeverTriggerShortcuts(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("**x**"), Paste: true})
	if got := m.Text(); got != "**x**" {
		t.Fatalf("pasted text: got %q", got)
	}
}

func TestUpdate_IgnoredWhileBlurred(t *testing.T) {
	m := New(Config{Text: "a"})
	m = m.Blur()
	m = typeRunes(m, "b")
	if got := m.Text(); got != "a" {
		t.Fatalf("blurred edit applied: got %q", got)
	}
}
