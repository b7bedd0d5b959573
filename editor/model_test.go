package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/markpad/markpad/document"
)

// fakeRenderer tags every previewed line so tests can tell raw from
// rendered.
type fakeRenderer struct{}

func (fakeRenderer) RenderLine(line string) string { return "R(" + line + ")" }

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestModel_OnlyCursorLineIsRaw(t *testing.T) {
	m := New(Config{Text: "ab\ncd", Renderer: fakeRenderer{}})

	if !m.IsRawLine(0) || m.IsRawLine(1) {
		t.Fatalf("cursor on line 0: raw flags wrong: %v %v", m.IsRawLine(0), m.IsRawLine(1))
	}

	got := contentLines(m)
	if !strings.HasPrefix(got[0], "ab") {
		t.Fatalf("line 0 must be raw: %q", got[0])
	}
	if got[1] != "R(cd)" {
		t.Fatalf("line 1 must be previewed: %q", got[1])
	}

	m = m.SetSelection(document.Collapsed(4))
	got = contentLines(m)
	if got[0] != "R(ab)" {
		t.Fatalf("line 0 must now be previewed: %q", got[0])
	}
	if !strings.HasPrefix(got[1], "cd") {
		t.Fatalf("line 1 must now be raw: %q", got[1])
	}
}

func TestModel_BlurPreviewsEveryLine(t *testing.T) {
	m := New(Config{Text: "ab\ncd", Renderer: fakeRenderer{}})
	m = m.Blur()

	got := contentLines(m)
	if got[0] != "R(ab)" || got[1] != "R(cd)" {
		t.Fatalf("blurred render: got %q", got)
	}
	if m.IsRawLine(0) {
		t.Fatalf("no line is raw while blurred")
	}
}

func TestModel_TypingRunsEmojiPipeline(t *testing.T) {
	var events []ChangeEvent
	cfg := DefaultConfig()
	cfg.Text = ""
	cfg.EmojiSuggest = false
	cfg.OnChange = func(ev ChangeEvent) { events = append(events, ev) }

	m := New(cfg)
	m = typeRunes(m, "Hi :smiley:")

	if got, want := m.Text(), "Hi 😃"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.Document().Selection, document.Collapsed(len("Hi 😃")); got != want {
		t.Fatalf("caret: got %+v, want %+v", got, want)
	}

	// Line decisions saw post-substitution text: the last event carries the
	// converted buffer.
	last := events[len(events)-1]
	if last.Text != "Hi 😃" || last.CursorLine != 0 {
		t.Fatalf("last event: got %+v", last)
	}
}

func TestModel_EmojiConvertOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmojiConvert = false
	cfg.EmojiSuggest = false

	m := New(cfg)
	m = typeRunes(m, ":smiley:")
	if got, want := m.Text(), ":smiley:"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestModel_ApplyCommandTogglesSelection(t *testing.T) {
	m := New(Config{Text: "hello"})
	m = m.SetSelection(document.Selection{Anchor: 0, Caret: 5})

	m = m.ApplyCommand(CmdBold)
	if got, want := m.Text(), "**hello**"; got != want {
		t.Fatalf("bold: got %q, want %q", got, want)
	}

	m = m.ApplyCommand(CmdBold)
	if got, want := m.Text(), "hello"; got != want {
		t.Fatalf("unbold: got %q, want %q", got, want)
	}
}

func TestModel_ApplyCommandHeadingRespectsConfigMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "Title"
	cfg.MaxHeadingLevel = 2

	m := New(cfg)
	m = m.ApplyCommand(CmdHeading3)
	if got, want := m.Text(), "## Title"; got != want {
		t.Fatalf("clamped heading: got %q, want %q", got, want)
	}
}

func TestModel_UndoRedo(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = m.SetSelection(document.Collapsed(2))
	m = typeRunes(m, "c")

	if got := m.Text(); got != "abc" {
		t.Fatalf("text: got %q", got)
	}

	m = m.Undo()
	if got := m.Text(); got != "ab" {
		t.Fatalf("after undo: got %q", got)
	}

	m = m.Redo()
	if got := m.Text(); got != "abc" {
		t.Fatalf("after redo: got %q", got)
	}
}

func TestModel_VersionBumpsPerCommit(t *testing.T) {
	m := New(Config{Text: "x"})
	v := m.Version()

	m = typeRunes(m, "y")
	if m.Version() != v+1 {
		t.Fatalf("version after edit: got %d, want %d", m.Version(), v+1)
	}

	m = m.SetSelection(document.Collapsed(0))
	if m.Version() != v+2 {
		t.Fatalf("version after move: got %d, want %d", m.Version(), v+2)
	}
}

func TestModel_SetTextResets(t *testing.T) {
	m := New(Config{Text: "old"})
	m = m.SetText("# new")
	if got := m.Text(); got != "# new" {
		t.Fatalf("text: got %q", got)
	}
	if got := m.Document().Selection; got != document.Collapsed(0) {
		t.Fatalf("selection: got %+v", got)
	}
}

func TestModel_ShowLineNums(t *testing.T) {
	m := New(Config{Text: "a\nb", ShowLineNums: true, Renderer: fakeRenderer{}})
	m = m.Blur()

	got := contentLines(m)
	if got[0] != "1 R(a)" || got[1] != "2 R(b)" {
		t.Fatalf("gutter render: got %q", got)
	}
}
