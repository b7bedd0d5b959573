package syntax

import (
	"testing"

	"github.com/markpad/markpad/document"
)

func TestToggleLinePrefix_BulkApplyThenRemove(t *testing.T) {
	text := "a\nb\nc"
	d := docWithSel(text, 0, len(text))

	once := ToggleLinePrefix(d, Quote)
	if got, want := once.Text, "> a\n> b\n> c"; got != want {
		t.Fatalf("apply: got %q, want %q", got, want)
	}

	twice := ToggleLinePrefix(once, Quote)
	if got, want := twice.Text, "a\nb\nc"; got != want {
		t.Fatalf("remove: got %q, want %q", got, want)
	}
}

func TestToggleLinePrefix_MixedSelectionAddsMissingOnly(t *testing.T) {
	text := "> a\nb"
	d := docWithSel(text, 0, len(text))

	got := ToggleLinePrefix(d, Quote)
	if want := "> a\n> b"; got.Text != want {
		t.Fatalf("mixed: got %q, want %q", got.Text, want)
	}
}

func TestToggleLinePrefix_CollapsedTogglesCaretLine(t *testing.T) {
	d := docWithSel("one\ntwo", 5, 5)
	got := ToggleLinePrefix(d, UnorderedList)
	if want := "one\n- two"; got.Text != want {
		t.Fatalf("caret line: got %q, want %q", got.Text, want)
	}
}

func TestToggleLinePrefix_CheckboxRecognizesCheckedForRemoval(t *testing.T) {
	text := "- [ ] a\n- [x] b"
	d := docWithSel(text, 0, len(text))

	got := ToggleLinePrefix(d, CheckboxList)
	if want := "a\nb"; got.Text != want {
		t.Fatalf("checkbox removal: got %q, want %q", got.Text, want)
	}
}

func TestToggleLinePrefix_CheckboxReappliesUnchecked(t *testing.T) {
	text := "- [x] a\nb"
	d := docWithSel(text, 0, len(text))

	got := ToggleLinePrefix(d, CheckboxList)
	if want := "- [x] a\n- [ ] b"; got.Text != want {
		t.Fatalf("checkbox apply: got %q, want %q", got.Text, want)
	}
}

func TestToggleLinePrefix_IndentedMarkerCountsAsPresent(t *testing.T) {
	text := "  > a\n> b"
	d := docWithSel(text, 0, len(text))

	got := ToggleLinePrefix(d, Quote)
	if want := "  a\nb"; got.Text != want {
		t.Fatalf("indented removal: got %q, want %q", got.Text, want)
	}
}

func TestToggleLinePrefix_DeepIndentDoesNotCount(t *testing.T) {
	text := "    > a"
	d := docWithSel(text, 0, len(text))

	got := ToggleLinePrefix(d, Quote)
	if want := "> "+"    > a"; got.Text != want {
		t.Fatalf("deep indent: got %q, want %q", got.Text, want)
	}
}

func TestToggleLinePrefix_UncoveredLinesUntouchedAndOffsetsShift(t *testing.T) {
	text := "l0\nl1\nl2\nl3\nl4"
	// Select lines 1..3 (offsets 3..11, "l1\nl2\nl3").
	d := docWithSel(text, 3, 11)

	got := ToggleLinePrefix(d, UnorderedList)
	if want := "l0\n- l1\n- l2\n- l3\nl4"; got.Text != want {
		t.Fatalf("text: got %q, want %q", got.Text, want)
	}

	// Each of the three covered lines gained 2 bytes; both endpoints sit
	// after the insertion on their own line.
	start, end := got.Selection.Normalized()
	if start != 3+2 {
		t.Fatalf("start: got %d, want %d", start, 5)
	}
	if end != 11+6 {
		t.Fatalf("end: got %d, want %d", end, 17)
	}

	// Lines outside the selection are byte-identical.
	lines := document.Lines(got.Text)
	if first := got.Text[lines[0].Start:lines[0].End]; first != "l0" {
		t.Fatalf("line 0 modified: %q", first)
	}
	if lastLine := got.Text[lines[4].Start:lines[4].End]; lastLine != "l4" {
		t.Fatalf("line 4 modified: %q", lastLine)
	}
}

func TestToggleLinePrefix_RemovalSnapsOffsetInsideMarker(t *testing.T) {
	text := "> abc"
	// Caret inside the marker span.
	d := docWithSel(text, 1, 1)

	got := ToggleLinePrefix(d, Quote)
	if want := "abc"; got.Text != want {
		t.Fatalf("text: got %q, want %q", got.Text, want)
	}
	if got.Selection != document.Collapsed(0) {
		t.Fatalf("caret: got %+v, want collapsed at 0", got.Selection)
	}
}

func TestToggleLinePrefix_SelectionEndingAtLineStartSparesThatLine(t *testing.T) {
	text := "a\nb"
	// Selection covers "a\n" only; line 1 holds none of its characters.
	d := docWithSel(text, 0, 2)

	got := ToggleLinePrefix(d, Quote)
	if want := "> a\nb"; got.Text != want {
		t.Fatalf("text: got %q, want %q", got.Text, want)
	}
}
