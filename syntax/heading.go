package syntax

import (
	"strings"

	"github.com/markpad/markpad/document"
)

// ToggleHeading sets, switches, or removes the ATX heading level of the line
// containing the selection start.
//
// A line already at the requested level loses its heading. A line at any
// other level (including none) is rewritten to exactly level '#' characters
// plus one space: switching levels is a single replace, never a cycle.
// level clamps to [1, maxLevel]; a non-positive maxLevel falls back to
// DefaultMaxHeadingLevel.
func ToggleHeading(d document.Document, level, maxLevel int) document.Document {
	d = d.Clamp()
	if maxLevel <= 0 {
		maxLevel = DefaultMaxHeadingLevel
	}
	if level < 1 {
		level = 1
	}
	if level > maxLevel {
		level = maxLevel
	}

	start, _ := d.Selection.Normalized()
	spans := document.Lines(d.Text)
	span := spans[document.LineOf(d.Text, start)]
	line := d.Text[span.Start:span.End]

	run := 0
	for run < len(line) && line[run] == '#' {
		run++
	}
	hasSpace := run > 0 && run < len(line) && line[run] == ' '

	old := run
	if hasSpace {
		old++
	}

	var edits []splice
	if run == level && hasSpace {
		edits = []splice{{pos: span.Start, oldLen: old}}
	} else {
		edits = []splice{{pos: span.Start, oldLen: old, text: strings.Repeat("#", level) + " "}}
	}
	return applySplices(d, edits)
}
