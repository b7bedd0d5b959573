// Package editor provides a Bubble Tea markdown editing component backed by
// the document, syntax, and emoji packages.
//
// The package owns the single live Document and runs every input event
// through a fixed pipeline: emoji substitution, commit, line recomputation,
// and the per-line raw-vs-preview render decision. The line under the caret
// shows raw markup while the editor is focused; every other line goes
// through the markdown preview renderer.
package editor
