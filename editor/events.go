package editor

import "github.com/markpad/markpad/document"

// ChangeEvent describes one committed pipeline pass. Exactly one event is
// produced per external input event; handlers must not mutate the editor
// re-entrantly.
type ChangeEvent struct {
	Version   uint64
	Text      string
	Selection document.Selection

	// CursorLine is the line index holding the caret after the edit,
	// computed on post-substitution text.
	CursorLine int
}

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// MemoryClipboard is an in-process Clipboard, useful for tests and demos.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}
