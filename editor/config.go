package editor

import (
	"github.com/rs/zerolog"

	"github.com/markpad/markpad/syntax"
)

// Config configures the editor Model.
type Config struct {
	// Initial markdown content for the document.
	Text string

	// EmojiConvert enables shortcode-to-glyph substitution while typing.
	// Substitution runs before the edit is committed, so line and caret
	// decisions always see post-substitution text.
	EmojiConvert bool

	// EmojiSuggest shows a completion popup while typing a shortcode.
	EmojiSuggest bool

	// AutoCloseSuggest closes the suggestion popup after an accept.
	AutoCloseSuggest bool

	// MaxHeadingLevel bounds heading commands. Zero means
	// syntax.DefaultMaxHeadingLevel.
	MaxHeadingLevel int

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// Renderer draws non-focused lines. Nil selects the goldmark-backed
	// MarkdownRenderer.
	Renderer Renderer

	// Host integration.
	KeyMap    KeyMap
	Clipboard Clipboard
	OnChange  func(ChangeEvent)

	// Undo depth. Zero means 1000.
	HistoryLimit int

	// Logger receives debug events (command dispatch, substitutions,
	// focus transitions). Nil logs nowhere.
	Logger *zerolog.Logger
}

// DefaultConfig returns a Config with emoji conversion and suggestions on.
func DefaultConfig() Config {
	return Config{
		EmojiConvert:     true,
		EmojiSuggest:     true,
		AutoCloseSuggest: true,
		MaxHeadingLevel:  syntax.DefaultMaxHeadingLevel,
		ShowLineNums:     false,
		Style:            DefaultStyle(),
		KeyMap:           DefaultKeyMap(),
	}
}

func (c Config) normalized() Config {
	if c.MaxHeadingLevel <= 0 {
		c.MaxHeadingLevel = syntax.DefaultMaxHeadingLevel
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Renderer == nil {
		c.Renderer = NewMarkdownRenderer(c.Style)
	}
	return c
}
