package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering, including the markdown preview.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Preview styles, applied by the markdown renderer.
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	Strike     lipgloss.Style
	CodeSpan   lipgloss.Style
	Heading    lipgloss.Style
	Quote      lipgloss.Style
	ListMarker lipgloss.Style
	Link       lipgloss.Style

	// Suggestion popup.
	SuggestItem     lipgloss.Style
	SuggestSelected lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true),
		Strike:     lipgloss.NewStyle().Strikethrough(true),
		CodeSpan:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Quote:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		ListMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),

		SuggestItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		SuggestSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("75")),
	}
}
