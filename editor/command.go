package editor

import (
	"github.com/markpad/markpad/document"
	"github.com/markpad/markpad/syntax"
)

// Command identifies one toolbar operation.
type Command int

const (
	CmdBold Command = iota
	CmdItalic
	CmdStrikethrough
	CmdCode
	CmdQuote
	CmdUnorderedList
	CmdCheckboxList
	CmdLink
	CmdHeading1
	CmdHeading2
	CmdHeading3
)

func (c Command) String() string {
	switch c {
	case CmdBold:
		return "bold"
	case CmdItalic:
		return "italic"
	case CmdStrikethrough:
		return "strikethrough"
	case CmdCode:
		return "code"
	case CmdQuote:
		return "quote"
	case CmdUnorderedList:
		return "unordered-list"
	case CmdCheckboxList:
		return "checkbox-list"
	case CmdLink:
		return "link"
	case CmdHeading1:
		return "heading-1"
	case CmdHeading2:
		return "heading-2"
	case CmdHeading3:
		return "heading-3"
	}
	return "unknown"
}

// applyCommand dispatches a toolbar command to the syntax togglers.
// Unknown commands return the document unchanged.
func applyCommand(d document.Document, c Command, maxHeadingLevel int) document.Document {
	switch c {
	case CmdBold:
		return syntax.ToggleWrap(d, syntax.Bold)
	case CmdItalic:
		return syntax.ToggleWrap(d, syntax.Italic)
	case CmdStrikethrough:
		return syntax.ToggleWrap(d, syntax.Strikethrough)
	case CmdCode:
		return syntax.ToggleWrap(d, syntax.Code)
	case CmdQuote:
		return syntax.ToggleLinePrefix(d, syntax.Quote)
	case CmdUnorderedList:
		return syntax.ToggleLinePrefix(d, syntax.UnorderedList)
	case CmdCheckboxList:
		return syntax.ToggleLinePrefix(d, syntax.CheckboxList)
	case CmdLink:
		return syntax.InsertLink(d)
	case CmdHeading1:
		return syntax.ToggleHeading(d, 1, maxHeadingLevel)
	case CmdHeading2:
		return syntax.ToggleHeading(d, 2, maxHeadingLevel)
	case CmdHeading3:
		return syntax.ToggleHeading(d, 3, maxHeadingLevel)
	}
	return d
}
