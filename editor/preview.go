package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Renderer draws one logical line of markdown as terminal text. The editor
// treats it as an opaque collaborator: markdown in, visual string out.
type Renderer interface {
	RenderLine(line string) string
}

// MarkdownRenderer renders lines through goldmark with the GFM extensions
// (strikethrough, task lists) and maps inline constructs to lipgloss styles.
type MarkdownRenderer struct {
	md    goldmark.Markdown
	style Style
}

func NewMarkdownRenderer(style Style) *MarkdownRenderer {
	return &MarkdownRenderer{
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		style: style,
	}
}

// RenderLine parses a single line and walks the resulting AST. Parse or walk
// failures degrade to the raw line; malformed markdown is the renderer's
// problem, never an editor error.
func (r *MarkdownRenderer) RenderLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	source := []byte(line)
	root := r.md.Parser().Parse(gtext.NewReader(source))
	w := &lineWalker{source: source, style: r.style}
	if err := ast.Walk(root, w.visit); err != nil {
		return line
	}
	return w.sb.String()
}

// lineWalker accumulates styled text while walking a one-line AST, keeping
// a flag per active inline construct.
type lineWalker struct {
	source []byte
	style  Style
	sb     strings.Builder

	bold, italic, strike, code, link, heading, quote bool
}

func (w *lineWalker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		w.heading = entering

	case *ast.Blockquote:
		w.quote = entering
		if entering {
			w.sb.WriteString(w.style.Quote.Render("│ "))
		}

	case *ast.ListItem:
		if entering {
			w.writeListMarker(node)
		}

	case *east.TaskCheckBox:
		if entering {
			// The task parser consumes the space after "[x]", so the box
			// supplies its own separator.
			box := "☐ "
			if node.IsChecked {
				box = "☑ "
			}
			w.sb.WriteString(w.style.ListMarker.Render(box))
		}

	case *ast.Emphasis:
		if node.Level == 2 {
			w.bold = entering
		} else {
			w.italic = entering
		}

	case *east.Strikethrough:
		w.strike = entering

	case *ast.CodeSpan:
		w.code = entering

	case *ast.Link:
		w.link = entering

	case *ast.Image:
		w.link = entering

	case *ast.AutoLink:
		if entering {
			w.sb.WriteString(w.style.Link.Render(string(node.URL(w.source))))
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.sb.WriteString(w.style.Gutter.Render("───"))
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		// A lone fence or raw block line previews as-is in code styling.
		if entering {
			w.sb.WriteString(w.style.CodeSpan.Render(string(w.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Text:
		if entering {
			seg := node.Segment
			w.writeText(string(w.source[seg.Start:seg.Stop]))
		}

	case *ast.String:
		if entering {
			w.writeText(string(node.Value))
		}
	}
	return ast.WalkContinue, nil
}

func (w *lineWalker) writeListMarker(item *ast.ListItem) {
	if hasTaskBox(item) {
		return
	}
	list, ok := item.Parent().(*ast.List)
	if ok && list.IsOrdered() {
		n := list.Start
		for sib := list.FirstChild(); sib != nil && sib != item; sib = sib.NextSibling() {
			n++
		}
		w.sb.WriteString(w.style.ListMarker.Render(fmt.Sprintf("%d. ", n)))
		return
	}
	w.sb.WriteString(w.style.ListMarker.Render("• "))
}

func hasTaskBox(item *ast.ListItem) bool {
	block := item.FirstChild()
	if block == nil {
		return false
	}
	_, ok := block.FirstChild().(*east.TaskCheckBox)
	return ok
}

func (w *lineWalker) writeText(s string) {
	var st lipgloss.Style
	switch {
	case w.code:
		st = w.style.CodeSpan
	case w.heading:
		st = w.style.Heading
	case w.link:
		st = w.style.Link
	case w.bold && w.italic:
		st = w.style.Bold.Italic(true)
	case w.bold:
		st = w.style.Bold
	case w.italic:
		st = w.style.Italic
	case w.strike:
		st = w.style.Strike
	case w.quote:
		st = w.style.Quote
	default:
		st = w.style.Text
	}
	w.sb.WriteString(st.Render(s))
}
