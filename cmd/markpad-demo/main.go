package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/markpad/markpad/editor"
)

const intro = `# markpad

Move the cursor around: the caret line shows **raw** markup, every other
line renders as a preview.

- Toggle with ctrl+b / ctrl+i / ctrl+t
- Quote with ctrl+q, lists with ctrl+l, checkboxes with ctrl+u
- Type :smi to try emoji suggestions, or finish a :rocket: yourself

> Ctrl+C quits (with nothing selected, otherwise it copies).`

type model struct {
	editor editor.Model
}

func newModel() model {
	cfg := editor.DefaultConfig()
	cfg.Text = intro
	cfg.ShowLineNums = true
	cfg.Clipboard = &editor.MemoryClipboard{}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ctrl+C copies while a selection exists; it only quits on a bare cursor.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" &&
		m.editor.Document().Selection.IsCollapsed() {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
