package editor

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Editor is the input pane: a textarea holding the source text. It stays
// editable in every workbench phase.
type Editor struct {
	ta textarea.Model
}

// Blink is the cursor blink command for the shell's Init.
func Blink() tea.Cmd { return textarea.Blink }

func New() Editor {
	ta := textarea.New()
	ta.Placeholder = "Type some source text, then ctrl+r to run it"
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.Focus()
	return Editor{ta: ta}
}

func (e Editor) Value() string { return e.ta.Value() }

func (e *Editor) SetValue(s string) { e.ta.SetValue(s) }

func (e *Editor) SetSize(width, height int) {
	e.ta.SetWidth(width)
	e.ta.SetHeight(height)
}

func (e Editor) Focused() bool { return e.ta.Focused() }

func (e *Editor) Focus() tea.Cmd { return e.ta.Focus() }

func (e *Editor) Blur() { e.ta.Blur() }

func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	return e, cmd
}

func (e Editor) View() string { return e.ta.View() }
