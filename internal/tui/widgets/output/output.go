package output

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Output is the result pane: read-only text in a scrollable viewport.
// Content changes only when an evaluation completes.
type Output struct {
	vp viewport.Model
}

func New() Output {
	return Output{vp: viewport.New(0, 0)}
}

func (o *Output) SetSize(width, height int) {
	o.vp.Width = width
	o.vp.Height = height
}

func (o *Output) SetContent(text string) {
	o.vp.SetContent(text)
	o.vp.GotoTop()
}

// Update forwards scroll keys only; there is nothing to edit here.
func (o Output) Update(msg tea.Msg) (Output, tea.Cmd) {
	var cmd tea.Cmd
	o.vp, cmd = o.vp.Update(msg)
	return o, cmd
}

func (o Output) View() string { return o.vp.View() }
