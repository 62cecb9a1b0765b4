// Package tui is the workbench shell: a full-screen bubbletea program
// composing the editor and output panes, the status bar, the theme store,
// and the info overlay. Layout switches between two panes side by side and
// a single toggle-switchable pane depending on terminal width.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"evalbench/internal/evaluator"
	"evalbench/internal/tui/state"
	"evalbench/internal/tui/theme"
	"evalbench/internal/tui/widgets/editor"
	"evalbench/internal/tui/widgets/infooverlay"
	"evalbench/internal/tui/widgets/output"
	"evalbench/internal/tui/widgets/statusbar"
)

const (
	headerTitle = "Evalbench"
	infoHint    = "ctrl+g info"
	themeHint   = "ctrl+t theme"
	runHint     = "ctrl+r run"

	// How often the OS appearance signal is re-sampled while the theme
	// preference is "system".
	themePollEvery = 2 * time.Second
)

type bindingResolvedMsg struct {
	cap evaluator.Capability
}

type themeTickMsg struct{}

// Resolver produces the evaluation capability; injectable so tests can
// supply stub bindings.
type Resolver func(ctx context.Context) evaluator.Capability

// Options configures the shell model.
type Options struct {
	Theme    *theme.Store
	Resolver Resolver
	NoColor  bool
	Version  string
}

// Model is the layout shell.
type Model struct {
	wb     state.Workbench
	cap    evaluator.Capability
	themes *theme.Store

	ed   editor.Editor
	out  output.Output
	bar  statusbar.StatusBar
	info infooverlay.Overlay

	showInfo bool
	height   int

	resolver Resolver
	noColor  bool
}

// NewModel builds the shell. The evaluator capability starts Unready and
// resolves via Init's command.
func NewModel(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = theme.NewStore(nil, nil)
	}
	if opts.Resolver == nil {
		opts.Resolver = evaluator.Resolve
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return Model{
		themes:   opts.Theme,
		ed:       editor.New(),
		out:      output.New(),
		bar:      statusbar.NewStatusBar(),
		info:     infooverlay.New(opts.Version),
		resolver: opts.Resolver,
		noColor:  theme.NoColor(opts.NoColor),
	}
}

// Run starts the workbench program.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.resolveBinding(), themeTick(), editor.Blink())
}

// resolveBinding loads the evaluation capability off the render path. It
// runs exactly once; the result is either Ready or Unavailable.
func (m Model) resolveBinding() tea.Cmd {
	resolve := m.resolver
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return bindingResolvedMsg{cap: resolve(ctx)}
	}
}

func themeTick() tea.Cmd {
	return tea.Tick(themePollEvery, func(time.Time) tea.Msg { return themeTickMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.wb = state.Resize(m.wb, msg.Width)
		m.height = msg.Height
		m = m.layout()
		return m, nil

	case bindingResolvedMsg:
		m.cap = msg.cap
		switch m.cap.Readiness() {
		case evaluator.Ready:
			m.wb.Notice = "evaluator ready"
		case evaluator.Unavailable:
			m.wb.Notice = "evaluator unavailable"
		}
		return m, nil

	case themeTickMsg:
		if m.themes.Preference() == theme.System {
			m.themes.RefreshSignal()
		}
		return m, themeTick()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.showInfo {
		// Backdrop dismisses; a click inside the content region never does.
		_, region := m.info.Render(m.wb.Width, m.height, m.themes.Palette())
		if !region.Contains(msg.X, msg.Y) {
			m.showInfo = false
		}
		return m, nil
	}

	// Header row: the info trigger sits at the right edge.
	if msg.Y == 0 && msg.X >= m.wb.Width-len(infoHint) {
		m.showInfo = true
		return m, nil
	}

	// Narrow layout: the pane toggle is the row under the header.
	if m.wb.Narrow() && msg.Y == 1 {
		if msg.X < m.wb.Width/2 {
			m.wb = state.SetView(m.wb, state.ViewEditor)
		} else {
			m.wb = state.SetView(m.wb, state.ViewOutput)
		}
		m = m.syncFocus()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	if m.showInfo {
		switch k {
		case "esc", "ctrl+g", "q":
			m.showInfo = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch k {
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit

	case "ctrl+r":
		return m.submit()

	case "ctrl+t":
		m.themes.SetPreference(m.themes.Preference().Next())
		m.wb.Notice = "theme: " + m.themes.Preference().String()
		return m, nil

	case "ctrl+g":
		m.showInfo = true
		return m, nil

	case "ctrl+y":
		if err := clipboard.WriteAll(m.wb.Result); err != nil {
			m.wb.Notice = "copy failed"
		} else {
			m.wb.Notice = "result copied"
		}
		return m, nil

	case "alt+y":
		if err := clipboard.WriteAll(m.wb.Input); err != nil {
			m.wb.Notice = "copy failed"
		} else {
			m.wb.Notice = "input copied"
		}
		return m, nil

	case "tab":
		// Two-way pane toggle, narrow layout only; wide shows both panes
		// so the key falls through to the editor.
		if m.wb.Narrow() {
			m.wb = state.ToggleView(m.wb)
			m = m.syncFocus()
			return m, nil
		}
	}

	return m.forwardKey(msg)
}

// forwardKey routes remaining keys to whichever pane owns input: the
// editor whenever it is visible, otherwise the output viewport (scrolling).
func (m Model) forwardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.wb.Narrow() && m.wb.View == state.ViewOutput {
		var cmd tea.Cmd
		m.out, cmd = m.out.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.ed, cmd = m.ed.Update(msg)
	m.wb = state.Edit(m.wb, m.ed.Value())
	return m, cmd
}

// submit runs the evaluation synchronously: by the time the handler
// returns, the workbench is in Evaluated or Failed. While the binding is
// not ready the submission is refused with no phase transition.
func (m Model) submit() (tea.Model, tea.Cmd) {
	switch m.cap.Readiness() {
	case evaluator.Unready:
		m.wb.Notice = "evaluator is still loading"
		return m, nil
	case evaluator.Unavailable:
		m.wb.Notice = "evaluator unavailable"
		return m, nil
	}

	m.wb = state.Edit(m.wb, m.ed.Value())
	m.wb = state.Begin(m.wb)
	out, err := m.cap.Evaluate(context.Background(), m.wb.Input)
	if err != nil {
		m.wb = state.Fail(m.wb)
	} else {
		m.wb = state.Complete(m.wb, out)
	}
	m.out.SetContent(m.wb.Result)
	m = m.syncFocus()
	return m, nil
}

// syncFocus keeps editor focus consistent with pane visibility: blurred
// only when the narrow layout hides it.
func (m Model) syncFocus() Model {
	if m.wb.Narrow() && m.wb.View == state.ViewOutput {
		m.ed.Blur()
		return m
	}
	if !m.ed.Focused() {
		m.ed.Focus()
	}
	return m
}

// layout recomputes pane sizes for the current terminal dimensions.
// Pane chrome is 2 cells of border plus 2 of padding per pane.
func (m Model) layout() Model {
	const chrome = 4
	paneH := m.height - m.chromeRows() - 2
	if paneH < 3 {
		paneH = 3
	}
	if m.wb.Narrow() {
		w := m.wb.Width - chrome
		if w < 10 {
			w = 10
		}
		m.ed.SetSize(w, paneH)
		m.out.SetSize(w, paneH)
	} else {
		w := (m.wb.Width-2*chrome)/2 - 1
		if w < state.MinPaneWidth-chrome {
			w = state.MinPaneWidth - chrome
		}
		m.ed.SetSize(w, paneH)
		m.out.SetSize(w, paneH)
	}
	m = m.syncFocus()
	return m
}

// chromeRows counts the non-pane rows: header, optional toggle, status bar.
func (m Model) chromeRows() int {
	if m.wb.Narrow() {
		return 3
	}
	return 2
}

func (m Model) View() string {
	if m.wb.Width == 0 {
		return "starting…\n"
	}
	pal := m.themes.Palette()

	if m.showInfo {
		view, _ := m.info.Render(m.wb.Width, m.height, pal)
		return view
	}

	var b strings.Builder
	b.WriteString(m.headerView(pal) + "\n")

	if m.wb.Narrow() {
		b.WriteString(m.toggleView(pal) + "\n")
		if m.wb.View == state.ViewOutput {
			b.WriteString(m.paneView(pal, "output", m.out.View(), false) + "\n")
		} else {
			b.WriteString(m.paneView(pal, "editor", m.ed.View(), true) + "\n")
		}
	} else {
		left := m.paneView(pal, "editor", m.ed.View(), true)
		right := m.paneView(pal, "output", m.out.View(), false)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right) + "\n")
	}

	b.WriteString(m.statusView(pal))
	return b.String()
}

func (m Model) headerView(pal theme.Palette) string {
	left := pal.Title.Render(headerTitle)
	hints := strings.Join([]string{runHint, themeHint, infoHint}, "  ")
	right := pal.Faint.Render(hints)
	gap := m.wb.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) toggleView(pal theme.Palette) string {
	ed := "  editor  "
	out := "  output  "
	if m.wb.View == state.ViewOutput {
		ed = pal.TabInactive.Render(ed)
		out = pal.TabActive.Render(out)
	} else {
		ed = pal.TabActive.Render(ed)
		out = pal.TabInactive.Render(out)
	}
	return ed + "│" + out + pal.Faint.Render("  (tab to switch)")
}

func (m Model) paneView(pal theme.Palette, title, body string, focused bool) string {
	style := pal.Pane
	if focused && m.ed.Focused() {
		style = pal.PaneFocused
	}
	return style.Render(pal.PaneTitle.Render(title) + "\n" + body)
}

func (m Model) statusView(pal theme.Palette) string {
	label := m.themes.Preference().String()
	if m.themes.Preference() == theme.System {
		label += " (" + m.themes.Resolved().String() + ")"
	}
	line := m.bar.View(m.wb, m.cap.Readiness().String(), label, m.noColor)
	return pal.Faint.Render(line)
}

// Workbench exposes the reduced state for tests.
func (m Model) Workbench() state.Workbench { return m.wb }

// InfoVisible exposes overlay visibility for tests.
func (m Model) InfoVisible() bool { return m.showInfo }
