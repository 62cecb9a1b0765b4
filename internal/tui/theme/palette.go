package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the styles used across widgets for one resolved theme.
type Palette struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Faint     lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	PaneTitle lipgloss.Style

	// Pane borders; the focused pane gets the accent color.
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style

	// Narrow-layout two-way toggle control.
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Info overlay box and the dimmed area behind it.
	Overlay  lipgloss.Style
	Backdrop lipgloss.Style
}

// LightPalette is the light-background style set.
func LightPalette() Palette {
	return newPalette(
		lipgloss.Color("#1F2328"), // fg
		lipgloss.Color("#57606A"), // muted
		lipgloss.Color("#0550AE"), // accent
		lipgloss.Color("#CF222E"), // danger
		lipgloss.Color("#D0D7DE"), // border
	)
}

// DarkPalette is the dark-background style set.
func DarkPalette() Palette {
	return newPalette(
		lipgloss.Color("#E6EDF3"),
		lipgloss.Color("#8B949E"),
		lipgloss.Color("#79C0FF"),
		lipgloss.Color("#FF7B72"),
		lipgloss.Color("#3E3E42"),
	)
}

func newPalette(fg, muted, accent, danger, border lipgloss.Color) Palette {
	return Palette{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(fg),
		Header:    lipgloss.NewStyle().Foreground(fg),
		Faint:     lipgloss.NewStyle().Foreground(muted),
		Accent:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(danger),
		PaneTitle: lipgloss.NewStyle().Bold(true).Foreground(accent),

		Pane:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		PaneFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),

		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
		TabInactive: lipgloss.NewStyle().Foreground(muted),

		Overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		Backdrop: lipgloss.NewStyle().Foreground(muted).Faint(true),
	}
}
