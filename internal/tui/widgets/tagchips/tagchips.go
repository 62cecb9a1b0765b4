package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"evalbench/internal/tui/state"
)

// View renders input-revision tags in a stable order using colored chips
// when possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.MODIFIED:
		return "Modified"
	case state.ADDED:
		return fmt.Sprintf("+%d", t.Value)
	case state.REMOVED:
		return fmt.Sprintf("-%d", t.Value)
	case state.LEN:
		return fmt.Sprintf("Len %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch t.Kind {
	case state.MODIFIED:
		return base.Background(lipgloss.Color("#3D6DFF")).Foreground(lipgloss.Color("#FFFFFF"))
	case state.ADDED:
		return base.Background(lipgloss.Color("#2AA876")).Foreground(lipgloss.Color("#FFFFFF"))
	case state.REMOVED:
		return base.Background(lipgloss.Color("#D9534F")).Foreground(lipgloss.Color("#FFFFFF"))
	case state.LEN:
		return base.Background(lipgloss.Color("#6C757D")).Foreground(lipgloss.Color("#FFFFFF"))
	default:
		return base
	}
}
