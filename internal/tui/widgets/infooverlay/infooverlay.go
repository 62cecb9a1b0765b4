package infooverlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"evalbench/internal/tui/theme"
)

// Region is the content rectangle of the rendered overlay in screen cells.
// The shell hit-tests clicks against it: a press outside the region (the
// dimmed backdrop) dismisses the overlay, a press inside it never does.
// That containment predicate is the single closing rule; nothing relies on
// event-propagation order.
type Region struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the content region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Overlay is the dismissible product-info dialog. Visibility is owned by
// the shell and is not persisted.
type Overlay struct {
	Title string
	Body  []string
}

func New(version string) Overlay {
	return Overlay{
		Title: "evalbench " + version,
		Body: []string{
			"An interactive evaluation workbench for the terminal.",
			"Type source text on the left, run it, read the result",
			"on the right. The evaluator is a pluggable binding;",
			"the bundled one speaks Risor.",
			"",
			"ctrl+r run    tab switch pane    ctrl+t theme",
			"ctrl+y copy result    esc close this dialog",
		},
	}
}

// Render draws the dialog centered over a width x height area and returns
// the full-screen view plus the content region for click hit-testing.
func (o Overlay) Render(width, height int, pal theme.Palette) (string, Region) {
	lines := append([]string{pal.Title.Render(o.Title), ""}, o.Body...)
	box := pal.Overlay.Render(strings.Join(lines, "\n"))

	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	region := Region{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
	if region.X < 0 {
		region.X = 0
	}
	if region.Y < 0 {
		region.Y = 0
	}

	view := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.AdaptiveColor{Light: "250", Dark: "236"}),
	)
	return view, region
}
