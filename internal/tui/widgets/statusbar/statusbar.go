package statusbar

import (
	"strings"

	"evalbench/internal/tui/state"
	"evalbench/internal/tui/util"
	chips "evalbench/internal/tui/widgets/tagchips"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key workbench state.
// The readiness and theme labels come from the shell so this widget stays
// free of evaluator/theme imports.
func (StatusBar) View(w state.Workbench, readiness, themeLabel string, noColor bool) string {
	parts := []string{phaseLabel(w.Phase), "eval: " + readiness, "theme: " + themeLabel}

	if w.Narrow() {
		pane := "editor"
		if w.View == state.ViewOutput {
			pane = "output"
		}
		parts = append(parts, "pane: "+pane)
	}

	if tags := chips.View(util.ComputeTags(w.LastRun, w.Input), noColor); tags != "" {
		parts = append(parts, tags)
	}

	if w.Notice != "" {
		parts = append(parts, w.Notice)
	}
	return strings.Join(parts, "  ")
}

func phaseLabel(p state.Phase) string {
	switch p {
	case state.Evaluating:
		return "[RUNNING]"
	case state.Evaluated:
		return "[DONE]"
	case state.Failed:
		return "[FAILED]"
	default:
		return "[IDLE]"
	}
}
