package statusbar

import (
	"strings"
	"testing"

	"evalbench/internal/tui/state"
)

func TestViewReflectsPhaseAndReadiness(t *testing.T) {
	bar := NewStatusBar()
	w := state.Workbench{Phase: state.Evaluated, Input: "x", LastRun: "x"}
	out := bar.View(w, "ready", "system (dark)", true)

	for _, want := range []string{"[DONE]", "eval: ready", "theme: system (dark)", "[Len 1]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in status line: %s", want, out)
		}
	}
}

func TestViewShowsPaneOnlyWhenNarrow(t *testing.T) {
	bar := NewStatusBar()
	narrow := state.Workbench{Width: 60, View: state.ViewOutput}
	if out := bar.View(narrow, "loading", "light", true); !strings.Contains(out, "pane: output") {
		t.Fatalf("expected pane indicator when narrow: %s", out)
	}
	wide := state.Workbench{Width: 140}
	if out := bar.View(wide, "loading", "light", true); strings.Contains(out, "pane:") {
		t.Fatalf("did not expect pane indicator when wide: %s", out)
	}
}

func TestViewIncludesRevisionChips(t *testing.T) {
	bar := NewStatusBar()
	w := state.Workbench{Input: "abcdef", LastRun: "abc"}
	out := bar.View(w, "ready", "light", true)
	if !strings.Contains(out, "[Modified]") || !strings.Contains(out, "[+3]") {
		t.Fatalf("expected revision chips in status line: %s", out)
	}
}

func TestViewAppendsNotice(t *testing.T) {
	bar := NewStatusBar()
	w := state.Workbench{Notice: "result copied"}
	if out := bar.View(w, "ready", "light", true); !strings.Contains(out, "result copied") {
		t.Fatalf("expected notice in status line: %s", out)
	}
}
