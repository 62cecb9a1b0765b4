package state

import "testing"

func TestEditNeverTouchesResult(t *testing.T) {
	w := Workbench{Result: "3", Phase: Evaluated}
	w = Edit(w, "1 + 2 + 3")
	if w.Input != "1 + 2 + 3" {
		t.Fatalf("expected input to update")
	}
	if w.Result != "3" || w.Phase != Evaluated {
		t.Fatalf("edit must not change result or phase")
	}
}

func TestBeginSnapshotsInput(t *testing.T) {
	w := Workbench{Input: "1 + 2"}
	w = Begin(w)
	if w.Phase != Evaluating {
		t.Fatalf("expected Evaluating phase")
	}
	if w.LastRun != "1 + 2" {
		t.Fatalf("expected LastRun snapshot, got %q", w.LastRun)
	}
}

func TestCompleteStoresOutputVerbatim(t *testing.T) {
	w := Begin(Workbench{Input: "1 + 2"})
	w = Complete(w, "  3\n")
	if w.Phase != Evaluated {
		t.Fatalf("expected Evaluated phase")
	}
	if w.Result != "  3\n" {
		t.Fatalf("result must be stored verbatim, got %q", w.Result)
	}
}

func TestFailStoresFixedMarker(t *testing.T) {
	w := Begin(Workbench{Input: "(("})
	w = Fail(w)
	if w.Phase != Failed {
		t.Fatalf("expected Failed phase")
	}
	if w.Result != FailureMarker {
		t.Fatalf("expected fixed marker, got %q", w.Result)
	}
}

func TestNarrowCompletionForcesOutputView(t *testing.T) {
	w := Workbench{Input: "x", View: ViewEditor}
	w = Resize(w, 60) // below 2*MinPaneWidth+3
	if !w.Narrow() {
		t.Fatalf("expected narrow layout at width 60")
	}
	w = Complete(Begin(w), "done")
	if w.View != ViewOutput {
		t.Fatalf("narrow completion must force output view")
	}
	w = Fail(Begin(SetView(w, ViewEditor)))
	if w.View != ViewOutput {
		t.Fatalf("narrow failure must force output view")
	}
}

func TestWideCompletionLeavesViewAlone(t *testing.T) {
	w := Resize(Workbench{View: ViewEditor}, 120)
	if w.Narrow() {
		t.Fatalf("expected wide layout at width 120")
	}
	w = Complete(Begin(w), "done")
	if w.View != ViewEditor {
		t.Fatalf("wide completion must not change view mode")
	}
}

func TestToggleViewRemainsUserControlled(t *testing.T) {
	w := Complete(Begin(Resize(Workbench{}, 60)), "out")
	if w.View != ViewOutput {
		t.Fatalf("expected output view after completion")
	}
	w = ToggleView(w)
	if w.View != ViewEditor {
		t.Fatalf("toggle back to editor must work after completion")
	}
}

func TestIdempotentResubmission(t *testing.T) {
	w := Workbench{Input: "1 + 2"}
	w = Complete(Begin(w), "3")
	first := w.Result
	w = Complete(Begin(w), "3")
	if w.Result != first {
		t.Fatalf("resubmitting unchanged input must yield the same result")
	}
}
