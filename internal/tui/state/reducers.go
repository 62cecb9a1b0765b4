package state

// Edit replaces the input text. Editing is permitted in every phase and
// never touches the result.
func Edit(w Workbench, text string) Workbench {
	w.Input = text
	return w
}

// Begin marks an evaluation in flight and snapshots the input being
// submitted. Callers must only invoke this once the evaluator binding is
// ready.
func Begin(w Workbench) Workbench {
	w.Phase = Evaluating
	w.LastRun = w.Input
	w.Notice = ""
	return w
}

// Complete stores the evaluator's output verbatim. In a narrow layout the
// output pane is brought forward so the result is visible without a
// further toggle.
func Complete(w Workbench, output string) Workbench {
	w.Phase = Evaluated
	w.Result = output
	if w.Narrow() {
		w.View = ViewOutput
	}
	return w
}

// Fail records an evaluation failure. The result becomes the fixed marker;
// whatever the evaluator reported is deliberately not carried into state.
func Fail(w Workbench) Workbench {
	w.Phase = Failed
	w.Result = FailureMarker
	if w.Narrow() {
		w.View = ViewOutput
	}
	return w
}

// Resize records the terminal width. Crossing into the wide layout keeps
// the view mode as-is since it becomes irrelevant there.
func Resize(w Workbench, width int) Workbench {
	w.Width = width
	return w
}

// ToggleView flips between the editor and output panes. Only meaningful
// while narrow; the shell ignores the mode when both panes are shown.
func ToggleView(w Workbench) Workbench {
	if w.View == ViewEditor {
		w.View = ViewOutput
	} else {
		w.View = ViewEditor
	}
	return w
}

// SetView selects a specific pane, for the rendered toggle control.
func SetView(w Workbench, v ViewMode) Workbench {
	w.View = v
	return w
}
