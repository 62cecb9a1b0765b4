package state

// Phase is the workbench's evaluation lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Evaluating
	Evaluated
	Failed
)

// ViewMode selects which pane is visible in a narrow layout. In a wide
// layout both panes are shown and the mode is ignored.
type ViewMode int

const (
	ViewEditor ViewMode = iota
	ViewOutput
)

// FailureMarker is the fixed text stored when an evaluation fails. The
// underlying error detail is discarded and never shown.
const FailureMarker = "Whoops! We ran into some funny business here!"

// MinPaneWidth is the narrowest column either pane may occupy side by side.
const MinPaneWidth = 44

// Workbench holds the input/result state machine plus the layout flags the
// shell needs to render it. Values are copied through reducers; nothing
// here is shared across goroutines.
type Workbench struct {
	// Evaluation
	Phase  Phase
	Input  string
	Result string

	// Snapshot of Input at the moment the last evaluation began, used for
	// revision tags after the fact.
	LastRun string

	// Layout
	View  ViewMode
	Width int

	// Ephemeral status line message
	Notice string
}

// Narrow reports whether the current width forces a single-pane layout.
// Threshold mirrors the side-by-side rule: two minimum-width columns plus
// a separator/gutter allowance.
func (w Workbench) Narrow() bool {
	return w.Width > 0 && w.Width < 2*MinPaneWidth+3
}
