package harness

import "github.com/roach88/arraykit/internal/trace"

// Result is the outcome of one scenario run.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// RunID is the run ID stamped on the trace.
	RunID string `json:"run_id"`

	// Trace holds one event per step, in order.
	Trace []trace.Event `json:"trace"`

	// Errors lists every failed check. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Final is the array content after the last step.
	Final []int `json:"final"`

	// Capacity is the array capacity after the last step.
	Capacity int `json:"capacity"`
}

// NewResult creates a passing result.
func NewResult(runID string) *Result {
	return &Result{
		Pass:   true,
		RunID:  runID,
		Trace:  []trace.Event{},
		Errors: []string{},
	}
}

// AddError records a failed check and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// Snapshot returns the trace as a named snapshot.
func (r *Result) Snapshot(name string) trace.Snapshot {
	return trace.Snapshot{
		Name:   name,
		RunID:  r.RunID,
		Events: r.Trace,
	}
}
