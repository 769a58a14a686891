package trace

import (
	"fmt"
	"slices"
)

// Event is one recorded operation.
type Event struct {
	// Seq is the logical timestamp, strictly increasing within a trace.
	Seq int64 `json:"seq"`

	// Op names the operation, e.g. "add", "insert", "sort".
	Op string `json:"op"`

	// Args are the integer arguments in call order (index before value).
	Args []int `json:"args,omitempty"`

	// Result is the returned value, if the operation returns one.
	Result *int `json:"result,omitempty"`

	// Values is the observable sequence after the operation.
	Values []int `json:"values"`

	// Error is the rejection message, empty on success.
	Error string `json:"error,omitempty"`
}

// canonicalMap converts e for MarshalCanonical, omitting empty optionals.
func (e Event) canonicalMap() map[string]any {
	m := map[string]any{
		"seq":    e.Seq,
		"op":     e.Op,
		"values": nonNil(e.Values),
	}
	if len(e.Args) > 0 {
		m["args"] = e.Args
	}
	if e.Result != nil {
		m["result"] = *e.Result
	}
	if e.Error != "" {
		m["error"] = e.Error
	}
	return m
}

// String renders the event on one line for human output.
func (e Event) String() string {
	s := fmt.Sprintf("#%d %s", e.Seq, e.Op)
	if len(e.Args) > 0 {
		s += fmt.Sprintf(" %v", e.Args)
	}
	if e.Result != nil {
		s += fmt.Sprintf(" -> %d", *e.Result)
	}
	if e.Error != "" {
		return s + " ! " + e.Error
	}
	return s + fmt.Sprintf(" => %v", nonNil(e.Values))
}

// Digest returns the content digest of a single event.
func (e Event) Digest() (string, error) {
	data, err := MarshalCanonical(e.canonicalMap())
	if err != nil {
		return "", fmt.Errorf("event digest: %w", err)
	}
	return Digest(DomainEvent, data), nil
}

// Recorder accumulates events in order.
type Recorder struct {
	clock  Sequencer
	events []Event
}

// NewRecorder creates a recorder stamping events from clock.
// A nil clock gets a fresh Clock.
func NewRecorder(clock Sequencer) *Recorder {
	if clock == nil {
		clock = NewClock()
	}
	return &Recorder{clock: clock}
}

// Record appends an event. values is copied; err may be nil.
func (r *Recorder) Record(op string, args []int, result *int, values []int, err error) Event {
	e := Event{
		Seq:    r.clock.Next(),
		Op:     op,
		Args:   slices.Clone(args),
		Result: result,
		Values: slices.Clone(values),
	}
	if err != nil {
		e.Error = err.Error()
	}
	r.events = append(r.events, e)
	return e
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	return slices.Clone(r.events)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// IntPtr returns a pointer to v, for Event.Result.
func IntPtr(v int) *int {
	return &v
}

func nonNil(vs []int) []int {
	if vs == nil {
		return []int{}
	}
	return vs
}
