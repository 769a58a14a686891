package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/arraykit/internal/dynarray"
	"github.com/roach88/arraykit/internal/mergesort"
	"github.com/roach88/arraykit/internal/testutil"
	"github.com/roach88/arraykit/internal/trace"
)

// Option configures a run.
type Option func(*Harness)

// WithLogger sets the logger. Steps are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) { h.logger = logger }
}

// WithClock replaces the deterministic clock.
func WithClock(clock trace.Sequencer) Option {
	return func(h *Harness) { h.clock = clock }
}

// WithRunIDGenerator replaces the fixed run ID.
func WithRunIDGenerator(gen trace.RunIDGenerator) Option {
	return func(h *Harness) { h.runIDs = gen }
}

// WithDisplayWriter sets where display steps print. Defaults to io.Discard.
func WithDisplayWriter(w io.Writer) Option {
	return func(h *Harness) { h.display = w }
}

// Harness executes one scenario against a fresh array.
type Harness struct {
	array    *dynarray.Array
	recorder *trace.Recorder
	clock    trace.Sequencer
	runIDs   trace.RunIDGenerator
	display  io.Writer
	logger   *slog.Logger
}

// Run executes scenario and evaluates its expectations and assertions.
//
// Failed checks are collected in the result; the returned error is reserved
// for scenarios that cannot run at all. Scenarios built in code are validated
// the same way as loaded ones.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	h := &Harness{
		clock:   testutil.NewDeterministicClock(),
		runIDs:  testutil.NewFixedRunIDGenerator(scenario.RunID),
		display: io.Discard,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	capacity := scenario.Capacity
	if capacity == 0 {
		capacity = dynarray.DefaultCapacity
	}
	arr, err := dynarray.NewWithCapacity(capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create array: %w", err)
	}
	h.array = arr
	h.recorder = trace.NewRecorder(h.clock)

	result := NewResult(h.runIDs.Generate())
	h.logger.Debug("scenario starting", "name", scenario.Name, "run_id", result.RunID, "steps", len(scenario.Steps))

	for i, step := range scenario.Steps {
		event, stepErr := h.execute(step)
		h.logger.Debug("step", "index", i, "op", step.Op, "seq", event.Seq, "error", event.Error)

		for _, msg := range checkExpect(step, event, stepErr, h.array) {
			result.AddError(fmt.Sprintf("steps[%d] %s: %s", i, step.Op, msg))
		}
	}

	result.Trace = h.recorder.Events()
	result.Final = h.array.Values()
	result.Capacity = h.array.Cap()

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Debug("scenario finished", "name", scenario.Name, "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}

// execute applies one step and records it.
func (h *Harness) execute(st Step) (trace.Event, error) {
	var (
		args   []int
		result *int
		err    error
	)

	switch st.Op {
	case OpAdd:
		args = []int{*st.Value}
		h.array.Add(*st.Value)
	case OpInsert:
		args = []int{*st.Index, *st.Value}
		err = h.array.Insert(*st.Index, *st.Value)
	case OpRemoveAt:
		args = []int{*st.Index}
		var removed int
		if removed, err = h.array.RemoveAt(*st.Index); err == nil {
			result = trace.IntPtr(removed)
		}
	case OpGet:
		args = []int{*st.Index}
		var v int
		if v, err = h.array.Get(*st.Index); err == nil {
			result = trace.IntPtr(v)
		}
	case OpIndexOf:
		args = []int{*st.Value}
		result = trace.IntPtr(h.array.IndexOf(*st.Value))
	case OpDisplay:
		err = h.array.Display(h.display)
	case OpSort:
		sorted := slices.Clone(st.Input)
		mergesort.Sort(sorted)
		return h.recorder.Record(st.Op, st.Input, nil, sorted, nil), nil
	default:
		err = fmt.Errorf("unknown op %q", st.Op)
	}

	return h.recorder.Record(st.Op, args, result, h.array.Values(), err), err
}

// checkExpect compares a step outcome with its expect clause.
func checkExpect(st Step, event trace.Event, stepErr error, arr *dynarray.Array) []string {
	var msgs []string
	exp := st.Expect

	wantErr := exp != nil && exp.Error != ""
	switch {
	case wantErr && stepErr == nil:
		msgs = append(msgs, fmt.Sprintf("expected %s error, got success", exp.Error))
	case wantErr && !errors.Is(stepErr, dynarray.ErrOutOfBounds):
		msgs = append(msgs, fmt.Sprintf("expected %s error, got %v", exp.Error, stepErr))
	case !wantErr && stepErr != nil:
		msgs = append(msgs, fmt.Sprintf("unexpected error: %v", stepErr))
	}
	if exp == nil {
		return msgs
	}

	if exp.Values != nil && !slices.Equal(exp.Values, event.Values) {
		msgs = append(msgs, fmt.Sprintf("values: expected %v, got %v", exp.Values, event.Values))
	}
	if exp.Result != nil {
		switch {
		case event.Result == nil:
			msgs = append(msgs, fmt.Sprintf("result: expected %d, got none", *exp.Result))
		case *event.Result != *exp.Result:
			msgs = append(msgs, fmt.Sprintf("result: expected %d, got %d", *exp.Result, *event.Result))
		}
	}
	if exp.Size != nil && *exp.Size != arr.Len() {
		msgs = append(msgs, fmt.Sprintf("size: expected %d, got %d", *exp.Size, arr.Len()))
	}
	if exp.Capacity != nil && *exp.Capacity != arr.Cap() {
		msgs = append(msgs, fmt.Sprintf("capacity: expected %d, got %d", *exp.Capacity, arr.Cap()))
	}
	return msgs
}
