package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arraykit/internal/testutil"
	"github.com/roach88/arraykit/internal/trace"
)

func intp(v int) *int { return &v }

func TestRun_BasicScenario(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/basic_operations.yaml")
	require.NoError(t, err)

	var display bytes.Buffer
	result, err := Run(scenario, WithDisplayWriter(&display))
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "run-basic", result.RunID)
	assert.Equal(t, []int{1, 2, 3}, result.Final)
	assert.Equal(t, 10, result.Capacity)
	assert.Equal(t, "1\n2\n3\n", display.String())

	require.Len(t, result.Trace, 7)
	for i, e := range result.Trace {
		assert.Equal(t, int64(i+1), e.Seq)
	}
}

func TestRun_ExpectMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "every expect field is wrong",
		Steps: []Step{
			{Op: OpAdd, Value: intp(1), Expect: &Expect{Values: []int{2}, Size: intp(5), Capacity: intp(1)}},
			{Op: OpIndexOf, Value: intp(1), Expect: &Expect{Result: intp(3)}},
			{Op: OpDisplay, Expect: &Expect{Result: intp(0)}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{
		"steps[0] add: values: expected [2], got [1]",
		"steps[0] add: size: expected 5, got 1",
		"steps[0] add: capacity: expected 1, got 10",
		"steps[1] index_of: result: expected 3, got 0",
		"steps[2] display: result: expected 0, got none",
	}, result.Errors)
}

func TestRun_UnexpectedBoundsError(t *testing.T) {
	scenario := &Scenario{
		Name:        "unexpected",
		Description: "remove from empty without expecting it to fail",
		Steps:       []Step{{Op: OpRemoveAt, Index: intp(0)}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unexpected error: remove_at: index 0 out of bounds")
	assert.Equal(t, "remove_at: index 0 out of bounds [0, 0)", result.Trace[0].Error)
}

func TestRun_ExpectedErrorMissing(t *testing.T) {
	scenario := &Scenario{
		Name:        "no_error",
		Description: "insert at size succeeds",
		Steps: []Step{
			{Op: OpInsert, Index: intp(0), Value: intp(1), Expect: &Expect{Error: ErrorOutOfBounds}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, []string{"steps[0] insert: expected out_of_bounds error, got success"}, result.Errors)
}

func TestRun_SortDoesNotTouchArray(t *testing.T) {
	scenario := &Scenario{
		Name:        "sort_only",
		Description: "sort works on its own input",
		Steps: []Step{
			{Op: OpAdd, Value: intp(9)},
			{Op: OpSort, Input: []int{3, 1, 2}, Expect: &Expect{Values: []int{1, 2, 3}}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, []int{9}, result.Final)
	assert.Equal(t, []int{3, 1, 2}, result.Trace[1].Args)
	assert.Equal(t, []int{3, 1, 2}, scenario.Steps[1].Input, "input must not be sorted in place")
}

func TestRun_CustomCapacity(t *testing.T) {
	scenario := &Scenario{
		Name:        "growth",
		Description: "capacity doubles from 1",
		Capacity:    1,
		Steps: []Step{
			{Op: OpAdd, Value: intp(1), Expect: &Expect{Capacity: intp(1)}},
			{Op: OpAdd, Value: intp(2), Expect: &Expect{Capacity: intp(2)}},
			{Op: OpAdd, Value: intp(3), Expect: &Expect{Capacity: intp(4)}},
			{Op: OpAdd, Value: intp(4), Expect: &Expect{Capacity: intp(4)}},
			{Op: OpAdd, Value: intp(5), Expect: &Expect{Capacity: intp(8)}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, 8, result.Capacity)
}

func TestRun_Deterministic(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/bounds_errors.yaml")
	require.NoError(t, err)

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	a, err := SnapshotBytes(scenario, first)
	require.NoError(t, err)
	b, err := SnapshotBytes(scenario, second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_Options(t *testing.T) {
	scenario := &Scenario{
		Name:        "options",
		Description: "clock, run ID and logger are injectable",
		Steps:       []Step{{Op: OpAdd, Value: intp(1)}},
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	result, err := Run(scenario,
		WithClock(trace.NewClockAt(41)),
		WithRunIDGenerator(testutil.NewFixedRunIDGenerator("custom")),
		WithLogger(logger),
	)
	require.NoError(t, err)

	assert.Equal(t, "custom", result.RunID)
	assert.Equal(t, int64(42), result.Trace[0].Seq)
	assert.Contains(t, logs.String(), "scenario starting")
	assert.Contains(t, logs.String(), "op=add")
}

func TestRun_DefaultRunID(t *testing.T) {
	scenario := &Scenario{
		Name:        "default_run",
		Description: "no run_id given",
		Steps:       []Step{{Op: OpDisplay}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.Equal(t, testutil.DefaultRunID, result.RunID)
}

func TestRun_InvalidCapacity(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_capacity",
		Description: "constructed directly",
		Capacity:    -4,
		Steps:       []Step{{Op: OpDisplay}},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid scenario: capacity must be non-negative")
}

func TestRun_InvalidStep(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want string
	}{
		{"add without value", Step{Op: OpAdd}, "steps[0]: value is required for add"},
		{"index_of without value", Step{Op: OpIndexOf}, "steps[0]: value is required for index_of"},
		{"insert without index", Step{Op: OpInsert, Value: intp(1)}, "steps[0]: index is required for insert"},
		{"insert without value", Step{Op: OpInsert, Index: intp(0)}, "steps[0]: value is required for insert"},
		{"remove_at without index", Step{Op: OpRemoveAt}, "steps[0]: index is required for remove_at"},
		{"get without index", Step{Op: OpGet}, "steps[0]: index is required for get"},
		{"unknown op", Step{Op: "pop"}, `steps[0]: unknown op "pop"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := &Scenario{
				Name:        "invalid_step",
				Description: "built in code with a missing operand",
				Steps:       []Step{tt.step},
			}

			var result *Result
			var err error
			require.NotPanics(t, func() { result, err = Run(scenario) })
			require.Error(t, err)
			assert.Nil(t, result)
			assert.EqualError(t, err, "invalid scenario: "+tt.want)
		})
	}
}

func TestRun_MissingName(t *testing.T) {
	_, err := Run(&Scenario{Steps: []Step{{Op: OpDisplay}}})
	assert.EqualError(t, err, "invalid scenario: name is required")
}
