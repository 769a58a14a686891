// Package harness runs declarative scenarios against the array and sort
// components and checks the outcome.
//
// # Scenario Format
//
// Scenarios are YAML (.yaml, .yml) or CUE (.cue) files with the same shape:
//
//	name: basic_operations
//	description: "add, insert, remove and search"
//	run_id: run-basic          # optional, pins the trace run ID
//	capacity: 10               # optional initial capacity
//	steps:
//	  - op: add
//	    value: 1
//	  - op: insert
//	    index: 1
//	    value: 4
//	    expect:
//	      values: [1, 4]
//	  - op: remove_at
//	    index: 7
//	    expect:
//	      error: out_of_bounds
//	  - op: sort
//	    input: [3, 1, 2]
//	assertions:
//	  - type: final_values
//	    values: [1, 4]
//	  - type: trace_count
//	    op: add
//	    count: 1
//
// Unknown fields are rejected so typos surface at load time.
//
// # Operations
//
//   - add (value), insert (index, value), remove_at (index), get (index),
//     index_of (value), display: applied to the scenario's array
//   - sort (input): sorts its own input sequence; the array is not touched
//
// # Assertions
//
//   - final_values: the array holds exactly these values at the end
//   - final_size: the array length at the end
//   - trace_count: an operation appears exactly count times
//   - trace_order: operations appear in this relative order
//   - sorted: every sort step produced a non-decreasing sequence
//
// # Determinism
//
// Each run uses a fresh array, a testutil.DeterministicClock and a fixed run
// ID, so the same scenario always produces the same trace. RunWithGolden
// compares that trace with testdata/golden/<name>.golden.
package harness
