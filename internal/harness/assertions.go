package harness

import (
	"fmt"
	"slices"

	"github.com/roach88/arraykit/internal/mergesort"
)

// EvaluateAssertions checks every assertion against a finished result and
// returns one message per failure.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if msg := evaluateAssertion(result, a); msg != "" {
			errs = append(errs, fmt.Sprintf("assertions[%d] %s: %s", i, a.Type, msg))
		}
	}
	return errs
}

func evaluateAssertion(result *Result, a Assertion) string {
	switch a.Type {
	case AssertFinalValues:
		if !slices.Equal(a.Values, result.Final) {
			return fmt.Sprintf("expected %v, got %v", a.Values, result.Final)
		}
	case AssertFinalSize:
		if *a.Size != len(result.Final) {
			return fmt.Sprintf("expected %d, got %d", *a.Size, len(result.Final))
		}
	case AssertTraceCount:
		if got := countOp(result, a.Op); got != *a.Count {
			return fmt.Sprintf("expected %s %d time(s), got %d", a.Op, *a.Count, got)
		}
	case AssertTraceOrder:
		return checkOrder(result, a.Ops)
	case AssertSorted:
		return checkSorted(result)
	default:
		return fmt.Sprintf("unknown assertion type %q", a.Type)
	}
	return ""
}

func countOp(result *Result, op string) int {
	n := 0
	for _, e := range result.Trace {
		if e.Op == op {
			n++
		}
	}
	return n
}

// checkOrder verifies ops occur as a subsequence of the trace.
func checkOrder(result *Result, ops []string) string {
	next := 0
	for _, e := range result.Trace {
		if next < len(ops) && e.Op == ops[next] {
			next++
		}
	}
	if next < len(ops) {
		return fmt.Sprintf("%q not found in order after %v", ops[next], ops[:next])
	}
	return ""
}

func checkSorted(result *Result) string {
	sorts := 0
	for _, e := range result.Trace {
		if e.Op != OpSort {
			continue
		}
		sorts++
		if !mergesort.IsSorted(e.Values) {
			return fmt.Sprintf("sort at seq %d produced %v", e.Seq, e.Values)
		}
	}
	if sorts == 0 {
		return "no sort steps in trace"
	}
	return ""
}
