package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenDir is where golden traces live, relative to the test package.
const GoldenDir = "testdata/golden"

// SnapshotBytes returns the canonical JSON trace used in golden files.
func SnapshotBytes(scenario *Scenario, result *Result) ([]byte, error) {
	return result.Snapshot(scenario.Name).Canonical()
}

// RunWithGolden runs scenario and compares its trace with
// testdata/golden/<scenario.Name>.golden.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
//
// The returned error covers execution and encoding failures; a mismatch
// fails t through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result with the scenario's golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := SnapshotBytes(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
