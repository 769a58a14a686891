package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted run against a fresh array.
type Scenario struct {
	// Name identifies the scenario and its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description"`

	// RunID pins the run ID recorded in the trace.
	// Empty means testutil.DefaultRunID.
	RunID string `yaml:"run_id,omitempty"`

	// Capacity is the array's initial capacity. Zero means the default.
	Capacity int `yaml:"capacity,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`

	// Assertions are checked after all steps.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one operation.
type Step struct {
	Op     string  `yaml:"op"`
	Index  *int    `yaml:"index,omitempty"`
	Value  *int    `yaml:"value,omitempty"`
	Input  []int   `yaml:"input,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect checks the outcome of a single step. Unset fields are not checked.
type Expect struct {
	// Values is the full sequence after the step (the sorted output for sort).
	Values []int `yaml:"values,omitempty"`

	// Result is the value returned by remove_at, get or index_of.
	Result *int `yaml:"result,omitempty"`

	// Error names the expected failure class. Only "out_of_bounds" exists.
	Error string `yaml:"error,omitempty"`

	Size     *int `yaml:"size,omitempty"`
	Capacity *int `yaml:"capacity,omitempty"`
}

// Assertion checks the finished run.
type Assertion struct {
	Type   string   `yaml:"type"`
	Values []int    `yaml:"values,omitempty"`
	Size   *int     `yaml:"size,omitempty"`
	Op     string   `yaml:"op,omitempty"`
	Count  *int     `yaml:"count,omitempty"`
	Ops    []string `yaml:"ops,omitempty"`
}

// Step operations.
const (
	OpAdd      = "add"
	OpInsert   = "insert"
	OpRemoveAt = "remove_at"
	OpGet      = "get"
	OpIndexOf  = "index_of"
	OpDisplay  = "display"
	OpSort     = "sort"
)

// Assertion types.
const (
	AssertFinalValues = "final_values"
	AssertFinalSize   = "final_size"
	AssertTraceCount  = "trace_count"
	AssertTraceOrder  = "trace_order"
	AssertSorted      = "sorted"
)

// ErrorOutOfBounds is the only failure class a step can expect.
const ErrorOutOfBounds = "out_of_bounds"

// LoadScenario reads a scenario from a .yaml, .yml or .cue file.
// Unknown fields and missing required fields are errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
	case ".cue":
		data, err = exportCUE(path, data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported scenario file extension %q", ext)
	}

	return ParseScenario(data)
}

// ParseScenario decodes and validates a scenario from YAML or JSON bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// IsScenarioFile reports whether path has a scenario file extension.
func IsScenarioFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".cue":
		return true
	}
	return false
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Capacity < 0 {
		return fmt.Errorf("capacity must be non-negative")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i]); err != nil {
			return err
		}
	}
	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(index int, st *Step) error {
	need := func(field string, ok bool) error {
		if !ok {
			return fmt.Errorf("steps[%d]: %s is required for %s", index, field, st.Op)
		}
		return nil
	}

	var err error
	switch st.Op {
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	case OpAdd, OpIndexOf:
		err = need("value", st.Value != nil)
	case OpInsert:
		if err = need("index", st.Index != nil); err == nil {
			err = need("value", st.Value != nil)
		}
	case OpRemoveAt, OpGet:
		err = need("index", st.Index != nil)
	case OpDisplay, OpSort:
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}
	if err != nil {
		return err
	}

	if st.Input != nil && st.Op != OpSort {
		return fmt.Errorf("steps[%d]: input is only valid for sort", index)
	}

	if st.Expect != nil && st.Expect.Error != "" {
		if st.Expect.Error != ErrorOutOfBounds {
			return fmt.Errorf("steps[%d].expect: unknown error class %q", index, st.Expect.Error)
		}
		switch st.Op {
		case OpInsert, OpRemoveAt, OpGet:
		default:
			return fmt.Errorf("steps[%d].expect: %s cannot fail", index, st.Op)
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertFinalValues:
		if a.Values == nil {
			return fmt.Errorf("assertions[%d]: values is required for final_values", index)
		}
	case AssertFinalSize:
		if a.Size == nil || *a.Size < 0 {
			return fmt.Errorf("assertions[%d]: non-negative size is required for final_size", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for trace_count", index)
		}
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return fmt.Errorf("assertions[%d]: ops list is required for trace_order", index)
		}
	case AssertSorted:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
