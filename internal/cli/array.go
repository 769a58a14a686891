package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/arraykit/internal/dynarray"
	"github.com/roach88/arraykit/internal/harness"
	"github.com/roach88/arraykit/internal/trace"
)

// ArrayOptions holds flags for the array command.
type ArrayOptions struct {
	*RootOptions
	Capacity int // initial capacity of the array
}

// ArrayResult holds the outcome of an op script.
type ArrayResult struct {
	Values   []int         `json:"values"`
	Size     int           `json:"size"`
	Capacity int           `json:"capacity"`
	Trace    []trace.Event `json:"trace"`
}

// String renders one trace line per op and a final summary line.
func (r ArrayResult) String() string {
	var b strings.Builder
	for _, e := range r.Trace {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "[%s] (size %d, cap %d)", joinInts(r.Values, " "), r.Size, r.Capacity)
	return b.String()
}

// NewArrayCommand creates the array command.
func NewArrayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ArrayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "array <op>...",
		Short: "Run operations against a growable array",
		Long: `Run a script of operations against a fresh array and print the trace.

Operations:
  add:<value>             append value
  insert:<index>:<value>  insert value before index (0 <= index <= size)
  remove:<index>          remove and report the element at index
  find:<value>            report the first index of value, or -1
  get:<index>             report the element at index
  show                    record the current contents
  sort:<v1>,<v2>,...      merge sort a separate list

Every operation runs; rejected indices are reported and the command
exits with status 1.

Examples:
  arraykit array add:1 add:2 add:3 insert:1:4 remove:1 find:3
  arraykit array --capacity 2 add:5 add:6 add:7
  arraykit array --format json add:1 get:3`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArray(opts, args, cmd)
		},
	}

	capacity := dynarray.DefaultCapacity
	if rootOpts.Env.Capacity != 0 {
		capacity = rootOpts.Env.Capacity
	}
	cmd.Flags().IntVar(&opts.Capacity, "capacity", capacity, "initial array capacity (env ARRAYKIT_CAPACITY)")

	return cmd
}

func runArray(opts *ArrayOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Capacity < 1 {
		return outputError(formatter, ExitCommandError, CodeInvalidArgs,
			fmt.Sprintf("%v: got %d", dynarray.ErrInvalidCapacity, opts.Capacity), nil)
	}

	steps := make([]harness.Step, 0, len(args))
	for _, token := range args {
		step, err := parseOpToken(token)
		if err != nil {
			return outputError(formatter, ExitCommandError, CodeInvalidArgs, err.Error(), nil)
		}
		steps = append(steps, step)
	}

	scenario := &harness.Scenario{
		Name:        "array",
		Description: "command line op script",
		Capacity:    opts.Capacity,
		Steps:       steps,
	}
	result, err := harness.Run(scenario,
		harness.WithLogger(newLogger(opts.RootOptions, cmd.ErrOrStderr())),
		harness.WithDisplayWriter(io.Discard),
	)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to run operations", err)
	}

	out := ArrayResult{
		Values:   result.Final,
		Size:     len(result.Final),
		Capacity: result.Capacity,
		Trace:    result.Trace,
	}

	var failed []string
	for _, e := range out.Trace {
		if e.Error != "" {
			failed = append(failed, e.Error)
		}
	}
	if len(failed) == 0 {
		return formatter.Success(out)
	}

	if opts.Format != "json" {
		fmt.Fprintln(formatter.Writer, out)
	}
	return outputError(formatter, ExitFailure, CodeOutOfBounds,
		fmt.Sprintf("%d operation(s) rejected: %s", len(failed), strings.Join(failed, "; ")), out)
}

// parseOpToken turns "insert:1:4" style tokens into harness steps.
func parseOpToken(token string) (harness.Step, error) {
	name, rest, _ := strings.Cut(token, ":")
	var fields []string
	if rest != "" {
		fields = strings.Split(rest, ":")
	}

	arity := func(n int) error {
		if len(fields) != n {
			return fmt.Errorf("op %q: %s takes %d argument(s), got %d", token, name, n, len(fields))
		}
		return nil
	}
	ints := func() ([]int, error) {
		vs := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("op %q: invalid integer %q", token, f)
			}
			vs[i] = n
		}
		return vs, nil
	}

	switch name {
	case "add", "find", "index_of":
		if err := arity(1); err != nil {
			return harness.Step{}, err
		}
		vs, err := ints()
		if err != nil {
			return harness.Step{}, err
		}
		op := harness.OpAdd
		if name != "add" {
			op = harness.OpIndexOf
		}
		return harness.Step{Op: op, Value: &vs[0]}, nil

	case "remove", "remove_at", "get":
		if err := arity(1); err != nil {
			return harness.Step{}, err
		}
		vs, err := ints()
		if err != nil {
			return harness.Step{}, err
		}
		op := harness.OpGet
		if name != "get" {
			op = harness.OpRemoveAt
		}
		return harness.Step{Op: op, Index: &vs[0]}, nil

	case "insert":
		if err := arity(2); err != nil {
			return harness.Step{}, err
		}
		vs, err := ints()
		if err != nil {
			return harness.Step{}, err
		}
		return harness.Step{Op: harness.OpInsert, Index: &vs[0], Value: &vs[1]}, nil

	case "show", "display":
		if err := arity(0); err != nil {
			return harness.Step{}, err
		}
		return harness.Step{Op: harness.OpDisplay}, nil

	case "sort":
		if err := arity(1); err != nil {
			return harness.Step{}, err
		}
		input, err := parseInts(fields)
		if err != nil {
			return harness.Step{}, fmt.Errorf("op %q: %w", token, err)
		}
		return harness.Step{Op: harness.OpSort, Input: input}, nil
	}

	return harness.Step{}, fmt.Errorf("unknown op %q", token)
}
