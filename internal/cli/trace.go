package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/arraykit/internal/harness"
	"github.com/roach88/arraykit/internal/testutil"
	"github.com/roach88/arraykit/internal/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	RunID     string // overrides the scenario's run ID
	NewRunID  bool   // generate a fresh UUIDv7 run ID
	Canonical bool   // print the canonical JSON snapshot only
}

// TraceResult holds the recorded trace of one scenario run.
type TraceResult struct {
	Name   string        `json:"name"`
	RunID  string        `json:"run_id"`
	Pass   bool          `json:"pass"`
	Events []trace.Event `json:"events"`
	Digest string        `json:"digest"`
	Errors []string      `json:"errors,omitempty"`
}

// String renders the trace as a header, one line per event and the digest.
func (r TraceResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s\n", r.Name)
	fmt.Fprintf(&b, "Run ID:   %s\n\n", r.RunID)
	for _, e := range r.Events {
		fmt.Fprintf(&b, "  %s\n", e)
	}
	fmt.Fprintf(&b, "\nDigest: %s", r.Digest)
	return b.String()
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <scenario-file>",
		Short: "Print the recorded trace of a scenario",
		Long: `Run one scenario and print its trace.

Every operation is recorded with a logical sequence number, its
arguments, its result and the array contents afterwards. The digest is
a SHA-256 over the canonical JSON snapshot, so two runs with the same
run ID produce the same digest.

Examples:
  arraykit trace ./scenarios/basic_operations.yaml
  arraykit trace ./scenarios/sorting.cue --run-id run-42
  arraykit trace ./scenarios/basic_operations.yaml --new-run-id
  arraykit trace ./scenarios/basic_operations.yaml --canonical > golden/basic_operations.golden`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "run ID to record (defaults to the scenario's run_id)")
	cmd.Flags().BoolVar(&opts.NewRunID, "new-run-id", false, "record a freshly generated UUIDv7 run ID")
	cmd.Flags().BoolVar(&opts.Canonical, "canonical", false, "print the canonical JSON snapshot only")
	cmd.MarkFlagsMutuallyExclusive("run-id", "new-run-id")

	return cmd
}

func runTrace(opts *TraceOptions, scenarioFile string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	scenario, err := harness.LoadScenario(scenarioFile)
	if err != nil {
		return outputError(formatter, ExitCommandError, CodeScenarioLoad, err.Error(), nil)
	}

	var runIDs trace.RunIDGenerator = testutil.NewFixedRunIDGenerator(scenario.RunID)
	switch {
	case opts.NewRunID:
		runIDs = trace.UUIDv7Generator{}
	case opts.RunID != "":
		runIDs = testutil.NewFixedRunIDGenerator(opts.RunID)
	}

	result, err := harness.Run(scenario,
		harness.WithLogger(newLogger(opts.RootOptions, cmd.ErrOrStderr())),
		harness.WithRunIDGenerator(runIDs),
	)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to run scenario", err)
	}

	snapshot := result.Snapshot(scenario.Name)
	if opts.Canonical {
		data, err := snapshot.Canonical()
		if err != nil {
			return WrapExitError(ExitFailure, "failed to encode trace", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	digest, err := snapshot.Digest()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to digest trace", err)
	}
	formatter.VerboseLog("%d event(s), digest %s", len(result.Trace), digest)

	out := TraceResult{
		Name:   scenario.Name,
		RunID:  result.RunID,
		Pass:   result.Pass,
		Events: result.Trace,
		Digest: digest,
		Errors: result.Errors,
	}
	if result.Pass {
		return formatter.Success(out)
	}

	if opts.Format != "json" {
		fmt.Fprintln(formatter.Writer, out)
	}
	return outputError(formatter, ExitFailure, CodeScenarioRun,
		fmt.Sprintf("%d check(s) failed", len(result.Errors)), result.Errors)
}
