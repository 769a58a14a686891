package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Env supplies flag defaults; EnvErr is reported before any command runs.
	Env    EnvConfig
	EnvErr error
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the arraykit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	opts.Env, opts.EnvErr = LoadEnvConfig()

	cmd := &cobra.Command{
		Use:     "arraykit",
		Version: Version,
		Short:   "arraykit - merge sort and growable arrays",
		Long: `Run a merge sort and a doubling integer array from the command line.

Scenario files drive the array through scripted operations, record a
deterministic trace, and compare it with golden files.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.EnvErr != nil {
				return WrapExitError(ExitCommandError, "invalid environment", opts.EnvErr)
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Env.Verbose, "verbose output (env ARRAYKIT_VERBOSE)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", defaultFormat(opts.Env), "output format (json|text) (env ARRAYKIT_FORMAT)")

	cmd.AddCommand(NewSortCommand(opts))
	cmd.AddCommand(NewArrayCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func defaultFormat(cfg EnvConfig) string {
	if cfg.Format == "" {
		return "text"
	}
	return cfg.Format
}
