package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/arraykit/internal/walkthrough"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	List bool
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo [lesson]...",
		Short: "Walk through primitive array operations",
		Long: `Print short lessons on array operations.

With no arguments every lesson runs in order. Lessons:
  initialization, access, iteration, insertion, deletion, search,
  container, mergesort, linear-search, binary-search, fibonacci

Examples:
  arraykit demo
  arraykit demo container
  arraykit demo binary-search fibonacci
  arraykit demo --list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.List, "list", false, "list lessons and exit")

	return cmd
}

func runDemo(opts *DemoOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.List {
		if opts.Format == "json" {
			return formatter.Success(walkthrough.Names())
		}
		for _, l := range walkthrough.Lessons() {
			fmt.Fprintf(formatter.Writer, "%-16s %s\n", l.Name, l.Title)
		}
		return nil
	}

	for _, name := range args {
		if _, ok := walkthrough.Find(name); !ok {
			return outputError(formatter, ExitCommandError, CodeInvalidArgs,
				fmt.Sprintf("unknown lesson %q", name), walkthrough.Names())
		}
	}

	if opts.Format != "json" {
		if err := walkthrough.Run(formatter.Writer, args...); err != nil {
			return WrapExitError(ExitFailure, "demo failed", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := walkthrough.Run(&buf, args...); err != nil {
		return WrapExitError(ExitFailure, "demo failed", err)
	}
	return formatter.Success(DemoResult{Lessons: lessonNames(args), Output: buf.String()})
}

// DemoResult is the JSON form of the demo output.
type DemoResult struct {
	Lessons []string `json:"lessons"`
	Output  string   `json:"output"`
}

func lessonNames(args []string) []string {
	if len(args) == 0 {
		return walkthrough.Names()
	}
	return args
}
