package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/arraykit/internal/mergesort"
)

// SortResult is the output of the sort command.
type SortResult struct {
	Input  []int           `json:"input"`
	Sorted []int           `json:"sorted"`
	Stats  mergesort.Stats `json:"stats"`
}

// String renders the sorted sequence space-separated.
func (r SortResult) String() string {
	return joinInts(r.Sorted, " ")
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <int>...",
		Short: "Merge sort a list of integers",
		Long: `Sort integers with a stable top-down merge sort.

Arguments may be separate or comma-separated. Put negative numbers
after "--" so they are not read as flags.

Examples:
  arraykit sort 38 27 43 3 9 82 10
  arraykit sort 5,3,1
  arraykit sort --format json -- 4 -2 7`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runSort(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	input, err := parseInts(args)
	if err != nil {
		return outputError(formatter, ExitCommandError, CodeInvalidArgs, err.Error(), nil)
	}

	sorted := slices.Clone(input)
	stats := mergesort.SortWithStats(sorted)
	formatter.VerboseLog("comparisons=%d moves=%d depth=%d", stats.Comparisons, stats.Moves, stats.MaxDepth)

	return formatter.Success(SortResult{
		Input:  input,
		Sorted: sorted,
		Stats:  stats,
	})
}

// parseInts reads integers from args, splitting each on commas.
func parseInts(args []string) ([]int, error) {
	var out []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q", field)
			}
			out = append(out, n)
		}
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, sep)
}
