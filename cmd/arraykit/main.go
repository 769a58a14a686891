// Command arraykit sorts integers, drives a growable array from the command
// line, and runs scenario files against it.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/arraykit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
