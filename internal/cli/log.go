package cli

import (
	"io"
	"log/slog"
)

// newLogger returns the text logger commands hand to the harness.
// Info and above by default; --verbose adds debug records.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
