// Package logging constructs the structured logger the CLI hands to
// workspace diagnostics. Loggers are built and passed down explicitly;
// there is no package-level logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options controls handler selection and verbosity.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// JSON selects the JSON handler instead of text.
	JSON bool
	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer
}

// New builds a logger from the given options.
func New(opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
