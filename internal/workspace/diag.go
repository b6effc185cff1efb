package workspace

import (
	"context"
	"log/slog"
)

// Diagnostics receives non-fatal conditions from workspace operations,
// such as a lifecycle phase with no registered handler. It replaces a
// process-wide logger so that library consumers control where these
// reports go.
type Diagnostics interface {
	Record(level slog.Level, msg string, args ...any)
}

// slogSink adapts a *slog.Logger to the Diagnostics interface.
type slogSink struct {
	logger *slog.Logger
}

func (s slogSink) Record(level slog.Level, msg string, args ...any) {
	s.logger.Log(context.Background(), level, msg, args...)
}

// SlogDiagnostics returns a Diagnostics sink backed by the given logger.
func SlogDiagnostics(logger *slog.Logger) Diagnostics {
	return slogSink{logger: logger}
}

// nopSink discards all diagnostics.
type nopSink struct{}

func (nopSink) Record(_ slog.Level, _ string, _ ...any) {}

// NopDiagnostics returns a sink that discards everything.
func NopDiagnostics() Diagnostics {
	return nopSink{}
}
