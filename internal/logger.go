package internal

import "context"
import "log/slog"

// Discards all records. Enabled returns false, so callers skip
// message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Returns a logger that silently discards all output.
func NopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// Returns the given logger, or a no-op logger if nil.
func OrNop(logger *slog.Logger) *slog.Logger {
	if logger == nil { return NopLogger() }
	return logger
}
