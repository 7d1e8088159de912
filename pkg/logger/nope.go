package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything. Tests and library
// defaults use it.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewText returns a human-readable logger writing to w, used by the CLI.
func NewText(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(newHandler(w, "text", level))
}
