package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the level and output format of the process logger.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig
}

// New creates a JSON logger on stdout at info level.
func New(extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(os.Stdout, "json", slog.LevelInfo), extractors...))
}

// NewWithConfig creates a logger writing to w in cfg.Format ("json" or
// "text"). When cfg.Sentry.DSN is set, records are also sent to Sentry.
func NewWithConfig(cfg Config, w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	h := newHandler(w, cfg.Format, ParseLevel(cfg.Level))
	return slog.New(NewLogHandlerDecorator(withSentry(h, cfg.Sentry), extractors...))
}

// Component tags every record of l with the component name.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = NewNope()
	}
	return l.With(slog.String("component", name))
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog
// levels. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
