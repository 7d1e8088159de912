package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"SENTRY_RELEASE"`
	// MinLevel is the lowest level stored in Sentry as a log entry. Errors
	// always become issues.
	MinLevel slog.Level
}

// NewWithSentry creates a JSON logger on stdout that also reports to Sentry.
// With an empty DSN it is equivalent to New.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	h := newHandler(os.Stdout, "json", slog.LevelInfo)
	return slog.New(NewLogHandlerDecorator(withSentry(h, cfg), extractors...))
}

// Flush waits up to timeout for buffered Sentry events to be sent.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// withSentry fans records out to next and Sentry. It returns next untouched
// when no DSN is configured or the SDK fails to initialize.
func withSentry(next slog.Handler, cfg SentryConfig) slog.Handler {
	if cfg.DSN == "" {
		return next
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(next).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return next
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return fanout{next, sentryHandler}
}
