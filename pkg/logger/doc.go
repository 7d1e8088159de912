// Package logger builds the slog loggers used by the web server and the CLI.
//
// The server logs JSON to stdout. A LogHandlerDecorator runs ContextExtractors
// on each record, which is how the request id from the requestid middleware
// ends up on every line logged while serving a request:
//
//	log := logger.NewWithConfig(cfg, os.Stdout, middlewares.RequestIDExtractor())
//	log.InfoContext(r.Context(), "letter exported", slog.String("format", "pdf"))
//
// # Sentry
//
// When SENTRY_DSN is set, records are fanned out to Sentry as well. Errors
// become issues, warnings are kept as logs. Without a DSN, or when the SDK
// fails to start, logging carries on to the primary handler only. Call Flush
// before exiting so queued events are delivered.
//
// # Components
//
// Component tags a logger with a component attribute. Packages that accept a
// *slog.Logger through an option do this once when they are constructed.
//
// The CLI uses NewText on stderr, and tests use NewNope.
package logger
