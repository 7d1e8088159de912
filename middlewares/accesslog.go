package middlewares

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/resignly/internal"
)

// AccessLog logs one line per request once the handler returned. Health
// probes and static assets are logged at debug level.
func AccessLog(quiet ...string) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			r := c.Request()
			level := slog.LevelInfo
			for _, prefix := range quiet {
				if strings.HasPrefix(r.URL.Path, prefix) {
					level = slog.LevelDebug
					break
				}
			}

			rw := c.ResponseWriter()
			c.Logger().Log(c, level, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.Status()),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
				slog.Bool("htmx", c.IsHTMX()),
			)
			return err
		}
	}
}
