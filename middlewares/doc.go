// Package middlewares provides the HTTP middleware used by the resignly server.
//
// # Request ID
//
// RequestID assigns an ID to every request, reusing a sane upstream
// X-Request-ID when present. Pair it with RequestIDExtractor so every log
// record written with the request context carries request_id:
//
//	app := resignly.New(
//	    resignly.WithCustomLogger(logger.New(middlewares.RequestIDExtractor())),
//	    resignly.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover converts panics to *PanicError, which the error handler renders as
// a 500 page.
//
// # Timeout
//
// Timeout puts a deadline on the request context. Export generation and blog
// rendering take the Context as their context.Context and stop early.
//
// # AccessLog
//
// AccessLog writes one record per request with status, size and duration.
package middlewares
