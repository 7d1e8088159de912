// Package internal provides the core types and implementation of the
// resignly web framework.
//
// Import "github.com/dmitrymomot/resignly" instead, which re-exports the
// public API.
//
// # Core Types
//
//   - App: owns the chi router, middleware, health endpoints and the server lifecycle
//   - Context: request/response access plus rendering, binding and logging helpers
//   - Router: the interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a router
//   - HandlerFunc: a route handler that returns an error
//   - Middleware: wraps handlers to add cross-cutting concerns
//   - ErrorHandler: turns handler errors into responses
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context:
//
//	func (h *Blog) post(c resignly.Context) error {
//	    post, err := h.store.Get(c.Param("slug"))
//	    if err != nil {
//	        return err
//	    }
//	    body, err := h.store.HTML(c, post)
//	    ...
//	}
//
// # htmx
//
// Responses to htmx requests are always sent with status 200 once the code
// is 300 or above, because htmx ignores error responses by default. Render
// options (triggers, out-of-band swaps, retargeting) are applied only to htmx
// requests; RenderPartial picks the fragment or the full page accordingly.
//
// # Lifecycle
//
// App.Run binds the listener, runs startup hooks, serves until SIGINT or
// SIGTERM, then shuts the server down and runs shutdown hooks with a bounded
// context. Shutdown errors are joined.
package internal
