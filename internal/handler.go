package internal

// Handler declares routes on a router.
//
// Example:
//
//	type BlogHandler struct {
//	    store *blog.Store
//	}
//
//	func (h *BlogHandler) Routes(r resignly.Router) {
//	    r.GET("/blog", h.list)
//	    r.GET("/blog/{slug}", h.post)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// It receives a Context and returns an error.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect/modify the request, short-circuit processing,
// or wrap the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
