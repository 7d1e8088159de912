package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router declares routes for a Handler.
type Router interface {
	GET(path string, h HandlerFunc, mw ...Middleware)
	POST(path string, h HandlerFunc, mw ...Middleware)

	// Group scopes middleware to the routes declared in fn without adding a
	// path prefix.
	Group(fn func(r Router))
	// Route declares the routes of fn under pattern.
	Route(pattern string, fn func(r Router))

	Use(mw ...Middleware)
	// Mount attaches a plain http.Handler, e.g. a file server.
	Mount(pattern string, h http.Handler)
}

type chiRouter struct {
	mux chi.Router
	app *App
}

func (a *App) routerFor(mux chi.Router) Router {
	return &chiRouter{mux: mux, app: a}
}

func (r *chiRouter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodGet, path, h, mw)
}

func (r *chiRouter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPost, path, h, mw)
}

func (r *chiRouter) Group(fn func(Router)) {
	r.mux.Group(func(mux chi.Router) { fn(r.app.routerFor(mux)) })
}

func (r *chiRouter) Route(pattern string, fn func(Router)) {
	r.mux.Route(pattern, func(mux chi.Router) { fn(r.app.routerFor(mux)) })
}

func (r *chiRouter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.mux.Use(r.app.adaptMiddleware(m))
	}
}

func (r *chiRouter) Mount(pattern string, h http.Handler) {
	r.mux.Mount(pattern, h)
}

func (r *chiRouter) handle(method, path string, h HandlerFunc, mw []Middleware) {
	r.mux.Method(method, path, r.app.wrapHandler(chain(h, mw)))
}

// chain applies mw so that mw[0] is the outermost.
func chain(h HandlerFunc, mw []Middleware) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// adaptMiddleware converts a Middleware to chi middleware. The request passed
// downstream is read back from the context, so values stored with Set reach
// the next handler.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		terminal := func(c Context) error {
			next.ServeHTTP(c.Response(), c.Request())
			return nil
		}
		return a.wrapHandler(mw(terminal))
	}
}
