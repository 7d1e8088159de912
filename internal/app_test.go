package internal_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/internal"
	"github.com/dmitrymomot/resignly/pkg/htmx"
)

type text string

func (t text) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func serve(t *testing.T, app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

type keyName struct{}

func TestAppRoutingAndMiddleware(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}
	setName := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Set(keyName{}, "Jane")
			return next(c)
		}
	}

	app := internal.New(
		internal.WithMiddleware(trace("global"), setName),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.Route("/letter", func(r internal.Router) {
				r.GET("/{id}", func(c internal.Context) error {
					name := internal.ContextValue[string](c, keyName{})
					return c.String(http.StatusOK, c.Param("id")+":"+name)
				}, trace("route-a"), trace("route-b"))
			})
		})),
	)

	w := serve(t, app, httptest.NewRequest(http.MethodGet, "/letter/standard-resignation", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "standard-resignation:Jane", w.Body.String())
	assert.Equal(t, []string{"global", "route-a", "route-b"}, order)
}

func TestAppErrorHandling(t *testing.T) {
	t.Parallel()

	h := routes(func(r internal.Router) {
		r.GET("/missing", func(c internal.Context) error {
			return internal.ErrNotFound("Template not found")
		})
		r.GET("/boom", func(c internal.Context) error {
			return errors.New("boom")
		})
		r.GET("/late", func(c internal.Context) error {
			_ = c.String(http.StatusAccepted, "done")
			return errors.New("ignored")
		})
	})

	t.Run("default handler", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHandlers(h))

		w := serve(t, app, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Template not found")

		w = serve(t, app, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")

		w = serve(t, app, httptest.NewRequest(http.MethodGet, "/late", nil))
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "done", w.Body.String())
	})

	t.Run("custom handlers", func(t *testing.T) {
		t.Parallel()
		app := internal.New(
			internal.WithHandlers(h),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				return c.JSON(http.StatusTeapot, map[string]string{"error": err.Error()})
			}),
			internal.WithNotFoundHandler(func(c internal.Context) error {
				return c.String(http.StatusNotFound, "no such page")
			}),
		)

		w := serve(t, app, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.JSONEq(t, `{"error":"boom"}`, w.Body.String())

		w = serve(t, app, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "no such page", w.Body.String())
	})
}

func TestContextRender(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/page", func(c internal.Context) error {
			return c.RenderPartial(http.StatusOK, text("<html>full</html>"), text("<div>partial</div>"),
				htmx.WithTrigger("letter-updated"),
				htmx.WithOOB(text(`<span id="stats" hx-swap-oob="true">12</span>`)),
			)
		})
		r.GET("/invalid", func(c internal.Context) error {
			return c.Render(http.StatusUnprocessableEntity, text("errors"))
		})
	})))

	t.Run("full page", func(t *testing.T) {
		t.Parallel()
		w := serve(t, app, httptest.NewRequest(http.MethodGet, "/page", nil))
		assert.Equal(t, "<html>full</html>", w.Body.String())
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Empty(t, w.Header().Get(htmx.HeaderHXTrigger))
	})

	t.Run("htmx partial", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/page", nil)
		req.Header.Set(htmx.HeaderHXRequest, "true")
		w := serve(t, app, req)
		assert.Equal(t, `<div>partial</div><span id="stats" hx-swap-oob="true">12</span>`, w.Body.String())
		assert.Equal(t, "letter-updated", w.Header().Get(htmx.HeaderHXTrigger))
	})

	t.Run("htmx error status becomes 200", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/invalid", nil)
		w := serve(t, app, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/invalid", nil)
		req.Header.Set(htmx.HeaderHXRequest, "true")
		w = serve(t, app, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestContextResponses(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/download", func(c internal.Context) error {
			return c.Attachment("jane-doe-resignation-letter.txt", "text/plain; charset=utf-8", []byte("Dear Sam"))
		})
		r.GET("/gone", func(c internal.Context) error {
			return c.Redirect(http.StatusSeeOther, "/templates")
		})
		r.POST("/empty", func(c internal.Context) error {
			return c.NoContent(http.StatusNoContent)
		})
	})))

	w := serve(t, app, httptest.NewRequest(http.MethodGet, "/download", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename=jane-doe-resignation-letter.txt`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", w.Header().Get("Content-Length"))
	assert.Equal(t, "Dear Sam", w.Body.String())

	w = serve(t, app, httptest.NewRequest(http.MethodGet, "/gone", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/templates", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/gone", nil)
	req.Header.Set(htmx.HeaderHXRequest, "true")
	w = serve(t, app, req)
	assert.Equal(t, "/templates", w.Header().Get(htmx.HeaderHXRedirect))

	w = serve(t, app, httptest.NewRequest(http.MethodPost, "/empty", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(t, app, httptest.NewRequest(http.MethodPost, "/download", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

type contactForm struct {
	Name    string `form:"name" sanitize:"text,single_line,trim"`
	Message string `form:"message" sanitize:"text,trim"`
}

func TestContextBind(t *testing.T) {
	t.Parallel()

	var got contactForm
	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.POST("/contact", func(c internal.Context) error {
			if err := c.Bind(&got); err != nil {
				return internal.ErrBadRequest("invalid form", internal.WithError(err))
			}
			return c.NoContent(http.StatusNoContent)
		})
	})))

	form := url.Values{
		"name":    {"  <b>Jane</b>   Doe "},
		"message": {"Hello\r\nthere <script>x</script>"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := serve(t, app, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "Hello\nthere", got.Message)

	req = httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w = serve(t, app, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractorAndQueryDefault(t *testing.T) {
	t.Parallel()

	scope := internal.NewExtractor(
		internal.FromHeader("X-Export-Session"),
		internal.FromCookie("session"),
		internal.FromQuery("session"),
		internal.FromRemoteIP(),
	)

	type result struct {
		scope string
		page  int
		all   bool
	}
	var got result
	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			got.scope, _ = scope.Extract(c)
			got.page = internal.QueryDefault(c, "page", 1)
			got.all = internal.QueryDefault(c, "all", false)
			return c.NoContent(http.StatusNoContent)
		})
	})))

	tests := []struct {
		name  string
		setup func(r *http.Request)
		query string
		want  result
	}{
		{
			name:  "header wins",
			setup: func(r *http.Request) { r.Header.Set("X-Export-Session", "tab-1") },
			query: "?session=q&page=3&all=true",
			want:  result{scope: "tab-1", page: 3, all: true},
		},
		{
			name:  "cookie",
			setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: "c-1"}) },
			query: "?page=oops",
			want:  result{scope: "c-1", page: 1},
		},
		{
			name:  "query",
			setup: func(*http.Request) {},
			query: "?session=q-1",
			want:  result{scope: "q-1", page: 1},
		},
		{
			name:  "remote address",
			setup: func(*http.Request) {},
			want:  result{scope: "192.0.2.1", page: 1},
		},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
		tt.setup(req)
		got = result{}
		w := serve(t, app, req)
		require.Equal(t, http.StatusNoContent, w.Code, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestHealthAndStaticFiles(t *testing.T) {
	t.Parallel()

	assets := fstest.MapFS{
		"static/app.js":    {Data: []byte("console.log(1)")},
		"static/app.css":   {Data: []byte("body{}")},
		"static/img/a.svg": {Data: []byte("<svg/>")},
	}

	app := internal.New(
		internal.WithStaticFiles("/static/", assets, "static"),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("blog", func(context.Context) error { return errors.New("not loaded") }),
			internal.WithReadinessCheck("skipped", nil),
		),
	)

	w := serve(t, app, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = serve(t, app, httptest.NewRequest(http.MethodGet, "/static/img/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, app, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
