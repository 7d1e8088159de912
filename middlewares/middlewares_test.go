package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/internal"
	"github.com/dmitrymomot/resignly/middlewares"
	"github.com/dmitrymomot/resignly/pkg/logger"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func serve(app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithConfig(logger.Config{Level: "info", Format: "json"}, &buf, middlewares.RequestIDExtractor())

	var seen string
	app := internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "generated" }))),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				seen = middlewares.GetRequestID(c)
				c.LogInfo("handled")
				return c.NoContent(http.StatusNoContent)
			})
		})),
	)

	w := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "generated", seen)
	assert.Equal(t, "generated", w.Header().Get(middlewares.RequestIDHeader))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "generated", record["request_id"])

	tests := []struct {
		name   string
		header string
		value  string
		want   string
	}{
		{"upstream id", "X-Request-ID", "abc-123", "abc-123"},
		{"correlation id", "X-Correlation-ID", "corr-1", "corr-1"},
		{"id with spaces is replaced", "X-Request-ID", "a b", "generated"},
		{"oversized id is replaced", "X-Request-ID", strings.Repeat("x", 200), "generated"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(tt.header, tt.value)
		w := serve(app, req)
		assert.Equal(t, tt.want, seen, tt.name)
		assert.Equal(t, tt.want, w.Header().Get(middlewares.RequestIDHeader), tt.name)
	}
}

func TestRequestIDDefaultGenerator(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(middlewares.RequestID()),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error { return c.NoContent(http.StatusNoContent) })
		})),
	)

	w := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(middlewares.RequestIDHeader), 26)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var handled error
	app := internal.New(
		internal.WithMiddleware(middlewares.Recover(middlewares.WithRecoverStackSize(0))),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			handled = err
			return c.String(http.StatusInternalServerError, "sorry")
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/panic", func(internal.Context) error { panic("template exploded") })
		})),
	)

	w := serve(app, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "sorry", w.Body.String())
	require.True(t, middlewares.IsPanicError(handled))

	var pe *middlewares.PanicError
	require.ErrorAs(t, handled, &pe)
	assert.Equal(t, "template exploded", pe.Value)
	assert.Nil(t, pe.Stack)
	assert.Equal(t, "panic: template exploded", pe.Error())
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	var handled error
	app := internal.New(
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			handled = err
			return c.String(http.StatusServiceUnavailable, "slow")
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/slow", func(c internal.Context) error {
				<-c.Done()
				return c.Err()
			}, middlewares.Timeout(20*time.Millisecond))
			r.GET("/fast", func(c internal.Context) error {
				_, ok := c.Deadline()
				if !ok {
					return errors.New("no deadline")
				}
				return c.String(http.StatusOK, "ok")
			}, middlewares.Timeout(time.Minute))
		})),
	)

	w := serve(app, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.True(t, middlewares.IsTimeoutError(handled))
	require.ErrorIs(t, handled, context.DeadlineExceeded)

	w = serve(app, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestAccessLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	app := internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(middlewares.AccessLog("/health/")),
		internal.WithHealthChecks(),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/templates", func(c internal.Context) error { return c.String(http.StatusOK, "list") })
		})),
	)

	serve(app, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, buf.String())

	serve(app, httptest.NewRequest(http.MethodGet, "/templates", nil))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request", record["msg"])
	assert.Equal(t, "/templates", record["path"])
	assert.EqualValues(t, http.StatusOK, record["status"])
	assert.EqualValues(t, 4, record["size"])
}
