package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/middlewares"
	"github.com/dmitrymomot/resignly/pkg/binder"
	"github.com/dmitrymomot/resignly/pkg/blog"
	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/htmx"
	"github.com/dmitrymomot/resignly/views"
)

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error     string   `json:"error"`
	Errors    []string `json:"errors,omitempty"`
	Code      int      `json:"code"`
	RequestID string   `json:"request_id,omitempty"`
}

// ErrorHandler maps handler errors to responses. JSON clients get an
// errorResponse, htmx requests get a toast and browsers get the error page.
func ErrorHandler(v Views) resignly.ErrorHandler {
	return func(c resignly.Context, err error) error {
		e := describe(err)
		e.RequestID = middlewares.GetRequestID(c)

		if e.Code >= http.StatusInternalServerError {
			c.LogError("request failed", slog.Int("status", e.Code), slog.Any("error", err))
		} else {
			c.LogDebug("request rejected", slog.Int("status", e.Code), slog.Any("error", err))
		}

		switch {
		case wantsJSON(c):
			return c.JSON(e.Code, errorResponse{Error: e.Message, Errors: e.Errors, Code: e.Code, RequestID: e.RequestID})
		case c.IsHTMX():
			return c.Render(e.Code, v.partial("error_toast", e), htmx.WithReswap(htmx.SwapNone))
		default:
			return v.render(c, e.Code, "error", views.Meta{Title: e.Title}, e)
		}
	}
}

// NotFound is the handler for unmatched routes.
func NotFound(c resignly.Context) error {
	return resignly.ErrNotFound("The page you are looking for does not exist.")
}

// MethodNotAllowed is the handler for routes matched with the wrong method.
func MethodNotAllowed(c resignly.Context) error {
	return resignly.NewHTTPError(http.StatusMethodNotAllowed, "This action is not supported here.")
}

func describe(err error) views.Error {
	var (
		httpErr   *resignly.HTTPError
		notReady  *export.ReadinessError
		exportErr *export.Error
	)

	switch {
	case errors.As(err, &httpErr):
		return views.Error{Code: httpErr.Code, Title: httpErr.StatusText(), Message: httpErr.Message}
	case errors.As(err, &notReady):
		return views.Error{
			Code:    http.StatusUnprocessableEntity,
			Title:   "Your letter is not ready",
			Message: "Please fill in the missing details before exporting.",
			Errors:  notReady.Errors,
		}
	case errors.Is(err, export.ErrExportInProgress):
		return views.Error{
			Code:    http.StatusConflict,
			Title:   "Export in progress",
			Message: "This export is already running. Please wait for it to finish.",
		}
	case errors.Is(err, export.ErrUnknownFormat):
		return views.Error{Code: http.StatusNotFound, Title: "Unknown format", Message: "This export format is not supported."}
	case errors.Is(err, catalog.ErrTemplateNotFound):
		return views.Error{Code: http.StatusNotFound, Title: "Template not found", Message: "We could not find that template."}
	case errors.Is(err, blog.ErrPostNotFound):
		return views.Error{Code: http.StatusNotFound, Title: "Post not found", Message: "We could not find that article."}
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return views.Error{Code: http.StatusUnsupportedMediaType, Title: "Unsupported request", Message: "Please submit the form again."}
	case errors.Is(err, binder.ErrFailedToParseForm), errors.Is(err, binder.ErrFailedToParseQuery):
		return views.Error{Code: http.StatusBadRequest, Title: "Bad request", Message: "Please submit the form again."}
	case middlewares.IsTimeoutError(err):
		return views.Error{Code: http.StatusServiceUnavailable, Title: "Request timed out", Message: "The request took too long. Please try again."}
	case errors.As(err, &exportErr):
		return views.Error{Code: http.StatusInternalServerError, Title: "Export failed", Message: exportErr.Message}
	}

	return views.Error{
		Code:    http.StatusInternalServerError,
		Title:   http.StatusText(http.StatusInternalServerError),
		Message: "Something went wrong. Please try again.",
	}
}

func wantsJSON(c resignly.Context) bool {
	return strings.Contains(c.Header("Accept"), "application/json")
}
