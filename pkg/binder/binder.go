package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// MaxMemory bounds multipart form parsing.
const MaxMemory = 1 << 20

// Binder fills v from r.
type Binder func(r *http.Request, v any) error

// Form binds url-encoded or multipart form values using `form` tags.
func Form() Binder {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
		case "multipart/form-data":
			if err := r.ParseMultipartForm(MaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return bindToStruct(v, "form", r.MultipartForm.Value, ErrFailedToParseForm)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

// Query binds URL query parameters using `query` tags.
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
