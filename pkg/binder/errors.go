package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrFailedToParseForm    = errors.New("binder: failed to parse form data")
	ErrFailedToParseQuery   = errors.New("binder: failed to parse query parameters")
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil pointer to a struct")
)
