package views

import "errors"

// ErrUnknownView is returned when rendering a page or partial that was not parsed.
var ErrUnknownView = errors.New("views: unknown view")
