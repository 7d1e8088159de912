package catalog

import "errors"

var (
	// ErrTemplateNotFound is returned when no template has the requested id.
	ErrTemplateNotFound = errors.New("catalog: template not found")

	// ErrUnknownCategory is returned when a category value is not recognized.
	ErrUnknownCategory = errors.New("catalog: unknown category")
)
