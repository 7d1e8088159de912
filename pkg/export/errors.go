package export

import (
	"errors"
	"strings"
)

var (
	// ErrNotReady is matched by every *ReadinessError.
	ErrNotReady = errors.New("export: letter is not ready for export")

	// ErrExportInProgress is returned when the same format is already being
	// exported for the same scope.
	ErrExportInProgress = errors.New("export: export already in progress")

	// ErrUnknownFormat is returned for unsupported export formats.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrClipboardUnavailable is returned by clipboard writers that cannot
	// reach a clipboard.
	ErrClipboardUnavailable = errors.New("export: clipboard unavailable")
)

// ReadinessError lists every reason a letter cannot be exported yet.
type ReadinessError struct {
	Errors []string
}

func (e *ReadinessError) Error() string {
	return strings.Join(e.Errors, ", ")
}

// Is reports whether target is ErrNotReady.
func (e *ReadinessError) Is(target error) bool {
	return target == ErrNotReady
}

// Error is a serialization or delivery failure. Message is meant for users,
// Err keeps the underlying cause.
type Error struct {
	Err     error
	Format  Format
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failure(f Format, err error) *Error {
	return &Error{Format: f, Message: f.failureMessage(), Err: err}
}
