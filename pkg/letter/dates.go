package letter

import (
	"strings"
	"time"
)

// Date layouts.
const (
	// DateLayout is the wire format of every date field.
	DateLayout = time.DateOnly
	// LongDateLayout is the human-readable form used in letters.
	LongDateLayout = "January 2, 2006"
)

// ParseDate parses a YYYY-MM-DD value as midnight in the configured location.
func ParseDate(value string, opts ...Option) (time.Time, error) {
	o := newOptions(opts)
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), o.location)
}

// FormatDate renders a YYYY-MM-DD value as "January 2, 2006". Values that do
// not parse are returned unchanged.
func FormatDate(value string, opts ...Option) string {
	t, err := ParseDate(value, opts...)
	if err != nil {
		return value
	}
	return t.Format(LongDateLayout)
}

// Today returns the current civil date as YYYY-MM-DD.
func Today(opts ...Option) string {
	return newOptions(opts).today().Format(DateLayout)
}

// TodayLong returns the current civil date as "January 2, 2006".
func TodayLong(opts ...Option) string {
	return newOptions(opts).today().Format(LongDateLayout)
}

// MinDate returns tomorrow as YYYY-MM-DD, the earliest valid last working day.
func MinDate(opts ...Option) string {
	return newOptions(opts).today().AddDate(0, 0, 1).Format(DateLayout)
}

// IsFuture reports whether the civil date value lies strictly after today.
// Unparseable values are not in the future.
func IsFuture(value string, opts ...Option) bool {
	o := newOptions(opts)
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), o.location)
	if err != nil {
		return false
	}
	return t.After(o.today())
}
