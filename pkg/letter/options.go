package letter

import "time"

// Clock returns the current instant.
type Clock func() time.Time

// Option configures how "today" is determined.
type Option func(*options)

type options struct {
	clock    Clock
	location *time.Location
}

func newOptions(opts []Option) options {
	o := options{clock: time.Now, location: time.Local}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock sets the clock used for "today". A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLocation sets the location in which calendar dates are interpreted.
// Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// today returns midnight of the current civil date in the configured location.
func (o options) today() time.Time {
	now := o.clock().In(o.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, o.location)
}
