package health

import "errors"

// ErrCheckFailed is returned by Response.Err when any check failed.
var ErrCheckFailed = errors.New("health: check failed")

// Err returns ErrCheckFailed for an unhealthy response.
func (r *Response) Err() error {
	if r.Status == StatusUnhealthy {
		return ErrCheckFailed
	}
	return nil
}
