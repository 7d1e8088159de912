package redis

import "errors"

// Errors returned by Open and Healthcheck. Underlying causes are joined.
var (
	ErrEmptyConnectionURL = errors.New("redis: REDIS_URL is empty")
	ErrFailedToParseURL   = errors.New("redis: invalid REDIS_URL")
	ErrConnectionFailed   = errors.New("redis: cache server unreachable")
	ErrHealthcheckFailed  = errors.New("redis: cache ping failed")
)
