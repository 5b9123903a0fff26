package redis

import "errors"

var (
	ErrFailedToParseConnString = errors.New("redis.invalid_connection_string")
	ErrNotReady                = errors.New("redis.not_ready")
	ErrHealthcheckFailed       = errors.New("redis.healthcheck_failed")
)
