package mongo

import "errors"

var (
	ErrFailedToConnect   = errors.New("mongo.connection_failed")
	ErrHealthcheckFailed = errors.New("mongo.healthcheck_failed")
)
