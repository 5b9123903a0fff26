package pg

import "errors"

var (
	ErrFailedToParseConfig     = errors.New("pg.invalid_connection_config")
	ErrFailedToOpenConnection  = errors.New("pg.connection_failed")
	ErrFailedToApplyMigrations = errors.New("pg.migrations_failed")
	ErrHealthcheckFailed       = errors.New("pg.healthcheck_failed")
)
