package session

import "errors"

var (
	// ErrNotFound indicates the store has no value under the requested key.
	// Store implementations must return it (possibly wrapped) so the
	// manager can distinguish "no session" from an infrastructure failure.
	ErrNotFound = errors.New("session.not_found")

	// ErrTokenGeneration indicates the system's entropy source failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrNoStore indicates the manager was constructed without a store.
	ErrNoStore = errors.New("session.no_store")

	// ErrInvalidSameSite indicates an unrecognized SameSite mode in config.
	ErrInvalidSameSite = errors.New("session.invalid_same_site")

	// ErrInvalidTTL indicates a negative TTL in config.
	ErrInvalidTTL = errors.New("session.invalid_ttl")
)
