package session

import (
	"context"
	"time"
)

// Store is the backing key-value collaborator. Keys arrive already
// prefixed; values are opaque payloads produced by the manager (the JSON
// encoding of the session data map).
//
// Implementations must return ErrNotFound (possibly wrapped) from Get when
// the key is absent. Any other error is treated as an infrastructure
// failure and fails the request being reconciled.
type Store interface {
	// Get retrieves the payload stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under key with the given lifetime.
	// A non-positive ttl means the entry does not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
