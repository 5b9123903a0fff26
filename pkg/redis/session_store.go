package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// SessionStore implements session.Store on top of a Redis client. Session
// payloads map directly onto Redis strings with native TTL, so sliding
// expiration is a plain SET with expiration on every response.
type SessionStore struct {
	db redis.UniversalClient
}

// NewSessionStore wraps an existing Redis client. The caller owns the
// client's lifecycle.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{db: client}
}

// Get retrieves the payload stored under key.
func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.db.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set stores the payload under key. A non-positive ttl stores it without
// expiration.
func (s *SessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.db.Set(ctx, key, value, ttl).Err()
}

// Delete removes key. Missing keys are not an error.
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	return s.db.Del(ctx, key).Err()
}
