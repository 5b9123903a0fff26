package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// SessionStore implements session.Store on top of the sessions table.
// Expiration is enforced on read: Get treats rows past expires_at as
// absent, and DeleteExpired reclaims them physically. A NULL expires_at
// never expires, matching the zero-TTL session-cookie mode.
type SessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore wraps an existing connection pool. Run Migrate first to
// create the schema.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// Get retrieves the payload stored under key.
func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM sessions WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set stores the payload under key, replacing any previous row and
// resetting the expiration deadline.
func (s *SessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (key, data, expires_at, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (key) DO UPDATE
		 SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at, updated_at = now()`,
		key, value, expiresAt,
	)
	return err
}

// Delete removes key. Missing keys are not an error.
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE key = $1`, key)
	return err
}

// DeleteExpired reclaims rows past their deadline. Run it periodically;
// nothing in the read path depends on it.
func (s *SessionStore) DeleteExpired(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at <= now()`)
	return err
}
