package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess:a", []byte(`{"visits":1}`), time.Minute))

	value, err := store.Get(ctx, "sess:a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"visits":1}`), value)

	// The returned slice is a copy; mutating it must not affect the store.
	value[0] = 'X'
	again, err := store.Get(ctx, "sess:a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"visits":1}`), again)
}

func TestMemoryStore_Missing(t *testing.T) {
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })

	_, err := store.Get(context.Background(), "sess:missing")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess:a", []byte("x"), 0))
	require.NoError(t, store.Delete(ctx, "sess:a"))

	_, err := store.Get(ctx, "sess:a")
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "sess:a"))
}

func TestMemoryStore_Expiration(t *testing.T) {
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess:short", []byte("x"), 10*time.Millisecond))
	require.NoError(t, store.Set(ctx, "sess:forever", []byte("y"), 0))

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "sess:short")
	assert.ErrorIs(t, err, session.ErrNotFound)

	value, err := store.Get(ctx, "sess:forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), value, "zero ttl entries never expire")
}

func TestMemoryStore_SlidingExpiration(t *testing.T) {
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess:a", []byte("x"), 15*time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	// Rewriting resets the deadline.
	require.NoError(t, store.Set(ctx, "sess:a", []byte("x"), 15*time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	_, err := store.Get(ctx, "sess:a")
	assert.NoError(t, err)
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess:short", []byte("x"), 5*time.Millisecond))
	require.NoError(t, store.Set(ctx, "sess:long", []byte("y"), time.Minute))

	time.Sleep(10 * time.Millisecond)
	store.DeleteExpired()

	assert.Equal(t, 1, store.Len())
}
