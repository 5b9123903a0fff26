package session_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

var (
	idA = strings.Repeat("deadbeef", 8)
	idB = strings.Repeat("beefcafe", 8)
	idC = strings.Repeat("c0ffee00", 8)
)

func TestNewSession(t *testing.T) {
	t.Run("fresh session is not begun", func(t *testing.T) {
		sess := session.NewSession("", nil)

		assert.Empty(t, sess.ID())
		assert.False(t, sess.Begun())
		assert.False(t, sess.Dirty())
		assert.False(t, sess.Destroyed())
		assert.False(t, sess.Regenerated())
		assert.Zero(t, sess.Len())
	})

	t.Run("incoming identifier begins the session", func(t *testing.T) {
		sess := session.NewSession(idA, map[string]any{"visits": 5})

		assert.Equal(t, idA, sess.ID())
		assert.True(t, sess.Begun())
		assert.False(t, sess.Dirty())

		visits, ok := sess.GetInt("visits")
		require.True(t, ok)
		assert.Equal(t, 5, visits)
	})
}

func TestSession_Begin(t *testing.T) {
	sess := session.NewSession("", nil)

	sess.Begin()
	assert.True(t, sess.Begun())
	assert.Empty(t, sess.ID(), "identifier assignment is deferred to reconciliation")

	// Idempotent.
	sess.Begin()
	assert.True(t, sess.Begun())
}

func TestSession_DataOperations(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		sess := session.NewSession("", nil)

		sess.Set("name", "alice")
		sess.Set("visits", 3)
		sess.Set("admin", true)

		name, ok := sess.GetString("name")
		require.True(t, ok)
		assert.Equal(t, "alice", name)

		visits, ok := sess.GetInt("visits")
		require.True(t, ok)
		assert.Equal(t, 3, visits)

		admin, ok := sess.GetBool("admin")
		require.True(t, ok)
		assert.True(t, admin)

		assert.True(t, sess.Dirty())
		assert.False(t, sess.Begun(), "mutation alone does not begin the session")
	})

	t.Run("get int accepts json numbers", func(t *testing.T) {
		// Store payloads decode numbers as float64.
		sess := session.NewSession(idA, map[string]any{"visits": float64(7)})

		visits, ok := sess.GetInt("visits")
		require.True(t, ok)
		assert.Equal(t, 7, visits)
	})

	t.Run("typed getter mismatch", func(t *testing.T) {
		sess := session.NewSession("", nil)
		sess.Set("name", "alice")

		_, ok := sess.GetInt("name")
		assert.False(t, ok)
		_, ok = sess.GetBool("name")
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		sess := session.NewSession(idA, map[string]any{"a": 1})

		sess.Delete("a")
		assert.False(t, sess.Has("a"))
		assert.True(t, sess.Dirty())
	})

	t.Run("delete of absent key is not a mutation", func(t *testing.T) {
		sess := session.NewSession(idA, map[string]any{"a": 1})

		sess.Delete("missing")
		assert.False(t, sess.Dirty())
	})

	t.Run("replace", func(t *testing.T) {
		sess := session.NewSession(idA, map[string]any{"a": 1})

		replacement := map[string]any{"b": 2}
		sess.Replace(replacement)

		assert.False(t, sess.Has("a"))
		assert.True(t, sess.Has("b"))

		// The session owns a copy, not the caller's map.
		replacement["c"] = 3
		assert.False(t, sess.Has("c"))
	})

	t.Run("all returns a copy", func(t *testing.T) {
		sess := session.NewSession(idA, map[string]any{"a": 1})

		all := sess.All()
		all["b"] = 2
		assert.False(t, sess.Has("b"))
	})
}

func TestSession_RegenerateID(t *testing.T) {
	t.Run("records previous identifier", func(t *testing.T) {
		sess := session.NewSession(idA, map[string]any{"a": 1})

		sess.RegenerateID(idB)

		assert.Equal(t, idB, sess.ID())
		assert.Equal(t, idA, sess.OldID())
		assert.True(t, sess.Regenerated())
		assert.True(t, sess.Has("a"), "data survives regeneration")
	})

	t.Run("same identifier is a no-op", func(t *testing.T) {
		sess := session.NewSession(idA, nil)

		sess.RegenerateID(idB)
		sess.RegenerateID(idB)

		assert.Equal(t, idB, sess.ID())
		assert.Equal(t, idA, sess.OldID(), "second call must not overwrite the recorded old identifier")
	})

	t.Run("repeated regeneration keeps the latest prior identifier", func(t *testing.T) {
		sess := session.NewSession(idA, nil)

		sess.RegenerateID(idB)
		sess.RegenerateID(idC)

		assert.Equal(t, idC, sess.ID())
		assert.Equal(t, idB, sess.OldID())
	})

	t.Run("fresh session gains an identifier without regeneration", func(t *testing.T) {
		sess := session.NewSession("", nil)

		sess.RegenerateID(idA)

		assert.Equal(t, idA, sess.ID())
		assert.Empty(t, sess.OldID())
		assert.False(t, sess.Regenerated(), "there was no previous identifier to clean up")
		assert.True(t, sess.Begun())
	})

	t.Run("regenerate generates a valid token", func(t *testing.T) {
		sess := session.NewSession(idA, nil)

		newID, err := sess.Regenerate()
		require.NoError(t, err)

		assert.True(t, session.ValidToken(newID))
		assert.Equal(t, newID, sess.ID())
		assert.Equal(t, idA, sess.OldID())
	})
}

func TestSession_Destroy(t *testing.T) {
	t.Run("clears data and keeps identifier", func(t *testing.T) {
		sess := session.NewSession(idA, map[string]any{"a": 1})

		sess.Destroy()

		assert.True(t, sess.Destroyed())
		assert.Zero(t, sess.Len())
		assert.Equal(t, idA, sess.ID(), "reconciliation still needs the key to delete")
	})

	t.Run("mutation after destroy is ignored", func(t *testing.T) {
		sess := session.NewSession(idA, map[string]any{"a": 1})

		sess.Destroy()
		sess.Set("b", 2)
		sess.Replace(map[string]any{"c": 3})

		assert.Zero(t, sess.Len())
	})

	t.Run("regeneration after destroy is ignored", func(t *testing.T) {
		sess := session.NewSession(idA, nil)

		sess.Destroy()
		sess.RegenerateID(idB)

		assert.Equal(t, idA, sess.ID())
		assert.False(t, sess.Regenerated())
	})

	t.Run("destroy after regeneration keeps both identifiers", func(t *testing.T) {
		sess := session.NewSession(idA, nil)

		sess.RegenerateID(idB)
		sess.Destroy()

		assert.True(t, sess.Destroyed())
		assert.Equal(t, idB, sess.ID())
		assert.Equal(t, idA, sess.OldID())
	})
}
