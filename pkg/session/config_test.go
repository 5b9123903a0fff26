package session_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()

	assert.Equal(t, time.Hour, cfg.TTL)
	assert.Equal(t, "SID", cfg.CookieName)
	assert.Equal(t, "/", cfg.CookiePath)
	assert.Empty(t, cfg.CookieDomain)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.CookieHTTPOnly)
	assert.Equal(t, "lax", cfg.CookieSameSite)
	assert.Equal(t, "sess:", cfg.KeyPrefix)
}

func TestConfig_Normalize(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		cfg := session.Config{}
		require.NoError(t, cfg.Normalize())

		assert.Equal(t, "SID", cfg.CookieName)
		assert.Equal(t, "/", cfg.CookiePath)
		assert.Equal(t, "sess:", cfg.KeyPrefix)
	})

	t.Run("same site none forces secure", func(t *testing.T) {
		cfg := session.DefaultConfig()
		cfg.CookieSameSite = "none"
		cfg.CookieSecure = false

		require.NoError(t, cfg.Normalize())
		assert.True(t, cfg.CookieSecure)
	})

	t.Run("same site is case insensitive", func(t *testing.T) {
		cfg := session.DefaultConfig()
		cfg.CookieSameSite = "Strict"

		require.NoError(t, cfg.Normalize())
		assert.Equal(t, "strict", cfg.CookieSameSite)
	})

	t.Run("rejects unknown same site mode", func(t *testing.T) {
		cfg := session.DefaultConfig()
		cfg.CookieSameSite = "sideways"

		assert.ErrorIs(t, cfg.Normalize(), session.ErrInvalidSameSite)
	})

	t.Run("rejects negative ttl", func(t *testing.T) {
		cfg := session.DefaultConfig()
		cfg.TTL = -time.Second

		assert.ErrorIs(t, cfg.Normalize(), session.ErrInvalidTTL)
	})
}

func TestConfig_SameSiteMode(t *testing.T) {
	tests := []struct {
		configured string
		expected   http.SameSite
	}{
		{configured: "lax", expected: http.SameSiteLaxMode},
		{configured: "strict", expected: http.SameSiteStrictMode},
		{configured: "none", expected: http.SameSiteNoneMode},
		{configured: "", expected: http.SameSiteDefaultMode},
	}

	for _, tt := range tests {
		t.Run("mode "+tt.configured, func(t *testing.T) {
			cfg := session.DefaultConfig()
			cfg.CookieSameSite = tt.configured
			assert.Equal(t, tt.expected, cfg.SameSiteMode())
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })

	cfg := session.DefaultConfig()
	cfg.CookieName = "APPSESS"
	cfg.TTL = 30 * time.Minute

	manager, err := session.NewFromConfig(cfg, store)
	require.NoError(t, err)

	assert.Equal(t, "APPSESS", manager.Config().CookieName)
	assert.Equal(t, 30*time.Minute, manager.Config().TTL)
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := session.New(nil)
	assert.ErrorIs(t, err, session.ErrNoStore)
}
