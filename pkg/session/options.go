package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig sets custom configuration. It is normalized during New.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// WithCookieManager overrides the cookie manager built from the config.
// Use it to share one attribute policy across the whole service.
func WithCookieManager(cookies *cookie.Manager) Option {
	return func(m *Manager) {
		m.cookies = cookies
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithErrorHandler sets the handler invoked when reconciliation against
// the store fails. The default responds 500 with a plain status text.
func WithErrorHandler(h func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(m *Manager) {
		m.errorHandler = h
	}
}

// WithTokenGenerator overrides identifier generation. Test seam.
func WithTokenGenerator(fn func() (string, error)) Option {
	return func(m *Manager) {
		m.newToken = fn
	}
}

// WithTTL overrides the configured session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// WithCookieName overrides the configured cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithKeyPrefix overrides the configured store key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(m *Manager) {
		m.config.KeyPrefix = prefix
	}
}
