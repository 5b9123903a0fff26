package session

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// Config holds session manager configuration.
type Config struct {
	// TTL is the sliding lifetime of a session: both the cookie Max-Age
	// and the store entry expiration, refreshed on every response.
	// Zero means session-cookie semantics (no Max-Age, no store
	// expiration). Negative values are rejected.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"1h"`

	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"SID"`

	CookiePath     string `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"SESSION_COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool   `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool   `env:"SESSION_COOKIE_HTTP_ONLY" envDefault:"true"`

	// CookieSameSite is one of "", "lax", "strict", "none". The "none"
	// mode forces CookieSecure to true during normalization, as required
	// by browsers.
	CookieSameSite string `env:"SESSION_COOKIE_SAME_SITE" envDefault:"lax"`

	// KeyPrefix is prepended to every store key.
	KeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"sess:"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		TTL:            time.Hour,
		CookieName:     "SID",
		CookiePath:     "/",
		CookieDomain:   "",
		CookieSecure:   false,
		CookieHTTPOnly: true,
		CookieSameSite: "lax",
		KeyPrefix:      "sess:",
	}
}

// Normalize validates the configuration, fills empty fields with defaults
// and enforces the SameSite=None/Secure coupling. The manager calls it once
// at construction so per-request cookie decisions stay a pure lookup.
func (c *Config) Normalize() error {
	if c.TTL < 0 {
		return ErrInvalidTTL
	}
	if c.CookieName == "" {
		c.CookieName = "SID"
	}
	if c.CookiePath == "" {
		c.CookiePath = "/"
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = "sess:"
	}

	mode := strings.ToLower(c.CookieSameSite)
	switch mode {
	case "", "lax", "strict", "none":
		c.CookieSameSite = mode
	default:
		return errors.Join(ErrInvalidSameSite, errors.New(c.CookieSameSite))
	}

	// Browsers reject SameSite=None cookies without the Secure attribute.
	if c.CookieSameSite == "none" {
		c.CookieSecure = true
	}

	return nil
}

// SameSiteMode maps the configured string to the net/http constant.
func (c Config) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.CookieSameSite) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}

// NewFromConfig creates a Manager from the provided Config.
func NewFromConfig(cfg Config, store Store, opts ...Option) (*Manager, error) {
	return New(store, append([]Option{WithConfig(cfg)}, opts...)...)
}
