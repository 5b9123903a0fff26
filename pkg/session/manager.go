package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Manager orchestrates the session lifecycle around each request: it loads
// the session named by the incoming cookie, exposes it to the handler, and
// reconciles the final session state against the store when the response
// is written.
type Manager struct {
	store        Store
	config       Config
	cookies      *cookie.Manager
	log          *slog.Logger
	newToken     func() (string, error)
	errorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// New creates a session manager backed by the given store.
func New(store Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	m := &Manager{
		store:    store,
		config:   DefaultConfig(),
		newToken: NewToken,
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.config.Normalize(); err != nil {
		return nil, err
	}

	if m.cookies == nil {
		cookies, err := cookie.New(
			cookie.WithPath(m.config.CookiePath),
			cookie.WithDomain(m.config.CookieDomain),
			cookie.WithSecure(m.config.CookieSecure),
			cookie.WithHTTPOnly(m.config.CookieHTTPOnly),
			cookie.WithSameSite(m.config.SameSiteMode()),
		)
		if err != nil {
			return nil, err
		}
		m.cookies = cookies
	}

	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if m.errorHandler == nil {
		m.errorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	return m, nil
}

// Config returns the normalized configuration the manager runs with.
func (m *Manager) Config() Config { return m.config }

// load builds the request's session. A valid incoming identifier implies
// the session is begun; its cached payload is decoded into the data bag.
// A missing key or a malformed payload yields an empty bag, not an error.
// Only an actual store failure is returned, since serving the request with
// a silently empty session would desynchronize client and store.
func (m *Manager) load(r *http.Request) (*Session, error) {
	id := m.incomingID(r)
	if id == "" {
		return NewSession("", nil), nil
	}

	payload, err := m.store.Get(r.Context(), m.config.KeyPrefix+id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return NewSession(id, nil), nil
		}
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		m.log.DebugContext(r.Context(), "session payload undecodable, starting empty",
			slog.String("key", m.config.KeyPrefix+id), slog.Any("error", err))
		data = nil
	}

	return NewSession(id, data), nil
}

// incomingID extracts a valid session identifier from the request cookie,
// or "" when the cookie is absent or fails validation.
func (m *Manager) incomingID(r *http.Request) string {
	c, err := r.Cookie(m.config.CookieName)
	if err != nil || !ValidToken(c.Value) {
		return ""
	}
	return c.Value
}

// commit reconciles the session's final state against the store and emits
// the cookie, in this order of precedence:
//
//  1. Never begun and no identifier: nothing happens. Requests that never
//     touch the session leave zero trace.
//  2. Destroyed: store entries (current and, after a regeneration, the
//     previous one) are deleted and the cookie is expired.
//  3. Otherwise: a begun session without an identifier gets a fresh one,
//     the previous store entry is deleted after a regeneration, the data
//     bag is written under the effective key with the configured TTL, and
//     the cookie is (re)issued. The unconditional write is what slides
//     the expiration on read-only requests.
//
// Any store failure is returned and must fail the request: swallowing it
// would leave the client's cookie pointing at state the store never saw.
func (m *Manager) commit(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	switch {
	case !sess.Begun() && sess.ID() == "":
		return nil

	case sess.Destroyed():
		if sess.Regenerated() {
			if err := m.store.Delete(ctx, m.config.KeyPrefix+sess.OldID()); err != nil {
				return err
			}
		}
		if id := sess.ID(); id != "" {
			if err := m.store.Delete(ctx, m.config.KeyPrefix+id); err != nil {
				return err
			}
		}
		m.cookies.Delete(w, m.config.CookieName)
		return nil

	default:
		if sess.ID() == "" {
			id, err := m.newToken()
			if err != nil {
				return err
			}
			sess.adoptID(id)
		}

		if sess.Regenerated() {
			if err := m.store.Delete(ctx, m.config.KeyPrefix+sess.OldID()); err != nil {
				return err
			}
		}

		payload, err := json.Marshal(sess.All())
		if err != nil {
			return err
		}
		if err := m.store.Set(ctx, m.config.KeyPrefix+sess.ID(), payload, m.config.TTL); err != nil {
			return err
		}

		maxAge := 0
		if m.config.TTL > 0 {
			maxAge = int(m.config.TTL.Seconds())
		}
		return m.cookies.Set(w, m.config.CookieName, sess.ID(), cookie.WithMaxAge(maxAge))
	}
}
