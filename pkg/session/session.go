package session

import "maps"

// Session is the per-request data bag. The middleware creates one instance
// per request and hands it to downstream handlers through the request
// context; it is never shared between requests and is discarded once the
// response has been reconciled against the store.
//
// Session is not safe for concurrent use. Each request owns its instance
// exclusively; two racing requests that present the same identifier each
// get their own copy, and the last response to complete wins in the store.
type Session struct {
	id          string
	oldID       string
	data        map[string]any
	begun       bool
	dirty       bool
	destroyed   bool
	regenerated bool
}

// NewSession constructs a request's session. A non-empty id means a valid
// incoming identifier existed, which implicitly begins the session. The
// middleware calls this on every request; it is exported for tests and
// custom transports.
func NewSession(id string, data map[string]any) *Session {
	if data == nil {
		data = make(map[string]any)
	}
	return &Session{
		id:    id,
		data:  data,
		begun: id != "",
	}
}

// ID returns the current session identifier, or "" if none has been
// assigned yet. A begun session without an id receives one when the
// response is reconciled.
func (s *Session) ID() string { return s.id }

// OldID returns the identifier that was replaced by the most recent
// RegenerateID call, or "" if the identifier never changed.
func (s *Session) OldID() string { return s.oldID }

// Begun reports whether the session is active for persistence purposes,
// either via an explicit Begin call or by presenting a valid identifier.
func (s *Session) Begun() bool { return s.begun }

// Dirty reports whether any mutation happened during this request. It is
// informational: persistence is gated by Begun and the identifier, not by
// this flag, so the store TTL slides even on read-only requests.
func (s *Session) Dirty() bool { return s.dirty }

// Destroyed reports whether Destroy was called. Destroyed is terminal for
// the request: the data bag stays empty and further mutation is ignored.
func (s *Session) Destroyed() bool { return s.destroyed }

// Regenerated reports whether the identifier changed during this request.
func (s *Session) Regenerated() bool { return s.regenerated }

// Begin marks the session active so it gets persisted and a cookie issued
// when the response is written. Idempotent; sessions loaded from a valid
// incoming cookie are already begun.
func (s *Session) Begin() {
	s.begun = true
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetString returns the value under key if it is a string.
func (s *Session) GetString(key string) (string, bool) {
	v, ok := s.data[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// GetInt returns the value under key coerced to int. JSON decoding turns
// numbers into float64, so both forms are accepted.
func (s *Session) GetInt(key string) (int, bool) {
	v, ok := s.data[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetBool returns the value under key if it is a bool.
func (s *Session) GetBool(key string) (bool, bool) {
	v, ok := s.data[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Has reports whether key is present.
func (s *Session) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Len returns the number of stored keys.
func (s *Session) Len() int { return len(s.data) }

// Set stores value under key. Values must be JSON-encodable; anything else
// fails at reconciliation time. Ignored on a destroyed session.
//
// Set does not begin the session: data written without Begin on a request
// that carried no valid cookie is discarded at the end of the request.
func (s *Session) Set(key string, value any) {
	if s.destroyed {
		return
	}
	s.data[key] = value
	s.dirty = true
}

// Delete removes key from the session data.
func (s *Session) Delete(key string) {
	if s.destroyed {
		return
	}
	if _, ok := s.data[key]; ok {
		delete(s.data, key)
		s.dirty = true
	}
}

// Replace swaps the entire data bag for the given map. The map is copied;
// the caller keeps ownership of data. Like Set it does not begin the
// session.
func (s *Session) Replace(data map[string]any) {
	if s.destroyed {
		return
	}
	s.data = make(map[string]any, len(data))
	maps.Copy(s.data, data)
	s.dirty = true
}

// All returns a copy of the session data.
func (s *Session) All() map[string]any {
	out := make(map[string]any, len(s.data))
	maps.Copy(out, s.data)
	return out
}

// RegenerateID replaces the session identifier while keeping the data,
// recording the previous identifier so its store entry can be removed at
// reconciliation. Calling it with the current identifier is a no-op, and a
// destroyed session ignores it: destruction takes precedence over
// regeneration within a request.
func (s *Session) RegenerateID(newID string) {
	if s.destroyed || newID == "" || newID == s.id {
		return
	}
	s.oldID = s.id
	s.id = newID
	s.regenerated = s.oldID != ""
	s.dirty = true
	s.begun = true
}

// Regenerate generates a fresh identifier and applies RegenerateID.
// It returns the new identifier.
func (s *Session) Regenerate() (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	s.RegenerateID(token)
	return token, nil
}

// Destroy clears the data bag and marks the session destroyed. The
// identifiers are kept so reconciliation can delete the store entries and
// expire the cookie. Destroy wins over any earlier or later regeneration
// in the same request.
func (s *Session) Destroy() {
	s.data = make(map[string]any)
	s.destroyed = true
	s.dirty = true
}

// adoptID assigns a deferred identifier to a session that was begun
// without one. Unlike RegenerateID it records no old identifier: there is
// no store entry to clean up.
func (s *Session) adoptID(id string) {
	s.id = id
}
