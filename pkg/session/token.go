package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

const (
	// tokenBytes is the entropy of a generated identifier. 32 random bytes
	// hex-encode to 64 characters, which keeps the collision probability
	// negligible for any realistic session population.
	tokenBytes = 32

	minTokenLen = 16
	maxTokenLen = 128
)

// NewToken generates a cryptographically secure session identifier:
// a hex-encoded string of 64 characters.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return hex.EncodeToString(b), nil
}

// ValidToken reports whether candidate is acceptable as an incoming session
// identifier: 16 to 128 characters, hexadecimal only. Anything else is
// treated the same as no identifier at all.
func ValidToken(candidate string) bool {
	if len(candidate) < minTokenLen || len(candidate) > maxTokenLen {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
