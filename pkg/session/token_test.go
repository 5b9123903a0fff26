package session_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestNewToken(t *testing.T) {
	token, err := session.NewToken()
	require.NoError(t, err)

	assert.Len(t, token, 64)
	assert.True(t, session.ValidToken(token))

	// Two generations must never collide.
	other, err := session.NewToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestValidToken(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		expected  bool
	}{
		{
			name:      "generated length",
			candidate: strings.Repeat("deadbeef", 8),
			expected:  true,
		},
		{
			name:      "minimum length",
			candidate: strings.Repeat("a", 16),
			expected:  true,
		},
		{
			name:      "maximum length",
			candidate: strings.Repeat("f", 128),
			expected:  true,
		},
		{
			name:      "mixed case hex",
			candidate: "DeadBeef00C0FFEE",
			expected:  true,
		},
		{
			name:      "empty",
			candidate: "",
			expected:  false,
		},
		{
			name:      "too short",
			candidate: "deadbeef",
			expected:  false,
		},
		{
			name:      "too long",
			candidate: strings.Repeat("a", 129),
			expected:  false,
		},
		{
			name:      "non-hex characters",
			candidate: strings.Repeat("deadbeef", 7) + "zzzzzzzz",
			expected:  false,
		},
		{
			name:      "whitespace",
			candidate: "deadbeef deadbeef",
			expected:  false,
		},
		{
			name:      "injection attempt",
			candidate: "deadbeef'; DROP TABLE sessions;--",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, session.ValidToken(tt.candidate))
		})
	}
}
