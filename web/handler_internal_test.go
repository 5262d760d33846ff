package web

import (
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeReturnToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty defaults to root",
			input:    "",
			expected: "/",
		},
		{
			name:     "relative path is allowed",
			input:    "/p/123",
			expected: "/p/123",
		},
		{
			name:     "relative path with fragment is allowed",
			input:    "/#post-123",
			expected: "/#post-123",
		},
		{
			name:     "missing leading slash is rejected",
			input:    "p/123",
			expected: "/",
		},
		{
			name:     "absolute url is rejected",
			input:    "https://evil.com",
			expected: "/",
		},
		{
			name:     "protocol relative url is rejected",
			input:    "//evil.com",
			expected: "/",
		},
		{
			name:     "backslash protocol relative url is rejected",
			input:    "/\\evil.com",
			expected: "/",
		},
		{
			name:     "absolute url text as local path is allowed",
			input:    "/https://evil.com",
			expected: "/https://evil.com",
		},
		{
			name:     "double slash in local path is allowed",
			input:    "/foo//bar",
			expected: "/foo//bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizeReturnToPath(tt.input)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSessionID(t *testing.T) {
	t.Parallel()

	session := sessions.NewSession(nil, "postfeed-test")

	id := sessionID(session)
	require.NotEmpty(t, id)
	assert.Equal(t, id, session.Values[sessionIDKey])
	assert.Equal(t, id, sessionID(session))

	other := sessions.NewSession(nil, "postfeed-test")
	assert.NotEqual(t, id, sessionID(other))
}
