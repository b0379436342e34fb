package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewSessionManager("super-secret", time.Hour)

	token, err := m.Issue("user-123")
	require.NoError(t, err)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestSessionManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewSessionManager("secret", -time.Second)

	token, err := m.Issue("u1")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestSessionManager_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewSessionManager("right-secret", time.Hour).Issue("u2")
	require.NoError(t, err)

	_, err = NewSessionManager("wrong-secret", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionManager_Malformed(t *testing.T) {
	t.Parallel()

	m := NewSessionManager("k", time.Hour)
	_, err := m.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
