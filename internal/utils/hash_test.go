package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	ok, err := CheckPassword("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1", 4)
	require.NoError(t, err)

	ok, err := CheckPassword("wrong", hash)
	require.NoError(t, err, "a mismatch is not an error")
	assert.False(t, ok)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	ok, err := CheckPassword("secret1", "not-a-bcrypt-hash")
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrHashing)
}

func TestHashPassword_CostFallback(t *testing.T) {
	t.Parallel()

	// zero cost falls back to the default instead of failing
	hash, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	ok, err := CheckPassword("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
