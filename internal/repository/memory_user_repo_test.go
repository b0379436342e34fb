package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathima-sithara/auth-service/internal/models"
)

func newUser(uuid, username, email string) *models.User {
	return &models.User{UUID: uuid, Username: username, Email: email, PasswordHash: "x"}
}

func TestMemoryRepo_CreateAndFind(t *testing.T) {
	t.Parallel()
	repo := NewMemoryUserRepo()
	ctx := context.Background()

	u := newUser("u1", "alice", "a@x.com")
	require.NoError(t, repo.Create(ctx, u))
	assert.False(t, u.CreatedAt.IsZero())
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)

	got, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	got, err = repo.FindByUUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)

	_, err = repo.FindByEmail(ctx, "ghost@x.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryRepo_UniqueConstraints(t *testing.T) {
	t.Parallel()
	repo := NewMemoryUserRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newUser("u1", "alice", "a@x.com")))

	var dup *DuplicateKeyError
	err := repo.Create(ctx, newUser("u2", "bob", "a@x.com"))
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)

	err = repo.Create(ctx, newUser("u3", "alice", "b@x.com"))
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "username", dup.Field)
}

func TestMemoryRepo_FindByEmailOrUsername(t *testing.T) {
	t.Parallel()
	repo := NewMemoryUserRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newUser("u1", "alice", "a@x.com")))
	require.NoError(t, repo.Create(ctx, newUser("u2", "bob", "b@x.com")))

	got, err := repo.FindByEmailOrUsername(ctx, "a@x.com", "nobody")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UUID)

	got, err = repo.FindByEmailOrUsername(ctx, "ghost@x.com", "bob")
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UUID)

	// email match wins when both fields hit different records
	got, err = repo.FindByEmailOrUsername(ctx, "a@x.com", "bob")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UUID)

	_, err = repo.FindByEmailOrUsername(ctx, "ghost@x.com", "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryRepo_Update(t *testing.T) {
	t.Parallel()
	repo := NewMemoryUserRepo()
	ctx := context.Background()

	u := newUser("u1", "alice", "a@x.com")
	require.NoError(t, repo.Create(ctx, u))
	created := u.CreatedAt

	u.Bio = "hello"
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.FindByUUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Bio)
	assert.Equal(t, created, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	err = repo.Update(ctx, newUser("missing", "x", "x@x.com"))
	require.ErrorIs(t, err, ErrUserNotFound)
}
