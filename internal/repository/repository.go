package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fathima-sithara/auth-service/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// DuplicateKeyError reports a store-level uniqueness violation. It is the
// authoritative backstop when two concurrent registrations race past the
// application-level pre-check.
type DuplicateKeyError struct {
	Field string // "email" or "username"
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key on %s", e.Field)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	FindByUUID(ctx context.Context, uuid string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}
