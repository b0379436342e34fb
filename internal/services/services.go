package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fathima-sithara/auth-service/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrNoActiveSession    = errors.New("no active session to logout")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError reports malformed or missing input. The message is safe to
// return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation, naming the colliding field.
// When a record matches both email and username, email is reported.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s is already in use", e.Field)
}

// RegisterInput carries the raw registration fields.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginInput carries the raw login fields.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthService defines the authentication and profile operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, in LoginInput) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, userUUID string, updates map[string]string) (*models.User, error)
}
