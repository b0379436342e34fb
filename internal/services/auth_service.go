package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fathima-sithara/auth-service/internal/models"
	"github.com/fathima-sithara/auth-service/internal/repository"
	"github.com/fathima-sithara/auth-service/internal/utils"
)

// profileAllowList is the fixed set of fields a profile update may touch.
// Any key outside it rejects the entire update.
var profileAllowList = map[string]bool{
	"firstName":      true,
	"lastName":       true,
	"bio":            true,
	"profilePicture": true,
}

type profileUpdate struct {
	FirstName      string `validate:"omitempty,max=50"`
	LastName       string `validate:"omitempty,max=50"`
	Bio            string `validate:"omitempty,max=500"`
	ProfilePicture string `validate:"omitempty,image_url"`
}

type authService struct {
	repo     repository.UserRepository
	sessions *utils.SessionManager
	hashCost int
	log      *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(repo repository.UserRepository, sessions *utils.SessionManager, hashCost int, logger *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		sessions: sessions,
		hashCost: hashCost,
		log:      logger,
	}
}

// Register validates the input, enforces uniqueness and persists a new user
// with a freshly generated uuid and a bcrypt password hash. Resubmitting the
// same input after success yields a ConflictError.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = models.NormalizeEmail(in.Email)
	if err := utils.Validate(in); err != nil {
		return nil, &ValidationError{Message: utils.ValidationMessage(err)}
	}

	existing, err := s.repo.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup existing user: %w", err)
	}
	if existing != nil {
		// email takes precedence when a record collides on both fields
		if existing.Email == in.Email {
			return nil, &ConflictError{Field: "email"}
		}
		return nil, &ConflictError{Field: "username"}
	}

	hash, err := utils.HashPassword(in.Password, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		UUID:         uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			// the unique index is the backstop when the pre-check raced
			s.log.Warn("registration lost uniqueness race",
				zap.String("field", dup.Field))
			return nil, &ConflictError{Field: dup.Field}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a session token bound to the
// user's uuid. A missing user and a wrong password are indistinguishable.
func (s *authService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	if in.Email == "" || in.Password == "" {
		return nil, "", &ValidationError{Message: "both email and password are required"}
	}

	user, err := s.repo.FindByEmail(ctx, models.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	ok, err := utils.CheckPassword(in.Password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.UUID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}
	return user, token, nil
}

// Authenticate resolves a session token to its user. An absent or malformed
// token and a token whose user no longer exists all surface as
// ErrUnauthenticated; no distinction is exposed to the caller.
func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	userUUID, err := s.sessions.Verify(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.repo.FindByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies an allow-listed partial update to the authenticated
// user. The operation is all-or-nothing: one disallowed or invalid field
// rejects the whole set and nothing is persisted.
func (s *authService) UpdateProfile(ctx context.Context, userUUID string, updates map[string]string) (*models.User, error) {
	for key := range updates {
		if !profileAllowList[key] {
			return nil, &ValidationError{Message: "invalid updates"}
		}
	}

	user, err := s.repo.FindByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	pu := profileUpdate{
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
	}
	for key, value := range updates {
		switch key {
		case "firstName":
			pu.FirstName = value
		case "lastName":
			pu.LastName = value
		case "bio":
			pu.Bio = value
		case "profilePicture":
			pu.ProfilePicture = value
		}
	}
	if err := utils.Validate(pu); err != nil {
		return nil, &ValidationError{Message: utils.ValidationMessage(err)}
	}

	user.FirstName = pu.FirstName
	user.LastName = pu.LastName
	user.Bio = pu.Bio
	user.ProfilePicture = pu.ProfilePicture
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return user, nil
}
