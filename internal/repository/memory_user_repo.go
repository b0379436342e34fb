package repository

import (
	"context"
	"sync"
	"time"

	"github.com/fathima-sithara/auth-service/internal/models"
)

// memoryUserRepo is an in-process UserRepository with the same uniqueness
// semantics as the Mongo implementation. It backs tests and local runs
// without a configured Mongo URI.
type memoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*models.User // keyed by uuid
}

func NewMemoryUserRepo() UserRepository {
	return &memoryUserRepo{users: make(map[string]*models.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return &DuplicateKeyError{Field: "email"}
		}
		if existing.Username == u.Username {
			return &DuplicateKeyError{Field: "username"}
		}
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.UUID] = &cp
	return nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, func(u *models.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	// email match takes priority so the conflict tie-break reports "email"
	// when a record collides on both fields
	if u, err := r.find(ctx, func(u *models.User) bool { return u.Email == email }); err == nil {
		return u, nil
	} else if err != ErrUserNotFound {
		return nil, err
	}
	return r.find(ctx, func(u *models.User) bool { return u.Username == username })
}

func (r *memoryUserRepo) FindByUUID(ctx context.Context, uuid string) (*models.User, error) {
	return r.find(ctx, func(u *models.User) bool { return u.UUID == uuid })
}

func (r *memoryUserRepo) Update(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.UUID]; !ok {
		return ErrUserNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	r.users[u.UUID] = &cp
	return nil
}

func (r *memoryUserRepo) find(ctx context.Context, match func(*models.User) bool) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}
