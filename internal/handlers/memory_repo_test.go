package handlers_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gamehive/accounts_backend/internal/apperrors"
	"github.com/gamehive/accounts_backend/internal/core/domain"
	portsrepo "github.com/gamehive/accounts_backend/internal/core/ports/repositories"
)

// memoryUserRepository is an in-memory stand-in for the pgsql repository. It
// enforces the same uniqueness and not-found semantics so the handlers can be
// exercised over real HTTP without a database.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]domain.User
}

var _ portsrepo.UserRepositoryFacade = (*memoryUserRepository)(nil)

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]domain.User)}
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	}
	return &user, nil
}

func (r *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
}

func (r *memoryUserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return fmt.Errorf("%w: user already exists", apperrors.ErrDuplicate)
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *memoryUserRepository) UpdateRefreshToken(_ context.Context, userID string, refreshToken *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	}
	if refreshToken == nil {
		user.RefreshToken = ""
	} else {
		user.RefreshToken = *refreshToken
	}
	user.UpdatedAt = time.Now()
	r.users[userID] = user
	return nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, userID string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	r.users[userID] = user
	return nil
}

func (r *memoryUserRepository) UpdateUserDetails(_ context.Context, userID string, username *string, email *string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	}
	for id, existing := range r.users {
		if id == userID {
			continue
		}
		if username != nil && existing.Username == *username {
			return nil, fmt.Errorf("%w: username already taken", apperrors.ErrDuplicate)
		}
		if email != nil && existing.Email == *email {
			return nil, fmt.Errorf("%w: email already taken", apperrors.ErrDuplicate)
		}
	}
	if username != nil {
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}
	user.UpdatedAt = time.Now()
	r.users[userID] = user
	return &user, nil
}
