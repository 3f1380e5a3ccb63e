package repositories

import (
	"context"

	"github.com/gamehive/accounts_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their (lowercased) username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username or email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken replaces the stored refresh token for a user.
	// Passing nil clears the slot (logout).
	UpdateRefreshToken(ctx context.Context, userID string, refreshToken *string) error

	// UpdatePassword persists a new password hash. No other validation is
	// performed here.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// UpdateUserDetails partially updates username and/or email. Nil fields
	// are left untouched. Returns the updated user.
	UpdateUserDetails(ctx context.Context, userID string, username *string, email *string) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
