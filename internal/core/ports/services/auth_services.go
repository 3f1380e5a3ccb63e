package services

import (
	"context"
	"time"

	"github.com/gamehive/accounts_backend/internal/core/domain"
)

// TokenPair bundles a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenSvcFacade defines the interface for token issuance and verification.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived signed access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a long-lived signed refresh token for the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken verifies a refresh token's signature and expiry
	// against the refresh secret and returns the embedded user ID. Any
	// failure yields apperrors.ErrUnauthorized.
	ValidateRefreshToken(ctx context.Context, tokenString string) (string, error)
}

// AuthSvcFacade defines the session lifecycle operations. It owns the
// invariant that each user has at most one valid refresh token at a time.
type AuthSvcFacade interface {
	// Login verifies credentials and starts a session, persisting the new
	// refresh token (which invalidates any previous session).
	Login(ctx context.Context, identifier, password string) (*domain.User, *TokenPair, error)

	// Logout clears the stored refresh token unconditionally.
	Logout(ctx context.Context, userID string) error

	// RefreshSession rotates the token pair: it validates the incoming
	// refresh token cryptographically and against the stored value, then
	// issues and persists a new pair. The old refresh token is unusable
	// afterwards.
	RefreshSession(ctx context.Context, incomingRefreshToken string) (*TokenPair, error)

	// ChangePassword verifies the old password and persists the new hash.
	// The active refresh token is left untouched.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmPassword string) error
}
