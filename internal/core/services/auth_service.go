package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gamehive/accounts_backend/internal/apperrors"
	"github.com/gamehive/accounts_backend/internal/core/domain"
	portsrepo "github.com/gamehive/accounts_backend/internal/core/ports/repositories"
	portssvc "github.com/gamehive/accounts_backend/internal/core/ports/services"
	"github.com/gamehive/accounts_backend/internal/platform/config"
	"github.com/gamehive/accounts_backend/internal/utils"
)

// tokenService implements TokenSvcFacade. It only needs the application
// configuration for secrets and expiry durations; tokens carry the user ID as
// the JWT subject and nothing else.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new short-lived JWT access token for the user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.AccessTokenExpiry)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new long-lived JWT refresh token for the
// user, signed with the refresh secret.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiry)
	refreshToken, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return refreshToken, expiryTime, nil
}

// ValidateRefreshToken verifies signature and expiry against the refresh
// secret and returns the embedded user ID. Signature and expiry failures are
// deliberately indistinguishable to the caller.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}

// authService implements the session lifecycle on top of the credential store
// and the token service. It owns the single-refresh-token-per-user invariant:
// every successful login and refresh overwrites the stored token, which makes
// any previously issued refresh token permanently unusable.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	tokenSvc portssvc.TokenSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// issueAndPersistTokens mints a fresh token pair and persists the refresh
// token on the user record, overwriting any previous value.
func (s *authService) issueAndPersistTokens(ctx context.Context, user *domain.User) (*portssvc.TokenPair, error) {
	accessToken, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, _, err := s.tokenSvc.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, &refreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return &portssvc.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login authenticates by username or email. An identifier containing '@' is
// treated as an email, anything else as a username (lowercased).
func (s *authService) Login(ctx context.Context, identifier, password string) (*domain.User, *portssvc.TokenPair, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil, fmt.Errorf("%w: email or username is required", apperrors.ErrValidation)
	}

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindUserByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindUserByUsername(ctx, strings.ToLower(identifier))
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, fmt.Errorf("%w: incorrect password", apperrors.ErrUnauthorized)
	}

	tokens, err := s.issueAndPersistTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Logout clears the stored refresh token unconditionally. The access token
// simply ages out; the refresh token is dead the moment the slot is cleared.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// RefreshSession validates the incoming refresh token and rotates the pair.
// Cryptographic validity alone is not enough: the token must exactly match
// the stored value, which is what makes logout and rotation actually revoke.
func (s *authService) RefreshSession(ctx context.Context, incomingRefreshToken string) (*portssvc.TokenPair, error) {
	if incomingRefreshToken == "" {
		return nil, fmt.Errorf("%w: unauthorized request", apperrors.ErrUnauthorized)
	}

	userID, err := s.tokenSvc.ValidateRefreshToken(ctx, incomingRefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user for refresh: %w", err)
	}

	if user.RefreshToken == "" || incomingRefreshToken != user.RefreshToken {
		return nil, fmt.Errorf("%w: Refresh Token Expired", apperrors.ErrRefreshTokenExpired)
	}

	// Rotation: the token just validated is overwritten and cannot be used
	// for a second refresh.
	tokens, err := s.issueAndPersistTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// ChangePassword verifies the old password and persists the new hash. The
// stored refresh token is intentionally left alone so the current session
// stays valid.
func (s *authService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return fmt.Errorf("%w: password and confirm password do not match", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: incorrect old password", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to persist new password: %w", err)
	}
	return nil
}
