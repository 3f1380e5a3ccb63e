package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gamehive/accounts_backend/internal/apperrors"
	"github.com/gamehive/accounts_backend/internal/core/domain"
	portssvc "github.com/gamehive/accounts_backend/internal/core/ports/services"
	"github.com/gamehive/accounts_backend/internal/core/services"
	"github.com/gamehive/accounts_backend/internal/platform/config"
	"github.com/gamehive/accounts_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	cfg      *config.Config
	mockRepo *MockUserRepository
	tokenSvc portssvc.TokenSvcFacade
	service  portssvc.AuthSvcFacade
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = &config.Config{
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: 24 * time.Hour,
		JWTIssuer:          "accounts-backend-test",
	}
	s.mockRepo = new(MockUserRepository)
	s.tokenSvc = services.NewTokenService(s.cfg)
	s.service = services.NewAuthService(s.mockRepo, s.tokenSvc)
}

// newTestUser returns a user whose password is "Secret1".
func (s *AuthServiceTestSuite) newTestUser() *domain.User {
	hash, err := utils.HashPassword("Secret1")
	s.Require().NoError(err)
	now := time.Now()
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: hash,
		Coins:        500,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *AuthServiceTestSuite) TestLoginSuccessPersistsRefreshToken() {
	user := s.newTestUser()
	var lookedUp string
	var persisted *string

	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, username string) (*domain.User, error) {
		lookedUp = username
		return user, nil
	}
	s.mockRepo.UpdateRefreshTokenFn = func(_ context.Context, userID string, token *string) error {
		s.Equal(user.UserID, userID)
		persisted = token
		return nil
	}

	gotUser, tokens, err := s.service.Login(s.ctx, "Alice", "Secret1")

	s.Require().NoError(err)
	s.Equal("alice", lookedUp, "username must be lowercased before lookup")
	s.Equal(user.UserID, gotUser.UserID)
	s.NotEmpty(tokens.AccessToken)
	s.NotEmpty(tokens.RefreshToken)
	s.Require().NotNil(persisted)
	s.Equal(tokens.RefreshToken, *persisted)

	// The access token is a valid JWT carrying the user ID as subject.
	claims, err := utils.ParseAndValidateJWT(tokens.AccessToken, s.cfg.AccessTokenSecret)
	s.Require().NoError(err)
	s.Equal(user.UserID, claims.Subject)
}

func (s *AuthServiceTestSuite) TestLoginIdentifierWithAtIsEmail() {
	user := s.newTestUser()
	var emailLookup string

	s.mockRepo.FindUserByEmailFn = func(_ context.Context, email string) (*domain.User, error) {
		emailLookup = email
		return user, nil
	}
	s.mockRepo.UpdateRefreshTokenFn = func(_ context.Context, _ string, _ *string) error {
		return nil
	}

	_, _, err := s.service.Login(s.ctx, "a@x.com", "Secret1")

	s.Require().NoError(err)
	s.Equal("a@x.com", emailLookup)
}

func (s *AuthServiceTestSuite) TestLoginEmptyIdentifier() {
	_, _, err := s.service.Login(s.ctx, "   ", "Secret1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestLoginUnknownUser() {
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	_, _, err := s.service.Login(s.ctx, "nobody", "Secret1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := s.newTestUser()
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return user, nil
	}

	_, _, err := s.service.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

// wireStoredTokenSlot wires the mock so the stored refresh token behaves like
// a single mutable slot, the way the real store does.
func (s *AuthServiceTestSuite) wireStoredTokenSlot(user *domain.User) {
	s.mockRepo.FindUserByUsernameFn = func(_ context.Context, _ string) (*domain.User, error) {
		return user, nil
	}
	s.mockRepo.FindUserByIDFn = func(_ context.Context, userID string) (*domain.User, error) {
		if userID != user.UserID {
			return nil, apperrors.ErrNotFound
		}
		return user, nil
	}
	s.mockRepo.UpdateRefreshTokenFn = func(_ context.Context, _ string, token *string) error {
		if token == nil {
			user.RefreshToken = ""
		} else {
			user.RefreshToken = *token
		}
		return nil
	}
}

func (s *AuthServiceTestSuite) TestRefreshRotatesAndOldTokenIsOneShot() {
	user := s.newTestUser()
	s.wireStoredTokenSlot(user)

	_, tokens, err := s.service.Login(s.ctx, "alice", "Secret1")
	s.Require().NoError(err)
	firstRefresh := tokens.RefreshToken

	rotated, err := s.service.RefreshSession(s.ctx, firstRefresh)
	s.Require().NoError(err)
	s.NotEqual(firstRefresh, rotated.RefreshToken)
	s.Equal(rotated.RefreshToken, user.RefreshToken, "new refresh token must be persisted")

	// The token that was just validated is dead after rotation.
	_, err = s.service.RefreshSession(s.ctx, firstRefresh)
	s.ErrorIs(err, apperrors.ErrRefreshTokenExpired)

	// The rotated token still works.
	_, err = s.service.RefreshSession(s.ctx, rotated.RefreshToken)
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestRefreshStaleAfterSecondLogin() {
	user := s.newTestUser()
	s.wireStoredTokenSlot(user)

	_, first, err := s.service.Login(s.ctx, "alice", "Secret1")
	s.Require().NoError(err)

	_, second, err := s.service.Login(s.ctx, "alice", "Secret1")
	s.Require().NoError(err)
	s.NotEqual(first.RefreshToken, second.RefreshToken)

	// The first session's refresh token is cryptographically valid but no
	// longer matches the stored slot.
	_, err = s.service.RefreshSession(s.ctx, first.RefreshToken)
	s.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (s *AuthServiceTestSuite) TestRefreshAfterLogout() {
	user := s.newTestUser()
	s.wireStoredTokenSlot(user)

	_, tokens, err := s.service.Login(s.ctx, "alice", "Secret1")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx, user.UserID))
	s.Empty(user.RefreshToken)

	_, err = s.service.RefreshSession(s.ctx, tokens.RefreshToken)
	s.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (s *AuthServiceTestSuite) TestRefreshMissingToken() {
	_, err := s.service.RefreshSession(s.ctx, "")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestRefreshTamperedToken() {
	user := s.newTestUser()
	s.wireStoredTokenSlot(user)

	_, tokens, err := s.service.Login(s.ctx, "alice", "Secret1")
	s.Require().NoError(err)

	_, err = s.service.RefreshSession(s.ctx, tokens.RefreshToken+"x")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestRefreshTokenSignedWithAccessSecretRejected() {
	user := s.newTestUser()
	s.wireStoredTokenSlot(user)

	forged, err := utils.GenerateJWT(user.UserID, s.cfg.AccessTokenSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	_, err = s.service.RefreshSession(s.ctx, forged)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestRefreshUserNoLongerExists() {
	user := s.newTestUser()
	token, _, err := s.tokenSvc.GenerateRefreshToken(s.ctx, user)
	s.Require().NoError(err)

	s.mockRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	_, err = s.service.RefreshSession(s.ctx, token)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogoutClearsStoredToken() {
	var cleared bool
	s.mockRepo.UpdateRefreshTokenFn = func(_ context.Context, userID string, token *string) error {
		s.Equal("user-1", userID)
		s.Nil(token)
		cleared = true
		return nil
	}

	s.Require().NoError(s.service.Logout(s.ctx, "user-1"))
	s.True(cleared)
}

func (s *AuthServiceTestSuite) TestChangePasswordMismatchedConfirm() {
	err := s.service.ChangePassword(s.ctx, "user-1", "Secret1", "NewSecret", "Different")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestChangePasswordWrongOldPassword() {
	user := s.newTestUser()
	s.mockRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return user, nil
	}

	err := s.service.ChangePassword(s.ctx, user.UserID, "wrong", "NewSecret", "NewSecret")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestChangePasswordSuccessKeepsSession() {
	user := s.newTestUser()
	var persistedHash string

	s.mockRepo.FindUserByIDFn = func(_ context.Context, _ string) (*domain.User, error) {
		return user, nil
	}
	s.mockRepo.UpdatePasswordFn = func(_ context.Context, userID string, hash string) error {
		s.Equal(user.UserID, userID)
		persistedHash = hash
		return nil
	}
	s.mockRepo.UpdateRefreshTokenFn = func(_ context.Context, _ string, _ *string) error {
		s.Fail("password change must not touch the refresh token")
		return nil
	}

	err := s.service.ChangePassword(s.ctx, user.UserID, "Secret1", "NewSecret", "NewSecret")

	s.Require().NoError(err)
	s.True(utils.CheckPasswordHash("NewSecret", persistedHash))
	s.False(utils.CheckPasswordHash("Secret1", persistedHash))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
