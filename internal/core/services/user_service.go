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
	"github.com/gamehive/accounts_backend/internal/dto"
	"github.com/gamehive/accounts_backend/internal/utils"
	"github.com/google/uuid"
)

// defaultStartingCoins is the credit balance every new account starts with.
const defaultStartingCoins int64 = 500

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service backed by the given repository.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser validates the registration request and creates the account.
// Usernames are normalized to lowercase before lookup and storage; emails are
// stored as given.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: user already exists", apperrors.ErrDuplicate)
	}
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user already exists", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Coins:        defaultStartingCoins,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique constraint on (username, email) backstops the lookups above
	// against concurrent registrations.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: user already exists", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAccountDetails applies a partial update of username and/or email.
func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	if req.Username == nil && req.Email == nil {
		return nil, fmt.Errorf("%w: username or email is required", apperrors.ErrValidation)
	}

	username := req.Username
	if username != nil {
		normalized := strings.ToLower(strings.TrimSpace(*username))
		if normalized == "" {
			return nil, fmt.Errorf("%w: username must not be empty", apperrors.ErrValidation)
		}
		username = &normalized
	}

	email := req.Email
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: email must not be empty", apperrors.ErrValidation)
		}
		email = &trimmed
	}

	user, err := s.userRepo.UpdateUserDetails(ctx, userID, username, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}
