package dto

import (
	"time"

	"github.com/gamehive/accounts_backend/internal/core/domain"
)

// UserResponse is the sanitized client view of a user. It deliberately has no
// password hash or refresh token fields.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Coins     int64     `json:"coins"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to its sanitized UserResponse view.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		Coins:     user.Coins,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
