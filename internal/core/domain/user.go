package domain

import "time"

// User represents a user account in the domain.
//
// PasswordHash and RefreshToken are credential material: they never leave the
// service layer and are stripped by dto.ToUserResponse before any handler
// writes a user to a client.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	// RefreshToken holds the single currently-valid refresh token, or empty
	// when the user has no active session. Overwriting it invalidates any
	// previously issued refresh token regardless of its JWT expiry.
	RefreshToken string    `json:"-"`
	Coins        int64     `json:"coins"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
