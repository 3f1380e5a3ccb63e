package dto

// RegisterUserRequest carries the fields required to create a new account.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest carries the login credentials. Identifier is either a username
// or an email; anything containing '@' is treated as an email.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshTokenRequest optionally carries the refresh token in the body for
// clients that do not use the cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdatePasswordRequest carries a password change.
type UpdatePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// UpdateAccountRequest defines the data allowed for updating account details.
// Pointers differentiate omitted fields from zero-value fields; only supplied
// fields are changed.
type UpdateAccountRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}
