package mapping

import (
	"database/sql"

	"github.com/gamehive/accounts_backend/internal/core/domain"
	"github.com/gamehive/accounts_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		RefreshToken: sql.NullString{String: d.RefreshToken, Valid: d.RefreshToken != ""},
		Coins:        d.Coins,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		RefreshToken: m.RefreshToken.String,
		Coins:        m.Coins,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
