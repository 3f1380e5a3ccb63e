package models

import (
	"database/sql"
	"time"
)

// User is the pgsql row shape for the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	RefreshToken sql.NullString `db:"refresh_token"`
	Coins        int64          `db:"coins"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
