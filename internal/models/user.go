package models

import "time"

// User represents a registered account on the sync server.
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ID           string    `json:"id"`       // user UUID
	Username     string    `json:"username"` // unique username
	PasswordHash string    `json:"-"`        // bcrypt hash of the password
}

// RefreshToken is a stored refresh token. Only the SHA-256 hash of the
// token value is persisted.
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"`
}
