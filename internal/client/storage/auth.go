package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines the local session store. At most one session exists at
// a time; logging in replaces it, logging out removes it.
type AuthStorage interface {
	// SaveAuth stores the session data, replacing any previous session.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session.
	// Returns ErrAuthNotFound if no session exists.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout).
	DeleteAuth(ctx context.Context) error
}

// AuthData is the persisted session: who is logged in and the token pair
// obtained from the server. ExpiresAt is the unix time the access token
// becomes invalid.
type AuthData struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}
