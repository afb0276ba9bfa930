package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Benjie-san/cbc-journal/internal/client/storage"
	"github.com/Benjie-san/cbc-journal/internal/validation"
	pkgapi "github.com/Benjie-san/cbc-journal/pkg/api"
)

// ErrNoSession indicates that no usable credential exists: the user has never
// logged in, or the stored session could not be refreshed. A sync pass treats
// this as "offline", not as a hard failure.
var ErrNoSession = errors.New("no authenticated session")

// expirySkew is subtracted from the stored expiry so a token about to lapse
// mid-pass is refreshed up front.
const expirySkew = 30 * time.Second

//go:generate moq -out api_mock.go . AuthAPI

// AuthAPI is the slice of the server API the auth service needs.
type AuthAPI interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Refresh(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error)
}

// Service manages the local session and hands out access tokens.
// It is the "credential provider" of the sync engine: one AccessToken call
// per pass, refreshing through the server when the cached token has expired.
type Service struct {
	apiClient AuthAPI
	authStore storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new auth service
func NewService(apiClient AuthAPI, authStore storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		authStore: authStore,
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates a new account on the server. It does not log in.
func (s *Service) Register(ctx context.Context, username, password string) (*pkgapi.RegisterResponse, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return resp, nil
}

// Login authenticates against the server and stores the session locally.
func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Logout removes the local session. Purely local: the server keeps issuing
// tokens against the refresh token until it expires, but this client forgets it.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session returns the stored session, or ErrNoSession if none exists.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return auth, nil
}

// AccessToken returns a valid bearer token, refreshing through the server if
// the cached one has expired. Returns ErrNoSession when no session exists or
// the refresh was rejected; any other error means the refresh could not be
// attempted (transport failure) and the caller should treat the engine as
// offline and retry later.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return "", err
	}

	if s.now().Before(time.Unix(auth.ExpiresAt, 0).Add(-expirySkew)) {
		return auth.AccessToken, nil
	}

	s.logger.Debug("access token expired, refreshing", "username", auth.Username)

	resp, err := s.apiClient.Refresh(ctx, pkgapi.RefreshRequest{RefreshToken: auth.RefreshToken})
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	auth.RefreshToken = resp.RefreshToken
	auth.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return "", fmt.Errorf("failed to save refreshed session: %w", err)
	}

	return auth.AccessToken, nil
}
