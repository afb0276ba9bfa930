package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjie-san/cbc-journal/internal/client/storage"
	pkgapi "github.com/Benjie-san/cbc-journal/pkg/api"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRegisterValidatesInput(t *testing.T) {
	apiMock := &AuthAPIMock{}
	svc := NewService(apiMock, &storage.AuthStorageMock{}, testLogger)

	_, err := svc.Register(context.Background(), "ab", "password123")
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), "benjie", "short")
	assert.Error(t, err)

	// No request reached the server.
	assert.Empty(t, apiMock.RegisterCalls())
}

func TestRegister(t *testing.T) {
	apiMock := &AuthAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			return &pkgapi.RegisterResponse{UserID: "user-1"}, nil
		},
	}
	svc := NewService(apiMock, &storage.AuthStorageMock{}, testLogger)

	resp, err := svc.Register(context.Background(), "benjie", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
}

func TestLoginSavesSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	apiMock := &AuthAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    900,
			}, nil
		},
	}

	var saved *storage.AuthData
	storeMock := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			saved = auth
			return nil
		},
	}

	svc := NewService(apiMock, storeMock, testLogger)
	svc.now = func() time.Time { return now }

	require.NoError(t, svc.Login(context.Background(), "benjie", "password123"))

	require.NotNil(t, saved)
	assert.Equal(t, "benjie", saved.Username)
	assert.Equal(t, "access", saved.AccessToken)
	assert.Equal(t, now.Add(900*time.Second).Unix(), saved.ExpiresAt)
}

func TestLogoutWithoutSessionIsNoop(t *testing.T) {
	storeMock := &storage.AuthStorageMock{
		DeleteAuthFunc: func(ctx context.Context) error {
			return storage.ErrAuthNotFound
		},
	}
	svc := NewService(&AuthAPIMock{}, storeMock, testLogger)

	assert.NoError(t, svc.Logout(context.Background()))
}

func TestSessionNotFound(t *testing.T) {
	storeMock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		},
	}
	svc := NewService(&AuthAPIMock{}, storeMock, testLogger)

	_, err := svc.Session(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAccessTokenFreshTokenNoRefresh(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	apiMock := &AuthAPIMock{}
	storeMock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				Username:    "benjie",
				AccessToken: "cached",
				ExpiresAt:   now.Add(10 * time.Minute).Unix(),
			}, nil
		},
	}

	svc := NewService(apiMock, storeMock, testLogger)
	svc.now = func() time.Time { return now }

	token, err := svc.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached", token)
	assert.Empty(t, apiMock.RefreshCalls())
}

func TestAccessTokenRefreshesExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	apiMock := &AuthAPIMock{
		RefreshFunc: func(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error) {
			assert.Equal(t, "old-refresh", req.RefreshToken)
			return &pkgapi.TokenResponse{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				ExpiresIn:    900,
			}, nil
		},
	}

	var saved *storage.AuthData
	storeMock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				Username:     "benjie",
				AccessToken:  "stale",
				RefreshToken: "old-refresh",
				ExpiresAt:    now.Add(-time.Minute).Unix(),
			}, nil
		},
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			saved = auth
			return nil
		},
	}

	svc := NewService(apiMock, storeMock, testLogger)
	svc.now = func() time.Time { return now }

	token, err := svc.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-access", token)

	require.NotNil(t, saved)
	assert.Equal(t, "new-refresh", saved.RefreshToken)
}

func TestAccessTokenRefreshesWithinSkew(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	apiMock := &AuthAPIMock{
		RefreshFunc: func(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{AccessToken: "new-access", RefreshToken: "r", ExpiresIn: 900}, nil
		},
	}
	storeMock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			// Expires in 10 seconds: inside the skew window.
			return &storage.AuthData{
				AccessToken: "stale",
				ExpiresAt:   now.Add(10 * time.Second).Unix(),
			}, nil
		},
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error { return nil },
	}

	svc := NewService(apiMock, storeMock, testLogger)
	svc.now = func() time.Time { return now }

	token, err := svc.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-access", token)
}

func TestAccessTokenNoSession(t *testing.T) {
	storeMock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		},
	}
	svc := NewService(&AuthAPIMock{}, storeMock, testLogger)

	_, err := svc.AccessToken(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAccessTokenRefreshTransportFailure(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	transportErr := errors.New("connection refused")

	apiMock := &AuthAPIMock{
		RefreshFunc: func(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error) {
			return nil, transportErr
		},
	}
	storeMock := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				AccessToken: "stale",
				ExpiresAt:   now.Add(-time.Minute).Unix(),
			}, nil
		},
	}

	svc := NewService(apiMock, storeMock, testLogger)
	svc.now = func() time.Time { return now }

	_, err := svc.AccessToken(context.Background())
	assert.ErrorIs(t, err, transportErr)
}
