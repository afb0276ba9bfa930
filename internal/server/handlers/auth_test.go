package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjie-san/cbc-journal/internal/server/handlers"
	"github.com/Benjie-san/cbc-journal/internal/server/storage/sqlite"
	"github.com/Benjie-san/cbc-journal/pkg/api"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var testJWTConfig = handlers.JWTConfig{
	Secret:          []byte("test-secret"),
	AccessTokenTTL:  15 * time.Minute,
	RefreshTokenTTL: 30 * 24 * time.Hour,
}

func newAuthHandler(t *testing.T) *handlers.AuthHandler {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return handlers.NewAuthHandler(testLogger, store, store, testJWTConfig)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	return rec
}

func TestRegister(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, api.RegisterRequest{Username: "benjie", Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.UserID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, api.RegisterRequest{Username: "benjie", Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Register, api.RegisterRequest{Username: "benjie", Password: "otherpassword"})
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "username already taken", resp.Message)
}

func TestRegisterInvalidInput(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, api.RegisterRequest{Username: "ab", Password: "password123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Register, api.RegisterRequest{Username: "benjie", Password: "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, api.RegisterRequest{Username: "benjie", Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, api.LoginRequest{Username: "benjie", Password: "password123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(testJWTConfig.AccessTokenTTL.Seconds()), resp.ExpiresIn)

	claims, err := handlers.ValidateAccessToken(testJWTConfig, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "benjie", claims.Username)
	assert.NotEmpty(t, claims.UserID)
}

func TestLoginBadCredentials(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, api.RegisterRequest{Username: "benjie", Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, api.LoginRequest{Username: "benjie", Password: "wrongpassword"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, h.Login, api.LoginRequest{Username: "nobody", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRotatesToken(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, api.RegisterRequest{Username: "benjie", Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, api.LoginRequest{Username: "benjie", Password: "password123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var login api.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))

	rec = postJSON(t, h.Refresh, api.RefreshRequest{RefreshToken: login.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)

	var refreshed api.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was rotated out and cannot be replayed.
	rec = postJSON(t, h.Refresh, api.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshInvalidToken(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Refresh, api.RefreshRequest{RefreshToken: "not-a-real-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, h.Refresh, api.RefreshRequest{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
