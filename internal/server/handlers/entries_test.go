package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjie-san/cbc-journal/internal/server/handlers"
	"github.com/Benjie-san/cbc-journal/internal/server/middleware"
	"github.com/Benjie-san/cbc-journal/internal/server/storage/sqlite"
	"github.com/Benjie-san/cbc-journal/pkg/api"
)

// newJournalServer wires the entry endpoints the same way cmd/server does,
// auth middleware included.
func newJournalServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	authHandler := handlers.NewAuthHandler(testLogger, store, store, testJWTConfig)
	entriesHandler := handlers.NewEntriesHandler(testLogger, store)
	auth := middleware.AuthMiddleware(testLogger, testJWTConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("POST /api/v1/entries", auth(http.HandlerFunc(entriesHandler.Create)))
	mux.Handle("GET /api/v1/entries", auth(http.HandlerFunc(entriesHandler.ListActive)))
	mux.Handle("GET /api/v1/entries/trashed", auth(http.HandlerFunc(entriesHandler.ListTrashed)))
	mux.Handle("PUT /api/v1/entries/{id}", auth(http.HandlerFunc(entriesHandler.Update)))
	mux.Handle("DELETE /api/v1/entries/{id}", auth(http.HandlerFunc(entriesHandler.Delete)))
	mux.Handle("POST /api/v1/entries/{id}/restore", auth(http.HandlerFunc(entriesHandler.Restore)))
	mux.Handle("DELETE /api/v1/entries/{id}/purge", auth(http.HandlerFunc(entriesHandler.Purge)))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func registerAndLogin(t *testing.T, srv *httptest.Server, username string) string {
	t.Helper()

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/auth/register", "",
		api.RegisterRequest{Username: username, Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.StatusCode)
	rec.Body.Close()

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/auth/login", "",
		api.LoginRequest{Username: username, Password: "password123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var tokens api.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokens))

	return tokens.AccessToken
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)

	return resp
}

func decodeEntry(t *testing.T, resp *http.Response) api.Entry {
	t.Helper()
	defer resp.Body.Close()

	var entry api.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))

	return entry
}

func createEntry(t *testing.T, srv *httptest.Server, token, title string) api.Entry {
	t.Helper()

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/entries", token,
		api.EntryPayload{Title: title, Tags: []string{"test"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decodeEntry(t, resp)
}

func TestEntriesRequireAuth(t *testing.T) {
	srv := newJournalServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/v1/entries", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := doRequest(t, srv, http.MethodGet, "/api/v1/entries", "garbage-token", nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestCreateAndListEntries(t *testing.T) {
	srv := newJournalServer(t)
	token := registerAndLogin(t, srv, "benjie")

	created := createEntry(t, srv, token, "Morning reading")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(1), created.Version)
	assert.False(t, created.Deleted)

	resp := doRequest(t, srv, http.MethodGet, "/api/v1/entries", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list api.ListEntriesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Entries, 1)
	assert.Equal(t, created.ID, list.Entries[0].ID)
}

func TestCreateEntryInvalidPayload(t *testing.T) {
	srv := newJournalServer(t)
	token := registerAndLogin(t, srv, "benjie")

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/entries", token, api.EntryPayload{Title: ""})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateEntryVersionGate(t *testing.T) {
	srv := newJournalServer(t)
	token := registerAndLogin(t, srv, "benjie")

	created := createEntry(t, srv, token, "Original")

	resp := doRequest(t, srv, http.MethodPut, "/api/v1/entries/"+created.ID, token,
		api.UpdateEntryRequest{
			EntryPayload: api.EntryPayload{Title: "First edit"},
			BaseVersion:  1,
		})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeEntry(t, resp)
	assert.Equal(t, int64(2), updated.Version)

	// A second writer still holding base version 1 gets the full conflict body.
	resp = doRequest(t, srv, http.MethodPut, "/api/v1/entries/"+created.ID, token,
		api.UpdateEntryRequest{
			EntryPayload: api.EntryPayload{Title: "Stale edit"},
			BaseVersion:  1,
		})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	defer resp.Body.Close()

	var conflict api.VersionConflictResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&conflict))
	assert.Equal(t, "version conflict", conflict.Error)
	assert.Equal(t, int64(2), conflict.ServerVersion)
	assert.Equal(t, "First edit", conflict.ServerEntry.Title)
}

func TestUpdateEntryMissingBaseVersion(t *testing.T) {
	srv := newJournalServer(t)
	token := registerAndLogin(t, srv, "benjie")

	created := createEntry(t, srv, token, "Original")

	resp := doRequest(t, srv, http.MethodPut, "/api/v1/entries/"+created.ID, token,
		api.UpdateEntryRequest{EntryPayload: api.EntryPayload{Title: "Edit"}})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateEntryNotFound(t *testing.T) {
	srv := newJournalServer(t)
	token := registerAndLogin(t, srv, "benjie")

	resp := doRequest(t, srv, http.MethodPut, "/api/v1/entries/nonexistent", token,
		api.UpdateEntryRequest{
			EntryPayload: api.EntryPayload{Title: "Edit"},
			BaseVersion:  1,
		})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTrashRestorePurgeFlow(t *testing.T) {
	srv := newJournalServer(t)
	token := registerAndLogin(t, srv, "benjie")

	created := createEntry(t, srv, token, "To trash")

	// Soft delete bumps the version.
	resp := doRequest(t, srv, http.MethodDelete, "/api/v1/entries/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	trashed := decodeEntry(t, resp)
	assert.True(t, trashed.Deleted)
	assert.Equal(t, int64(2), trashed.Version)

	// It shows up in the trashed list, not the active one.
	resp = doRequest(t, srv, http.MethodGet, "/api/v1/entries/trashed", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list api.ListEntriesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list.Entries, 1)

	// Restore brings it back and bumps again.
	resp = doRequest(t, srv, http.MethodPost, "/api/v1/entries/"+created.ID+"/restore", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	restored := decodeEntry(t, resp)
	assert.False(t, restored.Deleted)
	assert.Equal(t, int64(3), restored.Version)

	// Purge removes the row for good.
	resp = doRequest(t, srv, http.MethodDelete, "/api/v1/entries/"+created.ID+"/purge", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodDelete, "/api/v1/entries/"+created.ID+"/purge", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEntriesScopedToUser(t *testing.T) {
	srv := newJournalServer(t)
	ownerToken := registerAndLogin(t, srv, "owner")
	otherToken := registerAndLogin(t, srv, "intruder")

	created := createEntry(t, srv, ownerToken, "Private entry")

	resp := doRequest(t, srv, http.MethodGet, "/api/v1/entries", otherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list api.ListEntriesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Empty(t, list.Entries)

	resp = doRequest(t, srv, http.MethodPut, "/api/v1/entries/"+created.ID, otherToken,
		api.UpdateEntryRequest{
			EntryPayload: api.EntryPayload{Title: "Hijack"},
			BaseVersion:  1,
		})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
