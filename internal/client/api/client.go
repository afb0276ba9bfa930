package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Benjie-san/cbc-journal/pkg/api"
)

// defaultTimeout bounds every remote call. A slow server is treated the same
// as an unreachable one: the sync pass aborts and retries later.
const defaultTimeout = 5 * time.Second

// ErrNotFound is returned when the server does not know the requested entry.
var ErrNotFound = errors.New("entry not found on server")

// VersionConflictError is returned by UpdateEntry when the server holds a
// newer version than the claimed base version. It carries the server's
// current entry so the caller can surface the conflict without re-fetching.
type VersionConflictError struct {
	ServerEntry   api.Entry
	ServerVersion int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict: server has version %d", e.ServerVersion)
}

// Client is the HTTP client for the journal sync server
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates a user and returns a token pair
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a fresh token pair
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// CreateEntry creates a new entry on the server and returns the server's
// canonical row (ID, version 1, timestamps).
func (c *Client) CreateEntry(ctx context.Context, token string, payload api.EntryPayload) (*api.Entry, error) {
	var resp api.Entry
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/entries", token, payload, &resp); err != nil {
		return nil, fmt.Errorf("create entry request failed: %w", err)
	}
	return &resp, nil
}

// UpdateEntry pushes a version-gated update. Returns *VersionConflictError if
// the server's current version differs from baseVersion.
func (c *Client) UpdateEntry(ctx context.Context, token, remoteID string, payload api.EntryPayload, baseVersion int64) (*api.Entry, error) {
	req := api.UpdateEntryRequest{
		EntryPayload: payload,
		BaseVersion:  baseVersion,
	}

	var resp api.Entry
	err := c.doRequest(ctx, http.MethodPut, "/api/v1/entries/"+remoteID, token, req, &resp)
	if err != nil {
		var conflict *VersionConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, fmt.Errorf("update entry request failed: %w", err)
	}
	return &resp, nil
}

// DeleteEntry moves an entry to the server-side trash
func (c *Client) DeleteEntry(ctx context.Context, token, remoteID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/entries/"+remoteID, token, nil, nil); err != nil {
		return fmt.Errorf("delete entry request failed: %w", err)
	}
	return nil
}

// RestoreEntry brings an entry back from the server-side trash
func (c *Client) RestoreEntry(ctx context.Context, token, remoteID string) (*api.Entry, error) {
	var resp api.Entry
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/entries/"+remoteID+"/restore", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("restore entry request failed: %w", err)
	}
	return &resp, nil
}

// PurgeEntry permanently deletes an entry on the server
func (c *Client) PurgeEntry(ctx context.Context, token, remoteID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/entries/"+remoteID+"/purge", token, nil, nil); err != nil {
		return fmt.Errorf("purge entry request failed: %w", err)
	}
	return nil
}

// ListActive returns the server's full active entry set
func (c *Client) ListActive(ctx context.Context, token string) ([]api.Entry, error) {
	var resp api.ListEntriesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/entries", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list entries request failed: %w", err)
	}
	return resp.Entries, nil
}

// ListTrashed returns the server's full trashed entry set
func (c *Client) ListTrashed(ctx context.Context, token string) ([]api.Entry, error) {
	var resp api.ListEntriesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/entries/trashed", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list trashed request failed: %w", err)
	}
	return resp.Entries, nil
}

// doRequest performs one HTTP round trip with JSON encoding on both sides
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusConflict:
		// A 409 without a server_version is not a version conflict (e.g. a
		// taken username on register); let it fall through to the generic path.
		var conflictResp api.VersionConflictResponse
		if err := json.Unmarshal(respBody, &conflictResp); err == nil && conflictResp.ServerVersion > 0 {
			return &VersionConflictError{
				ServerVersion: conflictResp.ServerVersion,
				ServerEntry:   conflictResp.ServerEntry,
			}
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
