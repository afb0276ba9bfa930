package sync

import (
	"context"

	"github.com/Benjie-san/cbc-journal/pkg/api"
)

//go:generate moq -out api_mock.go . RemoteAPI

// RemoteAPI is the remote store contract the reconciler drives. Every call is
// bearer-authenticated and time-bounded by the HTTP client.
type RemoteAPI interface {
	// CreateEntry creates an entry and returns the server's canonical row.
	CreateEntry(ctx context.Context, token string, payload api.EntryPayload) (*api.Entry, error)

	// UpdateEntry pushes a version-gated update. Fails with a
	// version-conflict error when the server holds a version other than
	// baseVersion.
	UpdateEntry(ctx context.Context, token, remoteID string, payload api.EntryPayload, baseVersion int64) (*api.Entry, error)

	// DeleteEntry moves an entry to the server-side trash.
	DeleteEntry(ctx context.Context, token, remoteID string) error

	// RestoreEntry brings an entry back from the server-side trash.
	RestoreEntry(ctx context.Context, token, remoteID string) (*api.Entry, error)

	// PurgeEntry permanently deletes an entry on the server.
	PurgeEntry(ctx context.Context, token, remoteID string) error

	// ListActive returns the server's full active set.
	ListActive(ctx context.Context, token string) ([]api.Entry, error)

	// ListTrashed returns the server's full trashed set.
	ListTrashed(ctx context.Context, token string) ([]api.Entry, error)
}

//go:generate moq -out tokens_mock.go . TokenSource

// TokenSource resolves an access credential once per pass.
// Returns auth.ErrNoSession when the user is not logged in.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}
