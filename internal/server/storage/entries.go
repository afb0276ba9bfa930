package storage

import (
	"context"

	"github.com/Benjie-san/cbc-journal/pkg/api"
)

// EntryStorage defines interface for server-side journal entry persistence.
// The server owns entry versions: every accepted write bumps the version
// by one, and updates are gated on the version the client last saw.
type EntryStorage interface {
	// CreateEntry inserts a new entry for the user at version 1
	CreateEntry(ctx context.Context, userID string, entry *api.Entry) error

	// GetEntry retrieves a single entry owned by the user
	// Returns ErrEntryNotFound if entry doesn't exist
	GetEntry(ctx context.Context, userID, entryID string) (*api.Entry, error)

	// UpdateEntry replaces the entry payload if the stored version equals
	// baseVersion, bumping the version by one.
	// Returns ErrVersionConflict (and the current stored entry) on mismatch.
	// Returns ErrEntryNotFound if entry doesn't exist
	UpdateEntry(ctx context.Context, userID, entryID string, baseVersion int64, payload *api.EntryPayload) (*api.Entry, error)

	// SetDeleted flips the soft-delete flag, bumping the version by one
	// Returns ErrEntryNotFound if entry doesn't exist
	SetDeleted(ctx context.Context, userID, entryID string, deleted bool) (*api.Entry, error)

	// PurgeEntry removes the entry row permanently
	// Returns ErrEntryNotFound if entry doesn't exist
	PurgeEntry(ctx context.Context, userID, entryID string) error

	// ListEntries retrieves all entries for a user with the given deleted flag,
	// newest first. Returns empty slice if no entries found
	ListEntries(ctx context.Context, userID string, deleted bool) ([]*api.Entry, error)
}
