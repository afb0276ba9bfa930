package storage

import (
	"context"

	"github.com/Benjie-san/cbc-journal/internal/models"
)

//go:generate moq -out entries_mock.go . EntryStorage

// EntryStorage defines the durable local store for journal entries.
// It is the sole source of truth for what the app renders offline: every
// mutation must be committed before the call returns.
type EntryStorage interface {
	// SaveEntry stores or replaces an entry keyed by its LocalID.
	SaveEntry(ctx context.Context, entry *models.Entry) error

	// GetEntry retrieves an entry by LocalID.
	// Returns ErrEntryNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, localID string) (*models.Entry, error)

	// GetEntryByRemoteID retrieves an entry by its server-assigned ID.
	// Returns ErrEntryNotFound if no row carries that RemoteID.
	GetEntryByRemoteID(ctx context.Context, remoteID string) (*models.Entry, error)

	// ListActive returns all non-deleted entries ordered by CreatedAt descending.
	ListActive(ctx context.Context) ([]*models.Entry, error)

	// ListTrashed returns all soft-deleted entries ordered by CreatedAt descending.
	ListTrashed(ctx context.Context) ([]*models.Entry, error)

	// ListPending returns every entry owing a remote action, in the fixed
	// drain order used by a sync pass (state rank, then CreatedAt, then
	// LocalID). Conflict rows are excluded.
	ListPending(ctx context.Context) ([]*models.Entry, error)

	// ListByState returns all entries currently in the given state.
	ListByState(ctx context.Context, state models.SyncState) ([]*models.Entry, error)

	// RemoveEntry deletes the row entirely (hard delete).
	// Returns ErrEntryNotFound if the entry doesn't exist.
	RemoveEntry(ctx context.Context, localID string) error
}
