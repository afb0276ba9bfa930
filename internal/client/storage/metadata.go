package storage

import (
	"context"
	"time"

	"github.com/Benjie-san/cbc-journal/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines the store for small client-side bookkeeping values.
type MetadataStorage interface {
	// SaveLastSyncAt records when the last sync pass completed successfully.
	SaveLastSyncAt(ctx context.Context, t time.Time) error

	// GetLastSyncAt retrieves the completion time of the last successful
	// sync pass. Returns the zero time if no pass has completed yet.
	GetLastSyncAt(ctx context.Context) (time.Time, error)

	// SaveConflict persists the captured version conflict so it can still be
	// resolved by a later process.
	SaveConflict(ctx context.Context, conflict *models.Conflict) error

	// GetConflict retrieves the persisted conflict. Returns nil if none is
	// captured.
	GetConflict(ctx context.Context) (*models.Conflict, error)

	// DeleteConflict removes the persisted conflict record. Removing an
	// absent record is not an error.
	DeleteConflict(ctx context.Context) error
}
