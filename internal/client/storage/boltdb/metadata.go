package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Benjie-san/cbc-journal/internal/client/storage"
	"github.com/Benjie-san/cbc-journal/internal/models"
)

const (
	keyLastSyncAt = "last_sync_at"
	keyConflict   = "conflict"
)

// SaveLastSyncAt records when the last sync pass completed successfully
func (s *Storage) SaveLastSyncAt(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.Unix()))

		if err := bucket.Put([]byte(keyLastSyncAt), buf); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncAt retrieves the completion time of the last successful sync
// pass. Returns the zero time if no pass has completed yet.
func (s *Storage) GetLastSyncAt(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLastSyncAt))
		if buf == nil {
			return nil
		}

		t = time.Unix(int64(binary.BigEndian.Uint64(buf)), 0)
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return t, nil
}

// SaveConflict persists the captured version conflict so it can still be
// resolved by a later process.
func (s *Storage) SaveConflict(ctx context.Context, conflict *models.Conflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(conflict)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyConflict), data); err != nil {
			return fmt.Errorf("failed to save conflict: %w", err)
		}

		return nil
	})
}

// GetConflict retrieves the persisted conflict. Returns nil if none is
// captured.
func (s *Storage) GetConflict(ctx context.Context) (*models.Conflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflict *models.Conflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyConflict))
		if buf == nil {
			return nil
		}

		conflict = &models.Conflict{}
		if err := json.Unmarshal(buf, conflict); err != nil {
			return fmt.Errorf("failed to unmarshal conflict: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}

	return conflict, nil
}

// DeleteConflict removes the persisted conflict record.
func (s *Storage) DeleteConflict(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Delete([]byte(keyConflict)); err != nil {
			return fmt.Errorf("failed to delete conflict: %w", err)
		}

		return nil
	})
}
