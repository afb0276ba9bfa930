package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/Benjie-san/cbc-journal/internal/client/storage"
	"github.com/Benjie-san/cbc-journal/internal/models"
)

// SaveEntry stores or replaces a journal entry keyed by LocalID.
// A non-empty RemoteID must be unique across all rows.
func (s *Storage) SaveEntry(ctx context.Context, entry *models.Entry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntries)
		if bucket == nil {
			return fmt.Errorf("entries bucket not found")
		}

		// Unique index on non-empty RemoteID. The set is small (personal
		// journal), a scan inside the write transaction is enough.
		if entry.RemoteID != "" {
			err := bucket.ForEach(func(k, v []byte) error {
				if string(k) == entry.LocalID {
					return nil
				}
				var other models.Entry
				if err := json.Unmarshal(v, &other); err != nil {
					return fmt.Errorf("failed to unmarshal entry: %w", err)
				}
				if other.RemoteID == entry.RemoteID {
					return storage.ErrDuplicateRemoteID
				}
				return nil
			})
			if err != nil {
				return err
			}
		}

		if err := bucket.Put([]byte(entry.LocalID), data); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// GetEntry retrieves a journal entry by LocalID
func (s *Storage) GetEntry(ctx context.Context, localID string) (*models.Entry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entry *models.Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntries)
		if bucket == nil {
			return storage.ErrEntryNotFound
		}

		data := bucket.Get([]byte(localID))
		if data == nil {
			return storage.ErrEntryNotFound
		}

		entry = &models.Entry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// GetEntryByRemoteID retrieves a journal entry by its server-assigned ID
func (s *Storage) GetEntryByRemoteID(ctx context.Context, remoteID string) (*models.Entry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	if remoteID == "" {
		return nil, storage.ErrEntryNotFound
	}

	var entry *models.Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntries)
		if bucket == nil {
			return storage.ErrEntryNotFound
		}

		return bucket.ForEach(func(k, v []byte) error {
			if entry != nil {
				return nil
			}
			var candidate models.Entry
			if err := json.Unmarshal(v, &candidate); err != nil {
				return fmt.Errorf("failed to unmarshal entry: %w", err)
			}
			if candidate.RemoteID == remoteID {
				entry = &candidate
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	if entry == nil {
		return nil, storage.ErrEntryNotFound
	}

	return entry, nil
}

// ListActive returns all non-deleted entries ordered by CreatedAt descending
func (s *Storage) ListActive(ctx context.Context) ([]*models.Entry, error) {
	entries, err := s.filterEntries(func(e *models.Entry) bool { return !e.Deleted })
	if err != nil {
		return nil, fmt.Errorf("failed to list active entries: %w", err)
	}
	sortByCreatedAtDesc(entries)
	return entries, nil
}

// ListTrashed returns all soft-deleted entries ordered by CreatedAt descending
func (s *Storage) ListTrashed(ctx context.Context) ([]*models.Entry, error) {
	entries, err := s.filterEntries(func(e *models.Entry) bool { return e.Deleted })
	if err != nil {
		return nil, fmt.Errorf("failed to list trashed entries: %w", err)
	}
	sortByCreatedAtDesc(entries)
	return entries, nil
}

// ListPending returns every entry owing a remote action in drain order:
// state rank first, then CreatedAt ascending, then LocalID as final
// tie-breaker. The order is stable so repeated passes over the same pending
// set issue the same remote calls in the same sequence.
func (s *Storage) ListPending(ctx context.Context) ([]*models.Entry, error) {
	entries, err := s.filterEntries(func(e *models.Entry) bool { return e.SyncState.IsPending() })
	if err != nil {
		return nil, fmt.Errorf("failed to list pending entries: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		ri, rj := entries[i].SyncState.DrainRank(), entries[j].SyncState.DrainRank()
		if ri != rj {
			return ri < rj
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].LocalID < entries[j].LocalID
	})

	return entries, nil
}

// ListByState returns all entries currently in the given sync state
func (s *Storage) ListByState(ctx context.Context, state models.SyncState) ([]*models.Entry, error) {
	entries, err := s.filterEntries(func(e *models.Entry) bool { return e.SyncState == state })
	if err != nil {
		return nil, fmt.Errorf("failed to list entries by state: %w", err)
	}
	sortByCreatedAtDesc(entries)
	return entries, nil
}

// RemoveEntry deletes the row entirely
func (s *Storage) RemoveEntry(ctx context.Context, localID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntries)
		if bucket == nil {
			return storage.ErrEntryNotFound
		}

		if bucket.Get([]byte(localID)) == nil {
			return storage.ErrEntryNotFound
		}

		if err := bucket.Delete([]byte(localID)); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		return nil
	})
}

// filterEntries collects all entries matching the predicate
func (s *Storage) filterEntries(keep func(*models.Entry) bool) ([]*models.Entry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entries []*models.Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntries)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entry models.Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal entry: %w", err)
			}
			if keep(&entry) {
				entries = append(entries, &entry)
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

func sortByCreatedAtDesc(entries []*models.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].LocalID < entries[j].LocalID
	})
}
