// Package journal implements the local-first record store service: every
// mutation is durably committed to local storage before it returns, marks the
// row with the remote action it owes, and nudges the debounced sync trigger.
// Nothing in this package ever touches the network.
package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Benjie-san/cbc-journal/internal/client/storage"
	"github.com/Benjie-san/cbc-journal/internal/models"
	"github.com/Benjie-san/cbc-journal/internal/validation"
)

// ErrConflictPending is returned when a trash/restore/purge operation targets
// a row with an unresolved version conflict. The conflict must be resolved
// first so the surfaced state is never silently clobbered.
var ErrConflictPending = errors.New("entry has an unresolved conflict")

// Draft carries the fields of a new entry.
type Draft struct {
	Title        string
	ScriptureRef string
	Scripture    string
	Content      string
	Tags         []string
}

// Service is the write/read surface the presentation layer uses.
type Service struct {
	entries  storage.EntryStorage
	logger   *slog.Logger
	autosync *Debouncer
	now      func() time.Time
	newID    func() string
}

// NewService creates a new journal service. autosync may be nil when no
// background sync is wanted (tests, one-shot CLI commands).
func NewService(entries storage.EntryStorage, autosync *Debouncer, logger *slog.Logger) *Service {
	return &Service{
		entries:  entries,
		logger:   logger,
		autosync: autosync,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// Create allocates a fresh entry in pending_create state.
func (s *Service) Create(ctx context.Context, draft Draft) (*models.Entry, error) {
	if err := validation.ValidateDraft(draft.Title, draft.Tags); err != nil {
		return nil, err
	}

	now := s.now()
	entry := &models.Entry{
		LocalID:      s.newID(),
		Title:        draft.Title,
		ScriptureRef: draft.ScriptureRef,
		Scripture:    draft.Scripture,
		Content:      draft.Content,
		Tags:         append([]string(nil), draft.Tags...),
		Version:      1,
		SyncState:    models.SyncStatePendingCreate,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSavedAt:  now,
	}

	if err := s.entries.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.logger.Debug("entry created", "local_id", entry.LocalID)
	s.scheduleSync()

	return entry, nil
}

// Update merges the patch over the row and marks it pending. A row in
// conflict keeps its conflict state (sticky until resolved); a row whose
// create never reached the server stays pending_create.
// Returns storage.ErrEntryNotFound for an unknown id.
func (s *Service) Update(ctx context.Context, localID string, patch *models.EntryPatch) (*models.Entry, error) {
	entry, err := s.entries.GetEntry(ctx, localID)
	if err != nil {
		return nil, err
	}

	if patch.IsZero() {
		return entry, nil
	}

	entry.Apply(patch)
	now := s.now()
	entry.UpdatedAt = now
	entry.LastSavedAt = now

	switch {
	case entry.SyncState == models.SyncStateConflict:
		// sticky
	case entry.RemoteID == "":
		entry.SyncState = models.SyncStatePendingCreate
	default:
		entry.SyncState = models.SyncStatePendingUpdate
	}

	if err := s.entries.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	s.logger.Debug("entry updated", "local_id", localID, "state", entry.SyncState)
	s.scheduleSync()

	return entry, nil
}

// SoftDelete moves the entry to the trash. A never-synced row stays
// pending_create and is dropped without a round trip when drained.
func (s *Service) SoftDelete(ctx context.Context, localID string) error {
	entry, err := s.entries.GetEntry(ctx, localID)
	if err != nil {
		return err
	}
	if entry.SyncState == models.SyncStateConflict {
		return ErrConflictPending
	}

	entry.Deleted = true
	now := s.now()
	entry.UpdatedAt = now
	entry.LastSavedAt = now
	if entry.RemoteID != "" {
		entry.SyncState = models.SyncStatePendingDelete
	}

	if err := s.entries.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.logger.Debug("entry trashed", "local_id", localID, "state", entry.SyncState)
	s.scheduleSync()

	return nil
}

// Restore brings a trashed entry back.
func (s *Service) Restore(ctx context.Context, localID string) error {
	entry, err := s.entries.GetEntry(ctx, localID)
	if err != nil {
		return err
	}
	if entry.SyncState == models.SyncStateConflict {
		return ErrConflictPending
	}

	entry.Deleted = false
	now := s.now()
	entry.UpdatedAt = now
	entry.LastSavedAt = now
	if entry.RemoteID != "" {
		entry.SyncState = models.SyncStatePendingRestore
	} else {
		entry.SyncState = models.SyncStatePendingCreate
	}

	if err := s.entries.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to restore entry: %w", err)
	}

	s.logger.Debug("entry restored", "local_id", localID, "state", entry.SyncState)
	s.scheduleSync()

	return nil
}

// PermanentDelete removes a never-synced row immediately; a synced row is
// marked pending_purge and removed only after the server confirms deletion.
func (s *Service) PermanentDelete(ctx context.Context, localID string) error {
	entry, err := s.entries.GetEntry(ctx, localID)
	if err != nil {
		return err
	}
	if entry.SyncState == models.SyncStateConflict {
		return ErrConflictPending
	}

	if entry.RemoteID == "" {
		if err := s.entries.RemoveEntry(ctx, localID); err != nil {
			return fmt.Errorf("failed to remove entry: %w", err)
		}
		s.logger.Debug("never-synced entry removed", "local_id", localID)
		return nil
	}

	entry.SyncState = models.SyncStatePendingPurge
	entry.LastSavedAt = s.now()

	if err := s.entries.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to mark entry for purge: %w", err)
	}

	s.logger.Debug("entry marked for purge", "local_id", localID)
	s.scheduleSync()

	return nil
}

// Get retrieves one entry by local id.
func (s *Service) Get(ctx context.Context, localID string) (*models.Entry, error) {
	return s.entries.GetEntry(ctx, localID)
}

// ListActive returns all non-deleted entries, newest first. Never blocks on
// the network.
func (s *Service) ListActive(ctx context.Context) ([]*models.Entry, error) {
	return s.entries.ListActive(ctx)
}

// ListTrashed returns all trashed entries, newest first.
func (s *Service) ListTrashed(ctx context.Context) ([]*models.Entry, error) {
	return s.entries.ListTrashed(ctx)
}

func (s *Service) scheduleSync() {
	if s.autosync != nil {
		s.autosync.Trigger()
	}
}
