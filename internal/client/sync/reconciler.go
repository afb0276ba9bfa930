// Package sync implements the reconciliation engine between the local journal
// store and the authoritative server.
//
// A pass pushes every pending row in a fixed order, then pulls the server's
// full active and trashed sets and merges them into the local store. A version
// conflict freezes the affected row and is surfaced through the conflict
// holder; any other remote failure aborts the whole pass with every row's
// state untouched, so the next pass retries from scratch.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	httpclient "github.com/Benjie-san/cbc-journal/internal/client/api"
	"github.com/Benjie-san/cbc-journal/internal/client/auth"
	"github.com/Benjie-san/cbc-journal/internal/client/storage"
	"github.com/Benjie-san/cbc-journal/internal/models"
	"github.com/Benjie-san/cbc-journal/pkg/api"
)

// Status is the observable state of the engine. Sync failures never propagate
// to the presentation layer; they land here.
type Status struct {
	LastSyncAt time.Time        `json:"last_sync_at"`
	Error      string           `json:"error,omitempty"`
	Conflict   *models.Conflict `json:"conflict,omitempty"`
	Syncing    bool             `json:"syncing"`
	Online     bool             `json:"online"`
}

// Result summarizes one completed pass.
type Result struct {
	Pushed    int // rows drained to the server
	Settled   int // rows settled locally with no network call
	Pulled    int // rows received from the server snapshot
	Merged    int // pulled rows applied to the local store
	Pruned    int // local synced rows removed because the server no longer has them
	Conflicts int // version conflicts detected this pass
}

// Reconciler drives sync passes. Safe for concurrent use; a pass already in
// flight makes further Sync calls no-ops.
type Reconciler struct {
	apiClient RemoteAPI
	entries   storage.EntryStorage
	metadata  storage.MetadataStorage
	tokens    TokenSource
	logger    *slog.Logger
	now       func() time.Time

	syncing  atomic.Bool
	mu       sync.Mutex // guards status, conflict slot, hydrated
	status   Status
	conflict *models.Conflict
	hydrated bool
}

// NewReconciler creates a new reconciler
func NewReconciler(apiClient RemoteAPI, entries storage.EntryStorage, metadata storage.MetadataStorage, tokens TokenSource, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		apiClient: apiClient,
		entries:   entries,
		metadata:  metadata,
		tokens:    tokens,
		logger:    logger,
		now:       time.Now,
	}
}

// Status returns a snapshot of the engine state.
func (r *Reconciler) Status(ctx context.Context) Status {
	r.hydrate(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.status
	st.Syncing = r.syncing.Load()
	st.Conflict = r.conflict
	return st
}

// hydrate restores persisted engine state after a process restart: the last
// sync time and, critically, a captured conflict — the CLI runs one command
// per process, so a conflict detected by `sync` must still be resolvable by a
// later `resolve`.
func (r *Reconciler) hydrate(ctx context.Context) {
	r.mu.Lock()
	if r.hydrated {
		r.mu.Unlock()
		return
	}
	r.hydrated = true
	r.mu.Unlock()

	lastSync, err := r.metadata.GetLastSyncAt(ctx)
	if err != nil {
		r.logger.Warn("failed to load last sync time", "error", err)
	}

	conflict, err := r.metadata.GetConflict(ctx)
	if err != nil {
		r.logger.Warn("failed to load persisted conflict", "error", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status.LastSyncAt.IsZero() {
		r.status.LastSyncAt = lastSync
	}
	if r.conflict == nil {
		r.conflict = conflict
	}
}

// Sync runs one reconciliation pass. If a pass is already in flight the call
// returns (nil, nil) immediately without queuing another one. A nil error
// with a non-nil Result means the pass completed; errors are also recorded in
// the observable status, so callers that only watch Status may ignore them.
func (r *Reconciler) Sync(ctx context.Context) (*Result, error) {
	if !r.syncing.CompareAndSwap(false, true) {
		return nil, nil
	}
	defer r.syncing.Store(false)

	r.hydrate(ctx)

	r.logger.Info("sync pass started")

	token, err := r.tokens.AccessToken(ctx)
	if err != nil {
		// No credential is not a hard error: the engine is offline and every
		// pending row stays queued for the next attempt.
		r.setOffline(err)
		if errors.Is(err, auth.ErrNoSession) {
			return nil, fmt.Errorf("sync aborted: %w", err)
		}
		return nil, fmt.Errorf("sync aborted: credential unavailable: %w", err)
	}

	result := &Result{}

	// The pending set is snapshotted once. Rows that turn pending while the
	// pass is suspended at a network call are picked up by the next pass.
	pending, err := r.entries.ListPending(ctx)
	if err != nil {
		r.setError(err)
		return nil, fmt.Errorf("failed to snapshot pending entries: %w", err)
	}

	for _, entry := range pending {
		if err := r.pushEntry(ctx, token, entry, result); err != nil {
			// Whole-pass abort: states are exactly as they were, the next
			// pass retries everything. Only version conflicts are localized,
			// and pushEntry absorbs those.
			r.setError(err)
			return nil, fmt.Errorf("sync pass aborted: %w", err)
		}
	}

	if err := r.pullSnapshot(ctx, token, result); err != nil {
		r.setError(err)
		return nil, fmt.Errorf("sync pass aborted: %w", err)
	}

	completedAt := r.now()
	if err := r.metadata.SaveLastSyncAt(ctx, completedAt); err != nil {
		// Bookkeeping only; the pass itself succeeded.
		r.logger.Warn("failed to persist last sync time", "error", err)
	}

	r.setOnline(completedAt)

	r.logger.Info("sync pass completed",
		"pushed", result.Pushed,
		"settled", result.Settled,
		"pulled", result.Pulled,
		"merged", result.Merged,
		"pruned", result.Pruned,
		"conflicts", result.Conflicts)

	return result, nil
}

// pushEntry performs the remote action owed by one pending row.
func (r *Reconciler) pushEntry(ctx context.Context, token string, entry *models.Entry, result *Result) error {
	switch entry.SyncState {
	case models.SyncStatePendingCreate:
		return r.pushCreate(ctx, token, entry, result)

	case models.SyncStatePendingUpdate:
		// A row updated before its create ever reached the server has no
		// RemoteID; creating it recovers from a restart between the local
		// create and its first sync.
		if entry.RemoteID == "" {
			return r.pushCreate(ctx, token, entry, result)
		}
		return r.pushUpdate(ctx, token, entry, result)

	case models.SyncStatePendingDelete:
		return r.pushDelete(ctx, token, entry, result)

	case models.SyncStatePendingRestore:
		if entry.RemoteID == "" {
			return r.pushCreate(ctx, token, entry, result)
		}
		remote, err := r.apiClient.RestoreEntry(ctx, token, entry.RemoteID)
		if err != nil {
			return fmt.Errorf("restore push failed for %s: %w", entry.LocalID, err)
		}
		return r.adoptRemote(ctx, entry, remote, result)

	case models.SyncStatePendingPurge:
		if entry.RemoteID != "" {
			err := r.apiClient.PurgeEntry(ctx, token, entry.RemoteID)
			if err != nil && !errors.Is(err, httpclient.ErrNotFound) {
				return fmt.Errorf("purge push failed for %s: %w", entry.LocalID, err)
			}
		}
		if err := r.entries.RemoveEntry(ctx, entry.LocalID); err != nil {
			return fmt.Errorf("failed to remove purged entry %s: %w", entry.LocalID, err)
		}
		result.Pushed++
		return nil

	default:
		// Synced and conflict rows are never in the pending snapshot.
		return nil
	}
}

func (r *Reconciler) pushCreate(ctx context.Context, token string, entry *models.Entry, result *Result) error {
	// Deleted before it ever reached the server: settle locally, zero
	// network calls.
	if entry.Deleted && entry.RemoteID == "" {
		if err := r.entries.RemoveEntry(ctx, entry.LocalID); err != nil {
			return fmt.Errorf("failed to drop never-synced entry %s: %w", entry.LocalID, err)
		}
		result.Settled++
		return nil
	}

	remote, err := r.apiClient.CreateEntry(ctx, token, payloadFrom(entry))
	if err != nil {
		return fmt.Errorf("create push failed for %s: %w", entry.LocalID, err)
	}

	return r.adoptRemote(ctx, entry, remote, result)
}

func (r *Reconciler) pushUpdate(ctx context.Context, token string, entry *models.Entry, result *Result) error {
	remote, err := r.apiClient.UpdateEntry(ctx, token, entry.RemoteID, payloadFrom(entry), entry.Version)
	if err != nil {
		var conflict *httpclient.VersionConflictError
		if errors.As(err, &conflict) {
			// Localized failure: this row freezes, the rest of the pass
			// continues.
			if err := r.captureConflict(ctx, entry, conflict); err != nil {
				return err
			}
			result.Conflicts++
			return nil
		}
		return fmt.Errorf("update push failed for %s: %w", entry.LocalID, err)
	}

	return r.adoptRemote(ctx, entry, remote, result)
}

func (r *Reconciler) pushDelete(ctx context.Context, token string, entry *models.Entry, result *Result) error {
	if entry.RemoteID == "" {
		// Never synced; nothing to delete remotely.
		if err := r.entries.RemoveEntry(ctx, entry.LocalID); err != nil {
			return fmt.Errorf("failed to drop never-synced entry %s: %w", entry.LocalID, err)
		}
		result.Settled++
		return nil
	}

	err := r.apiClient.DeleteEntry(ctx, token, entry.RemoteID)
	if err != nil && !errors.Is(err, httpclient.ErrNotFound) {
		return fmt.Errorf("delete push failed for %s: %w", entry.LocalID, err)
	}

	entry.Deleted = true
	entry.SyncState = models.SyncStateSynced
	entry.LastSavedAt = r.now()
	if err := r.entries.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to settle deleted entry %s: %w", entry.LocalID, err)
	}

	result.Pushed++
	return nil
}

// adoptRemote overwrites the row's remote-owned fields with the server's
// canonical response and settles it to synced.
func (r *Reconciler) adoptRemote(ctx context.Context, entry *models.Entry, remote *api.Entry, result *Result) error {
	applyRemote(entry, remote)
	entry.SyncState = models.SyncStateSynced
	entry.LastSavedAt = r.now()

	if err := r.entries.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to settle entry %s: %w", entry.LocalID, err)
	}

	result.Pushed++
	return nil
}

// captureConflict freezes the row and records the conflict in the holder.
// The row keeps its local field values; the server snapshot lives in the
// conflict record so either resolution can be applied without re-deriving
// state.
func (r *Reconciler) captureConflict(ctx context.Context, entry *models.Entry, conflict *httpclient.VersionConflictError) error {
	local := entry.Clone()

	entry.SyncState = models.SyncStateConflict
	if err := r.entries.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to mark conflict on %s: %w", entry.LocalID, err)
	}

	server := entryFromRemote(entry.LocalID, &conflict.ServerEntry)

	c := &models.Conflict{
		LocalID:       entry.LocalID,
		ServerVersion: conflict.ServerVersion,
		ServerEntry:   server,
		LocalEntry:    local,
		DetectedAt:    r.now(),
	}

	r.setConflict(ctx, c)

	r.logger.Warn("version conflict detected",
		"local_id", entry.LocalID,
		"local_version", local.Version,
		"server_version", conflict.ServerVersion)

	return nil
}

// pullSnapshot merges the server's full active and trashed sets into the
// local store. Rows currently in conflict keep their surfaced state; rows
// that turned pending during the pass keep their local edits and push next
// pass. Synced rows whose RemoteID has vanished from the server were removed
// by another device and are pruned.
func (r *Reconciler) pullSnapshot(ctx context.Context, token string, result *Result) error {
	active, err := r.apiClient.ListActive(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to pull active set: %w", err)
	}

	trashed, err := r.apiClient.ListTrashed(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to pull trashed set: %w", err)
	}

	remote := make([]api.Entry, 0, len(active)+len(trashed))
	remote = append(remote, active...)
	remote = append(remote, trashed...)
	result.Pulled = len(remote)

	seen := make(map[string]struct{}, len(remote))

	for i := range remote {
		entry := &remote[i]
		seen[entry.ID] = struct{}{}

		local, err := r.entries.GetEntryByRemoteID(ctx, entry.ID)
		if err != nil {
			if errors.Is(err, storage.ErrEntryNotFound) {
				// New on the server: materialize a local row.
				row := entryFromRemote(uuid.New().String(), entry)
				row.LastSavedAt = r.now()
				if err := r.entries.SaveEntry(ctx, row); err != nil {
					return fmt.Errorf("failed to materialize entry %s: %w", entry.ID, err)
				}
				result.Merged++
				continue
			}
			return fmt.Errorf("failed to look up entry %s: %w", entry.ID, err)
		}

		// Don't clobber a surfaced conflict or an edit made while this pass
		// was suspended.
		if local.SyncState == models.SyncStateConflict || local.SyncState.IsPending() {
			continue
		}

		if local.Version == entry.Version && local.Deleted == entry.Deleted {
			continue
		}

		applyRemote(local, entry)
		local.SyncState = models.SyncStateSynced
		local.LastSavedAt = r.now()
		if err := r.entries.SaveEntry(ctx, local); err != nil {
			return fmt.Errorf("failed to merge entry %s: %w", entry.ID, err)
		}
		result.Merged++
	}

	// Prune synced rows the server no longer has.
	synced, err := r.entries.ListByState(ctx, models.SyncStateSynced)
	if err != nil {
		return fmt.Errorf("failed to list synced entries: %w", err)
	}
	for _, local := range synced {
		if local.RemoteID == "" {
			continue
		}
		if _, ok := seen[local.RemoteID]; ok {
			continue
		}
		if err := r.entries.RemoveEntry(ctx, local.LocalID); err != nil {
			return fmt.Errorf("failed to prune entry %s: %w", local.LocalID, err)
		}
		result.Pruned++
	}

	return nil
}

func (r *Reconciler) setOffline(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status.Online = false
	if errors.Is(err, auth.ErrNoSession) {
		r.status.Error = ""
		r.logger.Info("sync skipped: no session")
		return
	}
	r.status.Error = err.Error()
	r.logger.Warn("sync skipped: credential unavailable", "error", err)
}

func (r *Reconciler) setError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status.Online = false
	r.status.Error = err.Error()
	r.logger.Warn("sync pass failed", "error", err)
}

func (r *Reconciler) setOnline(completedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status.Online = true
	r.status.Error = ""
	r.status.LastSyncAt = completedAt
}

// payloadFrom extracts the pushable fields of a local row.
func payloadFrom(entry *models.Entry) api.EntryPayload {
	return api.EntryPayload{
		Title:        entry.Title,
		ScriptureRef: entry.ScriptureRef,
		Scripture:    entry.Scripture,
		Content:      entry.Content,
		Tags:         append([]string(nil), entry.Tags...),
	}
}

// applyRemote copies every remote-owned field onto the local row.
func applyRemote(entry *models.Entry, remote *api.Entry) {
	entry.RemoteID = remote.ID
	entry.Title = remote.Title
	entry.ScriptureRef = remote.ScriptureRef
	entry.Scripture = remote.Scripture
	entry.Content = remote.Content
	entry.Tags = append([]string(nil), remote.Tags...)
	entry.Version = remote.Version
	entry.Deleted = remote.Deleted
	entry.CreatedAt = remote.CreatedAt
	entry.UpdatedAt = remote.UpdatedAt
}

// entryFromRemote builds a local row from a server entry.
func entryFromRemote(localID string, remote *api.Entry) *models.Entry {
	entry := &models.Entry{
		LocalID:   localID,
		SyncState: models.SyncStateSynced,
	}
	applyRemote(entry, remote)
	return entry
}
