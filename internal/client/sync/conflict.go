package sync

import (
	"context"
	"errors"
	"fmt"

	httpclient "github.com/Benjie-san/cbc-journal/internal/client/api"
	"github.com/Benjie-san/cbc-journal/internal/models"
)

// ErrNoConflict is returned by the resolution operations when the given row
// has no captured conflict in the holder slot.
var ErrNoConflict = errors.New("no conflict captured for this entry")

// Conflict returns the currently surfaced conflict, or nil. Only one conflict
// is visible at a time; further conflicted rows stay frozen in the store and
// re-surface on later passes once this one is resolved.
func (r *Reconciler) Conflict() *models.Conflict {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conflict
}

// takeConflict returns the slot if it matches the given row.
func (r *Reconciler) takeConflict(ctx context.Context, localID string) (*models.Conflict, error) {
	r.hydrate(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflict == nil || r.conflict.LocalID != localID {
		return nil, ErrNoConflict
	}
	return r.conflict, nil
}

// setConflict publishes the conflict and writes it through to the metadata
// store so a later process can still resolve it.
func (r *Reconciler) setConflict(ctx context.Context, c *models.Conflict) {
	if err := r.metadata.SaveConflict(ctx, c); err != nil {
		r.logger.Warn("failed to persist conflict", "local_id", c.LocalID, "error", err)
	}
	r.mu.Lock()
	r.conflict = c
	r.mu.Unlock()
}

func (r *Reconciler) clearConflict(ctx context.Context) {
	if err := r.metadata.DeleteConflict(ctx); err != nil {
		r.logger.Warn("failed to clear persisted conflict", "error", err)
	}
	r.mu.Lock()
	r.conflict = nil
	r.mu.Unlock()
}

// KeepRemote resolves the surfaced conflict by discarding the local edit in
// favor of the server snapshot captured at detection time. No network call:
// the server is already authoritative.
func (r *Reconciler) KeepRemote(ctx context.Context, localID string) error {
	conflict, err := r.takeConflict(ctx, localID)
	if err != nil {
		return err
	}

	row := conflict.ServerEntry.Clone()
	row.SyncState = models.SyncStateSynced
	row.LastSavedAt = r.now()

	if err := r.entries.SaveEntry(ctx, row); err != nil {
		return fmt.Errorf("failed to apply server snapshot to %s: %w", localID, err)
	}

	r.clearConflict(ctx)
	r.logger.Info("conflict resolved, server version kept",
		"local_id", localID, "version", row.Version)

	return nil
}

// KeepMine resolves the surfaced conflict by force-pushing the local edit,
// using the server version captured at detection time as the new precondition.
// The row is re-read at resolve time, so edits made while it sat frozen are
// part of the push. If the server moved on again in the meantime, the slot is
// re-captured with the newer server state and the user must resolve once more.
func (r *Reconciler) KeepMine(ctx context.Context, localID string) error {
	conflict, err := r.takeConflict(ctx, localID)
	if err != nil {
		return err
	}

	token, err := r.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("cannot resolve conflict: %w", err)
	}

	local, err := r.entries.GetEntry(ctx, localID)
	if err != nil {
		return fmt.Errorf("failed to load conflicted entry %s: %w", localID, err)
	}

	remote, err := r.apiClient.UpdateEntry(ctx, token, local.RemoteID, payloadFrom(local), conflict.ServerVersion)
	if err != nil {
		var renewed *httpclient.VersionConflictError
		if errors.As(err, &renewed) {
			// The server advanced again. Re-capture with the newer state.
			r.setConflict(ctx, &models.Conflict{
				LocalID:       localID,
				ServerVersion: renewed.ServerVersion,
				ServerEntry:   entryFromRemote(localID, &renewed.ServerEntry),
				LocalEntry:    local,
				DetectedAt:    r.now(),
			})

			r.logger.Warn("conflict renewed, server moved on",
				"local_id", localID, "server_version", renewed.ServerVersion)
			return fmt.Errorf("conflict renewed: server now at version %d", renewed.ServerVersion)
		}
		return fmt.Errorf("failed to push local version of %s: %w", localID, err)
	}

	applyRemote(local, remote)
	local.SyncState = models.SyncStateSynced
	local.LastSavedAt = r.now()

	if err := r.entries.SaveEntry(ctx, local); err != nil {
		return fmt.Errorf("failed to settle resolved entry %s: %w", localID, err)
	}

	r.clearConflict(ctx)
	r.logger.Info("conflict resolved, local version kept",
		"local_id", localID, "version", local.Version)

	return nil
}
