package journal

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjie-san/cbc-journal/internal/client/storage"
	"github.com/Benjie-san/cbc-journal/internal/client/storage/boltdb"
	"github.com/Benjie-san/cbc-journal/internal/models"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestService(t *testing.T) (*Service, *boltdb.Storage) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return NewService(store, nil, testLogger), store
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, Draft{
		Title:        "Morning reading",
		ScriptureRef: "Psalm 23:1-4",
		Scripture:    "The Lord is my shepherd...",
		Content:      "Reflections on provision.",
		Tags:         []string{"psalms"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.LocalID)
	assert.Empty(t, entry.RemoteID)
	assert.Equal(t, int64(1), entry.Version)
	assert.Equal(t, models.SyncStatePendingCreate, entry.SyncState)

	got, err := store.GetEntry(ctx, entry.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "Morning reading", got.Title)
	assert.Equal(t, "Psalm 23:1-4", got.ScriptureRef)
}

func TestCreateInvalidDraft(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), Draft{Title: ""})
	assert.Error(t, err)
}

func TestUpdateMarksPending(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry := &models.Entry{
		LocalID:   "local-1",
		RemoteID:  "remote-1",
		Title:     "Original",
		Version:   3,
		SyncState: models.SyncStateSynced,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))

	updated, err := svc.Update(ctx, "local-1", &models.EntryPatch{Title: strPtr("Edited")})
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, models.SyncStatePendingUpdate, updated.SyncState)
	// Version is owned by the server; a local edit never bumps it.
	assert.Equal(t, int64(3), updated.Version)
}

func TestUpdateTwiceKeepsSingleRow(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry := &models.Entry{
		LocalID:   "local-1",
		RemoteID:  "remote-1",
		Title:     "Original",
		Version:   1,
		SyncState: models.SyncStateSynced,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))

	_, err := svc.Update(ctx, "local-1", &models.EntryPatch{Title: strPtr("First edit")})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "local-1", &models.EntryPatch{Title: strPtr("Second edit")})
	require.NoError(t, err)

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Second edit", pending[0].Title)
}

func TestUpdateNeverSyncedStaysPendingCreate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, Draft{Title: "Draft"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, entry.LocalID, &models.EntryPatch{Title: strPtr("Edited draft")})
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatePendingCreate, updated.SyncState)
}

func TestUpdateConflictIsSticky(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry := &models.Entry{
		LocalID:   "local-1",
		RemoteID:  "remote-1",
		Title:     "Frozen",
		Version:   2,
		SyncState: models.SyncStateConflict,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))

	updated, err := svc.Update(ctx, "local-1", &models.EntryPatch{Title: strPtr("Still editable")})
	require.NoError(t, err)
	assert.Equal(t, "Still editable", updated.Title)
	assert.Equal(t, models.SyncStateConflict, updated.SyncState)
}

func TestUpdateEmptyPatchIsNoop(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry := &models.Entry{
		LocalID:   "local-1",
		RemoteID:  "remote-1",
		Title:     "Original",
		Version:   1,
		SyncState: models.SyncStateSynced,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))

	updated, err := svc.Update(ctx, "local-1", &models.EntryPatch{})
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSynced, updated.SyncState)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), "missing", &models.EntryPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestSoftDeleteSyncedRow(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry := &models.Entry{
		LocalID:   "local-1",
		RemoteID:  "remote-1",
		Title:     "To trash",
		Version:   1,
		SyncState: models.SyncStateSynced,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))

	require.NoError(t, svc.SoftDelete(ctx, "local-1"))

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.Equal(t, models.SyncStatePendingDelete, got.SyncState)
}

func TestSoftDeleteNeverSyncedStaysPendingCreate(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, Draft{Title: "Draft"})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, entry.LocalID))

	got, err := store.GetEntry(ctx, entry.LocalID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	// The drain settles this locally with no network call.
	assert.Equal(t, models.SyncStatePendingCreate, got.SyncState)
}

func TestRestore(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry := &models.Entry{
		LocalID:   "local-1",
		RemoteID:  "remote-1",
		Title:     "Trashed",
		Version:   2,
		Deleted:   true,
		SyncState: models.SyncStateSynced,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))

	require.NoError(t, svc.Restore(ctx, "local-1"))

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.False(t, got.Deleted)
	assert.Equal(t, models.SyncStatePendingRestore, got.SyncState)
}

func TestPermanentDeleteNeverSyncedRemovesNow(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, Draft{Title: "Draft"})
	require.NoError(t, err)

	require.NoError(t, svc.PermanentDelete(ctx, entry.LocalID))

	_, err = store.GetEntry(ctx, entry.LocalID)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestPermanentDeleteSyncedMarksPurge(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry := &models.Entry{
		LocalID:   "local-1",
		RemoteID:  "remote-1",
		Title:     "Trashed",
		Version:   1,
		Deleted:   true,
		SyncState: models.SyncStateSynced,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))

	require.NoError(t, svc.PermanentDelete(ctx, "local-1"))

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatePendingPurge, got.SyncState)
}

func TestTrashOperationsRejectConflictedRow(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entry := &models.Entry{
		LocalID:   "local-1",
		RemoteID:  "remote-1",
		Title:     "Frozen",
		Version:   2,
		SyncState: models.SyncStateConflict,
	}
	require.NoError(t, store.SaveEntry(ctx, entry))

	assert.ErrorIs(t, svc.SoftDelete(ctx, "local-1"), ErrConflictPending)
	assert.ErrorIs(t, svc.Restore(ctx, "local-1"), ErrConflictPending)
	assert.ErrorIs(t, svc.PermanentDelete(ctx, "local-1"), ErrConflictPending)
}
