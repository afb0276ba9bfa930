package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/Benjie-san/cbc-journal/internal/client/api"
	"github.com/Benjie-san/cbc-journal/internal/client/storage/boltdb"
	"github.com/Benjie-san/cbc-journal/internal/models"
	"github.com/Benjie-san/cbc-journal/pkg/api"
)

// seedConflict runs a pass whose single pending update is rejected, leaving
// the row frozen and the slot populated with server version 5.
func seedConflict(t *testing.T) (*Reconciler, *boltdb.Storage, *RemoteAPIMock) {
	t.Helper()

	store := newTestStore(t)
	ctx := context.Background()

	entry := newLocalEntry("local-1", models.SyncStatePendingUpdate)
	entry.RemoteID = "remote-1"
	entry.Version = 2
	entry.Title = "My local edit"
	require.NoError(t, store.SaveEntry(ctx, entry))

	serverSnapshot := remoteEntry("remote-1", 5)
	serverSnapshot.Title = "Edited elsewhere"

	apiMock := emptyListsAPI()
	apiMock.UpdateEntryFunc = func(ctx context.Context, token string, remoteID string, payload api.EntryPayload, baseVersion int64) (*api.Entry, error) {
		return nil, &httpclient.VersionConflictError{ServerEntry: serverSnapshot, ServerVersion: 5}
	}
	apiMock.ListActiveFunc = func(ctx context.Context, token string) ([]api.Entry, error) {
		return []api.Entry{serverSnapshot}, nil
	}

	r := NewReconciler(apiMock, store, store, okTokens(), testLogger)

	result, err := r.Sync(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, result.Conflicts)
	require.NotNil(t, r.Conflict())

	return r, store, apiMock
}

func TestKeepRemoteAppliesServerSnapshot(t *testing.T) {
	r, store, apiMock := seedConflict(t)
	ctx := context.Background()

	callsBefore := len(apiMock.UpdateEntryCalls())

	require.NoError(t, r.KeepRemote(ctx, "local-1"))

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSynced, got.SyncState)
	assert.Equal(t, "Edited elsewhere", got.Title)
	assert.Equal(t, int64(5), got.Version)

	// Resolution is purely local.
	assert.Len(t, apiMock.UpdateEntryCalls(), callsBefore)
	assert.Nil(t, r.Conflict())
}

func TestKeepMinePushesWithCapturedBase(t *testing.T) {
	r, store, apiMock := seedConflict(t)
	ctx := context.Background()

	apiMock.UpdateEntryFunc = func(ctx context.Context, token string, remoteID string, payload api.EntryPayload, baseVersion int64) (*api.Entry, error) {
		// The captured server version is the new precondition.
		assert.Equal(t, int64(5), baseVersion)
		assert.Equal(t, "My local edit", payload.Title)

		e := remoteEntry(remoteID, 6)
		e.Title = payload.Title
		return &e, nil
	}

	require.NoError(t, r.KeepMine(ctx, "local-1"))

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSynced, got.SyncState)
	assert.Equal(t, "My local edit", got.Title)
	assert.Equal(t, int64(6), got.Version)
	assert.Nil(t, r.Conflict())
}

func TestKeepMineRenewedConflict(t *testing.T) {
	r, store, apiMock := seedConflict(t)
	ctx := context.Background()

	newerSnapshot := remoteEntry("remote-1", 7)
	newerSnapshot.Title = "Edited yet again"

	apiMock.UpdateEntryFunc = func(ctx context.Context, token string, remoteID string, payload api.EntryPayload, baseVersion int64) (*api.Entry, error) {
		return nil, &httpclient.VersionConflictError{ServerEntry: newerSnapshot, ServerVersion: 7}
	}

	err := r.KeepMine(ctx, "local-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict renewed")

	// The slot now holds the newer server state; the row stays frozen.
	c := r.Conflict()
	require.NotNil(t, c)
	assert.Equal(t, int64(7), c.ServerVersion)
	assert.Equal(t, "Edited yet again", c.ServerEntry.Title)
	assert.Equal(t, "My local edit", c.LocalEntry.Title)

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateConflict, got.SyncState)
}

func TestConflictSurvivesRestart(t *testing.T) {
	_, store, apiMock := seedConflict(t)
	ctx := context.Background()

	// The CLI runs one command per process: resolution happens in a fresh
	// reconciler over the same store.
	restarted := NewReconciler(apiMock, store, store, okTokens(), testLogger)

	c := restarted.Status(ctx).Conflict
	require.NotNil(t, c)
	assert.Equal(t, "local-1", c.LocalID)
	assert.Equal(t, int64(5), c.ServerVersion)
	assert.Equal(t, "Edited elsewhere", c.ServerEntry.Title)

	require.NoError(t, restarted.KeepRemote(ctx, "local-1"))

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSynced, got.SyncState)
	assert.Equal(t, int64(5), got.Version)

	// Resolution clears the persisted record too.
	again := NewReconciler(apiMock, store, store, okTokens(), testLogger)
	assert.Nil(t, again.Status(ctx).Conflict)
	assert.ErrorIs(t, again.KeepRemote(ctx, "local-1"), ErrNoConflict)
}

func TestKeepMineSurvivesRestart(t *testing.T) {
	_, store, apiMock := seedConflict(t)
	ctx := context.Background()

	apiMock.UpdateEntryFunc = func(ctx context.Context, token string, remoteID string, payload api.EntryPayload, baseVersion int64) (*api.Entry, error) {
		assert.Equal(t, int64(5), baseVersion)
		e := remoteEntry(remoteID, 6)
		e.Title = payload.Title
		return &e, nil
	}

	restarted := NewReconciler(apiMock, store, store, okTokens(), testLogger)
	require.NoError(t, restarted.KeepMine(ctx, "local-1"))

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSynced, got.SyncState)
	assert.Equal(t, "My local edit", got.Title)
	assert.Equal(t, int64(6), got.Version)
}

func TestKeepMinePushesEditsMadeDuringConflict(t *testing.T) {
	r, store, apiMock := seedConflict(t)
	ctx := context.Background()

	// The user kept writing while the row sat frozen.
	frozen, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	require.Equal(t, models.SyncStateConflict, frozen.SyncState)
	frozen.Title = "Polished during conflict"
	require.NoError(t, store.SaveEntry(ctx, frozen))

	apiMock.UpdateEntryFunc = func(ctx context.Context, token string, remoteID string, payload api.EntryPayload, baseVersion int64) (*api.Entry, error) {
		assert.Equal(t, int64(5), baseVersion)
		assert.Equal(t, "Polished during conflict", payload.Title)

		e := remoteEntry(remoteID, 6)
		e.Title = payload.Title
		return &e, nil
	}

	require.NoError(t, r.KeepMine(ctx, "local-1"))

	got, err := store.GetEntry(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "Polished during conflict", got.Title)
	assert.Equal(t, int64(6), got.Version)
}

func TestResolveWithoutConflict(t *testing.T) {
	store := newTestStore(t)
	r := NewReconciler(emptyListsAPI(), store, store, okTokens(), testLogger)

	assert.ErrorIs(t, r.KeepRemote(context.Background(), "local-1"), ErrNoConflict)
	assert.ErrorIs(t, r.KeepMine(context.Background(), "local-1"), ErrNoConflict)
}

func TestResolveWrongEntry(t *testing.T) {
	r, _, _ := seedConflict(t)

	assert.ErrorIs(t, r.KeepRemote(context.Background(), "some-other-id"), ErrNoConflict)

	// The slot is untouched.
	require.NotNil(t, r.Conflict())
	assert.Equal(t, "local-1", r.Conflict().LocalID)
}
