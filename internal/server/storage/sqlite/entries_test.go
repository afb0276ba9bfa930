package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjie-san/cbc-journal/internal/server/storage"
	"github.com/Benjie-san/cbc-journal/pkg/api"
)

func TestCreateAndGetEntry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s)
	entry := createTestEntry(t, s, user.ID)

	got, err := s.GetEntry(ctx, user.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Title, got.Title)
	assert.Equal(t, entry.Tags, got.Tags)
	assert.Equal(t, int64(1), got.Version)
}

func TestGetEntryWrongUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	other := createTestUser(t, s)
	entry := createTestEntry(t, s, owner.ID)

	_, err := s.GetEntry(ctx, other.ID, entry.ID)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestUpdateEntryBumpsVersion(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s)
	entry := createTestEntry(t, s, user.ID)

	updated, err := s.UpdateEntry(ctx, user.ID, entry.ID, 1, &api.EntryPayload{
		Title: "Edited",
		Tags:  []string{"edited"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, "Edited", updated.Title)

	got, err := s.GetEntry(ctx, user.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, "Edited", got.Title)
}

func TestUpdateEntryVersionConflict(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s)
	entry := createTestEntry(t, s, user.ID)

	// Move the entry to version 2.
	_, err := s.UpdateEntry(ctx, user.ID, entry.ID, 1, &api.EntryPayload{Title: "First edit"})
	require.NoError(t, err)

	// A second writer still holding base version 1 is rejected and handed
	// the current row.
	current, err := s.UpdateEntry(ctx, user.ID, entry.ID, 1, &api.EntryPayload{Title: "Stale edit"})
	assert.ErrorIs(t, err, storage.ErrVersionConflict)
	require.NotNil(t, current)
	assert.Equal(t, int64(2), current.Version)
	assert.Equal(t, "First edit", current.Title)

	// The rejected payload left no trace.
	got, err := s.GetEntry(ctx, user.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "First edit", got.Title)
}

func TestUpdateEntryNotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s)

	_, err := s.UpdateEntry(ctx, user.ID, uuid.New().String(), 1, &api.EntryPayload{Title: "x"})
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestSetDeleted(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s)
	entry := createTestEntry(t, s, user.ID)

	trashed, err := s.SetDeleted(ctx, user.ID, entry.ID, true)
	require.NoError(t, err)
	assert.True(t, trashed.Deleted)
	assert.Equal(t, int64(2), trashed.Version)

	restored, err := s.SetDeleted(ctx, user.ID, entry.ID, false)
	require.NoError(t, err)
	assert.False(t, restored.Deleted)
	assert.Equal(t, int64(3), restored.Version)

	_, err = s.SetDeleted(ctx, user.ID, uuid.New().String(), true)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestPurgeEntry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s)
	entry := createTestEntry(t, s, user.ID)

	require.NoError(t, s.PurgeEntry(ctx, user.ID, entry.ID))

	_, err := s.GetEntry(ctx, user.ID, entry.ID)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)

	assert.ErrorIs(t, s.PurgeEntry(ctx, user.ID, entry.ID), storage.ErrEntryNotFound)
}

func TestListEntriesPartition(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, s)
	active := createTestEntry(t, s, user.ID)
	trashed := createTestEntry(t, s, user.ID)

	_, err := s.SetDeleted(ctx, user.ID, trashed.ID, true)
	require.NoError(t, err)

	gotActive, err := s.ListEntries(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, gotActive, 1)
	assert.Equal(t, active.ID, gotActive[0].ID)

	gotTrashed, err := s.ListEntries(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, gotTrashed, 1)
	assert.Equal(t, trashed.ID, gotTrashed[0].ID)
}

func TestListEntriesScopedToUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	other := createTestUser(t, s)
	createTestEntry(t, s, owner.ID)

	entries, err := s.ListEntries(ctx, other.ID, false)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
