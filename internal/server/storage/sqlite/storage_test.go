package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Benjie-san/cbc-journal/internal/models"
	"github.com/Benjie-san/cbc-journal/pkg/api"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func createTestUser(t *testing.T, s *Storage) *models.User {
	t.Helper()

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "user_" + uuid.New().String()[:8],
		PasswordHash: "$2a$10$test",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateUser(context.Background(), user))

	return user
}

func createTestEntry(t *testing.T, s *Storage, userID string) *api.Entry {
	t.Helper()

	now := time.Now().UTC()
	entry := &api.Entry{
		ID:           uuid.New().String(),
		Title:        "Morning reading",
		ScriptureRef: "Psalm 23:1",
		Scripture:    "The Lord is my shepherd",
		Content:      "Notes",
		Tags:         []string{"psalms"},
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateEntry(context.Background(), userID, entry))

	return entry
}
