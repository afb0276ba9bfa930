package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Benjie-san/cbc-journal/internal/server/storage"
	"github.com/Benjie-san/cbc-journal/pkg/api"
)

const entryColumns = `id, title, scripture_ref, scripture, content, tags, version, deleted, created_at, updated_at`

// CreateEntry inserts a new entry for the user at version 1
func (s *Storage) CreateEntry(ctx context.Context, userID string, entry *api.Entry) error {
	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	query := `
		INSERT INTO entries (id, user_id, title, scripture_ref, scripture, content, tags, version, deleted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		entry.ID,
		userID,
		entry.Title,
		entry.ScriptureRef,
		entry.Scripture,
		entry.Content,
		string(tags),
		entry.Version,
		entry.Deleted,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	return nil
}

// GetEntry retrieves a single entry owned by the user
func (s *Storage) GetEntry(ctx context.Context, userID, entryID string) (*api.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE id = ? AND user_id = ?
	`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, entryID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry replaces the entry payload if the stored version equals
// baseVersion. The version check and the write happen in one transaction so
// concurrent updates cannot both pass the gate.
func (s *Storage) UpdateEntry(
	ctx context.Context,
	userID, entryID string,
	baseVersion int64,
	payload *api.EntryPayload,
) (*api.Entry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE id = ? AND user_id = ?
	`

	current, err := scanEntry(tx.QueryRowContext(ctx, query, entryID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	if current.Version != baseVersion {
		// Hand the caller the current row so it can report the conflict
		return current, storage.ErrVersionConflict
	}

	tags, err := json.Marshal(payload.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	now := time.Now().UTC()

	updateQuery := `
		UPDATE entries
		SET title = ?, scripture_ref = ?, scripture = ?, content = ?, tags = ?,
			version = version + 1, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	if _, err := tx.ExecContext(ctx, updateQuery,
		payload.Title,
		payload.ScriptureRef,
		payload.Scripture,
		payload.Content,
		string(tags),
		now,
		entryID,
		userID,
	); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	current.Title = payload.Title
	current.ScriptureRef = payload.ScriptureRef
	current.Scripture = payload.Scripture
	current.Content = payload.Content
	current.Tags = payload.Tags
	current.Version++
	current.UpdatedAt = now

	return current, nil
}

// SetDeleted flips the soft-delete flag, bumping the version by one
func (s *Storage) SetDeleted(ctx context.Context, userID, entryID string, deleted bool) (*api.Entry, error) {
	now := time.Now().UTC()

	query := `
		UPDATE entries
		SET deleted = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query, deleted, now, entryID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrEntryNotFound
	}

	return s.GetEntry(ctx, userID, entryID)
}

// PurgeEntry removes the entry row permanently
func (s *Storage) PurgeEntry(ctx context.Context, userID, entryID string) error {
	query := `DELETE FROM entries WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrEntryNotFound
	}

	return nil
}

// ListEntries retrieves all entries for a user with the given deleted flag
func (s *Storage) ListEntries(ctx context.Context, userID string, deleted bool) ([]*api.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = ? AND deleted = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, deleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := []*api.Entry{}

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*api.Entry, error) {
	entry := &api.Entry{}
	var tags string

	if err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.ScriptureRef,
		&entry.Scripture,
		&entry.Content,
		&tags,
		&entry.Version,
		&entry.Deleted,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}

	return entry, nil
}
