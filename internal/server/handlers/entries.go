package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Benjie-san/cbc-journal/internal/server/storage"
	"github.com/Benjie-san/cbc-journal/internal/validation"
	"github.com/Benjie-san/cbc-journal/pkg/api"
)

// contextKey is a private type for request context keys
type contextKey string

// Context keys set by the auth middleware
const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// EntriesHandler serves the journal entry endpoints. All endpoints require
// an authenticated user; the entry version is bumped on every accepted write.
type EntriesHandler struct {
	logger  *slog.Logger
	entries storage.EntryStorage
}

// NewEntriesHandler creates a new entries handler
func NewEntriesHandler(logger *slog.Logger, entries storage.EntryStorage) *EntriesHandler {
	return &EntriesHandler{
		logger:  logger,
		entries: entries,
	}
}

// Create handles POST /api/v1/entries
func (h *EntriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload api.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDraft(payload.Title, payload.Tags); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	entry := &api.Entry{
		ID:           uuid.New().String(),
		Title:        payload.Title,
		ScriptureRef: payload.ScriptureRef,
		Scripture:    payload.Scripture,
		Content:      payload.Content,
		Tags:         payload.Tags,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.entries.CreateEntry(ctx, userID, entry); err != nil {
		h.logger.ErrorContext(ctx, "failed to create entry", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "entry created",
		slog.String("entry_id", entry.ID),
		slog.String("user_id", userID))

	h.sendJSON(w, entry, http.StatusCreated)
}

// Update handles PUT /api/v1/entries/{id}.
// The update is version-gated: when the submitted base_version does not match
// the stored version, the handler responds 409 with the current server entry.
func (h *EntriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entryID := r.PathValue("id")
	if entryID == "" {
		h.sendError(w, "entry id is required", http.StatusBadRequest)
		return
	}

	var req api.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.BaseVersion < 1 {
		h.sendError(w, "base_version is required", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDraft(req.Title, req.Tags); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.entries.UpdateEntry(ctx, userID, entryID, req.BaseVersion, &req.EntryPayload)
	switch {
	case errors.Is(err, storage.ErrEntryNotFound):
		h.sendError(w, "entry not found", http.StatusNotFound)
		return
	case errors.Is(err, storage.ErrVersionConflict):
		h.logger.InfoContext(ctx, "version conflict",
			slog.String("entry_id", entryID),
			slog.Int64("base_version", req.BaseVersion),
			slog.Int64("server_version", entry.Version))

		resp := api.VersionConflictResponse{
			Error:         "version conflict",
			ServerVersion: entry.Version,
			ServerEntry:   *entry,
		}
		h.sendJSON(w, resp, http.StatusConflict)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update entry", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "entry updated",
		slog.String("entry_id", entryID),
		slog.Int64("version", entry.Version))

	h.sendJSON(w, entry, http.StatusOK)
}

// Delete handles DELETE /api/v1/entries/{id} (soft delete into the trash)
func (h *EntriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, true)
}

// Restore handles POST /api/v1/entries/{id}/restore
func (h *EntriesHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, false)
}

func (h *EntriesHandler) setDeleted(w http.ResponseWriter, r *http.Request, deleted bool) {
	ctx := r.Context()

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entryID := r.PathValue("id")
	if entryID == "" {
		h.sendError(w, "entry id is required", http.StatusBadRequest)
		return
	}

	entry, err := h.entries.SetDeleted(ctx, userID, entryID, deleted)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			h.sendError(w, "entry not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update deleted flag", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "entry deleted flag changed",
		slog.String("entry_id", entryID),
		slog.Bool("deleted", deleted))

	h.sendJSON(w, entry, http.StatusOK)
}

// Purge handles DELETE /api/v1/entries/{id}/purge (permanent delete)
func (h *EntriesHandler) Purge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entryID := r.PathValue("id")
	if entryID == "" {
		h.sendError(w, "entry id is required", http.StatusBadRequest)
		return
	}

	if err := h.entries.PurgeEntry(ctx, userID, entryID); err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			h.sendError(w, "entry not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to purge entry", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "entry purged", slog.String("entry_id", entryID))

	w.WriteHeader(http.StatusNoContent)
}

// ListActive handles GET /api/v1/entries
func (h *EntriesHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// ListTrashed handles GET /api/v1/entries/trashed
func (h *EntriesHandler) ListTrashed(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *EntriesHandler) list(w http.ResponseWriter, r *http.Request, deleted bool) {
	ctx := r.Context()

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.entries.ListEntries(ctx, userID, deleted)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list entries", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListEntriesResponse{
		Entries: make([]api.Entry, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, *e)
	}

	h.sendJSON(w, resp, http.StatusOK)
}

func (h *EntriesHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func (h *EntriesHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
