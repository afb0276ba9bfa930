// Package api holds the JSON wire types shared by the journal client and the
// sync server.
package api

import "time"

// Entry is the server-side representation of a journal entry. ID and Version
// are owned by the server; Version increments by one on every accepted update.
type Entry struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ScriptureRef string    `json:"scripture_ref"`
	Scripture    string    `json:"scripture"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags,omitempty"`
	Version      int64     `json:"version"`
	Deleted      bool      `json:"deleted"`
}

// EntryPayload carries the user-editable fields of an entry.
type EntryPayload struct {
	Title        string   `json:"title"`
	ScriptureRef string   `json:"scripture_ref"`
	Scripture    string   `json:"scripture"`
	Content      string   `json:"content"`
	Tags         []string `json:"tags,omitempty"`
}

// UpdateEntryRequest is a version-gated update: the server accepts it only if
// BaseVersion matches the entry's current version.
type UpdateEntryRequest struct {
	EntryPayload
	BaseVersion int64 `json:"base_version"`
}

// ListEntriesResponse is the body of the active and trashed list endpoints.
type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
}

// VersionConflictResponse is the 409 body returned when an update's
// BaseVersion does not match the server's current version. It carries the full
// server entry so the client can surface the conflict without another request.
type VersionConflictResponse struct {
	ServerEntry   Entry  `json:"server_entry"`
	Error         string `json:"error"`
	ServerVersion int64  `json:"server_version"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
