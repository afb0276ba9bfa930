package models

import "time"

// SyncState describes which remote action, if any, a journal entry still owes.
// The pending queue is derived from this field; there is no separate outbox.
type SyncState string

const (
	// SyncStateSynced means the row matches the server's last known state.
	SyncStateSynced SyncState = "synced"
	// SyncStatePendingCreate means the entry was created locally and has
	// never been accepted by the server (no RemoteID yet).
	SyncStatePendingCreate SyncState = "pending_create"
	// SyncStatePendingUpdate means the entry has local edits not yet pushed.
	SyncStatePendingUpdate SyncState = "pending_update"
	// SyncStatePendingDelete means the entry was moved to trash locally.
	SyncStatePendingDelete SyncState = "pending_delete"
	// SyncStatePendingRestore means the entry was restored from trash locally.
	SyncStatePendingRestore SyncState = "pending_restore"
	// SyncStatePendingPurge means the entry awaits permanent deletion on the
	// server before the local row is removed.
	SyncStatePendingPurge SyncState = "pending_purge"
	// SyncStateConflict means a push was rejected because the server holds a
	// newer version. The row is frozen until the user resolves the conflict.
	SyncStateConflict SyncState = "conflict"
)

// IsPending reports whether the state owes a remote action.
// Conflict rows are not pending: they wait for an explicit resolution.
func (s SyncState) IsPending() bool {
	switch s {
	case SyncStatePendingCreate, SyncStatePendingUpdate, SyncStatePendingDelete,
		SyncStatePendingRestore, SyncStatePendingPurge:
		return true
	}
	return false
}

// drainRank defines the fixed order in which pending states are pushed during
// a sync pass. Purges and deletes go first so a create never outlives an
// earlier removal of the same remote id within one pass.
var drainRank = map[SyncState]int{
	SyncStatePendingPurge:   0,
	SyncStatePendingDelete:  1,
	SyncStatePendingRestore: 2,
	SyncStatePendingCreate:  3,
	SyncStatePendingUpdate:  4,
}

// DrainRank returns the push priority of the state. Lower drains first.
// Non-pending states sort last.
func (s SyncState) DrainRank() int {
	if r, ok := drainRank[s]; ok {
		return r
	}
	return len(drainRank)
}

// Entry is a single journal record. LocalID is assigned at local creation and
// is the primary key of the local store. RemoteID is assigned by the server
// when the entry is first accepted there and is empty until then. Version is
// owned by the server: local edits never increment it, they only flip
// SyncState to a pending value.
type Entry struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSavedAt  time.Time `json:"last_saved_at"`
	LocalID      string    `json:"local_id"`
	RemoteID     string    `json:"remote_id,omitempty"`
	Title        string    `json:"title"`
	ScriptureRef string    `json:"scripture_ref"`
	Scripture    string    `json:"scripture"`
	Content      string    `json:"content"`
	SyncState    SyncState `json:"sync_state"`
	Tags         []string  `json:"tags,omitempty"`
	Version      int64     `json:"version"`
	Deleted      bool      `json:"deleted"`
}

// EntryPatch is a partial update. Nil fields are left untouched.
type EntryPatch struct {
	Title        *string
	ScriptureRef *string
	Scripture    *string
	Content      *string
	Tags         *[]string
}

// IsZero reports whether the patch changes nothing.
func (p *EntryPatch) IsZero() bool {
	return p.Title == nil && p.ScriptureRef == nil && p.Scripture == nil &&
		p.Content == nil && p.Tags == nil
}

// Apply merges the patch over the entry's user-editable fields.
func (e *Entry) Apply(p *EntryPatch) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.ScriptureRef != nil {
		e.ScriptureRef = *p.ScriptureRef
	}
	if p.Scripture != nil {
		e.Scripture = *p.Scripture
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Tags != nil {
		e.Tags = append([]string(nil), (*p.Tags)...)
	}
}

// Clone creates a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	clone.Tags = append([]string(nil), e.Tags...)
	return &clone
}
