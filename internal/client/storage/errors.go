package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrEntryNotFound indicates that the journal entry was not found
	ErrEntryNotFound = errors.New("entry not found")

	// ErrDuplicateRemoteID indicates that another row already carries the
	// same server-assigned ID
	ErrDuplicateRemoteID = errors.New("duplicate remote id")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
