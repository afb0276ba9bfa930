package models

import "time"

// Conflict captures everything needed to resolve a rejected version-gated
// update without another round trip: the server's state at detection time and
// the local payload whose push was refused.
type Conflict struct {
	DetectedAt    time.Time `json:"detected_at"`
	ServerEntry   *Entry    `json:"server_entry"`
	LocalEntry    *Entry    `json:"local_entry"`
	LocalID       string    `json:"local_id"`
	ServerVersion int64     `json:"server_version"`
}
