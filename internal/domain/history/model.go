package history

import "time"

// Action names the kind of change recorded in the journal
type Action string

const (
	ActionCreated         Action = "created"
	ActionUpdated         Action = "updated"
	ActionDeleted         Action = "deleted"
	ActionRegistered      Action = "registered"
	ActionPasswordChanged Action = "password_changed"
	ActionExported        Action = "exported"
)

// Entry is one change in the journal
type Entry struct {
	ID         string    `json:"id"`
	Collection string    `json:"collection"`
	Action     Action    `json:"action"`
	RecordID   string    `json:"record_id,omitempty"`
	Actor      string    `json:"actor"`
	Summary    string    `json:"summary"`
	At         time.Time `json:"at"`
}

// Key returns the entry ID.
func Key(e Entry) string { return e.ID }
