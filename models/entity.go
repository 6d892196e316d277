package models

import (
	"encoding/json"
	"time"
)

// EntityKind defines the semantic type of a domain record.
// The value determines how Entity.Payload must be interpreted.
type EntityKind string

const (
	// KindGoal represents a long-running user goal with a target date.
	KindGoal EntityKind = "goal"

	// KindHabit represents a recurring practice the user tracks.
	KindHabit EntityKind = "habit"

	// KindHabitEntry represents a single day's record of a habit.
	// Habit entries are owned by their habit; goals are independent.
	KindHabitEntry EntityKind = "habit_entry"
)

// Entity is the primary persistence model for all syncable domain records
// (goals, habits, habit log entries). The payload is an opaque JSON document;
// the store and the sync engine never look inside it except during
// field-level conflict merging.
type Entity struct {
	// ID is the client-generated UUID of the record, minted at creation
	// time so that records can be created while offline.
	ID string `json:"id"`

	// OwnerID identifies the authenticated user that owns the record.
	OwnerID string `json:"owner_id"`

	// Kind defines the semantic type of the record.
	Kind EntityKind `json:"type"`

	// Payload holds the domain document (GoalPayload, HabitPayload or
	// HabitEntryPayload) serialized as JSON. Stored opaque in the database.
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification, local or remote.
	UpdatedAt time.Time `json:"updated_at"`

	// Deleted marks the record as soft-deleted. Physical deletion happens
	// only after the deletion has been acknowledged by the server and the
	// retention window has passed.
	Deleted bool `json:"deleted"`

	// Synced is false whenever the local copy has diverged from the
	// last-known-server copy. A downloaded entity whose local copy has
	// Synced=false is treated as a conflict candidate.
	Synced bool `json:"synced"`
}

// TableName returns the name of the database table
// associated with the Entity model.
func (e *Entity) TableName() string {
	return "entities"
}
