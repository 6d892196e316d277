package models

import (
	"encoding/json"
	"time"
)

// ChangeOperation defines the kind of local mutation recorded in the outbox.
type ChangeOperation string

const (
	OperationCreate ChangeOperation = "create"
	OperationUpdate ChangeOperation = "update"
	OperationDelete ChangeOperation = "delete"
)

// PendingChange is a single outbox entry: a local mutation that has not yet
// been acknowledged by the server.
//
// Invariant: for a given (EntityKind, EntityID) pair there is at most one
// unsent PendingChange at a time. New local mutations coalesce into the
// existing entry instead of appending duplicates, so the server never sees
// stale intermediate states.
type PendingChange struct {
	// ID is a monotonic, time-ordered identifier (ULID). Listing the
	// outbox by CreatedAt ascending preserves causal order of a single
	// device's edits.
	ID string `json:"id"`

	// EntityKind and EntityID identify the record the change applies to.
	EntityKind EntityKind `json:"entity_type"`
	EntityID   string     `json:"entity_id"`

	// Operation is the mutation kind. A delete is terminal: once a delete
	// is pending, further updates for the same entity are rejected until
	// the delete has been synced.
	Operation ChangeOperation `json:"operation"`

	// Payload is the full entity payload at the time of the latest
	// coalesced mutation. Empty for deletes.
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the time the first mutation for this entry was
	// recorded. Coalescing keeps the original CreatedAt so FIFO upload
	// order is preserved.
	CreatedAt time.Time `json:"created_at"`

	// Revision is bumped every time a later local mutation coalesces into
	// this entry. The engine snapshots it when listing the outbox; removal
	// after a server acknowledgement only applies while the revision still
	// matches, so an edit made while the entry was in flight survives.
	Revision int64 `json:"revision"`

	// RetryCount is incremented each time the server rejects the entry.
	RetryCount int `json:"retry_count"`

	// Failed is set once RetryCount exceeds the engine's retry budget.
	// Failed entries leave the upload queue and are surfaced through the
	// status stream until reviewed.
	Failed bool `json:"failed"`
}
