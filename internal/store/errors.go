package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageFailure wraps any SQL-level I/O failure. Storage failures
	// are fatal to the calling operation and are propagated, never
	// swallowed; the caller decides retry/backoff.
	ErrStorageFailure = errors.New("local storage failure")

	// ErrEntityNotFound is returned when a query or update targets an
	// entity (identified by kind and id) that does not exist locally.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrDeleteIsPending is returned when a local update is attempted for
	// an entity whose outbox entry is an unsent delete. Deletes are
	// terminal until the server acknowledges them.
	ErrDeleteIsPending = errors.New("delete is pending for entity")

	// ErrPendingChangeNotFound is returned when an outbox operation
	// targets an entry that does not exist.
	ErrPendingChangeNotFound = errors.New("pending change was not found")

	// ErrChangeSuperseded is returned when an acknowledgement removal finds
	// the entry's revision has moved on: a later local mutation coalesced
	// into it while the snapshot was in flight. The entry must stay queued.
	ErrChangeSuperseded = errors.New("pending change was superseded by a newer mutation")

	// ErrSettingNotFound is returned when a settings key has no value.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrSyncInProgress is returned by maintenance operations that refuse
	// to run while a sync cycle is in flight.
	ErrSyncInProgress = errors.New("sync cycle in progress")
)
