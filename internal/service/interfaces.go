// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ascent Labs

package service

import (
	"context"
	"time"

	"github.com/ascent-app/ascent-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConnectivitySource supplies the current network state to the engine and the
// background job. Implemented by netmon.Monitor.
type ConnectivitySource interface {
	Current() models.Connectivity
}

// ConflictResolver reconciles a pair of concurrently-modified entity
// versions into the payload that should survive locally.
type ConflictResolver interface {
	// Resolve applies the policy configured for the conflict's entity kind
	// and returns the winning payload. Resolution is total: an unknown
	// policy or a failed merge falls back to last-write-wins, so Resolve
	// never fails the sync cycle.
	Resolve(ctx context.Context, conflict models.Conflict) ([]byte, error)
}

// LocalDataService is the optimistic local-write surface used by the UI
// layer. Every mutation lands in the local store immediately and records a
// coalesced outbox entry for the next sync cycle; no method performs network
// I/O.
type LocalDataService interface {
	// Create mints a client-side UUID for the record, stores it with
	// synced=false, and appends a create entry to the outbox. Returns the
	// stored entity.
	Create(ctx context.Context, kind models.EntityKind, payload []byte) (models.Entity, error)

	// Update overwrites the record's payload locally and coalesces an
	// update entry into the outbox. An update arriving while a delete is
	// pending is rejected with store.ErrDeleteIsPending.
	Update(ctx context.Context, kind models.EntityKind, id string, payload []byte) error

	// Delete soft-deletes the record locally and records a delete entry.
	// The row is physically removed only after the server acknowledges the
	// deletion and the retention window passes.
	Delete(ctx context.Context, kind models.EntityKind, id string) error

	// Get returns the single local record, deleted or not.
	Get(ctx context.Context, kind models.EntityKind, id string) (models.Entity, error)

	// List returns the owner's non-deleted records of one kind, newest
	// first.
	List(ctx context.Context, kind models.EntityKind) ([]models.Entity, error)
}

// SyncEngine orchestrates bidirectional synchronisation with the server.
type SyncEngine interface {
	// Sync runs one full cycle with the given strategy. Pass
	// models.StrategyIntelligent to let the engine pick from connectivity
	// and resource hints, or models.StrategyManual to force an immediate
	// full upload. Only one cycle runs at a time; a concurrent call fails
	// fast with ErrSyncInProgress.
	Sync(ctx context.Context, strategy models.SyncStrategy, hints models.ResourceHints) (models.SyncResult, error)

	// Status returns the engine's current externally visible state.
	Status() models.SyncStatus

	// Subscribe registers a listener for status transitions and returns
	// its channel together with an id for Unsubscribe.
	Subscribe() (int, <-chan models.StatusEvent)

	// Unsubscribe removes the listener and closes its channel.
	Unsubscribe(id int)

	// SyncInFlight reports whether a cycle is currently running. Satisfies
	// store.SyncGuard so maintenance can refuse to run mid-sync.
	SyncInFlight() bool
}

// SyncJob is the background scheduler that fires periodic syncs while the
// device is on an unmetered connection.
type SyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 15 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Pause suspends scheduled syncs without tearing the job down, for app
	// backgrounding. Ticks that fire while paused are skipped.
	Pause()

	// Resume lifts a Pause.
	Resume()

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
