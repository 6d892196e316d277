// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ascent Labs

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ascent-app/ascent-sync/internal/adapter"
	"github.com/ascent-app/ascent-sync/internal/config"
	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/internal/store"
	"github.com/ascent-app/ascent-sync/models"
)

type syncEngine struct {
	entities  store.EntityRepository
	outbox    store.OutboxRepository
	syncState store.SyncStateRepository
	server    adapter.SyncServerAdapter
	resolver  ConflictResolver
	network   ConnectivitySource
	cfg       config.Sync
	logger    *logger.Logger

	// inFlight is the cycle guard: one sync at a time, enforced by the
	// state machine rather than by holding a lock across network calls.
	inFlight atomic.Bool
	status   atomic.Value

	mu        sync.Mutex
	nextSubID int
	subs      map[int]chan models.StatusEvent

	now func() time.Time
}

// NewSyncEngine wires one engine per authenticated session.
func NewSyncEngine(
	storages *store.ClientStorages,
	server adapter.SyncServerAdapter,
	resolver ConflictResolver,
	network ConnectivitySource,
	cfg config.Sync,
	log *logger.Logger,
) SyncEngine {
	e := &syncEngine{
		entities:  storages.Entities,
		outbox:    storages.Outbox,
		syncState: storages.SyncState,
		server:    server,
		resolver:  resolver,
		network:   network,
		cfg:       cfg,
		logger:    log,
		subs:      make(map[int]chan models.StatusEvent),
		now:       time.Now,
	}
	e.status.Store(models.StatusIdle)
	return e
}

func (e *syncEngine) Status() models.SyncStatus {
	return e.status.Load().(models.SyncStatus)
}

// SyncInFlight implements store.SyncGuard.
func (e *syncEngine) SyncInFlight() bool {
	return e.inFlight.Load()
}

// Sync runs one full cycle: preflight, strategy selection, FIFO upload,
// delta download, conflict resolution, apply, watermark commit. The
// watermark advances only when every phase succeeded.
func (e *syncEngine) Sync(ctx context.Context, strategy models.SyncStrategy, hints models.ResourceHints) (models.SyncResult, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return models.SyncResult{Error: ErrSyncInProgress.Error()}, ErrSyncInProgress
	}
	defer e.inFlight.Store(false)

	ctx = e.logger.WithContext(ctx)
	cycleStart := e.now()

	result, err := e.runCycle(ctx, cycleStart, strategy, hints)
	if err != nil {
		e.logger.Error().
			Str("func", "syncEngine.Sync").
			Err(err).
			Msg("sync cycle failed")
		result.Error = err.Error()
		e.publish(ctx, models.StatusError, result.Error)
		e.status.Store(models.StatusIdle)
		return result, err
	}

	result.Success = true
	e.logger.Info().
		Str("func", "syncEngine.Sync").
		Int("uploaded", result.Uploaded).
		Int("downloaded", result.Downloaded).
		Int("conflicts", result.Conflicts).
		Msg("sync cycle completed")
	e.publish(ctx, models.StatusSuccess, "")
	e.status.Store(models.StatusIdle)
	return result, nil
}

func (e *syncEngine) runCycle(ctx context.Context, cycleStart time.Time, strategy models.SyncStrategy, hints models.ResourceHints) (models.SyncResult, error) {
	var result models.SyncResult

	connectivity := e.network.Current()
	if !connectivity.Online() {
		return result, ErrOffline
	}

	e.publish(ctx, models.StatusSyncing, "")

	if strategy == "" || strategy == models.StrategyIntelligent {
		strategy = ChooseStrategy(connectivity, hints)
	}

	uploaded, err := e.uploadPhase(ctx, strategy)
	result.Uploaded = uploaded
	if err != nil {
		return result, err
	}

	if err = phaseBoundary(ctx); err != nil {
		return result, err
	}

	downloaded, conflicts, serverTime, err := e.downloadPhase(ctx)
	result.Downloaded = downloaded
	result.Conflicts = conflicts
	if err != nil {
		return result, err
	}

	if err = phaseBoundary(ctx); err != nil {
		return result, err
	}

	// advance to the cycle's start, not "now", so entities written by the
	// server mid-cycle are picked up next time; a server clock behind ours
	// lowers the watermark further to absorb skew
	watermark := cycleStart
	if !serverTime.IsZero() && serverTime.Before(watermark) {
		watermark = serverTime
	}
	if err = e.syncState.AdvanceWatermark(ctx, e.server.OwnerID(), watermark); err != nil {
		return result, fmt.Errorf("advance watermark: %w", err)
	}

	return result, nil
}

// uploadPhase drains the outbox FIFO. The batched strategy splits the queue
// into smaller requests with an inter-batch delay; partial server acceptance
// removes only the accepted entries and bumps the retry counter on the rest.
func (e *syncEngine) uploadPhase(ctx context.Context, strategy models.SyncStrategy) (int, error) {
	changes, err := e.outbox.ListPendingChanges(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending changes: %w", err)
	}
	if len(changes) == 0 {
		return 0, nil
	}

	batchSize := e.cfg.UploadBatchSize
	var batchDelay time.Duration
	if strategy == models.StrategyBatched {
		batchSize = e.cfg.BatchedSize
		batchDelay = e.cfg.BatchDelay
	}
	if batchSize <= 0 {
		batchSize = config.DefaultUploadBatchSize
	}

	uploaded := 0
	for start := 0; start < len(changes); start += batchSize {
		if err = phaseBoundary(ctx); err != nil {
			return uploaded, err
		}
		if start > 0 && batchDelay > 0 {
			select {
			case <-ctx.Done():
				return uploaded, ctx.Err()
			case <-time.After(batchDelay):
			}
		}

		end := min(start+batchSize, len(changes))
		batch := changes[start:end]
		resp, err := e.server.Upload(ctx, batch)
		if err != nil {
			return uploaded, fmt.Errorf("upload batch: %w", err)
		}

		n, err := e.applyUploadVerdict(ctx, batch, resp)
		uploaded += n
		if err != nil {
			return uploaded, err
		}
	}

	return uploaded, nil
}

// applyUploadVerdict consumes the server's per-change verdict for one batch.
// An accepted change is removed from the outbox and its entity marked synced;
// a change that coalesced a newer edit mid-upload stays queued and the entity
// stays diverged. Rejected changes bump the retry counter.
func (e *syncEngine) applyUploadVerdict(ctx context.Context, batch []models.PendingChange, resp models.UploadResponse) (int, error) {
	byID := make(map[string]models.PendingChange, len(batch))
	for _, change := range batch {
		byID[change.ID] = change
	}

	accepted := 0
	for _, id := range resp.Accepted {
		change, ok := byID[id]
		if !ok {
			e.logger.Warn().
				Str("func", "syncEngine.applyUploadVerdict").
				Str("change_id", id).
				Msg("server acknowledged a change outside the uploaded batch")
			continue
		}

		err := e.outbox.RemovePendingChange(ctx, id, change.Revision)
		switch {
		case errors.Is(err, store.ErrChangeSuperseded):
			// a local edit landed while this payload was in flight; the
			// entry stays queued and the entity stays unsynced
			accepted++
			continue
		case err != nil:
			return accepted, fmt.Errorf("remove acknowledged change %s: %w", id, err)
		}

		if err = e.entities.MarkSynced(ctx, change.EntityKind, change.EntityID); err != nil {
			if errors.Is(err, store.ErrEntityNotFound) {
				e.logger.Warn().
					Str("func", "syncEngine.applyUploadVerdict").
					Str("change_id", id).
					Str("entity_id", change.EntityID).
					Msg("acknowledged entity no longer present locally")
				accepted++
				continue
			}
			return accepted, fmt.Errorf("mark %s %s synced: %w", change.EntityKind, change.EntityID, err)
		}
		accepted++
	}

	for _, rejected := range resp.Rejected {
		e.logger.Warn().
			Str("func", "syncEngine.applyUploadVerdict").
			Str("change_id", rejected.ID).
			Str("reason", rejected.Reason).
			Msg("server rejected pending change")

		if err := e.outbox.IncrementRetry(ctx, rejected.ID); err != nil {
			return accepted, fmt.Errorf("increment retry for %s: %w", rejected.ID, err)
		}
		if err := e.outbox.MarkFailed(ctx, rejected.ID, e.cfg.MaxRetries); err != nil {
			return accepted, fmt.Errorf("mark change %s failed: %w", rejected.ID, err)
		}
	}

	return accepted, nil
}

// downloadPhase fetches server entities changed since the watermark and
// applies each one, resolving a conflict whenever the local copy has
// diverged (synced=false).
func (e *syncEngine) downloadPhase(ctx context.Context) (downloaded, conflicts int, serverTime time.Time, err error) {
	since, err := e.syncState.LastSyncTime(ctx, e.server.OwnerID())
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("read sync watermark: %w", err)
	}

	resp, err := e.server.Download(ctx, since)
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("download deltas: %w", err)
	}

	for _, remote := range resp.Entities {
		applied, conflicted, err := e.applyRemote(ctx, remote)
		if err != nil {
			return downloaded, conflicts, resp.ServerTime, err
		}
		if applied {
			downloaded++
		}
		if conflicted {
			conflicts++
		}
	}

	return downloaded, conflicts, resp.ServerTime, nil
}

func (e *syncEngine) applyRemote(ctx context.Context, remote models.Entity) (applied, conflicted bool, err error) {
	local, err := e.entities.GetEntity(ctx, remote.Kind, remote.ID)
	switch {
	case errors.Is(err, store.ErrEntityNotFound):
		// new on the server, take it as-is
	case err != nil:
		return false, false, fmt.Errorf("load local %s %s: %w", remote.Kind, remote.ID, err)
	case !local.Synced:
		conflict := models.Conflict{
			EntityKind:      remote.Kind,
			EntityID:        remote.ID,
			LocalData:       local.Payload,
			ServerData:      remote.Payload,
			LocalTimestamp:  local.UpdatedAt,
			ServerTimestamp: remote.UpdatedAt,
		}
		winner, resolveErr := e.resolver.Resolve(ctx, conflict)
		if resolveErr != nil {
			return false, false, fmt.Errorf("resolve conflict on %s %s: %w", remote.Kind, remote.ID, resolveErr)
		}
		remote.Payload = winner
		conflicted = true
	}

	if err = e.entities.ApplyServerEntity(ctx, remote); err != nil {
		return false, conflicted, fmt.Errorf("apply server %s %s: %w", remote.Kind, remote.ID, err)
	}
	return true, conflicted, nil
}

// publish fans a status transition out to subscribers. Outbox counters are
// attached best-effort: a failing count never blocks the transition.
func (e *syncEngine) publish(ctx context.Context, status models.SyncStatus, reason string) {
	e.status.Store(status)

	event := models.StatusEvent{
		Status: status,
		Reason: reason,
		At:     e.now(),
	}
	if unsynced, err := e.outbox.CountUnsynced(ctx); err == nil {
		event.Unsynced = unsynced
	}
	if failed, err := e.outbox.ListFailedIDs(ctx); err == nil {
		event.FailedChangeIDs = failed
	}

	// fan out under the mutex: Unsubscribe closes channels under the same
	// lock, so a concurrent unsubscribe can never close one mid-send. Sends
	// are non-blocking, the lock is held only briefly.
	e.mu.Lock()
	for _, ch := range e.subs {
		select {
		case ch <- event:
		default:
			// slow subscriber drops the event rather than stalling the cycle
		}
	}
	e.mu.Unlock()
}

func (e *syncEngine) Subscribe() (int, <-chan models.StatusEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSubID
	e.nextSubID++

	ch := make(chan models.StatusEvent, 8)
	e.subs[id] = ch
	return id, ch
}

func (e *syncEngine) Unsubscribe(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ch, ok := e.subs[id]; ok {
		delete(e.subs, id)
		close(ch)
	}
}

// phaseBoundary is the cooperative cancellation point between cycle phases.
// Cancellation is honored here, never mid-network-call, so the outbox is
// never left half-drained without a record of what was acknowledged.
func phaseBoundary(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
