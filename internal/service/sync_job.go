package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ascent-app/ascent-sync/internal/config"
	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/internal/netmon"
	"github.com/ascent-app/ascent-sync/models"
)

// NetworkWatcher extends ConnectivitySource with transition events, so the
// job can fire an opportunistic sync the moment connectivity returns.
// Implemented by netmon.Monitor.
type NetworkWatcher interface {
	ConnectivitySource
	Subscribe() (int, <-chan netmon.Transition)
	Unsubscribe(id int)
}

type syncJob struct {
	engine  SyncEngine
	network NetworkWatcher
	logger  *logger.Logger

	paused atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a background scheduler driving the engine. The job is
// idle until Start is called.
func NewSyncJob(engine SyncEngine, network NetworkWatcher, log *logger.Logger) SyncJob {
	return &syncJob{engine: engine, network: network, logger: log}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a goroutine that fires a batched sync every interval while the
// connection is unmetered, plus an opportunistic sync whenever connectivity
// comes back. The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	subID, transitions := j.network.Subscribe()

	go func() {
		defer j.wg.Done()
		defer j.network.Unsubscribe(subID)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.onTick(jobCtx)
			case tr, ok := <-transitions:
				if !ok {
					return
				}
				j.onTransition(jobCtx, tr)
			}
		}
	}()
}

// onTick fires the scheduled batched sync. Ticks are skipped while paused or
// on anything but an unmetered connection, to conserve battery and data.
func (j *syncJob) onTick(ctx context.Context) {
	if j.paused.Load() {
		return
	}
	if j.network.Current() != models.ConnectivityUnmetered {
		return
	}

	if _, err := j.engine.Sync(ctx, models.StrategyBatched, models.ResourceHints{}); err != nil {
		j.logger.Warn().
			Str("func", "syncJob.onTick").
			Err(err).
			Msg("scheduled sync failed")
	}
}

// onTransition fires an opportunistic sync when the device comes back
// online, draining whatever accumulated in the outbox while offline.
func (j *syncJob) onTransition(ctx context.Context, tr netmon.Transition) {
	if j.paused.Load() {
		return
	}
	if tr.From.Online() || !tr.To.Online() {
		return
	}

	if _, err := j.engine.Sync(ctx, models.StrategyIntelligent, models.ResourceHints{}); err != nil {
		j.logger.Warn().
			Str("func", "syncJob.onTransition").
			Err(err).
			Msg("opportunistic sync failed")
	}
}

// Pause implements SyncJob. Used when the app is backgrounded.
func (j *syncJob) Pause() {
	j.paused.Store(true)
}

// Resume implements SyncJob.
func (j *syncJob) Resume() {
	j.paused.Store(false)
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
