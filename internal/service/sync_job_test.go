package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/internal/mock"
	"github.com/ascent-app/ascent-sync/internal/netmon"
	"github.com/ascent-app/ascent-sync/models"
)

const jobTestDebounce = 5 * time.Millisecond

func newTestJob(t *testing.T, initial models.Connectivity) (*syncJob, *mock.MockSyncEngine, *netmon.Monitor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	engine := mock.NewMockSyncEngine(ctrl)
	monitor := netmon.NewMonitor(initial, jobTestDebounce, logger.Nop())

	job := NewSyncJob(engine, monitor, logger.Nop()).(*syncJob)
	return job, engine, monitor
}

func waitCalled(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for engine.Sync call")
	}
}

func TestSyncJob_TickFiresBatchedSyncWhileUnmetered(t *testing.T) {
	job, engine, _ := newTestJob(t, models.ConnectivityUnmetered)
	defer job.Stop()

	called := make(chan struct{}, 1)
	engine.EXPECT().
		Sync(gomock.Any(), models.StrategyBatched, gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncStrategy, models.ResourceHints) (models.SyncResult, error) {
			select {
			case called <- struct{}{}:
			default:
			}
			return models.SyncResult{Success: true}, nil
		}).
		MinTimes(1)

	job.Start(context.Background(), 10*time.Millisecond)
	waitCalled(t, called)
}

func TestSyncJob_TickSkippedOnMeteredConnection(t *testing.T) {
	job, _, _ := newTestJob(t, models.ConnectivityMetered)
	defer job.Stop()

	// no Sync expectation: a tick on a metered connection must not fire
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
}

func TestSyncJob_PauseSuspendsResumeRestores(t *testing.T) {
	job, engine, _ := newTestJob(t, models.ConnectivityUnmetered)
	defer job.Stop()

	job.Pause()
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	called := make(chan struct{}, 1)
	engine.EXPECT().
		Sync(gomock.Any(), models.StrategyBatched, gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncStrategy, models.ResourceHints) (models.SyncResult, error) {
			select {
			case called <- struct{}{}:
			default:
			}
			return models.SyncResult{Success: true}, nil
		}).
		MinTimes(1)

	job.Resume()
	waitCalled(t, called)
}

func TestSyncJob_OpportunisticSyncWhenConnectivityReturns(t *testing.T) {
	job, engine, monitor := newTestJob(t, models.ConnectivityNone)
	defer job.Stop()

	called := make(chan struct{}, 1)
	engine.EXPECT().
		Sync(gomock.Any(), models.StrategyIntelligent, gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncStrategy, models.ResourceHints) (models.SyncResult, error) {
			select {
			case called <- struct{}{}:
			default:
			}
			return models.SyncResult{Success: true}, nil
		})

	// ticker far in the future: only the transition can trigger the sync
	job.Start(context.Background(), time.Hour)
	monitor.Set(models.ConnectivityUnmetered)
	waitCalled(t, called)
}

func TestSyncJob_StopIsIdempotent(t *testing.T) {
	job, _, _ := newTestJob(t, models.ConnectivityNone)

	job.Start(context.Background(), time.Hour)
	job.Stop()
	job.Stop()
}

func TestSyncJob_RestartReplacesPreviousJob(t *testing.T) {
	job, engine, monitor := newTestJob(t, models.ConnectivityNone)
	defer job.Stop()

	called := make(chan struct{}, 1)
	engine.EXPECT().
		Sync(gomock.Any(), models.StrategyIntelligent, gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncStrategy, models.ResourceHints) (models.SyncResult, error) {
			select {
			case called <- struct{}{}:
			default:
			}
			return models.SyncResult{Success: true}, nil
		}).
		MinTimes(1)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), time.Hour)

	monitor.Set(models.ConnectivityUnmetered)
	waitCalled(t, called)
}
