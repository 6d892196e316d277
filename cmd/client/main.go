package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ascent-app/ascent-sync/internal/adapter"
	"github.com/ascent-app/ascent-sync/internal/config"
	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/internal/netmon"
	"github.com/ascent-app/ascent-sync/internal/service"
	"github.com/ascent-app/ascent-sync/internal/store"
	"github.com/ascent-app/ascent-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ascent-sync-client")
	cfg, err := config.GetSyncConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPSyncAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
		Token:   func() string { return os.Getenv("ASCENT_SYNC_TOKEN") },
	})

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	// the platform layer feeds real connectivity readings into the monitor;
	// the CLI assumes an unmetered connection
	monitor := netmon.NewMonitor(models.ConnectivityUnmetered, netmon.DefaultDebounce, log)

	resolver := service.NewConflictResolver(map[models.EntityKind]models.ResolutionPolicy{
		models.KindGoal:       models.PolicyFieldMerge,
		models.KindHabit:      models.PolicyLastWriteWins,
		models.KindHabitEntry: models.PolicyLastWriteWins,
	}, log)

	engine := service.NewSyncEngine(storages, serverAdapter, resolver, monitor, cfg.Sync, log)
	storages.Maintenance.BindSyncGuard(engine)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := engine.Sync(ctx, models.StrategyManual, models.ResourceHints{})
	if err != nil {
		log.Error().Err(err).Msg("manual sync failed")
	}
	fmt.Printf("sync: success=%t uploaded=%d downloaded=%d conflicts=%d\n",
		result.Success, result.Uploaded, result.Downloaded, result.Conflicts)

	if err = storages.Maintenance.EnforceQuota(ctx, cfg.Storage.QuotaBytes, cfg.Storage.RetentionDays); err != nil {
		log.Warn().Err(err).Msg("quota enforcement failed")
	}

	job := service.NewSyncJob(engine, monitor, log)
	job.Start(ctx, cfg.Sync.Interval)
	defer job.Stop()

	log.Info().Dur("interval", cfg.Sync.Interval).Msg("background sync scheduled")
	<-ctx.Done()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
