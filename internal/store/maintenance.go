package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ascent-app/ascent-sync/internal/logger"
)

// Maintenance reclaims local storage. Both operations refuse to run
// while a sync cycle is in flight: hard-deleting rows mid-cycle could race
// the engine's apply phase.
type Maintenance struct {
	*DB
	logger *logger.Logger
	guard  SyncGuard

	now func() time.Time
}

func NewMaintenance(db *DB, logger *logger.Logger) *Maintenance {
	return &Maintenance{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// BindSyncGuard attaches the engine's in-flight guard. Maintenance runs
// unguarded until a guard is bound (engine construction happens after
// storage construction).
func (r *Maintenance) BindSyncGuard(guard SyncGuard) {
	r.guard = guard
}

func (r *Maintenance) StorageSize(ctx context.Context) (int64, error) {
	var size int64
	if err := r.DB.QueryRowContext(ctx, totalPayloadBytes).Scan(&size); err != nil {
		return 0, fmt.Errorf("%w: failed to compute storage size: %w", ErrStorageFailure, err)
	}
	return size, nil
}

// CleanupOlderThan hard-deletes soft-deleted, already-synced entities older
// than the retention window, plus synced habit entries whose owning habit is
// gone, and reports the payload bytes reclaimed.
func (r *Maintenance) CleanupOlderThan(ctx context.Context, days int) (int64, error) {
	log := logger.FromContext(ctx)

	if r.guard != nil && r.guard.SyncInFlight() {
		return 0, ErrSyncInProgress
	}

	cutoff := r.now().AddDate(0, 0, -days)

	var reclaimed int64
	if err := r.DB.QueryRowContext(ctx, reclaimableBytes, cutoff).Scan(&reclaimed); err != nil {
		return 0, fmt.Errorf("%w: failed to measure reclaimable storage: %w", ErrStorageFailure, err)
	}

	if _, err := r.DB.ExecContext(ctx, cleanupDeletedEntities, cutoff); err != nil {
		log.Err(err).
			Str("func", "Maintenance.CleanupOlderThan").
			Int("days", days).
			Msg("failed to hard-delete expired entities")
		return 0, fmt.Errorf("%w: failed to clean up expired entities: %w", ErrStorageFailure, err)
	}

	if _, err := r.DB.ExecContext(ctx, cleanupOrphanedHabitEntries, cutoff); err != nil {
		log.Err(err).
			Str("func", "Maintenance.CleanupOlderThan").
			Msg("failed to hard-delete orphaned habit entries")
		return 0, fmt.Errorf("%w: failed to clean up orphaned habit entries: %w", ErrStorageFailure, err)
	}

	log.Debug().
		Str("func", "Maintenance.CleanupOlderThan").
		Int64("reclaimed_bytes", reclaimed).
		Msg("storage cleanup completed")

	return reclaimed, nil
}

// EnforceQuota brings total payload size under the ceiling: first by
// retention cleanup, then by evicting the oldest synced records. Pending
// (unsynced) rows are never evicted.
func (r *Maintenance) EnforceQuota(ctx context.Context, ceiling int64, retentionDays int) error {
	log := logger.FromContext(ctx)

	if r.guard != nil && r.guard.SyncInFlight() {
		return ErrSyncInProgress
	}

	size, err := r.StorageSize(ctx)
	if err != nil {
		return err
	}
	if size <= ceiling {
		return nil
	}

	if _, err = r.CleanupOlderThan(ctx, retentionDays); err != nil {
		return err
	}

	const evictBatch = 100
	for {
		size, err = r.StorageSize(ctx)
		if err != nil {
			return err
		}
		if size <= ceiling {
			return nil
		}

		result, execErr := r.DB.ExecContext(ctx, evictOldestSynced, evictBatch)
		if execErr != nil {
			return fmt.Errorf("%w: failed to evict oldest synced entities: %w", ErrStorageFailure, execErr)
		}

		affected, raErr := result.RowsAffected()
		if raErr != nil {
			return fmt.Errorf("%w: failed to get rows affected during eviction: %w", ErrStorageFailure, raErr)
		}
		if affected == 0 {
			// everything left is unsynced; quota stays exceeded rather
			// than dropping pending local edits
			log.Warn().
				Str("func", "Maintenance.EnforceQuota").
				Int64("size", size).
				Int64("ceiling", ceiling).
				Msg("quota still exceeded after eviction: only unsynced records remain")
			return nil
		}
	}
}
