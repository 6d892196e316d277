package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ascent-app/ascent-sync/internal/logger"
)

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

// LastSyncTime returns the persisted watermark for the owner, or the zero
// time when the owner has never completed a sync cycle.
func (r *syncStateRepository) LastSyncTime(ctx context.Context, ownerID string) (time.Time, error) {
	log := logger.FromContext(ctx)

	var last time.Time
	err := r.DB.QueryRowContext(ctx, getWatermark, ownerID).Scan(&last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		log.Err(err).
			Str("func", "syncStateRepository.LastSyncTime").
			Str("owner_id", ownerID).
			Msg("failed to read sync watermark")
		return time.Time{}, fmt.Errorf("%w: failed to read sync watermark: %w", ErrStorageFailure, err)
	}

	return last, nil
}

// AdvanceWatermark moves the owner's watermark forward. The UPDATE clause
// only fires when the new value is later than the stored one, so the
// watermark is monotonic by construction.
func (r *syncStateRepository) AdvanceWatermark(ctx context.Context, ownerID string, to time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, advanceWatermark, ownerID, to)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.AdvanceWatermark").
			Str("owner_id", ownerID).
			Time("to", to).
			Msg("failed to advance sync watermark")
		return fmt.Errorf("%w: failed to advance sync watermark: %w", ErrStorageFailure, err)
	}

	return nil
}

func (r *syncStateRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, getSettingValue, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w (key=%s)", ErrSettingNotFound, key)
		}
		return "", fmt.Errorf("%w: failed to read setting (key=%s): %w", ErrStorageFailure, key, err)
	}

	return value, nil
}

func (r *syncStateRepository) PutSetting(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(ctx, putSettingValue, key, value)
	if err != nil {
		return fmt.Errorf("%w: failed to write setting (key=%s): %w", ErrStorageFailure, key, err)
	}

	return nil
}
