package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/models"
)

type outboxRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

func NewOutboxRepository(db *DB, logger *logger.Logger) OutboxRepository {
	return &outboxRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// AppendPendingChange records a local mutation in the outbox, enforcing the
// coalescing invariant: if an unsent entry already exists for the same
// (entity kind, entity id), the new mutation replaces its payload and
// operation instead of inserting a second row. The original id and
// created_at are kept so FIFO upload order is preserved.
//
// Two operation transitions are special:
//   - an unsent delete is terminal: a later update or create is rejected
//     with ErrDeleteIsPending until the delete has been synced;
//   - an update coalescing onto an unsent create stays a create, since the
//     server has never seen the entity.
func (r *outboxRepository) AppendPendingChange(ctx context.Context, change models.PendingChange) error {
	log := logger.FromContext(ctx)

	existing, err := r.PendingChangeForEntity(ctx, change.EntityKind, change.EntityID)
	if err != nil && !errors.Is(err, ErrPendingChangeNotFound) {
		return err
	}

	if errors.Is(err, ErrPendingChangeNotFound) {
		if change.ID == "" {
			change.ID = ulid.Make().String()
		}
		createdAt := change.CreatedAt
		if createdAt.IsZero() {
			createdAt = r.now()
		}

		_, execErr := r.DB.ExecContext(ctx, insertPendingChange,
			change.ID,
			change.EntityKind,
			change.EntityID,
			change.Operation,
			string(change.Payload),
			createdAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "outboxRepository.AppendPendingChange").
				Str("kind", string(change.EntityKind)).
				Str("entity_id", change.EntityID).
				Msg("failed to insert pending change")
			return fmt.Errorf("%w: failed to insert pending change (entity_id=%s): %w", ErrStorageFailure, change.EntityID, execErr)
		}
		return nil
	}

	if existing.Operation == models.OperationDelete && change.Operation != models.OperationDelete {
		return fmt.Errorf("%w (kind=%s, id=%s)", ErrDeleteIsPending, change.EntityKind, change.EntityID)
	}

	operation := change.Operation
	if existing.Operation == models.OperationCreate && change.Operation == models.OperationUpdate {
		operation = models.OperationCreate
	}

	_, err = r.DB.ExecContext(ctx, coalescePendingChange,
		operation,
		string(change.Payload),
		change.EntityKind,
		change.EntityID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "outboxRepository.AppendPendingChange").
			Str("kind", string(change.EntityKind)).
			Str("entity_id", change.EntityID).
			Msg("failed to coalesce pending change")
		return fmt.Errorf("%w: failed to coalesce pending change (entity_id=%s): %w", ErrStorageFailure, change.EntityID, err)
	}

	return nil
}

// ListPendingChanges returns unsent, non-failed entries in FIFO order.
func (r *outboxRepository) ListPendingChanges(ctx context.Context) ([]models.PendingChange, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listPendingChanges)
	if err != nil {
		log.Err(err).
			Str("func", "outboxRepository.ListPendingChanges").
			Msg("failed to execute query for listing pending changes")
		return nil, fmt.Errorf("%w: failed to query pending changes: %w", ErrStorageFailure, err)
	}
	defer rows.Close()

	var items []models.PendingChange

	for rows.Next() {
		item, scanErr := scanPendingChange(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "outboxRepository.ListPendingChanges").
				Msg("failed to scan pending change row")
			return nil, fmt.Errorf("%w: failed to scan pending change row: %w", ErrStorageFailure, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "outboxRepository.ListPendingChanges").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: error iterating pending change rows: %w", ErrStorageFailure, rowsErr)
	}

	return items, nil
}

// RemovePendingChange consumes an acknowledged entry. The delete is guarded
// by the revision snapshotted when the entry was listed: if a later mutation
// coalesced in while the upload was in flight, the row is left in place and
// ErrChangeSuperseded is returned so the new payload uploads next cycle.
func (r *outboxRepository) RemovePendingChange(ctx context.Context, id string, revision int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, removePendingChange, id, revision)
	if err != nil {
		log.Err(err).
			Str("func", "outboxRepository.RemovePendingChange").
			Str("change_id", id).
			Msg("failed to remove pending change")
		return fmt.Errorf("%w: failed to remove pending change (id=%s): %w", ErrStorageFailure, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected (id=%s): %w", ErrStorageFailure, id, err)
	}
	if affected > 0 {
		return nil
	}

	var current int64
	err = r.DB.QueryRowContext(ctx, getPendingRevision, id).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w (id=%s)", ErrPendingChangeNotFound, id)
	case err != nil:
		return fmt.Errorf("%w: failed to check pending change revision (id=%s): %w", ErrStorageFailure, id, err)
	default:
		log.Debug().
			Str("func", "outboxRepository.RemovePendingChange").
			Str("change_id", id).
			Int64("sent_revision", revision).
			Int64("current_revision", current).
			Msg("pending change coalesced mid-upload, keeping entry")
		return fmt.Errorf("%w (id=%s)", ErrChangeSuperseded, id)
	}
}

func (r *outboxRepository) IncrementRetry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, incrementRetryCount, id)
	if err != nil {
		log.Err(err).
			Str("func", "outboxRepository.IncrementRetry").
			Str("change_id", id).
			Msg("failed to increment retry count")
		return fmt.Errorf("%w: failed to increment retry count (id=%s): %w", ErrStorageFailure, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected (id=%s): %w", ErrStorageFailure, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w (id=%s)", ErrPendingChangeNotFound, id)
	}

	return nil
}

// MarkFailed flags the entry as failed once its retry count has reached the
// budget. A no-op when the entry is still under budget or already gone.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, maxRetries int) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, markPendingFailed, id, maxRetries)
	if err != nil {
		log.Err(err).
			Str("func", "outboxRepository.MarkFailed").
			Str("change_id", id).
			Msg("failed to mark pending change as failed")
		return fmt.Errorf("%w: failed to mark pending change failed (id=%s): %w", ErrStorageFailure, id, err)
	}

	return nil
}

func (r *outboxRepository) CountUnsynced(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, countPendingChanges).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to count pending changes: %w", ErrStorageFailure, err)
	}
	return count, nil
}

func (r *outboxRepository) ListFailedIDs(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, listFailedChangeIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query failed change ids: %w", ErrStorageFailure, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%w: failed to scan failed change id: %w", ErrStorageFailure, scanErr)
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: error iterating failed change ids: %w", ErrStorageFailure, rowsErr)
	}

	return ids, nil
}

// PendingChangeForEntity returns the unsent entry for one entity, or
// ErrPendingChangeNotFound when none is queued.
func (r *outboxRepository) PendingChangeForEntity(ctx context.Context, kind models.EntityKind, entityID string) (models.PendingChange, error) {
	row := r.DB.QueryRowContext(ctx, getPendingByEntity, kind, entityID)

	change, err := scanPendingChange(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PendingChange{}, fmt.Errorf("%w (kind=%s, id=%s)", ErrPendingChangeNotFound, kind, entityID)
		}
		return models.PendingChange{}, fmt.Errorf("%w: failed to scan pending change row: %w", ErrStorageFailure, err)
	}

	return change, nil
}

func scanPendingChange(scan func(dest ...any) error) (models.PendingChange, error) {
	var item models.PendingChange
	var payload string

	if err := scan(
		&item.ID,
		&item.EntityKind,
		&item.EntityID,
		&item.Operation,
		&payload,
		&item.CreatedAt,
		&item.Revision,
		&item.RetryCount,
		&item.Failed,
	); err != nil {
		return models.PendingChange{}, err
	}

	if payload != "" {
		item.Payload = []byte(payload)
	}
	return item, nil
}
