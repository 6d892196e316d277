package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/models"
)

type entityRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	return &entityRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// UpsertEntity is the optimistic local-write path: it stamps updated_at with
// the current time and clears the synced flag so the next sync cycle picks
// the record up for conflict detection.
func (r *entityRepository) UpsertEntity(ctx context.Context, entity models.Entity) error {
	log := logger.FromContext(ctx)

	now := r.now()
	createdAt := entity.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := r.DB.ExecContext(ctx, upsertLocalEntity,
		entity.Kind,
		entity.ID,
		entity.OwnerID,
		string(entity.Payload),
		createdAt,
		now,
		entity.Deleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.UpsertEntity").
			Str("kind", string(entity.Kind)).
			Str("entity_id", entity.ID).
			Msg("failed to execute upsert for entity")
		return fmt.Errorf("%w: failed to upsert entity (id=%s): %w", ErrStorageFailure, entity.ID, err)
	}

	return nil
}

// ApplyServerEntity persists a server-acknowledged copy verbatim: the
// server's updated_at is kept and the synced flag is set.
func (r *entityRepository) ApplyServerEntity(ctx context.Context, entity models.Entity) error {
	log := logger.FromContext(ctx)

	createdAt := entity.CreatedAt
	if createdAt.IsZero() {
		createdAt = entity.UpdatedAt
	}

	_, err := r.DB.ExecContext(ctx, upsertServerEntity,
		entity.Kind,
		entity.ID,
		entity.OwnerID,
		string(entity.Payload),
		createdAt,
		entity.UpdatedAt,
		entity.Deleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.ApplyServerEntity").
			Str("kind", string(entity.Kind)).
			Str("entity_id", entity.ID).
			Msg("failed to apply server entity")
		return fmt.Errorf("%w: failed to apply server entity (id=%s): %w", ErrStorageFailure, entity.ID, err)
	}

	return nil
}

func (r *entityRepository) GetEntity(ctx context.Context, kind models.EntityKind, id string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSingleEntity, kind, id)

	entity, err := scanEntity(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entity{}, fmt.Errorf("%w (kind=%s, id=%s)", ErrEntityNotFound, kind, id)
		}
		log.Err(err).
			Str("func", "entityRepository.GetEntity").
			Str("kind", string(kind)).
			Str("entity_id", id).
			Msg("failed to scan entity row")
		return models.Entity{}, fmt.Errorf("%w: failed to scan entity row: %w", ErrStorageFailure, err)
	}

	return entity, nil
}

// QueryEntities returns entities matching the query, excluding soft-deleted
// records unless explicitly requested, in stable created_at DESC order.
func (r *entityRepository) QueryEntities(ctx context.Context, query EntityQuery) ([]models.Entity, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"type", "id", "owner_id", "payload",
		"created_at", "updated_at", "deleted", "synced",
	).
		From("entities").
		Where(sq.Eq{"owner_id": query.OwnerID, "type": query.Kind}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if !query.IncludeDeleted {
		builder = builder.Where(sq.Eq{"deleted": false})
	}
	if query.Limit > 0 {
		builder = builder.Limit(query.Limit)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build entity query: %w", ErrStorageFailure, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.QueryEntities").
			Str("owner_id", query.OwnerID).
			Str("kind", string(query.Kind)).
			Msg("failed to execute entity query")
		return nil, fmt.Errorf("%w: failed to query entities: %w", ErrStorageFailure, err)
	}
	defer rows.Close()

	var items []models.Entity

	for rows.Next() {
		item, scanErr := scanEntity(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entityRepository.QueryEntities").
				Str("owner_id", query.OwnerID).
				Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: failed to scan entity row: %w", ErrStorageFailure, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entityRepository.QueryEntities").
			Str("owner_id", query.OwnerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: error iterating entity rows: %w", ErrStorageFailure, rowsErr)
	}

	return items, nil
}

func (r *entityRepository) SoftDeleteEntity(ctx context.Context, kind models.EntityKind, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, softDeleteEntity, r.now(), kind, id)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.SoftDeleteEntity").
			Str("kind", string(kind)).
			Str("entity_id", id).
			Msg("failed to execute soft delete for entity")
		return fmt.Errorf("%w: failed to soft delete entity (id=%s): %w", ErrStorageFailure, id, err)
	}

	return requireRowAffected(result, kind, id)
}

func (r *entityRepository) MarkSynced(ctx context.Context, kind models.EntityKind, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markEntitySynced, kind, id)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.MarkSynced").
			Str("kind", string(kind)).
			Str("entity_id", id).
			Msg("failed to mark entity synced")
		return fmt.Errorf("%w: failed to mark entity synced (id=%s): %w", ErrStorageFailure, id, err)
	}

	return requireRowAffected(result, kind, id)
}

func scanEntity(scan func(dest ...any) error) (models.Entity, error) {
	var item models.Entity
	var payload string

	if err := scan(
		&item.Kind,
		&item.ID,
		&item.OwnerID,
		&payload,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.Deleted,
		&item.Synced,
	); err != nil {
		return models.Entity{}, err
	}

	item.Payload = []byte(payload)
	return item, nil
}

func requireRowAffected(result sql.Result, kind models.EntityKind, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected (id=%s): %w", ErrStorageFailure, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w (kind=%s, id=%s)", ErrEntityNotFound, kind, id)
	}
	return nil
}
