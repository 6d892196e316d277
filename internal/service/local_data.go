package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ascent-app/ascent-sync/internal/config"
	"github.com/ascent-app/ascent-sync/internal/store"
	"github.com/ascent-app/ascent-sync/models"
)

type localDataService struct {
	entities    store.EntityRepository
	outbox      store.OutboxRepository
	maintenance store.MaintenanceRepository
	ownerID     string
	storage     config.Storage

	now func() time.Time
}

// NewLocalDataService builds the optimistic-write service for one
// authenticated owner. All mutations are local; the outbox entries it
// records are drained by the sync engine. Growing writes run quota
// enforcement first so the store is brought back under its ceiling before
// new data is accepted.
func NewLocalDataService(
	entities store.EntityRepository,
	outbox store.OutboxRepository,
	maintenance store.MaintenanceRepository,
	ownerID string,
	storage config.Storage,
) LocalDataService {
	return &localDataService{
		entities:    entities,
		outbox:      outbox,
		maintenance: maintenance,
		ownerID:     ownerID,
		storage:     storage,
		now:         time.Now,
	}
}

// ensureCapacity runs quota enforcement ahead of a growing write. A cycle in
// flight skips the check rather than blocking the user's edit; the post-sync
// enforcement pass catches up.
func (s *localDataService) ensureCapacity(ctx context.Context) error {
	err := s.maintenance.EnforceQuota(ctx, s.storage.QuotaBytes, s.storage.RetentionDays)
	if err != nil && !errors.Is(err, store.ErrSyncInProgress) {
		return fmt.Errorf("enforce storage quota: %w", err)
	}
	return nil
}

func (s *localDataService) Create(ctx context.Context, kind models.EntityKind, payload []byte) (models.Entity, error) {
	if err := s.ensureCapacity(ctx); err != nil {
		return models.Entity{}, err
	}

	now := s.now()
	entity := models.Entity{
		ID:        uuid.NewString(),
		OwnerID:   s.ownerID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.entities.UpsertEntity(ctx, entity); err != nil {
		return models.Entity{}, fmt.Errorf("create %s locally: %w", kind, err)
	}

	change := models.PendingChange{
		EntityKind: kind,
		EntityID:   entity.ID,
		Operation:  models.OperationCreate,
		Payload:    payload,
		CreatedAt:  now,
	}
	if err := s.outbox.AppendPendingChange(ctx, change); err != nil {
		return models.Entity{}, fmt.Errorf("record create of %s %s: %w", kind, entity.ID, err)
	}

	return entity, nil
}

func (s *localDataService) Update(ctx context.Context, kind models.EntityKind, id string, payload []byte) error {
	if err := s.ensureCapacity(ctx); err != nil {
		return err
	}

	existing, err := s.entities.GetEntity(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("load %s %s for update: %w", kind, id, err)
	}

	// a pending delete is terminal: reject before the entity row is touched
	pending, err := s.outbox.PendingChangeForEntity(ctx, kind, id)
	if err != nil && !errors.Is(err, store.ErrPendingChangeNotFound) {
		return fmt.Errorf("check pending change for %s %s: %w", kind, id, err)
	}
	if err == nil && pending.Operation == models.OperationDelete {
		return fmt.Errorf("update %s %s: %w", kind, id, store.ErrDeleteIsPending)
	}

	existing.Payload = payload
	if err = s.entities.UpsertEntity(ctx, existing); err != nil {
		return fmt.Errorf("update %s %s locally: %w", kind, id, err)
	}

	change := models.PendingChange{
		EntityKind: kind,
		EntityID:   id,
		Operation:  models.OperationUpdate,
		Payload:    payload,
		CreatedAt:  s.now(),
	}
	if err = s.outbox.AppendPendingChange(ctx, change); err != nil {
		return fmt.Errorf("record update of %s %s: %w", kind, id, err)
	}
	return nil
}

func (s *localDataService) Delete(ctx context.Context, kind models.EntityKind, id string) error {
	if err := s.entities.SoftDeleteEntity(ctx, kind, id); err != nil {
		return fmt.Errorf("delete %s %s locally: %w", kind, id, err)
	}

	change := models.PendingChange{
		EntityKind: kind,
		EntityID:   id,
		Operation:  models.OperationDelete,
		CreatedAt:  s.now(),
	}
	if err := s.outbox.AppendPendingChange(ctx, change); err != nil {
		return fmt.Errorf("record delete of %s %s: %w", kind, id, err)
	}
	return nil
}

func (s *localDataService) Get(ctx context.Context, kind models.EntityKind, id string) (models.Entity, error) {
	entity, err := s.entities.GetEntity(ctx, kind, id)
	if err != nil {
		return models.Entity{}, fmt.Errorf("get %s %s: %w", kind, id, err)
	}
	return entity, nil
}

func (s *localDataService) List(ctx context.Context, kind models.EntityKind) ([]models.Entity, error) {
	entities, err := s.entities.QueryEntities(ctx, store.EntityQuery{OwnerID: s.ownerID, Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return entities, nil
}
