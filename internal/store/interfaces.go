package store

import (
	"context"
	"time"

	"github.com/ascent-app/ascent-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntityQuery describes a filtered read of the entities table.
type EntityQuery struct {
	// OwnerID restricts results to one user. Required.
	OwnerID string

	// Kind restricts results to one entity kind. Required.
	Kind models.EntityKind

	// IncludeDeleted adds soft-deleted records to the result set.
	IncludeDeleted bool

	// Limit caps the number of rows returned; zero means no cap.
	Limit uint64
}

// EntityRepository is the durable CRUD surface for domain records.
//
// UpsertEntity and SoftDeleteEntity are the optimistic local-write path: they
// stamp updated_at and clear the synced flag. ApplyServerEntity and
// MarkSynced are reserved for the sync engine applying acknowledged server
// state.
type EntityRepository interface {
	UpsertEntity(ctx context.Context, entity models.Entity) error
	ApplyServerEntity(ctx context.Context, entity models.Entity) error
	GetEntity(ctx context.Context, kind models.EntityKind, id string) (models.Entity, error)
	QueryEntities(ctx context.Context, query EntityQuery) ([]models.Entity, error)
	SoftDeleteEntity(ctx context.Context, kind models.EntityKind, id string) error
	MarkSynced(ctx context.Context, kind models.EntityKind, id string) error
}

// OutboxRepository is the pending-change ledger. It enforces the coalescing
// invariant: at most one unsent entry per (entity kind, entity id).
//
// RemovePendingChange takes the revision snapshotted at listing time; it
// returns ErrChangeSuperseded instead of deleting when a later mutation
// coalesced into the entry while the upload was in flight.
type OutboxRepository interface {
	AppendPendingChange(ctx context.Context, change models.PendingChange) error
	ListPendingChanges(ctx context.Context) ([]models.PendingChange, error)
	PendingChangeForEntity(ctx context.Context, kind models.EntityKind, entityID string) (models.PendingChange, error)
	RemovePendingChange(ctx context.Context, id string, revision int64) error
	IncrementRetry(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, maxRetries int) error
	CountUnsynced(ctx context.Context) (int, error)
	ListFailedIDs(ctx context.Context) ([]string, error)
}

// SyncStateRepository persists the per-owner sync watermark and a small
// key/value settings area.
type SyncStateRepository interface {
	LastSyncTime(ctx context.Context, ownerID string) (time.Time, error)
	AdvanceWatermark(ctx context.Context, ownerID string, to time.Time) error
	GetSetting(ctx context.Context, key string) (string, error)
	PutSetting(ctx context.Context, key, value string) error
}

// MaintenanceRepository reclaims storage: retention cleanup and quota
// enforcement. Implementations must refuse to run while a sync cycle is in
// flight.
type MaintenanceRepository interface {
	StorageSize(ctx context.Context) (int64, error)
	CleanupOlderThan(ctx context.Context, days int) (reclaimed int64, err error)
	EnforceQuota(ctx context.Context, ceiling int64, retentionDays int) error
}

// SyncGuard reports whether a sync cycle is currently running. The sync
// engine implements it; maintenance checks it instead of sharing a lock.
type SyncGuard interface {
	SyncInFlight() bool
}
