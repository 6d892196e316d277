package store

import (
	"context"
	"fmt"

	"github.com/ascent-app/ascent-sync/internal/config"
	"github.com/ascent-app/ascent-sync/internal/logger"
)

// ClientStorages groups all local storage repositories into a single value
// that can be passed around the service layer: the entity table, the
// pending-change ledger, the sync watermark + settings area, and the
// maintenance surface for cleanup/quota.
type ClientStorages struct {
	// Entities is the SQLite-backed repository for domain records
	// (goals, habits, habit entries).
	Entities EntityRepository

	// Outbox is the pending-change ledger drained by the sync engine.
	Outbox OutboxRepository

	// SyncState holds the per-owner sync watermark and key/value settings.
	SyncState SyncStateRepository

	// Maintenance reclaims storage (retention cleanup, quota enforcement).
	Maintenance *Maintenance
}

// NewClientStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Entities:    NewEntityRepository(db, logger),
		Outbox:      NewOutboxRepository(db, logger),
		SyncState:   NewSyncStateRepository(db, logger),
		Maintenance: NewMaintenance(db, logger),
	}, nil
}
