// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ascent Labs

package config

import (
	"time"
)

// Engine defaults applied by [SyncConfig.applyDefaults] to fields left unset
// by every configuration source.
const (
	DefaultRequestTimeout  = 30 * time.Second
	DefaultSyncInterval    = 15 * time.Minute
	DefaultMaxRetries      = 5
	DefaultUploadBatchSize = 100
	DefaultBatchedSize     = 20
	DefaultBatchDelay      = 2 * time.Second
	DefaultQuotaBytes      = 100 << 20 // 100 MB
	DefaultRetentionDays   = 90
)

// SyncConfig is the top-level configuration container for the sync engine.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type SyncConfig struct {
	// Adapter holds the sync server endpoint and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings: database location,
	// storage quota, and the retention window for cleanup.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds scheduling and upload tuning for the engine and its
	// background job.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound sync transport.
type Adapter struct {
	// BaseURL is the sync server base URL (e.g. "https://api.ascent.app").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// QuotaBytes is the storage ceiling; exceeding it triggers cleanup and,
	// if necessary, eviction of the oldest synced records.
	// Env: STORAGE_QUOTA_BYTES
	QuotaBytes int64 `env:"QUOTA_BYTES"`

	// RetentionDays is the age threshold after which soft-deleted, synced
	// records become eligible for hard deletion.
	// Env: STORAGE_RETENTION_DAYS
	RetentionDays int `env:"RETENTION_DAYS"`
}

// DB holds connection settings for the on-device database.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "/data/ascent/sync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds scheduling and upload tuning.
type Sync struct {
	// Interval defines how often the background job triggers a batched
	// sync while connectivity is unmetered.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxRetries is the per-change retry budget; an outbox entry rejected
	// more than MaxRetries times is marked failed.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// UploadBatchSize is the batch size for the immediate strategy.
	// Env: SYNC_UPLOAD_BATCH_SIZE
	UploadBatchSize int `env:"UPLOAD_BATCH_SIZE"`

	// BatchedSize is the smaller batch size used by the batched strategy.
	// Env: SYNC_BATCHED_SIZE
	BatchedSize int `env:"BATCHED_SIZE"`

	// BatchDelay is the inter-request delay between batched uploads.
	// Env: SYNC_BATCH_DELAY
	BatchDelay time.Duration `env:"BATCH_DELAY"`
}

// GetSyncConfig loads, merges, and validates the engine configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to any field still unset after merging. Returns a
// fully populated *SyncConfig or an error if any source fails to load or the
// final config fails validation.
func GetSyncConfig() (*SyncConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *SyncConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.QuotaBytes <= 0 {
		cfg.Storage.QuotaBytes = DefaultQuotaBytes
	}
	if cfg.Storage.RetentionDays <= 0 {
		cfg.Storage.RetentionDays = DefaultRetentionDays
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.MaxRetries <= 0 {
		cfg.Sync.MaxRetries = DefaultMaxRetries
	}
	if cfg.Sync.UploadBatchSize <= 0 {
		cfg.Sync.UploadBatchSize = DefaultUploadBatchSize
	}
	if cfg.Sync.BatchedSize <= 0 {
		cfg.Sync.BatchedSize = DefaultBatchedSize
	}
	if cfg.Sync.BatchDelay <= 0 {
		cfg.Sync.BatchDelay = DefaultBatchDelay
	}
}
