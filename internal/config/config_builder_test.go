package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value SyncConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &SyncConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, first non-zero value winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&SyncConfig{Adapter: Adapter{BaseURL: "https://api.ascent.app"}},
		&SyncConfig{
			Adapter: Adapter{BaseURL: "https://ignored.example", RequestTimeout: 10 * time.Second},
			Storage: Storage{DB: DB{DSN: "/tmp/sync.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://api.ascent.app", cfg.Adapter.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/sync.db", cfg.Storage.DB.DSN)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileValues verifies that a JSON file referenced by an
// earlier source is parsed and appended to the config chain.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"base_url": "https://json.ascent.app", "request_timeout": "45s"},
		"storage": map[string]any{"db": map[string]any{"dsn": "/data/json.db"}},
		"sync":    map[string]any{"interval": "10m", "max_retries": 3},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &SyncConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "https://json.ascent.app", cfg.Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
}

// TestWithJSON_MissingFile verifies that a non-existent JSON path produces a
// builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &SyncConfig{JSONFilePath: "/no/such/file.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── defaults & validation ─────────────────────────────────────────────────────

// TestApplyDefaults verifies that every engine default fills an unset field
// and that explicit values survive.
func TestApplyDefaults(t *testing.T) {
	cfg := &SyncConfig{
		Adapter: Adapter{BaseURL: "https://api.ascent.app"},
		Storage: Storage{DB: DB{DSN: "/tmp/sync.db"}},
		Sync:    Sync{MaxRetries: 2},
	}
	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, int64(DefaultQuotaBytes), cfg.Storage.QuotaBytes)
	assert.Equal(t, DefaultRetentionDays, cfg.Storage.RetentionDays)
	assert.Equal(t, DefaultSyncInterval, cfg.Sync.Interval)
	assert.Equal(t, 2, cfg.Sync.MaxRetries, "explicit value must survive defaults")
	assert.Equal(t, DefaultUploadBatchSize, cfg.Sync.UploadBatchSize)
	assert.Equal(t, DefaultBatchedSize, cfg.Sync.BatchedSize)
	assert.Equal(t, DefaultBatchDelay, cfg.Sync.BatchDelay)
}

// TestValidate verifies the required-field checks.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SyncConfig
		wantErr error
	}{
		{
			name:    "empty dsn",
			cfg:     SyncConfig{Adapter: Adapter{BaseURL: "https://x"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn rejected",
			cfg:     SyncConfig{Adapter: Adapter{BaseURL: "https://x"}, Storage: Storage{DB: DB{DSN: ":memory:"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing base url",
			cfg:     SyncConfig{Storage: Storage{DB: DB{DSN: "/tmp/sync.db"}}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "valid",
			cfg:  SyncConfig{Adapter: Adapter{BaseURL: "https://x"}, Storage: Storage{DB: DB{DSN: "/tmp/sync.db"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
