package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-base-url sync server base URL
//	-d local database file path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval (e.g., "15m")
//	-quota-bytes local storage ceiling in bytes
//	-retention-days retention window for soft-deleted records
func ParseFlags() *SyncConfig {
	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var quotaBytes int64
	var retentionDays int

	flag.StringVar(&baseURL, "base-url", "", "Sync server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 15m)")
	flag.Int64Var(&quotaBytes, "quota-bytes", 0, "Local storage ceiling in bytes")
	flag.IntVar(&retentionDays, "retention-days", 0, "Retention window for soft-deleted records")

	flag.Parse()

	return &SyncConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			QuotaBytes:    quotaBytes,
			RetentionDays: retentionDays,
		},
		Sync: Sync{
			Interval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
