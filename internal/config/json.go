package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type syncJSONConfig struct {
	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		QuotaBytes    int64 `json:"quota_bytes"`
		RetentionDays int   `json:"retention_days"`
	} `json:"storage,omitempty"`

	Sync struct {
		Interval        Duration `json:"interval"`
		MaxRetries      int      `json:"max_retries"`
		UploadBatchSize int      `json:"upload_batch_size"`
		BatchedSize     int      `json:"batched_size"`
		BatchDelay      Duration `json:"batch_delay"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*SyncConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg syncJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &SyncConfig{
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			QuotaBytes:    jsonCfg.Storage.QuotaBytes,
			RetentionDays: jsonCfg.Storage.RetentionDays,
		},
		Sync: Sync{
			Interval:        time.Duration(jsonCfg.Sync.Interval),
			MaxRetries:      jsonCfg.Sync.MaxRetries,
			UploadBatchSize: jsonCfg.Sync.UploadBatchSize,
			BatchedSize:     jsonCfg.Sync.BatchedSize,
			BatchDelay:      time.Duration(jsonCfg.Sync.BatchDelay),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
