// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ascent Labs

package config

import "strings"

// validate checks that the final merged [SyncConfig] satisfies all engine
// invariants before it is used at startup. It is called after defaults are
// applied, so only fields without sensible defaults are checked.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *SyncConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
