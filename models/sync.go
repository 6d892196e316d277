package models

import "time"

// Connectivity is the three-state network signal reported by the monitor.
type Connectivity string

const (
	ConnectivityNone      Connectivity = "none"
	ConnectivityMetered   Connectivity = "metered"
	ConnectivityUnmetered Connectivity = "unmetered"
)

// Online reports whether any network is available.
func (c Connectivity) Online() bool {
	return c == ConnectivityMetered || c == ConnectivityUnmetered
}

// SyncStrategy is the tagged variant describing how a cycle should behave.
type SyncStrategy string

const (
	// StrategyImmediate uploads the whole outbox in one request.
	StrategyImmediate SyncStrategy = "immediate"

	// StrategyBatched splits uploads into smaller batches with an
	// inter-request delay. Chosen on metered connections or when the
	// device reports resource pressure.
	StrategyBatched SyncStrategy = "batched"

	// StrategyManual is a caller-forced immediate sync that bypasses
	// automatic strategy selection.
	StrategyManual SyncStrategy = "manual"

	// StrategyIntelligent asks the engine to pick a strategy from the
	// current connectivity and resource hints.
	StrategyIntelligent SyncStrategy = "intelligent"
)

// ResourceHints carries device-level signals that influence strategy
// selection. The hints are provided by the platform layer; zero values mean
// "no pressure".
type ResourceHints struct {
	// LowBattery is true when the device battery is below the platform's
	// low threshold.
	LowBattery bool `json:"low_battery"`

	// PowerSave is true when the OS power-saving mode is active.
	PowerSave bool `json:"power_save"`
}

// Constrained reports whether any resource pressure signal is set.
func (h ResourceHints) Constrained() bool {
	return h.LowBattery || h.PowerSave
}

// SyncStatus is the engine's externally visible state.
type SyncStatus string

const (
	StatusIdle    SyncStatus = "idle"
	StatusSyncing SyncStatus = "syncing"
	StatusSuccess SyncStatus = "success"
	StatusError   SyncStatus = "error"
)

// SyncResult summarises one sync cycle for the caller.
type SyncResult struct {
	// Success is true only when every phase of the cycle completed and
	// the watermark was advanced.
	Success bool `json:"success"`

	// Uploaded is the number of pending changes the server accepted.
	Uploaded int `json:"changes_uploaded"`

	// Downloaded is the number of server entities applied locally.
	Downloaded int `json:"changes_downloaded"`

	// Conflicts is the number of downloads that required resolution.
	Conflicts int `json:"conflicts"`

	// Error holds a human-readable reason when Success is false.
	Error string `json:"error,omitempty"`
}

// StatusEvent is published on the engine's status stream at every state
// transition.
type StatusEvent struct {
	// Status is the new engine state.
	Status SyncStatus `json:"status"`

	// Reason is a human-readable explanation for error transitions.
	Reason string `json:"reason,omitempty"`

	// Unsynced is the count of pending changes still waiting for
	// acknowledgement, including failed ones.
	Unsynced int `json:"unsynced"`

	// FailedChangeIDs lists outbox entries that exhausted their retry
	// budget. The UI surfaces these as "couldn't sync, tap to review".
	FailedChangeIDs []string `json:"failed_change_ids,omitempty"`

	// At is the transition time.
	At time.Time `json:"at"`
}
