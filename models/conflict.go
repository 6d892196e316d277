package models

import (
	"encoding/json"
	"time"
)

// ResolutionPolicy selects how concurrent edits of the same entity are
// reconciled. Policies are assigned per EntityKind at resolver construction
// time; they are never chosen dynamically, so resolution is deterministic.
type ResolutionPolicy string

const (
	// PolicyLastWriteWins picks the side with the later timestamp; the
	// winner's full payload replaces the loser's. Ties go to the server.
	PolicyLastWriteWins ResolutionPolicy = "lww"

	// PolicyServerWins ignores local edits entirely. Used for
	// reference/config entities the client never truly owns.
	PolicyServerWins ResolutionPolicy = "server"

	// PolicyFieldMerge unions changed top-level payload fields, keyed by
	// whichever side touched the record most recently.
	PolicyFieldMerge ResolutionPolicy = "merge"
)

// Conflict describes a pair of concurrently-modified versions of the same
// entity. It is transient: built during the download phase of a sync cycle
// and discarded once resolved, never persisted.
type Conflict struct {
	EntityKind EntityKind `json:"entity_type"`
	EntityID   string     `json:"entity_id"`

	// LocalData and ServerData are the two competing payloads.
	LocalData  json.RawMessage `json:"local_data"`
	ServerData json.RawMessage `json:"server_data"`

	// LocalTimestamp and ServerTimestamp are the respective UpdatedAt
	// values used by timestamp-based policies.
	LocalTimestamp  time.Time `json:"local_timestamp"`
	ServerTimestamp time.Time `json:"server_timestamp"`
}
