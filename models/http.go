package models

import "time"

// UploadRequest is the body of POST /sync/upload: a FIFO batch of pending
// changes to be applied by the server.
type UploadRequest struct {
	// Changes contains one or more outbox entries in creation order.
	Changes []PendingChange `json:"changes"`

	// Length is the total number of entries in Changes. Provided so the
	// server can validate the request without iterating the slice.
	Length int `json:"length"`
}

// RejectedChange identifies a single pending change the server refused,
// together with a human-readable reason.
type RejectedChange struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// UploadResponse reports the server's partial-acceptance verdict for an
// upload batch. Accepted entries are removed from the outbox; rejected ones
// have their retry counter incremented.
type UploadResponse struct {
	// Accepted lists the PendingChange ids the server applied. The server
	// de-duplicates by (entityType, entityId, operation), so re-sending an
	// already-acknowledged change is safe and reported as accepted.
	Accepted []string `json:"accepted"`

	// Rejected lists entries that failed server-side validation.
	Rejected []RejectedChange `json:"rejected,omitempty"`
}

// DownloadResponse is the body of GET /sync/download: every entity the
// server considers changed since the requested watermark.
type DownloadResponse struct {
	// Entities carries full server-side records, each with the server's
	// UpdatedAt.
	Entities []Entity `json:"entities"`

	// ServerTime is the server clock at response time. The engine prefers
	// it over the client clock as the new watermark basis, to tolerate
	// client clock skew.
	ServerTime time.Time `json:"server_time"`
}
