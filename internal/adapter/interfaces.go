// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ascent Labs

// Package adapter provides the transport layer for communicating with the
// Ascent sync server.
//
// The primary abstraction is [SyncServerAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPSyncAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrValidation] for 422, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/ascent-app/ascent-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenProvider supplies the current bearer token for outbound requests.
// Token acquisition and refresh belong to the external auth collaborator;
// the adapter only consumes the result.
type TokenProvider func() string

// UnauthorizedHandler is invoked once per call when the server answers 401,
// giving the auth collaborator a chance to refresh the token before the
// request is retried. Returning an error aborts the retry.
type UnauthorizedHandler func(ctx context.Context) error

// SyncServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type SyncServerAdapter interface {
	// Upload sends outbox entries to the server in FIFO order and returns
	// the server's partial-acceptance verdict. The server de-duplicates by
	// (entityType, entityId, operation), so re-sending an entry whose
	// acknowledgement was lost is safe.
	Upload(ctx context.Context, changes []models.PendingChange) (models.UploadResponse, error)

	// Download fetches every entity the server considers changed since the
	// given watermark (exclusive), together with the server clock reading.
	Download(ctx context.Context, since time.Time) (models.DownloadResponse, error)

	// OwnerID returns the authenticated user id parsed from the current
	// bearer token's subject claim, or an empty string when no valid token
	// is available.
	OwnerID() string
}
