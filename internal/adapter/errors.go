package adapter

import "errors"

// Transport error taxonomy mapped from HTTP status codes by mapHTTPError.
// Callers match with [errors.Is].
var (
	// ErrUnauthorized means the bearer token was rejected (401). The adapter
	// invokes the token-refresh callback once before surfacing this.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrValidation means the server rejected the request content (400/422).
	// Validation failures are permanent for the offending payload and must
	// not be retried verbatim.
	ErrValidation = errors.New("server rejected request content")

	// ErrNoNetwork means the request never produced an HTTP response (DNS
	// failure, connection refused, timeout). Transient: retry next cycle.
	ErrNoNetwork = errors.New("network unavailable")
)
