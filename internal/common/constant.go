// Package common contains shared constants and sentinel errors used across
// auctionhub components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound API requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request UUID, reused across a
	// refresh-and-retry.
	RequestIDHeaderName = "X-Request-ID"

	// IdempotencyKeyHeaderName repeats the request id on bid placement so
	// the server can drop a replayed bid.
	IdempotencyKeyHeaderName = "Idempotency-Key"

	// LoginPath is the navigation destination for unauthenticated actions.
	LoginPath = "/login"
)
