// Package client talks to the marketplace HTTP API and bootstraps the local
// session database.
//
// # Overview
//
// The package provides:
//  1. The Client interface: every remote operation the terminal client uses
//     (auctions, bids, watch list, products, categories, auth, stats).
//  2. HTTPClient, a JSON-over-HTTP implementation that attaches the bearer
//     token, tags each call with an X-Request-ID, refreshes an expired token
//     once and retries, and maps HTTP status codes to sentinel errors.
//  3. InitDatabase and RunMigrations, which open the local SQLite file and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Failures are reported as the sentinels in internal/common and can be
// matched with errors.Is: ErrUnauthorized, ErrForbidden, ErrNotFound,
// ErrRejected, ErrUnavailable. The server's message, when present, is kept in
// the wrapped error text.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. Concurrent 401s trigger at most one
// refresh per stale token.
package client
