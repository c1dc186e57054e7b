// Package models defines the marketplace entities as the client sees them.
//
// Every entity is owned by the remote API; values held here are read replicas
// that may be re-fetched and discarded at any time.
package models
