// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote lookups.
	ErrNotFound = errors.New("not found")

	// Authentication / authorization.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Transport-level failure or a 5xx from the API.
	ErrUnavailable = errors.New("server unavailable")

	// The API understood the request and refused it (bid too low, auction closed).
	ErrRejected = errors.New("request rejected")
)
