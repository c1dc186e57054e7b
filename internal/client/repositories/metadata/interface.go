// Package metadata persists the small key/value records that survive a
// restart of the client: the auth token and the cached current user.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns ("", false, nil) for an absent key.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
