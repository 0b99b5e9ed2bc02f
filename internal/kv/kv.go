// Package kv is the key-value persistence port for client-scoped state.
// Consumers (the cart archive, the session profile) read and write whole
// values under fixed keys; there are no partial updates.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("not found")

// Store exposes whole-value key operations. Implementations must make
// Set a full replace of any previous value and Delete a no-op for
// absent keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
