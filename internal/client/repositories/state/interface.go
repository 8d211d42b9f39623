// Package state persists small named slots of client state, the durable
// counterpart of the browser's localStorage in the original product.
package state

import (
	"context"
)

// Repository is a durable key-value store. Get returns nil for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
