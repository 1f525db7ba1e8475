// Package storage persists the event collection as a single JSON blob.
package storage

import "context"

// Medium is a key-value store for opaque blobs. Get returns model.ErrNoRecord
// when the key has never been written.
type Medium interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
