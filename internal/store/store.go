// Package store defines the persistent key-value contract the board
// repository runs on. The hosting environment decides durability; the
// repository only sees keyed blobs.
package store

import (
	"context"
	"errors"
)

// ErrUnavailable classifies any backend failure (connection refused,
// timeout, auth). Callers check it with errors.Is.
var ErrUnavailable = errors.New("store unavailable")

type KV interface {
	// Get returns the stored blob and whether the key exists. Absence is
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
