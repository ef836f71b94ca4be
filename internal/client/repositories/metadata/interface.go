// Package metadata is the local key/value store behind the persisted session.
package metadata

import (
	"context"
)

// Repository stores opaque values by key. Get reports ok=false for an
// absent key instead of returning an error.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
