package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the browser-persistent storage primitive: an unstructured
// key -> string map. Writes replace the whole value atomically; reads of a
// missing key return ErrNotFound. No schema, no versioning, no migration.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
