package cache

import (
	"context"
	"time"
)

// Entry is a typed view of one cache key. Get validates whatever is stored
// under the key before handing it back: a payload that no longer matches the
// expected shape reads as a miss, so callers refetch instead of consuming
// stale or drifted data.
type Entry[T any] struct {
	store    Store
	key      string
	validate func(*T) error
}

func NewEntry[T any](store Store, key string, validate func(*T) error) Entry[T] {
	return Entry[T]{store: store, key: key, validate: validate}
}

// Get returns the cached value, or nil on a miss. A store failure or a
// stored payload that fails to decode or validate reads as a miss, never an
// error; callers refetch on nil.
func (e Entry[T]) Get(ctx context.Context) *T {
	if e.store == nil {
		return nil
	}

	var v T
	ok, err := e.store.GetJSON(ctx, e.key, &v)
	if err != nil || !ok {
		return nil
	}

	if e.validate != nil {
		if err := e.validate(&v); err != nil {
			return nil
		}
	}

	return &v
}

// Set overwrites the key unconditionally with the given TTL.
func (e Entry[T]) Set(ctx context.Context, value *T, ttl time.Duration) error {
	if e.store == nil || value == nil {
		return nil
	}
	return e.store.SetJSON(ctx, e.key, value, ttl)
}
