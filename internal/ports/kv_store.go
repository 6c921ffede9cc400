package ports

import "context"

// KeyValueStore persists opaque string values. Get returns domain.ErrKeyNotFound
// for absent keys; Remove of an absent key is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
