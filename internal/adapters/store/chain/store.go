package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
)

// Store keeps session ids in primary and mirrors every write into fallback,
// so a primary outage later in the process still serves the latest id.
type Store struct {
	primary  ports.KeyValueStore
	fallback ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary store is nil")
	errNilFallbackStore = errors.New("fallback store is nil")
)

func NewStore(primary ports.KeyValueStore, fallback ports.KeyValueStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.KeyValueStore, fallback ports.KeyValueStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// Set writes primary and mirrors the value into fallback. A failed mirror is
// ignored while primary holds the value.
func (s *Store) Set(ctx context.Context, key string, value string) error {
	err := s.primary.Set(ctx, key, value)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Set(ctx, key, value)
	if err == nil || fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend set failed: %w; fallback backend set failed: %w", err, fallbackErr)
}

// Get reads primary and falls through to fallback on any error, including a
// missing key: an id minted during a primary outage only exists in fallback.
// A key absent from both backends is a plain domain.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, domain.ErrKeyNotFound) && errors.Is(fallbackErr, domain.ErrKeyNotFound) {
		return "", fmt.Errorf("get %q: %w", key, domain.ErrKeyNotFound)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Remove clears the key from both backends so a stale fallback value cannot
// resurface after the primary recovers.
func (s *Store) Remove(ctx context.Context, key string) error {
	err := s.primary.Remove(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Remove(ctx, key)
	if err == nil || fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend remove failed: %w; fallback backend remove failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
