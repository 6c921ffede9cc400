package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
	"github.com/patrickmn/go-cache"
)

// Values live for the process lifetime unless a TTL is given.
const cleanupInterval = 10 * time.Minute

var errEmptyKey = errors.New("store key is required")

type Store struct {
	cache *cache.Cache
}

var _ ports.KeyValueStore = (*Store)(nil)

// NewStore creates an in-process store. A ttl <= 0 keeps entries forever.
func NewStore(ttl time.Duration) *Store {
	expiration := cache.NoExpiration
	if ttl > 0 {
		expiration = ttl
	}

	return &Store{cache: cache.New(expiration, cleanupInterval)}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(key) == "" {
		return "", errEmptyKey
	}

	raw, found := s.cache.Get(key)
	if !found {
		return "", fmt.Errorf("memory key %q: %w", key, domain.ErrKeyNotFound)
	}

	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("memory key %q holds %T", key, raw)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	s.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	s.cache.Delete(key)
	return nil
}
