package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "wikiask:"

var errEmptyKey = errors.New("store key is required")

// Store keeps values in a shared redis instance so several terminals
// reuse the same session handles.
type Store struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

var _ ports.KeyValueStore = (*Store)(nil)

type Options struct {
	URL    string
	Prefix string
	TTL    time.Duration
}

// NewStore parses opts.URL as a redis:// URL. Anything that does not parse is
// used as a plain host:port address.
func NewStore(opts Options) *Store {
	clientOpts, err := goredis.ParseURL(opts.URL)
	if err != nil {
		clientOpts = &goredis.Options{Addr: opts.URL}
	}

	return NewStoreWithClient(goredis.NewClient(clientOpts), opts.Prefix, opts.TTL)
}

func NewStoreWithClient(client *goredis.Client, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &Store{client: client, prefix: prefix, ttl: ttl}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errEmptyKey
	}

	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", fmt.Errorf("redis key %q: %w", key, domain.ErrKeyNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get redis key %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("set redis key %q: %w", key, err)
	}

	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete redis key %q: %w", key, err)
	}

	return nil
}
