package toml

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	storePathKey     = "store.path"
	storeDefaultFile = "sessions.toml"
)

// Store keeps key/value pairs in a single TOML file.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.KeyValueStore = (*Store)(nil)

var errEmptyKey = errors.New("store key is empty")

func NewStore(cfg *viper.Viper) (*Store, error) {
	path, err := resolvePath(cfg, storePathKey, storeDefaultFile)
	if err != nil {
		return nil, err
	}

	return &Store{path: path, mu: lockForPath(path)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(key) == "" {
		return "", errEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := file.Entries[key]
	if !ok {
		return "", domain.ErrKeyNotFound
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

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	file.Entries[key] = value

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOML(s.path, file)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := file.Entries[key]; !ok {
		return nil
	}
	delete(file.Entries, key)

	return writeTOML(s.path, file)
}

func (s *Store) read() (storeSchema, error) {
	var file storeSchema
	if err := readTOML(s.path, &file); err != nil {
		return storeSchema{}, err
	}
	if err := validateVersion("store", file.Version); err != nil {
		return storeSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
