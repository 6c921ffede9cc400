package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/wikiask-cli/internal/adapters/httpapi"
	tomlrepo "github.com/bnema/wikiask-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/wikiask-cli/internal/adapters/store/chain"
	memorystore "github.com/bnema/wikiask-cli/internal/adapters/store/memory"
	redisstore "github.com/bnema/wikiask-cli/internal/adapters/store/redis"
	"github.com/bnema/wikiask-cli/internal/application"
	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/logging"
	"github.com/bnema/wikiask-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	configDir      = ".wikiask"
	envPrefix      = "WIKIASK"
	defaultTimeout = 60 * time.Second
)

var errUnknownStoreBackend = errors.New("unknown store backend")

type app struct {
	service     *application.Service
	config      *viper.Viper
	logger      *zap.Logger
	defaultMode domain.SearchMode
	now         func() time.Time
	closers     []func() error
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Debug: cfg.GetBool("log.debug"),
		Path:  cfg.GetString("log.path"),
	})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	defaultMode, err := domain.ParseSearchMode(cfg.GetString("mode"))
	if err != nil {
		return nil, fmt.Errorf("read config mode: %w", err)
	}

	a := &app{config: cfg, logger: logger, defaultMode: defaultMode, now: time.Now}

	store, err := a.wireStore(cfg)
	if err != nil {
		return nil, err
	}

	historyRepo, err := tomlrepo.NewHistoryRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire history repository: %w", err)
	}

	backend := httpapi.Client{
		BaseURL:        cfg.GetString("api.base_url"),
		HTTPClient:     &http.Client{},
		RequestTimeout: cfg.GetDuration("api.timeout"),
	}

	resolver := application.LanguageResolver{
		Stored:  cfg.GetString("language"),
		Ambient: application.AmbientLocale,
	}

	a.service = application.NewService(backend, store, historyRepo, resolver, ports.SystemClock{}, logger)
	logger.Debug("wired app",
		zap.String("api", backend.BaseURL),
		zap.String("store", cfg.GetString("store.backend")),
	)

	return a, nil
}

// wireStore puts a process-local memory store behind every persistent
// backend so session ids survive storage failures.
func (a *app) wireStore(cfg *viper.Viper) (ports.KeyValueStore, error) {
	fallback := memorystore.NewStore(0)

	switch backend := strings.ToLower(strings.TrimSpace(cfg.GetString("store.backend"))); backend {
	case "", "file":
		fileStore, err := tomlrepo.NewStore(cfg)
		if err != nil {
			return nil, fmt.Errorf("wire session store: %w", err)
		}
		return chainstore.NewStoreChecked(fileStore, fallback)
	case "redis":
		redisStore := redisstore.NewStore(redisstore.Options{URL: cfg.GetString("store.redis_url")})
		a.closers = append(a.closers, redisStore.Close)
		return chainstore.NewStoreChecked(redisStore, fallback)
	case "memory":
		return fallback, nil
	default:
		return nil, fmt.Errorf("wire session store: %w %q", errUnknownStoreBackend, backend)
	}
}

func (a *app) close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.logger.Warn("close resource", zap.Error(err))
		}
	}
	a.closers = nil
	_ = a.logger.Sync()
}

func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	dataDir := filepath.Join(homeDir, configDir)

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(dataDir)

	cfg.SetDefault("api.base_url", "")
	cfg.SetDefault("api.timeout", defaultTimeout)
	cfg.SetDefault("store.backend", "file")
	cfg.SetDefault("store.path", filepath.Join(dataDir, "sessions.toml"))
	cfg.SetDefault("store.redis_url", "redis://127.0.0.1:6379/0")
	cfg.SetDefault("history.path", filepath.Join(dataDir, "history.toml"))
	cfg.SetDefault("language", "")
	cfg.SetDefault("mode", string(domain.DefaultSearchMode))
	cfg.SetDefault("log.debug", false)
	cfg.SetDefault("log.path", filepath.Join(dataDir, "logs", "wa.log"))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	if err := cfg.BindEnv("api.base_url", envPrefix+"_API_URL", envPrefix+"_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("bind api url env: %w", err)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, nil
}
