package toml

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	historyPathKey     = "history.path"
	historyDefaultFile = "history.toml"
)

type HistoryRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(cfg *viper.Viper) (*HistoryRepository, error) {
	path, err := resolvePath(cfg, historyPathKey, historyDefaultFile)
	if err != nil {
		return nil, err
	}

	return &HistoryRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]domain.HistoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var file historySchema
	if err := readTOML(r.path, &file); err != nil {
		return nil, err
	}
	if err := validateVersion("history", file.Version); err != nil {
		return nil, err
	}

	items := make([]domain.HistoryItem, 0, len(file.Items))
	for _, entry := range file.Items {
		items = append(items, fromHistorySchema(entry))
	}

	return items, nil
}

func (r *HistoryRepository) Save(ctx context.Context, items []domain.HistoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := historySchema{Items: make([]historyItemSchema, 0, len(items))}
	file.applyDefaults()
	for _, item := range items {
		file.Items = append(file.Items, toHistorySchema(item))
	}

	return writeTOML(r.path, file)
}

func toHistorySchema(item domain.HistoryItem) historyItemSchema {
	return historyItemSchema{
		ID:        item.ID,
		Query:     item.Query,
		Expert:    string(item.Expert),
		Mode:      string(item.Mode),
		Timestamp: formatTime(item.Timestamp),
	}
}

func fromHistorySchema(entry historyItemSchema) domain.HistoryItem {
	return domain.HistoryItem{
		ID:        entry.ID,
		Query:     entry.Query,
		Expert:    domain.ExpertID(entry.Expert),
		Mode:      domain.SearchMode(entry.Mode),
		Timestamp: parseTime(entry.Timestamp),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
