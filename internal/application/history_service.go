package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
	"github.com/google/uuid"
)

// HistoryService keeps the newest domain.HistoryLimit queries, newest first.
type HistoryService struct {
	repo  ports.HistoryRepository
	clock ports.Clock
	mu    sync.Mutex
}

func NewHistoryService(repo ports.HistoryRepository, clock ports.Clock) *HistoryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &HistoryService{repo: repo, clock: clock}
}

func (s *HistoryService) Add(ctx context.Context, expert domain.ExpertID, mode domain.SearchMode, query string) (domain.HistoryItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.HistoryItem{}, domain.ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.List(ctx)
	if err != nil {
		return domain.HistoryItem{}, fmt.Errorf("list history: %w", err)
	}

	item := domain.HistoryItem{
		ID:        uuid.NewString(),
		Query:     query,
		Expert:    expert,
		Mode:      mode,
		Timestamp: s.clock.Now().UTC(),
	}

	updated := append([]domain.HistoryItem{item}, items...)
	if len(updated) > domain.HistoryLimit {
		updated = updated[:domain.HistoryLimit]
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return domain.HistoryItem{}, fmt.Errorf("save history: %w", err)
	}

	return item, nil
}

// List returns at most limit items; limit <= 0 returns everything.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

func (s *HistoryService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	return nil
}

func (s *HistoryService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, nil); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	return nil
}
