package ports

import (
	"context"

	"github.com/bnema/wikiask-cli/internal/domain"
)

type HistoryRepository interface {
	List(ctx context.Context) ([]domain.HistoryItem, error)
	Save(ctx context.Context, items []domain.HistoryItem) error
}
