package toml

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	config := viper.New()
	config.Set("history.path", filepath.Join(t.TempDir(), "history.toml"))
	repo, err := NewHistoryRepository(config)
	require.NoError(t, err)

	ctx := context.Background()
	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	now := time.Date(2026, 10, 19, 9, 30, 0, 123, time.UTC)
	items := []domain.HistoryItem{
		{ID: "2", Query: "Quels sont les bienfaits du sommeil ?", Expert: domain.ExpertHealth, Mode: domain.SearchModeDeep, Timestamp: now},
		{ID: "1", Query: "Quel est le cours du Bitcoin ?", Expert: domain.ExpertFinance, Timestamp: now.Add(-time.Minute)},
	}
	require.NoError(t, repo.Save(ctx, items))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
