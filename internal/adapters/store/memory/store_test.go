package memory

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGetRemove(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()

	_, err := store.Get(ctx, "expert_session_health")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "expert_session_health", "session_1_abc"))
	got, err := store.Get(ctx, "expert_session_health")
	require.NoError(t, err)
	assert.Equal(t, "session_1_abc", got)

	require.NoError(t, store.Remove(ctx, "expert_session_health"))
	require.NoError(t, store.Remove(ctx, "expert_session_health"))

	_, err = store.Get(ctx, "expert_session_health")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreExpiresEntriesWithTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.Eventually(t, func() bool {
		_, err := store.Get(ctx, "k")
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestStoreRejectsEmptyKeyAndCanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	require.Error(t, store.Set(context.Background(), "", "v"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Get(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
}
