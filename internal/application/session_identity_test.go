package application

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/bnema/wikiask-cli/internal/adapters/store/memory"
	"github.com/bnema/wikiask-cli/internal/domain"
	portmocks "github.com/bnema/wikiask-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sessionIDPattern = regexp.MustCompile(`^session_\d+_[0-9a-z]{9}$`)

func TestSessionIdentityEnsureMintsAndPersistsOnce(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(0)
	clock := newManualClock(time.UnixMilli(1760868000000))
	identity := NewSessionIdentity(store, clock, nil)
	ctx := context.Background()

	first := identity.Ensure(ctx, domain.ExpertFinance)
	assert.Regexp(t, sessionIDPattern, first)
	assert.Contains(t, first, "session_1760868000000_")

	second := identity.Ensure(ctx, domain.ExpertFinance)
	assert.Equal(t, first, second)

	persisted, err := store.Get(ctx, "expert_session_finance")
	require.NoError(t, err)
	assert.Equal(t, first, persisted)

	other := identity.Ensure(ctx, domain.ExpertHealth)
	assert.NotEqual(t, first, other)
}

func TestSessionIdentityEnsureReadsPersistedValue(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(0)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "expert_session_health", "session_42_abcdefghi"))

	identity := NewSessionIdentity(store, nil, nil)
	assert.Equal(t, "session_42_abcdefghi", identity.Ensure(ctx, domain.ExpertHealth))
}

func TestSessionIdentityDegradesToMemoryWhenStoreFails(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockKeyValueStore(t)
	store.EXPECT().Get(mock.Anything, "expert_session_health").Return("", errors.New("disk on fire")).Once()
	store.EXPECT().Set(mock.Anything, "expert_session_health", mock.AnythingOfType("string")).Return(errors.New("disk on fire")).Once()

	identity := NewSessionIdentity(store, nil, nil)
	ctx := context.Background()

	first := identity.Ensure(ctx, domain.ExpertHealth)
	assert.Regexp(t, sessionIDPattern, first)
	assert.Equal(t, first, identity.Ensure(ctx, domain.ExpertHealth), "stable for the process lifetime")
}

func TestSessionIdentityAdopt(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(0)
	identity := NewSessionIdentity(store, nil, nil)
	ctx := context.Background()

	original := identity.Ensure(ctx, domain.ExpertFinance)

	identity.Adopt(ctx, domain.ExpertFinance, "")
	identity.Adopt(ctx, domain.ExpertFinance, original)
	current, ok := identity.Current(domain.ExpertFinance)
	require.True(t, ok)
	assert.Equal(t, original, current)

	identity.Adopt(ctx, domain.ExpertFinance, "srv-session-7")
	current, _ = identity.Current(domain.ExpertFinance)
	assert.Equal(t, "srv-session-7", current)

	persisted, err := store.Get(ctx, "expert_session_finance")
	require.NoError(t, err)
	assert.Equal(t, "srv-session-7", persisted)
}

func TestSessionIdentityResetMintsFreshID(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(0)
	identity := NewSessionIdentity(store, nil, nil)
	ctx := context.Background()

	identity.Adopt(ctx, domain.ExpertHealth, "srv-old")
	fresh := identity.Reset(ctx, domain.ExpertHealth)

	assert.NotEqual(t, "srv-old", fresh)
	assert.Regexp(t, sessionIDPattern, fresh)
	persisted, err := store.Get(ctx, "expert_session_health")
	require.NoError(t, err)
	assert.Equal(t, fresh, persisted)
}

func TestSessionIdentityConcurrentEnsureMintsOnce(t *testing.T) {
	t.Parallel()

	identity := NewSessionIdentity(memory.NewStore(0), nil, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 16)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = identity.Ensure(ctx, domain.ExpertHealth)
		}(i)
	}
	wg.Wait()

	for i, id := range ids {
		assert.Equal(t, ids[0], id, fmt.Sprintf("goroutine %d", i))
	}
}
