package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/wikiask-cli/internal/adapters/store/memory"
	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
	portmocks "github.com/bnema/wikiask-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServiceListExpertsLocal(t *testing.T) {
	t.Parallel()

	service := NewService(portmocks.NewMockChatBackend(t), memory.NewStore(0), nil, LanguageResolver{}, nil, nil)

	experts, err := service.ListExperts(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, experts, 16)
	assert.Equal(t, "health", experts[0].ID)
	assert.True(t, experts[0].SupportsModes)
	assert.NotEmpty(t, experts[0].ExampleQuestions)
}

func TestServiceListExpertsRemote(t *testing.T) {
	t.Parallel()

	backend := portmocks.NewMockChatBackend(t)
	backend.EXPECT().ListExperts(mock.Anything).Return([]ports.RemoteExpert{
		{ID: "health", Name: "Recherche Santé"},
		{ID: "space", Name: "Astro"},
	}, nil).Once()

	service := NewService(backend, memory.NewStore(0), nil, LanguageResolver{}, nil, nil)
	experts, err := service.ListExperts(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, experts, 2)
	assert.True(t, experts[0].SupportsModes)
	assert.False(t, experts[1].SupportsModes)
}

func TestServiceListExpertsRemoteFailure(t *testing.T) {
	t.Parallel()

	backend := portmocks.NewMockChatBackend(t)
	backend.EXPECT().ListExperts(mock.Anything).Return(nil, errors.New("offline")).Once()

	service := NewService(backend, memory.NewStore(0), nil, LanguageResolver{}, nil, nil)
	_, err := service.ListExperts(context.Background(), true)
	require.ErrorContains(t, err, "list remote experts: offline")
}

func TestServiceSessionStatusAndReset(t *testing.T) {
	t.Parallel()

	service := NewService(portmocks.NewMockChatBackend(t), memory.NewStore(0), nil, LanguageResolver{}, nil, nil)
	ctx := context.Background()

	status, err := service.SessionStatus(ctx, "finance")
	require.NoError(t, err)
	assert.Equal(t, domain.ExpertFinance, status.Expert.ID)
	assert.Regexp(t, sessionIDPattern, status.SessionID)

	again, err := service.SessionStatus(ctx, "finance")
	require.NoError(t, err)
	assert.Equal(t, status.SessionID, again.SessionID)

	reset, err := service.ResetSession(ctx, "finance")
	require.NoError(t, err)
	assert.NotEqual(t, status.SessionID, reset.SessionID)

	_, err = service.SessionStatus(ctx, "astronaut")
	require.ErrorIs(t, err, domain.ErrExpertNotFound)
}

func TestServiceNewChatRejectsUnknownExpert(t *testing.T) {
	t.Parallel()

	service := NewService(portmocks.NewMockChatBackend(t), memory.NewStore(0), nil, LanguageResolver{}, nil, nil)

	_, err := service.NewChat("astronaut", domain.SearchModeFast)
	require.ErrorIs(t, err, domain.ErrExpertNotFound)

	chat, err := service.NewChat("health", domain.SearchModeDeep)
	require.NoError(t, err)
	assert.Equal(t, domain.SearchModeDeep, chat.Mode())
}
