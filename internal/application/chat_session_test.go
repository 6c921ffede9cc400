package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/wikiask-cli/internal/adapters/store/memory"
	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
	portmocks "github.com/bnema/wikiask-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatFixture struct {
	backend  *portmocks.MockChatBackend
	store    *memory.Store
	clock    *manualClock
	identity *SessionIdentity
	animator *ProgressAnimator
	history  *HistoryService
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()

	clock := newManualClock(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	store := memory.NewStore(0)
	return &chatFixture{
		backend:  portmocks.NewMockChatBackend(t),
		store:    store,
		clock:    clock,
		identity: NewSessionIdentity(store, clock, nil),
		animator: NewProgressAnimator(clock, 0),
	}
}

func (f *chatFixture) session(t *testing.T, id domain.ExpertID, mode domain.SearchMode) *ChatSession {
	t.Helper()

	orchestrator := NewRequestOrchestrator(f.backend, f.identity, LanguageResolver{Stored: "fr"}, nil)
	return NewChatSession(mustExpert(t, id), mode, ChatSessionDeps{
		Orchestrator: orchestrator,
		Animator:     f.animator,
		History:      f.history,
		Log:          NewConversationLog(f.clock),
	})
}

func TestChatSessionStartsWithWelcomeMessage(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertFinance, "")

	messages := session.Log().Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, domain.RoleAssistant, messages[0].Role)
	assert.Equal(t, session.Expert().WelcomeMessage, messages[0].Content)
	assert.Equal(t, domain.DefaultSearchMode, session.Mode())
}

func TestChatSessionFinanceScenario(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertFinance, domain.SearchModeNormal)

	var sentSession string
	fixture.backend.EXPECT().Chat(mock.Anything, domain.ExpertFinance, mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.ExpertID, req ports.ChatRequest) (ports.ChatResponse, error) {
			require.NotNil(t, req.SessionID)
			sentSession = *req.SessionID
			assert.Equal(t, "fr", req.Language)
			assert.Nil(t, req.SearchMode)
			return ports.ChatResponse{Response: "Le Bitcoin s'échange autour de 60 000 €."}, nil
		}).Once()

	reply, err := session.Submit(context.Background(), "Quel est le cours du Bitcoin ?")
	require.NoError(t, err)

	assert.Regexp(t, sessionIDPattern, sentSession)
	persisted, err := fixture.store.Get(context.Background(), "expert_session_finance")
	require.NoError(t, err)
	assert.Equal(t, sentSession, persisted)

	messages := session.Log().Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, domain.RoleUser, messages[1].Role)
	assert.Equal(t, "Quel est le cours du Bitcoin ?", messages[1].Content)
	assert.Equal(t, domain.RoleAssistant, messages[2].Role)
	assert.Equal(t, "Le Bitcoin s'échange autour de 60 000 €.", messages[2].Content)
	assert.Nil(t, messages[2].Mode)
	assert.Equal(t, reply, messages[2])
	assert.False(t, session.Loading())

	assert.Equal(t, AnimationIdle, fixture.animator.Snapshot().State, "experts without modes do not animate")
}

func TestChatSessionHealthDeepServerErrorScenario(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertHealth, domain.SearchModeDeep)

	fixture.backend.EXPECT().Chat(mock.Anything, domain.ExpertHealth, mock.MatchedBy(func(req ports.ChatRequest) bool {
		return req.SearchMode != nil && *req.SearchMode == domain.SearchModeDeep
	})).Return(ports.ChatResponse{}, &ports.HTTPError{Status: 500}).Once()

	reply, err := session.Submit(context.Background(), "Quels sont les bienfaits du sommeil ?")

	var classified *domain.ClassifiedError
	require.True(t, errors.As(err, &classified))
	assert.Equal(t, domain.ErrorKindServerError, classified.Kind)

	serverError := domain.UserMessage(domain.ErrorKindServerError, "fr")
	assert.Equal(t, serverError, reply.Content)

	messages := session.Log().Messages()
	last := messages[len(messages)-1]
	assert.Equal(t, domain.RoleAssistant, last.Role)
	assert.Equal(t, serverError, last.Content)
	assert.Len(t, messages, 3)

	require.Len(t, fixture.animator.Snapshot().Steps, 25)

	deepEntries := domain.EntriesFor(domain.SearchModeDeep)
	fixture.clock.Advance(deepEntries[len(deepEntries)-1].Delay)
	settling := fixture.animator.Snapshot()
	assert.Equal(t, AnimationSettling, settling.State)
	for _, step := range settling.Steps {
		assert.Equal(t, domain.StepDone, step.Status)
	}

	fixture.clock.Advance(DefaultSettleGrace)
	assert.Empty(t, fixture.animator.Snapshot().Steps)
	assert.Equal(t, AnimationIdle, fixture.animator.Snapshot().State)
}

func TestChatSessionFormatsModeExpertReplies(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertHealth, domain.SearchModeNormal)

	fixture.backend.EXPECT().Chat(mock.Anything, domain.ExpertHealth, mock.Anything).
		Return(ports.ChatResponse{Response: "Dormir 8h."}, nil).Once()

	reply, err := session.Submit(context.Background(), "Combien de temps dormir ?")
	require.NoError(t, err)

	assert.Equal(t, FormatResponse(domain.SearchModeNormal, "Dormir 8h.", ResponseMetadata{Language: "fr"}), reply.Content)
	require.NotNil(t, reply.Mode)
	assert.Equal(t, domain.SearchModeNormal, *reply.Mode)
	assert.Equal(t, domain.SourceNames(domain.SearchModeNormal), reply.Sources)
}

func TestChatSessionEmptyReplyFallsBackToApology(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertFinance, "")

	fixture.backend.EXPECT().Chat(mock.Anything, domain.ExpertFinance, mock.Anything).
		Return(ports.ChatResponse{Response: "   "}, nil).Once()

	reply, err := session.Submit(context.Background(), "C'est quoi un ETF ?")
	require.NoError(t, err)
	assert.Equal(t, "Désolé, je n'ai pas pu répondre. Réessaie !", reply.Content)
}

func TestChatSessionIgnoresBlankInput(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertFinance, "")

	_, err := session.Submit(context.Background(), "   \n")
	require.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Equal(t, 1, session.Log().Len())
}

func TestChatSessionRecordsHistoryAndSurvivesHistoryFailure(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	repo := portmocks.NewMockHistoryRepository(t)
	fixture.history = NewHistoryService(repo, fixture.clock)
	session := fixture.session(t, domain.ExpertHealth, domain.SearchModeFast)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("corrupt history")).Once()
	fixture.backend.EXPECT().Chat(mock.Anything, domain.ExpertHealth, mock.Anything).
		Return(ports.ChatResponse{Response: "ok"}, nil).Once()

	reply, err := session.Submit(context.Background(), "Bienfaits du sommeil ?")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply.Content, "fast mode is passthrough")
}

func TestChatSessionNewConversationKeepsSessionID(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertFinance, "")

	fixture.backend.EXPECT().Chat(mock.Anything, domain.ExpertFinance, mock.Anything).
		Return(ports.ChatResponse{Response: "ok"}, nil).Twice()

	_, err := session.Submit(context.Background(), "premier message")
	require.NoError(t, err)
	before, _ := fixture.identity.Current(domain.ExpertFinance)

	session.NewConversation()
	require.Equal(t, 1, session.Log().Len())

	_, err = session.Submit(context.Background(), "deuxième message")
	require.NoError(t, err)
	after, _ := fixture.identity.Current(domain.ExpertFinance)
	assert.Equal(t, before, after)
}

func TestChatSessionLoadingWhileInFlight(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertFinance, "")

	entered := make(chan struct{})
	release := make(chan struct{})
	fixture.backend.EXPECT().Chat(mock.Anything, domain.ExpertFinance, mock.Anything).
		RunAndReturn(func(context.Context, domain.ExpertID, ports.ChatRequest) (ports.ChatResponse, error) {
			close(entered)
			<-release
			return ports.ChatResponse{Response: "ok"}, nil
		}).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = session.Submit(context.Background(), "bonjour")
	}()

	<-entered
	assert.True(t, session.Loading())
	close(release)
	wg.Wait()
	assert.False(t, session.Loading())
}

func TestChatSessionSetModeRejectsUnknown(t *testing.T) {
	t.Parallel()

	fixture := newChatFixture(t)
	session := fixture.session(t, domain.ExpertHealth, domain.SearchModeFast)

	require.ErrorIs(t, session.SetMode("turbo"), domain.ErrInvalidSearchMode)
	require.NoError(t, session.SetMode(domain.SearchModeDeep))
	assert.Equal(t, domain.SearchModeDeep, session.Mode())
}
