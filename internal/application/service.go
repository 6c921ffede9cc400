package application

import (
	"context"
	"fmt"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/logging"
	"github.com/bnema/wikiask-cli/internal/ports"
	"go.uber.org/zap"
)

// Service is the entry point the commands use.
type Service struct {
	backend  ports.ChatBackend
	sessions *SessionIdentity
	history  *HistoryService
	language LanguageResolver
	clock    ports.Clock
	logger   *zap.Logger
}

func NewService(backend ports.ChatBackend, store ports.KeyValueStore, historyRepo ports.HistoryRepository, language LanguageResolver, clock ports.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	logger = logging.OrNop(logger)

	var history *HistoryService
	if historyRepo != nil {
		history = NewHistoryService(historyRepo, clock)
	}

	return &Service{
		backend:  backend,
		sessions: NewSessionIdentity(store, clock, logger),
		history:  history,
		language: language,
		clock:    clock,
		logger:   logger,
	}
}

func (s *Service) Sessions() *SessionIdentity {
	return s.sessions
}

func (s *Service) History() *HistoryService {
	return s.history
}

// NewChat binds a fresh conversation to expertID.
func (s *Service) NewChat(expertID string, mode domain.SearchMode) (*ChatSession, error) {
	expert, err := domain.LookupExpert(expertID)
	if err != nil {
		return nil, err
	}

	orchestrator := NewRequestOrchestrator(s.backend, s.sessions, s.language, s.logger)
	return NewChatSession(expert, mode, ChatSessionDeps{
		Orchestrator: orchestrator,
		Animator:     NewProgressAnimator(s.clock, DefaultSettleGrace),
		History:      s.history,
		Log:          NewConversationLog(s.clock),
		Logger:       s.logger,
	}), nil
}

func (s *Service) ListExperts(ctx context.Context, remote bool) ([]ExpertSummary, error) {
	if !remote {
		experts := domain.Experts()
		out := make([]ExpertSummary, 0, len(experts))
		for _, expert := range experts {
			out = append(out, ExpertSummary{
				ID:               string(expert.ID),
				Name:             expert.Name,
				Emoji:            expert.Emoji,
				Tagline:          expert.Tagline,
				ExampleQuestions: expert.ExampleQuestions,
				SupportsModes:    expert.SupportsModes,
			})
		}
		return out, nil
	}

	remoteExperts, err := s.backend.ListExperts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list remote experts: %w", err)
	}

	out := make([]ExpertSummary, 0, len(remoteExperts))
	for _, expert := range remoteExperts {
		summary := ExpertSummary{
			ID:               expert.ID,
			Name:             expert.Name,
			Emoji:            expert.Emoji,
			Tagline:          expert.Tagline,
			ExampleQuestions: expert.ExampleQuestions,
		}
		if local, err := domain.LookupExpert(expert.ID); err == nil {
			summary.SupportsModes = local.SupportsModes
		}
		out = append(out, summary)
	}

	return out, nil
}

func (s *Service) SessionStatus(ctx context.Context, expertID string) (SessionStatus, error) {
	expert, err := domain.LookupExpert(expertID)
	if err != nil {
		return SessionStatus{}, err
	}

	return SessionStatus{Expert: expert, SessionID: s.sessions.Ensure(ctx, expert.ID)}, nil
}

func (s *Service) ResetSession(ctx context.Context, expertID string) (SessionStatus, error) {
	expert, err := domain.LookupExpert(expertID)
	if err != nil {
		return SessionStatus{}, err
	}

	return SessionStatus{Expert: expert, SessionID: s.sessions.Reset(ctx, expert.ID)}, nil
}
