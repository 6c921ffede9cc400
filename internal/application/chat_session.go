package application

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/logging"
	"go.uber.org/zap"
)

var emptyReplyMessages = map[string]string{
	"fr": "Désolé, je n'ai pas pu répondre. Réessaie !",
	"en": "Sorry, I couldn't answer. Try again!",
}

type ChatSessionDeps struct {
	Orchestrator *RequestOrchestrator
	Animator     *ProgressAnimator
	History      *HistoryService
	Log          *ConversationLog
	Logger       *zap.Logger
}

// ChatSession is one conversation with one expert.
type ChatSession struct {
	expert       domain.Expert
	orchestrator *RequestOrchestrator
	animator     *ProgressAnimator
	history      *HistoryService
	log          *ConversationLog
	logger       *zap.Logger

	mu       sync.Mutex
	mode     domain.SearchMode
	inFlight int
}

func NewChatSession(expert domain.Expert, mode domain.SearchMode, deps ChatSessionDeps) *ChatSession {
	if !mode.Valid() {
		mode = domain.DefaultSearchMode
	}
	log := deps.Log
	if log == nil {
		log = NewConversationLog(nil)
	}
	animator := deps.Animator
	if animator == nil {
		animator = NewProgressAnimator(nil, 0)
	}

	session := &ChatSession{
		expert:       expert,
		orchestrator: deps.Orchestrator,
		animator:     animator,
		history:      deps.History,
		log:          log,
		logger:       logging.OrNop(deps.Logger),
		mode:         mode,
	}
	log.Clear(expert.WelcomeMessage)

	return session
}

func (s *ChatSession) Expert() domain.Expert {
	return s.expert
}

func (s *ChatSession) Log() *ConversationLog {
	return s.log
}

func (s *ChatSession) Animator() *ProgressAnimator {
	return s.animator
}

// Language is the reply language a request with text would carry.
func (s *ChatSession) Language(text string) string {
	return s.orchestrator.Language(text)
}

func (s *ChatSession) Mode() domain.SearchMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

func (s *ChatSession) SetMode(mode domain.SearchMode) error {
	if !mode.Valid() {
		return domain.ErrInvalidSearchMode
	}

	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	return nil
}

func (s *ChatSession) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inFlight > 0
}

// NewConversation resets the transcript to the welcome message. The session
// id is kept.
func (s *ChatSession) NewConversation() {
	s.animator.Stop()
	s.log.Clear(s.expert.WelcomeMessage)
}

// Submit sends text and appends exactly one assistant message for it. On
// failure the message is the classified user sentence and the returned error
// is the *domain.ClassifiedError.
func (s *ChatSession) Submit(ctx context.Context, text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}

	mode := s.Mode()
	var modeRef *domain.SearchMode
	if s.expert.SupportsModes {
		modeRef = &mode
	}

	s.log.Append(domain.RoleUser, text, modeRef, nil)
	s.beginLoading()
	defer s.endLoading()

	s.recordHistory(ctx, text, modeRef)

	lang := s.orchestrator.Language(text)
	if s.expert.SupportsModes {
		epoch := s.animator.Start(mode, lang)
		defer s.animator.Settle(epoch)
	}

	result, err := s.orchestrator.Send(ctx, SendRequest{Expert: s.expert, Mode: mode, Text: text})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			return domain.Message{}, err
		}
		classified := Classify(err, lang)
		return s.log.Append(domain.RoleAssistant, classified.UserMessage, nil, nil), classified
	}

	content := result.ResponseText
	if strings.TrimSpace(content) == "" {
		content = emptyReply(result.Metadata.Language)
	} else if s.expert.SupportsModes {
		content = FormatResponse(mode, content, result.Metadata)
	}

	var sources []string
	if s.expert.SupportsModes {
		sources = result.Metadata.Sources
		if len(sources) == 0 {
			sources = domain.SourceNames(mode)
		}
	}

	return s.log.Append(domain.RoleAssistant, content, modeRef, sources), nil
}

func (s *ChatSession) recordHistory(ctx context.Context, text string, mode *domain.SearchMode) {
	if s.history == nil {
		return
	}

	var historyMode domain.SearchMode
	if mode != nil {
		historyMode = *mode
	}
	if _, err := s.history.Add(ctx, s.expert.ID, historyMode, text); err != nil {
		s.logger.Warn("record history", zap.String("expert", string(s.expert.ID)), zap.Error(err))
	}
}

func (s *ChatSession) beginLoading() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *ChatSession) endLoading() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

func emptyReply(language string) string {
	if msg, ok := emptyReplyMessages[language]; ok {
		return msg
	}
	return emptyReplyMessages["en"]
}
