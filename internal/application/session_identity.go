package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/logging"
	"github.com/bnema/wikiask-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionRandomLength = 9

// SessionIdentity owns one conversational memory handle per expert scope.
// Store failures never surface: the handle then lives in memory only.
type SessionIdentity struct {
	store  ports.KeyValueStore
	clock  ports.Clock
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[domain.ExpertID]string
}

func NewSessionIdentity(store ports.KeyValueStore, clock ports.Clock, logger *zap.Logger) *SessionIdentity {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionIdentity{
		store:    store,
		clock:    clock,
		logger:   logging.OrNop(logger),
		sessions: map[domain.ExpertID]string{},
	}
}

func (s *SessionIdentity) Ensure(ctx context.Context, scope domain.ExpertID) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.sessions[scope]; ok {
		return id
	}

	if id, ok := s.load(ctx, scope); ok {
		s.sessions[scope] = id
		return id
	}

	id := s.mint()
	s.sessions[scope] = id
	s.persist(ctx, scope, id)
	s.logger.Debug("minted session id", zap.String("expert", string(scope)), zap.String("session_id", id))

	return id
}

// Adopt replaces the handle with the one the server assigned.
func (s *SessionIdentity) Adopt(ctx context.Context, scope domain.ExpertID, serverID string) {
	serverID = strings.TrimSpace(serverID)
	if serverID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[scope] == serverID {
		return
	}

	s.sessions[scope] = serverID
	s.persist(ctx, scope, serverID)
	s.logger.Debug("adopted server session id", zap.String("expert", string(scope)), zap.String("session_id", serverID))
}

// Reset forgets the stored handle and mints a new one.
func (s *SessionIdentity) Reset(ctx context.Context, scope domain.ExpertID) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Remove(ctx, domain.SessionKey(scope)); err != nil {
			s.logger.Warn("remove session id", zap.String("expert", string(scope)), zap.Error(err))
		}
	}

	id := s.mint()
	s.sessions[scope] = id
	s.persist(ctx, scope, id)

	return id
}

func (s *SessionIdentity) Current(scope domain.ExpertID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.sessions[scope]
	return id, ok
}

func (s *SessionIdentity) load(ctx context.Context, scope domain.ExpertID) (string, bool) {
	if s.store == nil {
		return "", false
	}

	id, err := s.store.Get(ctx, domain.SessionKey(scope))
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Warn("read session id", zap.String("expert", string(scope)), zap.Error(err))
		}
		return "", false
	}

	id = strings.TrimSpace(id)
	return id, id != ""
}

func (s *SessionIdentity) persist(ctx context.Context, scope domain.ExpertID, id string) {
	if s.store == nil {
		return
	}

	if err := s.store.Set(ctx, domain.SessionKey(scope), id); err != nil {
		s.logger.Warn("persist session id", zap.String("expert", string(scope)), zap.Error(err))
	}
}

func (s *SessionIdentity) mint() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("session_%d_%s", s.clock.Now().UnixMilli(), random[:sessionRandomLength])
}
