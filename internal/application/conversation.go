package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
)

// ConversationLog is append-only. Clear is the only bulk operation.
type ConversationLog struct {
	clock ports.Clock

	mu       sync.RWMutex
	seq      int
	last     time.Time
	messages []domain.Message
}

func NewConversationLog(clock ports.Clock) *ConversationLog {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ConversationLog{clock: clock}
}

// Append stores a message with the next id and a timestamp strictly after
// the previous one.
func (l *ConversationLog) Append(role domain.Role, content string, mode *domain.SearchMode, sources []string) domain.Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	now := l.clock.Now()
	if !l.last.IsZero() && !now.After(l.last) {
		now = l.last.Add(time.Nanosecond)
	}
	l.last = now

	message := domain.Message{
		ID:        fmt.Sprintf("msg-%06d", l.seq),
		Role:      role,
		Content:   content,
		Timestamp: now,
		Mode:      mode,
		Sources:   sources,
	}
	message = cloneMessage(message)
	l.messages = append(l.messages, message)

	return cloneMessage(message)
}

// Clear drops every message and seeds welcome as the first assistant
// message when it is not empty. Ids keep increasing across clears.
func (l *ConversationLog) Clear(welcome string) {
	l.mu.Lock()
	l.messages = nil
	l.mu.Unlock()

	if welcome != "" {
		l.Append(domain.RoleAssistant, welcome, nil, nil)
	}
}

func (l *ConversationLog) Messages() []domain.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Message, len(l.messages))
	for i, message := range l.messages {
		out[i] = cloneMessage(message)
	}
	return out
}

func (l *ConversationLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.messages)
}

func (l *ConversationLog) Last() (domain.Message, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.messages) == 0 {
		return domain.Message{}, false
	}
	return cloneMessage(l.messages[len(l.messages)-1]), true
}

// cloneMessage detaches Mode and Sources so stored messages cannot be
// changed through a returned copy.
func cloneMessage(message domain.Message) domain.Message {
	if message.Mode != nil {
		mode := *message.Mode
		message.Mode = &mode
	}
	if message.Sources != nil {
		message.Sources = append([]string(nil), message.Sources...)
	}
	return message
}
