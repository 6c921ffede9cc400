package application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/logging"
	"github.com/bnema/wikiask-cli/internal/ports"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type SendRequest struct {
	Expert domain.Expert
	Mode   domain.SearchMode
	Text   string
}

type ResponseMetadata struct {
	WordCount *int
	Sources   []string
	Language  string
}

type SendResult struct {
	ResponseText string
	Metadata     ResponseMetadata
	SessionID    string
}

// RequestOrchestrator turns one user message into exactly one backend call.
type RequestOrchestrator struct {
	backend  ports.ChatBackend
	sessions *SessionIdentity
	language LanguageResolver
	validate *validator.Validate
	logger   *zap.Logger
}

func NewRequestOrchestrator(backend ports.ChatBackend, sessions *SessionIdentity, language LanguageResolver, logger *zap.Logger) *RequestOrchestrator {
	return &RequestOrchestrator{
		backend:  backend,
		sessions: sessions,
		language: language,
		validate: validator.New(),
		logger:   logging.OrNop(logger),
	}
}

// Language reports the language a message will be sent with.
func (o *RequestOrchestrator) Language(text string) string {
	return o.language.Resolve(text)
}

// Send returns ErrEmptyMessage for blank text; every other failure is a
// *domain.ClassifiedError.
func (o *RequestOrchestrator) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return SendResult{}, domain.ErrEmptyMessage
	}

	lang := o.language.Resolve(text)
	sessionID := o.sessions.Ensure(ctx, req.Expert.ID)

	payload := ports.ChatRequest{
		Message:   text,
		Language:  lang,
		SessionID: &sessionID,
	}
	if req.Expert.SupportsModes {
		mode := req.Mode
		if mode == "" {
			mode = domain.DefaultSearchMode
		}
		payload.SearchMode = &mode
	}

	if err := o.validate.Struct(payload); err != nil {
		o.logger.Debug("invalid chat payload", zap.String("expert", string(req.Expert.ID)), zap.Error(err))
		return SendResult{}, Classify(fmt.Errorf("validate chat request: %w", err), lang)
	}

	o.logger.Debug("sending chat request",
		zap.String("expert", string(req.Expert.ID)),
		zap.String("language", lang),
		zap.String("session_id", sessionID),
	)

	resp, err := o.backend.Chat(ctx, req.Expert.ID, payload)
	if err != nil {
		classified := Classify(err, lang)
		o.logger.Warn("chat request failed",
			zap.String("expert", string(req.Expert.ID)),
			zap.String("kind", string(classified.Kind)),
			zap.Error(err),
		)
		return SendResult{}, classified
	}

	if resp.SessionID != "" && resp.SessionID != sessionID {
		o.sessions.Adopt(ctx, req.Expert.ID, resp.SessionID)
		sessionID = resp.SessionID
	}

	return SendResult{
		ResponseText: resp.Response,
		Metadata: ResponseMetadata{
			WordCount: resp.WordCount,
			Sources:   resp.Sources,
			Language:  lang,
		},
		SessionID: sessionID,
	}, nil
}

// Classify maps a failure to its user-facing kind. First match wins:
// overloaded, network, timeout, server error, unknown.
func Classify(err error, language string) *domain.ClassifiedError {
	var classified *domain.ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	status := 0
	message := ""
	if err != nil {
		message = err.Error()
	}
	var httpErr *ports.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Status
		message = httpErr.Error()
	}

	kind := classifyKind(err, status, message)
	return &domain.ClassifiedError{
		Kind:        kind,
		UserMessage: domain.UserMessage(kind, language),
		Status:      status,
		Cause:       err,
	}
}

func classifyKind(err error, status int, message string) domain.ErrorKind {
	timedOut := isTimeout(err)

	switch {
	case status == 503 || strings.Contains(strings.ToLower(message), "temporarily unavailable"):
		return domain.ErrorKindOverloaded
	case strings.Contains(message, "Failed to fetch"),
		strings.Contains(message, "NetworkError"),
		strings.Contains(message, "fetch"),
		isTransportError(err) && !timedOut:
		return domain.ErrorKindNetwork
	case strings.Contains(message, "timeout"), status == 408, timedOut:
		return domain.ErrorKindTimeout
	case status == 500:
		return domain.ErrorKindServerError
	default:
		return domain.ErrorKindUnknown
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isTransportError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
