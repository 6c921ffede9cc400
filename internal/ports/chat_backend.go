package ports

import (
	"context"
	"fmt"

	"github.com/bnema/wikiask-cli/internal/domain"
)

type ChatRequest struct {
	Message    string             `json:"message" validate:"required,max=2000"`
	Language   string             `json:"language"`
	SessionID  *string            `json:"session_id"`
	SearchMode *domain.SearchMode `json:"search_mode,omitempty" validate:"omitempty,oneof=fast normal deep"`
}

type ChatResponse struct {
	ExpertID   string   `json:"expert_id,omitempty"`
	ExpertName string   `json:"expert_name,omitempty"`
	Response   string   `json:"response"`
	SessionID  string   `json:"session_id,omitempty"`
	WordCount  *int     `json:"word_count,omitempty"`
	Sources    []string `json:"sources,omitempty"`
}

type RemoteExpert struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Emoji            string   `json:"emoji"`
	Tagline          string   `json:"tagline"`
	Description      string   `json:"description"`
	WelcomeMessage   string   `json:"welcome_message"`
	ExampleQuestions []string `json:"example_questions"`
}

type ChatBackend interface {
	Chat(ctx context.Context, expertID domain.ExpertID, req ChatRequest) (ChatResponse, error)
	ListExperts(ctx context.Context) ([]RemoteExpert, error)
}

// HTTPError is returned by backends for non-2xx responses. Detail is the
// best-effort "detail" field of the error body.
type HTTPError struct {
	Status int
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("HTTP %d: Request failed", e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Detail)
}
