package application

import "github.com/bnema/wikiask-cli/internal/domain"

type SessionStatus struct {
	Expert    domain.Expert
	SessionID string
}

// ExpertSummary is one row of the expert listing, local or remote.
type ExpertSummary struct {
	ID               string
	Name             string
	Emoji            string
	Tagline          string
	ExampleQuestions []string
	SupportsModes    bool
}
