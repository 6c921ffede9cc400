package domain

import "fmt"

type ErrorKind string

const (
	ErrorKindOverloaded  ErrorKind = "overloaded"
	ErrorKindNetwork     ErrorKind = "network"
	ErrorKindTimeout     ErrorKind = "timeout"
	ErrorKindServerError ErrorKind = "server_error"
	ErrorKindUnknown     ErrorKind = "unknown"
)

var userMessages = map[string]map[ErrorKind]string{
	"fr": {
		ErrorKindOverloaded:  "🔧 Le service IA est temporairement surchargé. Réessaie dans quelques secondes !",
		ErrorKindNetwork:     "📡 Problème de connexion. Vérifie ta connexion internet et réessaie.",
		ErrorKindTimeout:     "⏱️ La requête a pris trop de temps. Réessaie avec une question plus courte.",
		ErrorKindServerError: "⚠️ Une erreur serveur s'est produite. Nous travaillons dessus !",
		ErrorKindUnknown:     "Oups ! Je suis momentanément indisponible. Réessaie dans quelques instants.",
	},
	"en": {
		ErrorKindOverloaded:  "🔧 The AI service is temporarily overloaded. Try again in a few seconds!",
		ErrorKindNetwork:     "📡 Connection problem. Check your internet connection and try again.",
		ErrorKindTimeout:     "⏱️ The request took too long. Try again with a shorter question.",
		ErrorKindServerError: "⚠️ A server error occurred. We're working on it!",
		ErrorKindUnknown:     "Oops! I'm temporarily unavailable. Try again in a moment.",
	},
}

// UserMessage returns the fixed sentence shown for kind. French for "fr", English otherwise.
func UserMessage(kind ErrorKind, language string) string {
	messages, ok := userMessages[language]
	if !ok {
		messages = userMessages["en"]
	}
	if msg, ok := messages[kind]; ok {
		return msg
	}
	return messages[ErrorKindUnknown]
}

// ClassifiedError is the only failure shape that reaches the conversation.
// Cause keeps the raw error for diagnostics; it is never shown to the user.
type ClassifiedError struct {
	Kind        ErrorKind
	UserMessage string
	Status      int
	Cause       error
}

func (e *ClassifiedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.UserMessage)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}
