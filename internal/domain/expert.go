package domain

import (
	"fmt"
	"strings"
)

type ExpertID string

const (
	ExpertHealth  ExpertID = "health"
	ExpertFinance ExpertID = "finance"
)

type Expert struct {
	ID               ExpertID
	Name             string
	Emoji            string
	Tagline          string
	WelcomeMessage   string
	ExampleQuestions []string
	// SupportsModes marks experts that accept a search_mode hint and run the research animation.
	SupportsModes bool
}

var expertRegistry = []Expert{
	{
		ID:             ExpertHealth,
		Name:           "Recherche Santé",
		Emoji:          "🔬",
		Tagline:        "Moteur de recherche santé",
		WelcomeMessage: "Bienvenue ! 🔬 Je suis un moteur de recherche en informations de santé. Je peux vous aider à trouver des informations générales. Pour tout problème de santé, consultez toujours un professionnel.",
		ExampleQuestions: []string{
			"Quels sont les bienfaits du sommeil ?",
			"C'est quoi une alimentation équilibrée ?",
			"Comment fonctionne le système immunitaire ?",
		},
		SupportsModes: true,
	},
	{
		ID:             "sports",
		Name:           "Coach Alex",
		Emoji:          "⚽",
		Tagline:        "Sport et fitness",
		WelcomeMessage: "Salut ! ⚽ Je suis Coach Alex ! Parlons sport, fitness ou des derniers résultats. C'est parti !",
		ExampleQuestions: []string{
			"Quels sont les derniers résultats foot ?",
			"Comment débuter la course à pied ?",
			"Quels exercices pour se muscler ?",
		},
	},
	{
		ID:             ExpertFinance,
		Name:           "Guide Finance",
		Emoji:          "📊",
		Tagline:        "Infos financières",
		WelcomeMessage: "Bonjour ! 📊 Je suis votre guide finance. Je partage des infos sur les marchés et l'économie. Rappel : ceci n'est pas du conseil financier personnalisé.",
		ExampleQuestions: []string{
			"Quel est le cours du Bitcoin ?",
			"C'est quoi un ETF ?",
			"Comment fonctionnent les actions ?",
		},
	},
	{
		ID:             "tourism",
		Name:           "Léa Voyage",
		Emoji:          "✈️",
		Tagline:        "Guide de voyage",
		WelcomeMessage: "Coucou ! ✈️ Je suis Léa, ta guide voyage ! Tu rêves d'aller où ? Je connais plein de destinations géniales !",
		ExampleQuestions: []string{
			"Quel temps fait-il à Barcelone ?",
			"Que visiter à Tokyo ?",
			"Quelle est la meilleure période pour la Thaïlande ?",
		},
	},
	{
		ID:             "general",
		Name:           "Wiki",
		Emoji:          "📚",
		Tagline:        "Culture générale",
		WelcomeMessage: "Bonjour ! 📚 Je suis Wiki, ton assistant culture G ! Pose-moi n'importe quelle question, j'adore partager !",
		ExampleQuestions: []string{
			"Qui a inventé Internet ?",
			"Pourquoi le ciel est bleu ?",
			"C'est quoi l'IA ?",
		},
	},
	{
		ID:             "humor",
		Name:           "Ricky Rire",
		Emoji:          "😂",
		Tagline:        "Humour et détente",
		WelcomeMessage: "Salut ! 😄 Je suis Ricky Rire ! Tu veux une blague ? Je suis là pour te faire sourire !",
		ExampleQuestions: []string{
			"Raconte-moi une blague !",
			"Un jeu de mots ?",
			"Fais-moi rire !",
		},
	},
	{
		ID:             "cuisine",
		Name:           "Chef Gourmand",
		Emoji:          "🍳",
		Tagline:        "Recettes et cuisine",
		WelcomeMessage: "Salut chef ! 🍳 Je suis Chef Gourmand ! Tu cherches une recette ou des idées pour ce soir ? Je suis là !",
		ExampleQuestions: []string{
			"Une recette de carbonara ?",
			"Idée dessert facile ?",
			"Comment réussir une omelette ?",
		},
	},
	{
		ID:             "tech",
		Name:           "Tech Insider",
		Emoji:          "💻",
		Tagline:        "Actualités tech",
		WelcomeMessage: "Hey ! 💻 Je suis Tech Insider ! Parlons IA, gadgets ou dernières innovations tech !",
		ExampleQuestions: []string{
			"C'est quoi ChatGPT ?",
			"Quel smartphone choisir ?",
			"Les dernières news tech ?",
		},
	},
	{
		ID:             "cinema",
		Name:           "Ciné Fan",
		Emoji:          "🎬",
		Tagline:        "Films et séries",
		WelcomeMessage: "Hello ! 🎬 Je suis Ciné Fan ! Tu cherches un film ou une série ? J'ai plein de recos !",
		ExampleQuestions: []string{
			"Un bon film ce soir ?",
			"Les meilleures séries Netflix ?",
			"C'est quoi le dernier Marvel ?",
		},
	},
	{
		ID:             "weather",
		Name:           "Météo Pro",
		Emoji:          "☀️",
		Tagline:        "Prévisions météo",
		WelcomeMessage: "Bonjour ! ☀️ Je suis Météo Pro ! Dis-moi où tu es ou où tu vas, je te dis le temps qu'il fait !",
		ExampleQuestions: []string{
			"Météo Paris demain ?",
			"Il va pleuvoir ce week-end ?",
			"Quel temps à New York ?",
		},
	},
	{
		ID:             "love",
		Name:           "Love Coach",
		Emoji:          "💕",
		Tagline:        "Conseils relationnels",
		WelcomeMessage: "Coucou ! 💕 Je suis Love Coach. Besoin de parler relations, amitié ou de toi ? Je suis là pour écouter.",
		ExampleQuestions: []string{
			"Comment mieux communiquer en couple ?",
			"Comment se remettre d'une rupture ?",
			"Comment se faire des amis ?",
		},
	},
	{
		ID:             "gaming",
		Name:           "Gamer Zone",
		Emoji:          "🎮",
		Tagline:        "Jeux vidéo",
		WelcomeMessage: "GG ! 🎮 Je suis Gamer Zone ! Parlons jeux vidéo, esports ou trouve des recos de jeux !",
		ExampleQuestions: []string{
			"Les meilleurs jeux 2024 ?",
			"Tips pour Fortnite ?",
			"Actus esports ?",
		},
	},
	{
		ID:             "news",
		Name:           "Actu Live",
		Emoji:          "📰",
		Tagline:        "Actualités temps réel",
		WelcomeMessage: "📰 Bienvenue sur Actu Live ! Quelles actualités vous intéressent ? Politique, sport, tech, monde... je suis à jour !",
		ExampleQuestions: []string{
			"Actualités du jour ?",
			"News tech récentes ?",
			"Quoi de neuf dans le monde ?",
		},
	},
	{
		ID:             "horoscope",
		Name:           "Étoile",
		Emoji:          "🔮",
		Tagline:        "Astrologie quotidienne",
		WelcomeMessage: "✨ Bienvenue, belle âme ! Je suis Étoile. Quel est ton signe ? Laisse-moi te guider avec les étoiles...",
		ExampleQuestions: []string{
			"Horoscope Bélier aujourd'hui ?",
			"Compatibilité Lion et Scorpion ?",
			"Quel est mon signe ascendant ?",
		},
	},
	{
		ID:             "prenom",
		Name:           "Prénom Expert",
		Emoji:          "👶",
		Tagline:        "Signification des prénoms",
		WelcomeMessage: "👶 Bonjour ! Je suis Prénom Expert. Tu cherches un prénom ou tu veux connaître la signification du tien ? Dis-moi !",
		ExampleQuestions: []string{
			"Que signifie Emma ?",
			"Origine du prénom Lucas ?",
			"Prénoms tendance 2024 ?",
		},
	},
	{
		ID:             "history",
		Name:           "Ce Jour",
		Emoji:          "📅",
		Tagline:        "L'histoire au quotidien",
		WelcomeMessage: "📅 Bonjour ! Je suis Ce Jour. Savais-tu ce qui s'est passé un jour comme aujourd'hui ? Laisse-moi te raconter !",
		ExampleQuestions: []string{
			"Que s'est-il passé aujourd'hui ?",
			"Célébrités nées le 15 mars ?",
			"Événements du 14 juillet ?",
		},
	},
}

// Experts returns the registry in display order.
func Experts() []Expert {
	out := make([]Expert, len(expertRegistry))
	for i, expert := range expertRegistry {
		expert.ExampleQuestions = append([]string(nil), expert.ExampleQuestions...)
		out[i] = expert
	}
	return out
}

func LookupExpert(id string) (Expert, error) {
	trimmed := ExpertID(strings.ToLower(strings.TrimSpace(id)))
	for _, expert := range expertRegistry {
		if expert.ID == trimmed {
			expert.ExampleQuestions = append([]string(nil), expert.ExampleQuestions...)
			return expert, nil
		}
	}

	return Expert{}, fmt.Errorf("%w: %q", ErrExpertNotFound, id)
}
