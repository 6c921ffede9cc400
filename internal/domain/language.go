package domain

import (
	"strings"
	"unicode"
)

var languageMarkers = map[string]struct {
	words      []string
	diacritics string
}{
	"fr": {
		words: []string{
			"le", "la", "les", "un", "une", "des", "du", "de", "et", "est", "je", "tu", "il", "elle",
			"nous", "vous", "ils", "quel", "quelle", "quels", "quelles", "comment", "pourquoi", "qui",
			"quoi", "où", "ce", "cette", "pour", "avec", "dans", "sur", "pas", "mon", "ma", "mes",
			"bonjour", "salut", "merci", "qu", "c", "j", "aujourd", "hui", "très", "sont", "suis",
		},
		diacritics: "çœêèàùâîôûëï",
	},
	"en": {
		words: []string{
			"the", "a", "an", "is", "are", "what", "how", "why", "who", "where", "when", "which",
			"do", "does", "you", "your", "i", "my", "it", "this", "that", "of", "to", "and", "in",
			"for", "with", "can", "please", "hello", "thanks", "today", "price",
		},
	},
	"es": {
		words: []string{
			"el", "los", "las", "es", "qué", "cómo", "cuál", "dónde", "cuándo", "del", "y",
			"para", "con", "hola", "gracias", "está", "son", "por", "pero", "muy", "hoy",
		},
		diacritics: "ñ¿¡",
	},
	"de": {
		words: []string{
			"der", "die", "das", "ist", "und", "wie", "was", "warum", "wer", "wo", "ich", "du",
			"sie", "es", "ein", "eine", "nicht", "mit", "für", "von", "zu", "hallo", "danke", "heute",
		},
		diacritics: "äöüß",
	},
	"it": {
		words: []string{
			"il", "lo", "gli", "è", "che", "come", "perché", "chi", "dove", "quando", "della",
			"per", "con", "ciao", "grazie", "sono", "oggi", "non",
		},
		diacritics: "ìò",
	},
	"pt": {
		words: []string{
			"o", "os", "um", "uma", "é", "como", "quê", "qual", "onde", "quando", "do", "da",
			"para", "com", "olá", "obrigado", "não", "você", "hoje",
		},
		diacritics: "ãõ",
	},
}

// DetectLanguage guesses the language of text from stopwords and diacritics.
// It returns "" when no language clearly wins.
func DetectLanguage(text string) string {
	lowered := strings.ToLower(text)
	tokens := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(tokens) == 0 {
		return ""
	}

	best, bestScore, runnerUp := "", 0, 0
	for lang, markers := range languageMarkers {
		score := 0
		for _, token := range tokens {
			for _, word := range markers.words {
				if token == word {
					score++
					break
				}
			}
		}
		for _, r := range markers.diacritics {
			if strings.ContainsRune(lowered, r) {
				score++
			}
		}

		switch {
		case score > bestScore:
			runnerUp = bestScore
			best, bestScore = lang, score
		case score > runnerUp:
			runnerUp = score
		}
	}

	if bestScore == 0 || bestScore == runnerUp {
		return ""
	}

	return best
}
