package application

import (
	"fmt"
	"strings"

	"github.com/bnema/wikiask-cli/internal/domain"
)

const sourceSeparator = " · "

type reportLabels struct {
	sourcesBanner string
	title         string
	sources       string
	words         string
}

var formatterLabels = map[string]reportLabels{
	"fr": {
		sourcesBanner: "📚 Sources",
		title:         "🔬 Rapport de recherche approfondie",
		sources:       "sources consultées",
		words:         "mots",
	},
	"en": {
		sourcesBanner: "📚 Sources",
		title:         "🔬 In-depth research report",
		sources:       "sources consulted",
		words:         "words",
	},
}

// FormatResponse decorates a raw reply for display. It is pure: the same
// inputs always produce the same text.
func FormatResponse(mode domain.SearchMode, raw string, metadata ResponseMetadata) string {
	labels, ok := formatterLabels[metadata.Language]
	if !ok {
		labels = formatterLabels["en"]
	}

	switch mode {
	case domain.SearchModeFast:
		return raw
	case domain.SearchModeDeep:
		names := domain.SourceNames(mode)
		wordCount := len(strings.Fields(raw))
		if metadata.WordCount != nil {
			wordCount = *metadata.WordCount
		}

		var b strings.Builder
		b.WriteString(labels.title)
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d %s: %s\n", len(names), labels.sources, strings.Join(names, sourceSeparator))
		fmt.Fprintf(&b, "%d %s\n\n", wordCount, labels.words)
		b.WriteString(raw)
		return b.String()
	default:
		names := domain.SourceNames(domain.SearchModeNormal)
		return labels.sourcesBanner + ": " + strings.Join(names, sourceSeparator) + "\n\n" + raw
	}
}
