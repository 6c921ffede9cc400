package application

import (
	"strings"
	"testing"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResponseFastIsPassthrough(t *testing.T) {
	t.Parallel()

	raw := "Le sommeil répare le corps."
	assert.Equal(t, raw, FormatResponse(domain.SearchModeFast, raw, ResponseMetadata{Language: "fr"}))
}

func TestFormatResponseNormalPrependsSourceBanner(t *testing.T) {
	t.Parallel()

	raw := "Réponse."
	got := FormatResponse(domain.SearchModeNormal, raw, ResponseMetadata{Language: "fr"})

	want := "📚 Sources: PubMed NCBI · FDA USA · RxNorm NIH · Europe PMC · ClinicalTrials.gov · OMS/WHO\n\n" + raw
	assert.Equal(t, want, got)
}

func TestFormatResponseDeepHeaderCountsWords(t *testing.T) {
	t.Parallel()

	raw := "un deux  trois\nquatre"
	got := FormatResponse(domain.SearchModeDeep, raw, ResponseMetadata{Language: "fr"})

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "🔬 Rapport de recherche approfondie", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "25 sources consultées: Base de maladies locale · DrugBank"))
	assert.True(t, strings.HasSuffix(lines[1], "HAS Santé"))
	assert.Equal(t, "4 mots", lines[2])
	assert.Equal(t, "", lines[3])
	assert.True(t, strings.HasSuffix(got, "\n\n"+raw))
}

func TestFormatResponseDeepPrefersBackendWordCount(t *testing.T) {
	t.Parallel()

	words := 321
	got := FormatResponse(domain.SearchModeDeep, "short", ResponseMetadata{WordCount: &words, Language: "en"})

	assert.Contains(t, got, "🔬 In-depth research report\n25 sources consulted: ")
	assert.Contains(t, got, "\n321 words\n\nshort")
}

func TestFormatResponseIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, mode := range domain.SearchModes() {
		first := FormatResponse(mode, "même texte", ResponseMetadata{Language: "fr"})
		second := FormatResponse(mode, "même texte", ResponseMetadata{Language: "fr"})
		assert.Equal(t, first, second, "mode %s", mode)
	}
}
