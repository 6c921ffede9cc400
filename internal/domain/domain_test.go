package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesForLengthsDifferByMode(t *testing.T) {
	t.Parallel()

	assert.Len(t, EntriesFor(SearchModeFast), 3)
	assert.Len(t, EntriesFor(SearchModeNormal), 6)
	assert.GreaterOrEqual(t, len(EntriesFor(SearchModeDeep)), 25)
}

func TestEntriesForDelaysAreCumulative(t *testing.T) {
	t.Parallel()

	for _, mode := range SearchModes() {
		entries := EntriesFor(mode)
		for i := 1; i < len(entries); i++ {
			assert.GreaterOrEqual(t, entries[i].Delay, entries[i-1].Delay, "mode %s entry %d", mode, i)
		}
		for _, entry := range entries {
			assert.NotEmpty(t, entry.Name)
			assert.NotEmpty(t, entry.Icon)
		}
	}
}

func TestEntriesForReturnsCopy(t *testing.T) {
	t.Parallel()

	entries := EntriesFor(SearchModeFast)
	entries[0].Name = "mutated"

	assert.Equal(t, "Wikipedia", EntriesFor(SearchModeFast)[0].Name)
}

func TestEntriesForUnknownModeFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EntriesFor(DefaultSearchMode), EntriesFor(SearchMode("turbo")))
}

func TestParseSearchMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    SearchMode
		wantErr bool
	}{
		{name: "empty defaults to normal", raw: "", want: SearchModeNormal},
		{name: "fast", raw: "fast", want: SearchModeFast},
		{name: "case and spaces", raw: "  DEEP ", want: SearchModeDeep},
		{name: "unknown", raw: "turbo", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSearchMode(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidSearchMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSearchModeNextCycles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SearchModeNormal, SearchModeFast.Next())
	assert.Equal(t, SearchModeDeep, SearchModeNormal.Next())
	assert.Equal(t, SearchModeFast, SearchModeDeep.Next())
}

func TestLookupExpert(t *testing.T) {
	t.Parallel()

	health, err := LookupExpert(" Health ")
	require.NoError(t, err)
	assert.True(t, health.SupportsModes)

	finance, err := LookupExpert("finance")
	require.NoError(t, err)
	assert.False(t, finance.SupportsModes)
	assert.NotEmpty(t, finance.WelcomeMessage)

	_, err = LookupExpert("astronaut")
	require.ErrorIs(t, err, ErrExpertNotFound)
}

func TestExpertsRegistryHasUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[ExpertID]bool{}
	for _, expert := range Experts() {
		assert.False(t, seen[expert.ID], "duplicate expert %s", expert.ID)
		seen[expert.ID] = true
	}
	assert.Len(t, seen, 16)
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{text: "Quel est le cours du Bitcoin ?", want: "fr"},
		{text: "What is the price of Bitcoin?", want: "en"},
		{text: "¿Cómo está el tiempo hoy?", want: "es"},
		{text: "Wie ist das Wetter heute?", want: "de"},
		{text: "Bitcoin", want: ""},
		{text: "   ", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DetectLanguage(tc.text))
		})
	}
}

func TestUserMessageFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	assert.Contains(t, UserMessage(ErrorKindServerError, "fr"), "erreur serveur")
	assert.Contains(t, UserMessage(ErrorKindServerError, "de"), "server error")
	assert.Equal(t, UserMessage(ErrorKindUnknown, "en"), UserMessage(ErrorKind("bogus"), "en"))
}

func TestSessionKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "expert_session_health", SessionKey(ExpertHealth))
}
