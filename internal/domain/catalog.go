package domain

import "time"

// SourceCatalogEntry is one named source consulted during research. Delay is the
// cumulative offset from the start of the animation at which the source is shown.
type SourceCatalogEntry struct {
	Name  string
	Icon  string
	Delay time.Duration
}

var sourceCatalog = map[SearchMode][]SourceCatalogEntry{
	SearchModeFast: {
		{Name: "Wikipedia", Icon: "📚", Delay: 150 * time.Millisecond},
		{Name: "Base de connaissances", Icon: "🧠", Delay: 350 * time.Millisecond},
		{Name: "Synthèse IA", Icon: "⚡", Delay: 600 * time.Millisecond},
	},
	SearchModeNormal: {
		{Name: "PubMed NCBI", Icon: "📖", Delay: 250 * time.Millisecond},
		{Name: "FDA USA", Icon: "🇺🇸", Delay: 600 * time.Millisecond},
		{Name: "RxNorm NIH", Icon: "💉", Delay: 950 * time.Millisecond},
		{Name: "Europe PMC", Icon: "🇪🇺", Delay: 1300 * time.Millisecond},
		{Name: "ClinicalTrials.gov", Icon: "🔬", Delay: 1650 * time.Millisecond},
		{Name: "OMS/WHO", Icon: "🌍", Delay: 2000 * time.Millisecond},
	},
	SearchModeDeep: {
		{Name: "Base de maladies locale", Icon: "📚", Delay: 400 * time.Millisecond},
		{Name: "DrugBank", Icon: "💊", Delay: 800 * time.Millisecond},
		{Name: "LOINC", Icon: "🧪", Delay: 1200 * time.Millisecond},
		{Name: "PubMed NCBI", Icon: "📖", Delay: 1600 * time.Millisecond},
		{Name: "FDA USA", Icon: "🇺🇸", Delay: 2000 * time.Millisecond},
		{Name: "RxNorm NIH", Icon: "💉", Delay: 2400 * time.Millisecond},
		{Name: "Europe PMC", Icon: "🇪🇺", Delay: 2800 * time.Millisecond},
		{Name: "ClinicalTrials.gov", Icon: "🔬", Delay: 3200 * time.Millisecond},
		{Name: "Disease.sh", Icon: "🦠", Delay: 3600 * time.Millisecond},
		{Name: "OMS/WHO", Icon: "🌍", Delay: 4000 * time.Millisecond},
		{Name: "SNOMED CT", Icon: "🏥", Delay: 4400 * time.Millisecond},
		{Name: "Orphanet", Icon: "🧬", Delay: 4800 * time.Millisecond},
		{Name: "MeSH NLM", Icon: "📑", Delay: 5200 * time.Millisecond},
		{Name: "NCBI Gene", Icon: "🔬", Delay: 5600 * time.Millisecond},
		{Name: "DrugCentral", Icon: "💎", Delay: 6000 * time.Millisecond},
		{Name: "KEGG", Icon: "🔄", Delay: 6400 * time.Millisecond},
		{Name: "OMIM", Icon: "🧬", Delay: 6800 * time.Millisecond},
		{Name: "Semantic Scholar", Icon: "🧠", Delay: 7200 * time.Millisecond},
		{Name: "ClinVar", Icon: "🧪", Delay: 7600 * time.Millisecond},
		{Name: "Reactome", Icon: "⚡", Delay: 8000 * time.Millisecond},
		{Name: "UniProt", Icon: "🔬", Delay: 8400 * time.Millisecond},
		{Name: "GARD NIH", Icon: "🏥", Delay: 8800 * time.Millisecond},
		{Name: "Cochrane Library", Icon: "📘", Delay: 9200 * time.Millisecond},
		{Name: "MedlinePlus", Icon: "🩺", Delay: 9600 * time.Millisecond},
		{Name: "HAS Santé", Icon: "🇫🇷", Delay: 10000 * time.Millisecond},
	},
}

// EntriesFor returns a copy of the catalog for mode. Unknown modes get the default mode's list.
func EntriesFor(mode SearchMode) []SourceCatalogEntry {
	entries, ok := sourceCatalog[mode]
	if !ok {
		entries = sourceCatalog[DefaultSearchMode]
	}

	return append([]SourceCatalogEntry(nil), entries...)
}

func SourceNames(mode SearchMode) []string {
	entries := EntriesFor(mode)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}
