package application

import (
	"os"
	"strings"

	"github.com/bnema/wikiask-cli/internal/domain"
	"golang.org/x/text/language"
)

const DefaultLanguage = "fr"

var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// LanguageResolver picks the language sent with each message: detected from
// the text, then the configured language, then the ambient locale.
type LanguageResolver struct {
	Stored  string
	Ambient func() string
}

func (r LanguageResolver) Resolve(text string) string {
	if detected := domain.DetectLanguage(text); detected != "" {
		return detected
	}
	if stored := NormalizeLanguage(r.Stored); stored != "" {
		return stored
	}
	if r.Ambient != nil {
		if ambient := NormalizeLanguage(r.Ambient()); ambient != "" {
			return ambient
		}
	}

	return DefaultLanguage
}

// AmbientLocale reads the POSIX locale variables in priority order.
func AmbientLocale() string {
	for _, name := range localeEnvVars {
		if value := NormalizeLanguage(os.Getenv(name)); value != "" {
			return value
		}
	}
	return ""
}

// NormalizeLanguage reduces a locale such as "fr_FR.UTF-8" or "en-US" to its
// base language code. Unparseable and POSIX default locales yield "".
func NormalizeLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return ""
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}

	return base.String()
}
