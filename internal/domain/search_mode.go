package domain

import (
	"fmt"
	"strings"
)

type SearchMode string

const (
	SearchModeFast   SearchMode = "fast"
	SearchModeNormal SearchMode = "normal"
	SearchModeDeep   SearchMode = "deep"

	DefaultSearchMode = SearchModeNormal
)

var searchModes = []SearchMode{SearchModeFast, SearchModeNormal, SearchModeDeep}

func SearchModes() []SearchMode {
	return append([]SearchMode(nil), searchModes...)
}

func ParseSearchMode(raw string) (SearchMode, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return DefaultSearchMode, nil
	}

	mode := SearchMode(trimmed)
	if !mode.Valid() {
		return "", fmt.Errorf("%w %q (expected fast, normal or deep)", ErrInvalidSearchMode, raw)
	}

	return mode, nil
}

func (m SearchMode) Valid() bool {
	switch m {
	case SearchModeFast, SearchModeNormal, SearchModeDeep:
		return true
	default:
		return false
	}
}

func (m SearchMode) Label() string {
	switch m {
	case SearchModeFast:
		return "Rapide"
	case SearchModeNormal:
		return "Normal"
	case SearchModeDeep:
		return "Approfondi"
	default:
		return string(m)
	}
}

// Next cycles fast -> normal -> deep -> fast.
func (m SearchMode) Next() SearchMode {
	for i, mode := range searchModes {
		if mode == m {
			return searchModes[(i+1)%len(searchModes)]
		}
	}
	return DefaultSearchMode
}
