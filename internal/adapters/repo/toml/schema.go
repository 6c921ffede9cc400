package toml

import "fmt"

const currentSchemaVersion = 1

type storeSchema struct {
	Version int               `toml:"version"`
	Entries map[string]string `toml:"entries"`
}

func (s *storeSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Entries == nil {
		s.Entries = map[string]string{}
	}
}

type historySchema struct {
	Version int                 `toml:"version"`
	Items   []historyItemSchema `toml:"items"`
}

func (s *historySchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

type historyItemSchema struct {
	ID        string `toml:"id"`
	Query     string `toml:"query"`
	Expert    string `toml:"expert"`
	Mode      string `toml:"mode,omitempty"`
	Timestamp string `toml:"timestamp"`
}

func validateVersion(kind string, version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", kind, version, currentSchemaVersion)
	}

	return nil
}
