package expansion

import "strings"

const (
	// DefaultType is the category assumed when a tag record carries none.
	DefaultType = "Maschine"

	// PlaceholderTags marks entries found on disk but absent from the
	// curated tag database.
	PlaceholderTags = "(tags unavailable — submit a PR to add them!)"
)

// Entry is one searchable expansion. Name is unique within an index;
// Type is empty when the entry has the default category.
type Entry struct {
	Name string `yaml:"name"`
	Tags string `yaml:"tags"`
	Type string `yaml:"type,omitempty"`
}

func (e Entry) EffectiveType() string {
	if e.Type == "" {
		return DefaultType
	}
	return e.Type
}

func (e Entry) searchable() string {
	return strings.ToLower(e.Name + " " + e.Tags + " " + e.EffectiveType())
}

// Matches reports whether every term occurs as a substring of the
// entry's searchable text. Terms must already be lower-cased.
func (e Entry) Matches(terms []string) bool {
	s := e.searchable()
	for _, term := range terms {
		if !strings.Contains(s, term) {
			return false
		}
	}
	return true
}

// Result pairs an entry with its recency mark. This is the shape handed
// to renderers and launcher integrations.
type Result struct {
	Entry  Entry
	Recent bool
}
