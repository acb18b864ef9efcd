package expansion

// TagRecord is one curated entry: free-text genre/style keywords plus an
// optional product category.
type TagRecord struct {
	Tags string `yaml:"tags"`
	Type string `yaml:"type,omitempty"`
}

// TagDatabase maps product names to their curated records.
type TagDatabase map[string]TagRecord

// IgnoreSet holds product names excluded from indexing entirely.
type IgnoreSet map[string]struct{}

func (s IgnoreSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// LoadTagDatabase reads the curated tag database. A missing file and a
// malformed one both yield ok=false; callers cannot and should not tell
// them apart.
func LoadTagDatabase(path string) (TagDatabase, bool) {
	var db TagDatabase
	if !loadYAML(path, &db) || db == nil {
		return nil, false
	}
	return db, true
}

// LoadIgnoreSet reads the list of product names to skip. Absence is not
// an error: scanning proceeds with nothing ignored.
func LoadIgnoreSet(path string) IgnoreSet {
	var names []string
	if !loadYAML(path, &names) {
		return IgnoreSet{}
	}
	set := make(IgnoreSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
