package expansion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner classifies installed-product descriptors against the tag
// database and ignore set.
type Scanner struct {
	ProductsDir string
	Tags        TagDatabase
	Ignore      IgnoreSet
}

// Scan enumerates every descriptor in sorted-filename order and returns
// the index entries in their persisted order: tagged products first,
// then untagged candidates, each group in catalog order. The second
// return value is the untagged count.
func (s *Scanner) Scan() ([]Entry, int) {
	paths, _ := filepath.Glob(filepath.Join(s.ProductsDir, "*.json"))
	sort.Strings(paths)

	var tagged, untagged []Entry
	for _, path := range paths {
		name := descriptorName(path)

		if s.Ignore.Contains(name) {
			continue
		}

		if rec, ok := s.Tags[name]; ok {
			entry := Entry{Name: name, Tags: rec.Tags}
			if rec.Type != "" && rec.Type != DefaultType {
				entry.Type = rec.Type
			}
			tagged = append(tagged, entry)
			continue
		}

		if isContentPack(path) {
			untagged = append(untagged, Entry{Name: name, Tags: PlaceholderTags})
		}
	}

	return append(tagged, untagged...), len(untagged)
}

func descriptorName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// isContentPack reports whether the descriptor carries a content payload
// without an installer payload, the signature of an expansion rather
// than an instrument or plug-in. Unreadable descriptors are excluded.
func isContentPack(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}

	_, hasContent := fields["ContentDir"]
	_, hasInstall := fields["InstallDir"]
	return hasContent && !hasInstall
}
