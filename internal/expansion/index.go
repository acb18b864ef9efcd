package expansion

type indexFile struct {
	Version    int     `yaml:"version"`
	Expansions []Entry `yaml:"expansions"`
}

// SaveIndex overwrites the persisted index with the given entries,
// preserving their order.
func SaveIndex(path string, entries []Entry) error {
	return saveYAML(path, indexFile{Version: 1, Expansions: entries})
}

// LoadIndex reads the persisted index. ok=false means no usable index
// exists and a refresh is needed; a missing file and a corrupt one read
// the same way.
func LoadIndex(path string) ([]Entry, bool) {
	var file indexFile
	if !loadYAML(path, &file) || file.Expansions == nil {
		return nil, false
	}
	return file.Expansions, true
}
