package expansion

import "time"

// DefaultMaxRecents bounds the recents store when no limit is configured.
const DefaultMaxRecents = 5

// RecentEntry records one selection event.
type RecentEntry struct {
	Name string    `yaml:"name"`
	Time time.Time `yaml:"time"`
}

type recentsFile struct {
	Version int           `yaml:"version"`
	Recents []RecentEntry `yaml:"recents"`
}

// Recents tracks the most recently selected entries, newest first.
// Entries never expire by age, only by falling past the bound.
type Recents struct {
	path string
	max  int
	now  func() time.Time
}

func NewRecents(path string, max int) *Recents {
	if max <= 0 {
		max = DefaultMaxRecents
	}
	return &Recents{path: path, max: max, now: time.Now}
}

func (r *Recents) WithClock(now func() time.Time) *Recents {
	r.now = now
	return r
}

// List returns the persisted selections, most recent first. A missing or
// malformed store reads as empty.
func (r *Recents) List() []RecentEntry {
	var file recentsFile
	if !loadYAML(r.path, &file) {
		return nil
	}
	return file.Recents
}

// Record moves name to the front, stamped with the current time, and
// drops anything past the bound.
func (r *Recents) Record(name string) error {
	previous := r.List()

	kept := make([]RecentEntry, 0, len(previous)+1)
	kept = append(kept, RecentEntry{Name: name, Time: r.now()})
	for _, entry := range previous {
		if entry.Name != name {
			kept = append(kept, entry)
		}
	}
	if len(kept) > r.max {
		kept = kept[:r.max]
	}

	return saveYAML(r.path, recentsFile{Version: 1, Recents: kept})
}
