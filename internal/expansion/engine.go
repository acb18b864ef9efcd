package expansion

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	ErrTagDatabaseMissing = errors.New("tag database missing or unreadable")
	ErrProductsDirMissing = errors.New("products directory not found")
)

// Config carries every path and limit the engine needs. Tests point it
// at temporary directories; nothing in the engine reads ambient state.
type Config struct {
	ProductsDir string
	TagsPath    string
	IgnorePath  string
	IndexPath   string
	RecentsPath string
	MaxRecents  int
	Now         func() time.Time
}

// Engine owns the persisted index and recents store and answers
// refresh, search, list, and record requests over them.
type Engine struct {
	cfg     Config
	recents *Recents
}

func NewEngine(cfg Config) *Engine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	recents := NewRecents(cfg.RecentsPath, cfg.MaxRecents).WithClock(cfg.Now)
	return &Engine{cfg: cfg, recents: recents}
}

// Summary reports the outcome of a refresh.
type Summary struct {
	Total    int
	Untagged int
}

// Refresh rebuilds the index from scratch and overwrites the persisted
// copy. Nothing is written when a precondition fails: the error names
// whether the tag database or the products directory was the problem.
func (e *Engine) Refresh() (Summary, error) {
	tags, ok := LoadTagDatabase(e.cfg.TagsPath)
	if !ok {
		return Summary{}, fmt.Errorf("%w: %s", ErrTagDatabaseMissing, e.cfg.TagsPath)
	}

	if info, err := os.Stat(e.cfg.ProductsDir); err != nil || !info.IsDir() {
		return Summary{}, fmt.Errorf("%w: %s", ErrProductsDirMissing, e.cfg.ProductsDir)
	}

	scanner := &Scanner{
		ProductsDir: e.cfg.ProductsDir,
		Tags:        tags,
		Ignore:      LoadIgnoreSet(e.cfg.IgnorePath),
	}
	entries, untagged := scanner.Scan()

	if err := SaveIndex(e.cfg.IndexPath, entries); err != nil {
		return Summary{}, fmt.Errorf("failed to save index: %w", err)
	}

	return Summary{Total: len(entries), Untagged: untagged}, nil
}

// HasIndex reports whether a usable persisted index exists. When it does
// not, the next query triggers a full refresh.
func (e *Engine) HasIndex() bool {
	_, ok := LoadIndex(e.cfg.IndexPath)
	return ok
}

func (e *Engine) entries() ([]Entry, error) {
	if entries, ok := LoadIndex(e.cfg.IndexPath); ok {
		return entries, nil
	}

	// First use: build the index before answering.
	if _, err := e.Refresh(); err != nil {
		return nil, err
	}

	entries, _ := LoadIndex(e.cfg.IndexPath)
	return entries, nil
}

// Search returns the entries matching every term, in index order. Terms
// are matched case-insensitively as substrings; an empty result is a
// normal outcome, not an error.
func (e *Engine) Search(terms []string) ([]Result, error) {
	entries, err := e.entries()
	if err != nil {
		return nil, err
	}

	lowered := make([]string, len(terms))
	for i, t := range terms {
		lowered[i] = strings.ToLower(t)
	}

	var results []Result
	for _, entry := range entries {
		if entry.Matches(lowered) {
			results = append(results, Result{Entry: entry})
		}
	}
	return results, nil
}

// List returns recent selections first, marked, then every remaining
// entry in index order. Recents no longer present in the index are
// skipped; no entry appears twice.
func (e *Engine) List() ([]Result, error) {
	entries, err := e.entries()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		byName[entry.Name] = entry
	}

	seen := make(map[string]bool)
	results := make([]Result, 0, len(entries))
	for _, rec := range e.recents.List() {
		entry, ok := byName[rec.Name]
		if !ok || seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		results = append(results, Result{Entry: entry, Recent: true})
	}
	for _, entry := range entries {
		if !seen[entry.Name] {
			results = append(results, Result{Entry: entry})
		}
	}
	return results, nil
}

// Record registers a selection event for name.
func (e *Engine) Record(name string) error {
	return e.recents.Record(name)
}
