package proptest

import (
	"encoding/json"
	"nidr/internal/expansion"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

type Harness struct {
	T        *rapid.T
	Cfg      expansion.Config
	Products []product
}

// Engine builds an engine over the harness's stores with a
// deterministic strictly increasing clock.
func (h *Harness) Engine() *expansion.Engine {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	cfg := h.Cfg
	cfg.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return expansion.NewEngine(cfg)
}

// Install materializes the generated products on disk: one descriptor
// per product plus the tag database and ignore list.
func (h *Harness) Install(products []product) {
	h.Products = products

	tags := make(map[string]expansion.TagRecord)
	var ignored []string
	for _, p := range products {
		fields := map[string]string{}
		if p.content {
			fields["ContentDir"] = "/Users/Shared/" + p.name
		}
		if p.install {
			fields["InstallDir"] = "/Applications/" + p.name
		}
		data, err := json.Marshal(fields)
		if err != nil {
			h.T.Fatalf("failed to marshal descriptor: %v", err)
		}
		path := filepath.Join(h.Cfg.ProductsDir, p.name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			h.T.Fatalf("failed to write descriptor: %v", err)
		}

		if p.tagged {
			tags[p.name] = p.record
		}
		if p.ignored {
			ignored = append(ignored, p.name)
		}
	}

	h.writeYAML(h.Cfg.TagsPath, tags)
	h.writeYAML(h.Cfg.IgnorePath, ignored)
}

func (h *Harness) writeYAML(path string, v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		h.T.Fatalf("failed to marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		h.T.Fatalf("failed to write %s: %v", path, err)
	}
}

// ExpectedIndex computes the index the ordering contract demands:
// tagged entries first, then untagged candidates, each group in
// sorted-name order.
func (h *Harness) ExpectedIndex() []expansion.Entry {
	ordered := make([]product, len(h.Products))
	copy(ordered, h.Products)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].name < ordered[j].name })

	var tagged, untagged []expansion.Entry
	for _, p := range ordered {
		if p.ignored {
			continue
		}
		if p.tagged {
			entry := expansion.Entry{Name: p.name, Tags: p.record.Tags}
			if p.record.Type != "" && p.record.Type != expansion.DefaultType {
				entry.Type = p.record.Type
			}
			tagged = append(tagged, entry)
			continue
		}
		if p.contentPack() {
			untagged = append(untagged, expansion.Entry{Name: p.name, Tags: expansion.PlaceholderTags})
		}
	}
	return append(tagged, untagged...)
}

func Run(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		// Generated names can repeat across iterations; start clean.
		if err := os.RemoveAll(iterDir); err != nil {
			rt.Fatalf("failed to reset iter dir: %v", err)
		}
		products := filepath.Join(iterDir, "installed_products")
		data := filepath.Join(iterDir, "data")
		for _, dir := range []string{products, data} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				rt.Fatalf("failed to create %s: %v", dir, err)
			}
		}

		fn(&Harness{
			T: rt,
			Cfg: expansion.Config{
				ProductsDir: products,
				TagsPath:    filepath.Join(data, "tags_database.yaml"),
				IgnorePath:  filepath.Join(data, "ignore_list.yaml"),
				IndexPath:   filepath.Join(data, "expansions.yaml"),
				RecentsPath: filepath.Join(data, "recents.yaml"),
			},
		})
	})
}
