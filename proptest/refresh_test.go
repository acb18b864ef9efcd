package proptest

import (
	"nidr/internal/expansion"
	"os"
	"testing"
)

func TestProperty_Refresh_MatchesModel(t *testing.T) {
	Run(t, func(h *Harness) {
		h.Install(installGen(0, 15).Draw(h.T, "install"))

		_, err := h.Engine().Refresh()
		if err != nil {
			h.T.Fatalf("refresh failed: %v", err)
		}

		entries, ok := expansion.LoadIndex(h.Cfg.IndexPath)
		if !ok {
			h.T.Fatalf("no index persisted after refresh")
		}
		assertEntriesEqual(h.T, h.ExpectedIndex(), entries)
	})
}

func TestProperty_Refresh_OrderingContract(t *testing.T) {
	Run(t, func(h *Harness) {
		h.Install(installGen(1, 15).Draw(h.T, "install"))

		_, err := h.Engine().Refresh()
		if err != nil {
			h.T.Fatalf("refresh failed: %v", err)
		}

		entries, _ := expansion.LoadIndex(h.Cfg.IndexPath)
		sawUntagged := false
		for i, entry := range entries {
			untagged := entry.Tags == expansion.PlaceholderTags
			if sawUntagged && !untagged {
				h.T.Fatalf("tagged entry %q at %d follows an untagged entry", entry.Name, i)
			}
			sawUntagged = sawUntagged || untagged
		}
	})
}

func TestProperty_Refresh_Idempotent(t *testing.T) {
	Run(t, func(h *Harness) {
		h.Install(installGen(0, 15).Draw(h.T, "install"))
		eng := h.Engine()

		if _, err := eng.Refresh(); err != nil {
			h.T.Fatalf("first refresh failed: %v", err)
		}
		first, err := os.ReadFile(h.Cfg.IndexPath)
		if err != nil {
			h.T.Fatalf("failed to read index: %v", err)
		}

		if _, err := eng.Refresh(); err != nil {
			h.T.Fatalf("second refresh failed: %v", err)
		}
		second, err := os.ReadFile(h.Cfg.IndexPath)
		if err != nil {
			h.T.Fatalf("failed to read index: %v", err)
		}

		if string(first) != string(second) {
			h.T.Fatalf("refresh not idempotent:\n--- first\n%s\n--- second\n%s", first, second)
		}
	})
}

func TestProperty_Refresh_IgnorePrecedence(t *testing.T) {
	Run(t, func(h *Harness) {
		h.Install(installGen(1, 15).Draw(h.T, "install"))

		if _, err := h.Engine().Refresh(); err != nil {
			h.T.Fatalf("refresh failed: %v", err)
		}

		entries, _ := expansion.LoadIndex(h.Cfg.IndexPath)
		indexed := make(map[string]bool)
		for _, e := range entries {
			indexed[e.Name] = true
		}
		for _, p := range h.Products {
			if p.ignored && indexed[p.name] {
				h.T.Fatalf("ignored product %q was indexed", p.name)
			}
		}
	})
}
