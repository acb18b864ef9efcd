package proptest

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_Search_MatchesNaiveFilter(t *testing.T) {
	Run(t, func(h *Harness) {
		h.Install(installGen(0, 15).Draw(h.T, "install"))
		eng := h.Engine()

		n := rapid.IntRange(1, 3).Draw(h.T, "numTerms")
		terms := make([]string, n)
		for i := range terms {
			terms[i] = termGen.Draw(h.T, "term")
		}

		results, err := eng.Search(terms)
		if err != nil {
			h.T.Fatalf("search failed: %v", err)
		}

		var want []string
		for _, entry := range h.ExpectedIndex() {
			text := strings.ToLower(entry.Name + " " + entry.Tags + " " + entry.EffectiveType())
			matched := true
			for _, term := range terms {
				if !strings.Contains(text, strings.ToLower(term)) {
					matched = false
					break
				}
			}
			if matched {
				want = append(want, entry.Name)
			}
		}

		got := resultNames(results)
		if len(got) != len(want) {
			h.T.Fatalf("search mismatch: want %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				h.T.Fatalf("search mismatch at %d: want %v, got %v", i, want, got)
			}
		}
	})
}

func TestProperty_Search_CaseInsensitive(t *testing.T) {
	Run(t, func(h *Harness) {
		h.Install(installGen(0, 15).Draw(h.T, "install"))
		eng := h.Engine()

		term := termGen.Draw(h.T, "term")
		lower, err := eng.Search([]string{term})
		if err != nil {
			h.T.Fatalf("search failed: %v", err)
		}
		upper, err := eng.Search([]string{strings.ToUpper(term)})
		if err != nil {
			h.T.Fatalf("search failed: %v", err)
		}

		lowerNames, upperNames := resultNames(lower), resultNames(upper)
		if len(lowerNames) != len(upperNames) {
			h.T.Fatalf("case sensitivity: %v vs %v", lowerNames, upperNames)
		}
		for i := range lowerNames {
			if lowerNames[i] != upperNames[i] {
				h.T.Fatalf("case sensitivity at %d: %v vs %v", i, lowerNames, upperNames)
			}
		}
	})
}

func TestProperty_Search_SubsetOfList(t *testing.T) {
	Run(t, func(h *Harness) {
		h.Install(installGen(0, 15).Draw(h.T, "install"))
		eng := h.Engine()

		listed, err := eng.List()
		if err != nil {
			h.T.Fatalf("list failed: %v", err)
		}
		all := make(map[string]bool)
		for _, r := range listed {
			all[r.Entry.Name] = true
		}

		results, err := eng.Search([]string{termGen.Draw(h.T, "term")})
		if err != nil {
			h.T.Fatalf("search failed: %v", err)
		}
		for _, r := range results {
			if !all[r.Entry.Name] {
				h.T.Fatalf("search returned %q, which List did not", r.Entry.Name)
			}
		}
	})
}
