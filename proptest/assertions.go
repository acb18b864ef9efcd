package proptest

import (
	"nidr/internal/expansion"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertEntriesEqual(t *rapid.T, expected, actual []expansion.Entry) {
	t.Helper()
	opts := cmp.Options{cmpopts.EquateEmpty()}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}
}

func assertNoDuplicateNames(t *rapid.T, results []expansion.Result) {
	t.Helper()
	seen := make(map[string]bool)
	for _, r := range results {
		if seen[r.Entry.Name] {
			t.Fatalf("duplicate name in results: %s", r.Entry.Name)
		}
		seen[r.Entry.Name] = true
	}
}

func resultNames(results []expansion.Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Entry.Name
	}
	return names
}
