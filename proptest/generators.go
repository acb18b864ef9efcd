package proptest

import (
	"nidr/internal/expansion"
	"strings"

	"pgregory.net/rapid"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	genreGen   = rapid.SampledFrom([]string{
		"house", "deep house", "techno", "drum and bass", "hip hop", "trap",
		"funk", "soul", "ambient", "cinematic", "downtempo", "uk garage",
	})
	typeGen = rapid.SampledFrom([]string{
		"", "Maschine", "Kontakt", "Massive X", "Leap", "Artist", "Play Series",
	})
	productNameGen = rapid.StringMatching(`[A-Z][a-z]{2,8} [A-Z][a-z]{2,8}`)
	termGen        = rapid.StringMatching(`[a-z ]{1,6}`)
)

func tagRecordGen() *rapid.Generator[expansion.TagRecord] {
	return rapid.Custom(func(t *rapid.T) expansion.TagRecord {
		n := rapid.IntRange(1, 4).Draw(t, "numGenres")
		genres := make([]string, n)
		for i := range genres {
			genres[i] = genreGen.Draw(t, "genre")
		}
		return expansion.TagRecord{
			Tags: strings.Join(genres, ", "),
			Type: typeGen.Draw(t, "type"),
		}
	})
}

// product models one installed-product descriptor together with its
// curated state: marker fields, tag-database membership, ignore-list
// membership.
type product struct {
	name    string
	content bool
	install bool
	tagged  bool
	record  expansion.TagRecord
	ignored bool
}

func (p product) contentPack() bool {
	return p.content && !p.install
}

func installGen(minCount, maxCount int) *rapid.Generator[[]product] {
	return rapid.Custom(func(t *rapid.T) []product {
		n := rapid.IntRange(minCount, maxCount).Draw(t, "numProducts")
		seen := make(map[string]bool)
		var products []product
		for len(products) < n {
			name := productNameGen.Draw(t, "name")
			if seen[name] {
				continue
			}
			seen[name] = true

			p := product{
				name:    name,
				content: rapid.Bool().Draw(t, "content"),
				install: rapid.Bool().Draw(t, "install"),
				tagged:  rapid.Bool().Draw(t, "tagged"),
				ignored: rapid.IntRange(0, 4).Draw(t, "ignoreRoll") == 0,
			}
			if p.tagged {
				p.record = tagRecordGen().Draw(t, "record")
			}
			products = append(products, p)
		}
		return products
	})
}
