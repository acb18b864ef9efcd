package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"
)

// newPlainRenderer renders into a buffer, which downgrades lipgloss to
// an uncolored profile and keeps output byte-stable.
func newPlainRenderer(width int) *LipglossRenderer {
	return NewLipglossRenderer(&bytes.Buffer{}, width)
}

func TestLipglossRenderer_RenderResults(t *testing.T) {
	t.Run("empty view", func(t *testing.T) {
		r := newPlainRenderer(80)

		out := r.RenderResults(ResultView{})

		golden.RequireEqual(t, []byte(out))
	})

	t.Run("mixed results", func(t *testing.T) {
		r := newPlainRenderer(80)

		out := r.RenderResults(ResultView{Items: []ResultItem{
			{Name: "Anima Ascent", Tags: "house, deep", Type: "Maschine", Recent: true},
			{Name: "Neon Drive", Tags: "synthwave, retro", Type: "Kontakt"},
			{Name: "Rising Crescent", Tags: "(tags unavailable)", Type: "Maschine"},
		}})

		golden.RequireEqual(t, []byte(out))
	})
}

func TestLipglossRenderer_Width(t *testing.T) {
	t.Run("long tags are truncated to the terminal width", func(t *testing.T) {
		r := newPlainRenderer(40)

		out := r.RenderResults(ResultView{Items: []ResultItem{
			{Name: "Anima Ascent", Tags: strings.Repeat("house, ", 20), Type: "Maschine"},
		}})

		line := strings.TrimSuffix(out, "\n")
		assert.LessOrEqual(t, len([]rune(line)), 40)
	})

	t.Run("tags are dropped when the head fills the line", func(t *testing.T) {
		r := newPlainRenderer(20)

		out := r.RenderResults(ResultView{Items: []ResultItem{
			{Name: "A Very Long Expansion Name", Tags: "house", Type: "Maschine"},
		}})

		assert.NotContains(t, out, "house")
	})

	t.Run("unknown types still render", func(t *testing.T) {
		r := newPlainRenderer(80)

		out := r.RenderResults(ResultView{Items: []ResultItem{
			{Name: "Mystery Pack", Tags: "odd", Type: "Battery"},
		}})

		assert.Contains(t, out, "[Battery]")
	})
}
