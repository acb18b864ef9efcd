package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	nameStyle   lipgloss.Style
	tagsStyle   lipgloss.Style
	recentStyle lipgloss.Style
	otherType   lipgloss.Style
	typeStyles  map[string]lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:       width,
		r:           r,
		nameStyle:   r.NewStyle().Bold(true),
		tagsStyle:   r.NewStyle().Faint(true),
		recentStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		otherType:   r.NewStyle().Faint(true),
		typeStyles: map[string]lipgloss.Style{
			"Maschine":    r.NewStyle().Foreground(lipgloss.Color("6")),
			"Kontakt":     r.NewStyle().Foreground(lipgloss.Color("3")),
			"Massive X":   r.NewStyle().Foreground(lipgloss.Color("5")),
			"Leap":        r.NewStyle().Foreground(lipgloss.Color("2")),
			"Artist":      r.NewStyle().Foreground(lipgloss.Color("13")),
			"Play Series": r.NewStyle().Foreground(lipgloss.Color("14")),
		},
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderResults(view ResultView) string {
	if view.IsEmpty() {
		return "No expansions found.\n"
	}

	var sb strings.Builder
	for _, item := range view.Items {
		sb.WriteString(r.renderItem(item))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item ResultItem) string {
	prefix := "  "
	if item.Recent {
		prefix = r.recentStyle.Render("★ ")
	}

	typeStyle, ok := r.typeStyles[item.Type]
	if !ok {
		typeStyle = r.otherType
	}
	label := typeStyle.Render("[" + item.Type + "]")
	name := r.nameStyle.Render(item.Name)

	head := prefix + label + " " + name
	remaining := r.width - lipgloss.Width(head) - 2
	if remaining <= 0 {
		return head
	}

	return head + "  " + r.tagsStyle.MaxWidth(remaining).Render(item.Tags)
}
