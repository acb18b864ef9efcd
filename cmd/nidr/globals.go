package main

import (
	"io"
	"nidr/cmd/nidr/render"
	"nidr/internal/expansion"
)

type Globals struct {
	Engine *expansion.Engine
	Out    io.Writer
	Render render.Renderer
}

func resultView(results []expansion.Result) render.ResultView {
	items := make([]render.ResultItem, len(results))
	for i, res := range results {
		items[i] = render.ResultItem{
			Name:   res.Entry.Name,
			Tags:   res.Entry.Tags,
			Type:   res.Entry.EffectiveType(),
			Recent: res.Recent,
		}
	}
	return render.ResultView{Items: items}
}
