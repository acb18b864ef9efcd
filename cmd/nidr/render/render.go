package render

type Renderer interface {
	RenderResults(view ResultView) string
}

// ResultView is the presentation-side shape of a query or listing
// answer: one item per entry, in the order the engine produced them.
type ResultView struct {
	Items []ResultItem
}

type ResultItem struct {
	Name   string
	Tags   string
	Type   string
	Recent bool
}

func (v ResultView) IsEmpty() bool {
	return len(v.Items) == 0
}
