package main

import "fmt"

type RefreshCmd struct{}

func (cmd *RefreshCmd) Run(g *Globals) error {
	fmt.Fprintln(g.Out, "Scanning installed NI products...")

	summary, err := g.Engine.Refresh()
	if err != nil {
		return err
	}

	note := ""
	if summary.Untagged > 0 {
		note = fmt.Sprintf(" (%d untagged)", summary.Untagged)
	}
	fmt.Fprintf(g.Out, "✓ Found %d expansions%s\n", summary.Total, note)
	return nil
}
