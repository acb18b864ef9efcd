package main

import (
	"fmt"
	"strings"
)

type SearchCmd struct {
	Terms []string `arg:"" optional:"" help:"Search terms (all must match)"`
}

func (cmd *SearchCmd) Run(g *Globals) error {
	if !g.Engine.HasIndex() {
		fmt.Fprintln(g.Out, "First run — scanning installed NI products...")
	}

	if len(cmd.Terms) == 0 {
		results, err := g.Engine.List()
		if err != nil {
			return err
		}
		fmt.Fprint(g.Out, g.Render.RenderResults(resultView(results)))
		return nil
	}

	results, err := g.Engine.Search(cmd.Terms)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(g.Out, "No results for %q\n", strings.Join(cmd.Terms, " "))
		fmt.Fprintln(g.Out, "Try a different search term, or 'nidr refresh' to rescan")
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderResults(resultView(results)))
	return nil
}
