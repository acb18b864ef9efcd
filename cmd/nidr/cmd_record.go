package main

import "fmt"

type RecordCmd struct {
	Name string `arg:"" help:"Expansion name that was selected"`
}

func (cmd *RecordCmd) Run(g *Globals) error {
	if err := g.Engine.Record(cmd.Name); err != nil {
		return fmt.Errorf("failed to record selection %q: %w", cmd.Name, err)
	}
	fmt.Fprintln(g.Out, cmd.Name)
	return nil
}
