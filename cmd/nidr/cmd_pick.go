package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

type PickCmd struct{}

func (cmd *PickCmd) Run(g *Globals) error {
	results, err := g.Engine.List()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(g.Out, "No expansions found.")
		return nil
	}

	options := make([]huh.Option[string], len(results))
	for i, res := range results {
		label := fmt.Sprintf("%s  [%s]", res.Entry.Name, res.Entry.EffectiveType())
		if res.Recent {
			label = "★ " + label
		}
		options[i] = huh.NewOption(label, res.Entry.Name)
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Expansion").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	if err := g.Engine.Record(selected); err != nil {
		return fmt.Errorf("failed to record selection %q: %w", selected, err)
	}
	fmt.Fprintln(g.Out, selected)
	return nil
}
