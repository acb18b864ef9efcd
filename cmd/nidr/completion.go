package main

import (
	"nidr/internal/util"

	"github.com/alecthomas/kong"
	"github.com/miekg/king"
)

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("nidr"),
		kong.Description("Search Native Instruments expansions by name, genre, or style"),
	)
	if err != nil {
		return err
	}

	node := parser.Model.Node

	switch cmd.Shell {
	case "bash":
		b := &king.Bash{}
		b.Completion(node, "nidr")
		assert.Success(g.Out.Write(b.Out()))
	case "zsh":
		z := &king.Zsh{}
		z.Completion(node, "nidr")
		assert.Success(g.Out.Write(z.Out()))
	case "fish":
		f := &king.Fish{}
		f.Completion(node, "nidr")
		assert.Success(g.Out.Write(f.Out()))
	}

	return nil
}
