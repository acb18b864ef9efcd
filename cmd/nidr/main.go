package main

import (
	"fmt"
	"nidr/cmd/nidr/render"
	"nidr/internal/config"
	"nidr/internal/expansion"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Search     SearchCmd     `cmd:"" default:"withargs" aliases:"s" help:"Search expansions by name, genre, or style"`
	Refresh    RefreshCmd    `cmd:"" help:"Rescan installed NI products"`
	Pick       PickCmd       `cmd:"" help:"Interactively pick an expansion"`
	Record     RecordCmd     `cmd:"" help:"Record a selection (moves it to the top of recents)"`
	Alfred     AlfredCmd     `cmd:"" help:"Answer an Alfred Script Filter query as JSON"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`

	DataDir  string `name:"data" help:"Directory holding the tag database, index, and recents"`
	Products string `name:"products" help:"Installed-products directory to scan"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	dataDir, err := config.ExpandPath(dataDir)
	if err != nil {
		return fmt.Errorf("invalid data directory: %w", err)
	}

	products := c.Products
	if products == "" {
		products = config.DefaultProductsDir
	}
	products, err = config.ExpandPath(products)
	if err != nil {
		return fmt.Errorf("invalid products directory: %w", err)
	}

	paths := config.ResolveDataPaths(dataDir)
	engine := expansion.NewEngine(expansion.Config{
		ProductsDir: products,
		TagsPath:    paths.TagDatabase,
		IgnorePath:  paths.IgnoreList,
		IndexPath:   paths.Index,
		RecentsPath: paths.Recents,
	})

	globals := &Globals{
		Engine: engine,
		Out:    os.Stdout,
		Render: render.NewLipglossRendererAuto(os.Stdout),
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("nidr"),
		kong.Description("Search Native Instruments expansions by name, genre, or style"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
