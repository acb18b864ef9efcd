package main

import (
	"encoding/json"
	"fmt"
	"nidr/internal/expansion"
	"strings"
)

// AlfredCmd answers a raw launcher query with Alfred Script Filter
// items. The query string carries the launcher's control conventions:
// a "__record__:" prefix records a selection, "!refresh" forces a
// rescan, anything else searches.
type AlfredCmd struct {
	Query string `arg:"" optional:"" help:"Raw query string from the launcher"`
}

type alfredOutput struct {
	Items []alfredItem `json:"items"`
}

type alfredItem struct {
	UID          string      `json:"uid,omitempty"`
	Title        string      `json:"title"`
	Subtitle     string      `json:"subtitle,omitempty"`
	Arg          string      `json:"arg,omitempty"`
	Autocomplete string      `json:"autocomplete,omitempty"`
	Valid        *bool       `json:"valid,omitempty"`
	Icon         *alfredIcon `json:"icon,omitempty"`
	Text         *alfredText `json:"text,omitempty"`
}

type alfredIcon struct {
	Path string `json:"path"`
}

type alfredText struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

var alfredInvalid = false

const recordPrefix = "__record__:"

func (cmd *AlfredCmd) Run(g *Globals) error {
	query := strings.TrimSpace(cmd.Query)

	if name, ok := strings.CutPrefix(query, recordPrefix); ok {
		if err := g.Engine.Record(name); err != nil {
			return fmt.Errorf("failed to record selection %q: %w", name, err)
		}
		fmt.Fprintln(g.Out, name)
		return nil
	}

	if strings.EqualFold(query, "!refresh") {
		summary, err := g.Engine.Refresh()
		if err != nil {
			return cmd.writeItems(g, errorItems(err))
		}
		return cmd.writeItems(g, []alfredItem{{
			Title:    fmt.Sprintf("✓ Refreshed! Found %d expansions (%d untagged)", summary.Total, summary.Untagged),
			Subtitle: "Your expansion list has been updated",
			Valid:    &alfredInvalid,
		}})
	}

	var results []expansion.Result
	var err error
	if query == "" {
		results, err = g.Engine.List()
	} else {
		results, err = g.Engine.Search(strings.Fields(query))
	}
	if err != nil {
		return cmd.writeItems(g, errorItems(err))
	}

	if len(results) == 0 {
		return cmd.writeItems(g, []alfredItem{{
			Title:    fmt.Sprintf("No results for '%s'", query),
			Subtitle: "Try a different search term, or '!refresh' to rescan",
			Valid:    &alfredInvalid,
		}})
	}

	items := make([]alfredItem, len(results))
	for i, res := range results {
		items[i] = makeItem(res)
	}
	return cmd.writeItems(g, items)
}

func makeItem(res expansion.Result) alfredItem {
	entry := res.Entry
	title := entry.Name
	if res.Recent {
		title = "★ " + title
	}
	return alfredItem{
		UID:          entry.Name,
		Title:        title,
		Subtitle:     fmt.Sprintf("[%s]  %s", entry.EffectiveType(), entry.Tags),
		Arg:          entry.Name,
		Autocomplete: entry.Name,
		Icon:         &alfredIcon{Path: "icon.png"},
		Text: &alfredText{
			Copy:      entry.Name,
			LargeType: fmt.Sprintf("%s\n[%s]\n\n%s", entry.Name, entry.EffectiveType(), entry.Tags),
		},
	}
}

func errorItems(err error) []alfredItem {
	return []alfredItem{{
		Title: fmt.Sprintf("Error: %v", err),
		Valid: &alfredInvalid,
	}}
}

func (cmd *AlfredCmd) writeItems(g *Globals, items []alfredItem) error {
	data, err := json.Marshal(alfredOutput{Items: items})
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Out, string(data))
	return nil
}
