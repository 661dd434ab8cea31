package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/jsonsql/internal/cli/config"
	"github.com/leapstack-labs/jsonsql/internal/cli/output"
	"github.com/leapstack-labs/jsonsql/internal/registry"
)

func renderEntries(r *output.Renderer, entries []registry.Entry, format string) error {
	switch format {
	case config.FormatJSON:
		return renderEntriesJSON(r, entries)
	case config.FormatYAML:
		return renderEntriesYAML(r, entries)
	case config.FormatTable, "":
		return renderEntriesTable(r, entries)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderEntriesTable(r *output.Renderer, entries []registry.Entry) error {
	if len(entries) == 0 {
		r.Println(r.Muted("(0 tables)"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Path"})

	for _, e := range entries {
		t.AppendRow(table.Row{e.Table, e.Path})
	}

	t.Render()
	r.Println(r.Muted(fmt.Sprintf("(%d tables)", len(entries))))
	return nil
}

func renderEntriesJSON(r *output.Renderer, entries []registry.Entry) error {
	if entries == nil {
		entries = []registry.Entry{}
	}
	enc := json.NewEncoder(r.Writer())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func renderEntriesYAML(r *output.Renderer, entries []registry.Entry) error {
	if entries == nil {
		entries = []registry.Entry{}
	}
	enc := yaml.NewEncoder(r.Writer())
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}
