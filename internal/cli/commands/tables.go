package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/jsonsql/internal/cli/config"
	"github.com/leapstack-labs/jsonsql/internal/registry"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the tables the input files provide",
		Long: `List the table identifier derived from each input file.

The identifier is the file name without its extension, upper-cased, with
hyphens replaced by underscores. File contents are not read.`,
		Example: `  # List tables as a table
  jsonsql tables -f orders.json -f line-items.json

  # Output as JSON
  jsonsql tables -f orders.json --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd)
		},
	}

	cmd.Flags().String("format", config.DefaultFormat, "Output format: table, json, yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatTable, config.FormatJSON, config.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runTables(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	files, err := validateFiles(cmdCtx.Cfg.Files)
	if err != nil {
		return err
	}

	catalog, err := registry.Build(files, registry.Options{
		Strict: cmdCtx.Cfg.StrictTables,
		Logger: cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	return renderEntries(cmdCtx.Renderer, catalog.Entries(), cmdCtx.Cfg.Format)
}
