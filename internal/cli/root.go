// Package cli provides the command-line interface for jsonsql.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/jsonsql/internal/cli/commands"
	"github.com/leapstack-labs/jsonsql/internal/cli/config"
	"github.com/leapstack-labs/jsonsql/internal/cli/output"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	selectOpts := &commands.SelectOptions{}

	rootCmd := &cobra.Command{
		Use:   "jsonsql [SQL]",
		Short: "jsonsql - query JSON files as SQL tables",
		Long: `jsonsql treats each JSON file as a table named after the file and runs a
single SELECT statement against them.

A table's name is the file name without its extension, upper-cased, with
hyphens replaced by underscores: line-items.json is the table LINE_ITEMS.

With tables in the FROM clause, each referenced table's document is written
on its own line. Without a FROM clause every file is merged into one
document.`,
		Example: `  # Print one table
  jsonsql -f orders.json -f customers.json "SELECT * FROM orders"

  # Merge every file into one document
  jsonsql -f defaults.json -f overrides.json "SELECT *"

  # Read the statement from stdin
  echo "SELECT * FROM orders" | jsonsql -f orders.json --pretty`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg)
			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = config.WithConfig(ctx, cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			selectOpts.Stdin = cmd.InOrStdin()
			return commands.RunSelect(cmd, args, selectOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./jsonsql.yaml)")
	rootCmd.PersistentFlags().StringSliceP("file", "f", nil, "JSON input file (repeatable, or comma-separated)")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when two files map to the same table")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (debug logs on stderr)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	// Select flags
	rootCmd.Flags().BoolP("pretty", "p", false, "Pretty-print JSON output")
	rootCmd.Flags().String("indent", "", "Indentation used with --pretty (default: two spaces)")
	rootCmd.Flags().StringVarP(&selectOpts.Input, "input", "i", "", "Read SQL from file")

	_ = rootCmd.MarkPersistentFlagFilename("file", "json")
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))
	rootCmd.AddCommand(commands.NewTablesCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewRenderer(os.Stdout, os.Stderr).Error(err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for jsonsql.

To load completions:

Bash:
  $ source <(jsonsql completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ jsonsql completion bash > /etc/bash_completion.d/jsonsql
  # macOS:
  $ jsonsql completion bash > $(brew --prefix)/etc/bash_completion.d/jsonsql

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ jsonsql completion zsh > "${fpath[1]}/_jsonsql"

Fish:
  $ jsonsql completion fish | source

  # To load completions for each session, execute once:
  $ jsonsql completion fish > ~/.config/fish/completions/jsonsql.fish

PowerShell:
  PS> jsonsql completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
