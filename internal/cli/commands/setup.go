// Package commands implements the jsonsql subcommands and the select run of
// the root command.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/jsonsql/internal/cli/config"
	"github.com/leapstack-labs/jsonsql/internal/cli/output"
	"github.com/leapstack-labs/jsonsql/internal/engine"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config and logger stored on the command
// context by the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	return &CommandContext{
		Cfg:      config.GetConfig(ctx),
		Logger:   config.GetLogger(ctx),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}
}

// Engine creates an engine from the current configuration.
func (c *CommandContext) Engine() *engine.Engine {
	return engine.New(engine.Config{
		Pretty:       c.Cfg.Pretty,
		Indent:       c.Cfg.Indent,
		StrictTables: c.Cfg.StrictTables,
		Logger:       c.Logger,
	})
}
