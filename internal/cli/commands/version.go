package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command. buildDate and gitCommit are
// stamped by the linker and read "unknown" in development builds.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display jsonsql version information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "jsonsql v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Built: %s (commit %s)\n", buildDate, gitCommit)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Query JSON files as SQL tables")
		},
	}
}
