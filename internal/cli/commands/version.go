package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command. commit and date are the
// build metadata stamped into the binary via -ldflags.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display quarry version information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "quarry v%s (commit %s, built %s)\n", version, commit, date)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "SQL fragment generator for data transformation pipelines")
		},
	}
}
