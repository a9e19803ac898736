package commands

import (
	"github.com/quarrylabs/quarry/pkg/fragment"
	"github.com/spf13/cobra"
)

// NewRelCheckCommand creates the relcheck command.
func NewRelCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relcheck <child-table> <child-column> <parent-table> <parent-column>",
		Short: "Generate a referential-integrity assertion query",
		Long: `Generate a query returning every child-side value with no matching
parent-side value, aliased invalid_key. Zero rows means the assertion
holds; each returned row is an orphaned key.

This is an advisory data quality check, not an enforced constraint. Note
the standard NOT IN pitfall: a NULL in the parent column makes the
predicate indeterminate, so filter parent-side NULLs upstream if you need
strict results.`,
		Example: `  # Every order must reference an existing customer
  quarry relcheck orders customer_id customers id`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			sql := fragment.AssertRelationship(args[0], args[1], args[2], args[3])
			return emitSQL(cmdCtx.Renderer, "relcheck", sql)
		},
	}

	return cmd
}
