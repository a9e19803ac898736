package commands

import (
	"github.com/quarrylabs/quarry/pkg/fragment"
	"github.com/spf13/cobra"
)

// NewSCDCommand creates the scd command.
func NewSCDCommand() *cobra.Command {
	var partitionBy []string

	cmd := &cobra.Command{
		Use:   "scd <table> <timestamp-column>",
		Short: "Generate an SCD Type 2 validity-interval query",
		Long: `Generate a select over a source table that adds the SCD Type 2 columns
_row_valid_from, _row_valid_to and _is_active. Each row's validity window
ends where the next row for the same partition key begins; the latest row
per key carries the configured end-of-validity sentinel and _is_active = 1.

The sentinel comes from valid_to in quarry.yaml (overridable per
environment or with --valid-to).`,
		Example: `  # Track history of customers by business key
  quarry scd raw.customers updated_at --partition-by customer_id

  # Composite key, custom sentinel
  quarry scd raw.orders loaded_at --partition-by order_id,region --valid-to '2999-12-31'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			sql := fragment.SCDType2(args[0], args[1], partitionBy, cmdCtx.Config.ValidTo)
			return emitSQL(cmdCtx.Renderer, "scd", sql)
		},
	}

	cmd.Flags().StringSliceVar(&partitionBy, "partition-by", nil,
		"Comma-separated partition key columns, in order (required)")
	_ = cmd.MarkFlagRequired("partition-by")

	return cmd
}
