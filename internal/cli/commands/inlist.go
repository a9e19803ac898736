package commands

import (
	"github.com/quarrylabs/quarry/pkg/fragment"
	"github.com/spf13/cobra"
)

// NewInListCommand creates the inlist command.
func NewInListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inlist <column> <new-column> <value> [<value> ...]",
		Short: "Generate a 0/1 list-membership flag column",
		Long: `Generate a CASE expression flagging whether a column's value belongs to a
fixed literal list. Every value is rendered as a single-quoted literal,
numbers included; the engine's implicit casting is relied on for numeric
columns. Values are not escaped.`,
		Example: `  # Flag open-ish statuses
  quarry inlist status is_open OPEN PENDING

  # Numbers are quoted too: code IN ('1', '2')
  quarry inlist code known_code 1 2`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			values := make([]any, len(args)-2)
			for i, v := range args[2:] {
				values[i] = v
			}

			sql := fragment.CaseWhenInList(args[0], values, args[1])
			return emitSQL(cmdCtx.Renderer, "inlist", sql)
		},
	}

	return cmd
}
