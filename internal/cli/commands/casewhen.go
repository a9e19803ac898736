package commands

import (
	"fmt"

	"github.com/quarrylabs/quarry/pkg/fragment"
	"github.com/spf13/cobra"
)

// NewCaseCommand creates the case command.
func NewCaseCommand() *cobra.Command {
	var elseValue string

	cmd := &cobra.Command{
		Use:   "case <output-column> <condition> <result> [<condition> <result> ...]",
		Short: "Generate a CASE expression from condition/result pairs",
		Long: `Generate a CASE WHEN expression aliased as the output column. Pairs are
rendered in the order given; SQL CASE stops at the first matching WHEN, so
order matters when conditions overlap.

Conditions and results are raw SQL fragments used verbatim. Without --else
no default value is emitted and non-matching rows fall through to NULL.`,
		Example: `  # Two-tier classification
  quarry case tier "spend > 100" "'gold'" "spend > 10" "'silver'" --else "'basic'"

  # --else distinguishes "provided 0" from "absent"
  quarry case flag "a=1" 1 --else 0`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 3 || len(args)%2 == 0 {
				return fmt.Errorf("expected an output column followed by condition/result pairs, got %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			whens := make([]fragment.When, 0, (len(args)-1)/2)
			for i := 1; i < len(args); i += 2 {
				whens = append(whens, fragment.When{Cond: args[i], Result: args[i+1]})
			}

			// Presence of the flag is the contract, not its value: --else 0
			// and --else "" are real defaults.
			var elsePtr *string
			if cmd.Flags().Changed("else") {
				elsePtr = fragment.Else(elseValue)
			}

			sql := fragment.CaseWhen(args[0], whens, elsePtr)
			return emitSQL(cmdCtx.Renderer, "case", sql)
		},
	}

	cmd.Flags().StringVar(&elseValue, "else", "", "ELSE value (raw SQL fragment)")

	return cmd
}
