package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/quarrylabs/quarry/internal/cli/output"
	"github.com/quarrylabs/quarry/internal/macro"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List macro namespaces and their functions",
		Long: `List every function exported by the .star files in the macros directory,
grouped by namespace (the filename without extension).`,
		Example: `  # Show all project macros
  quarry list

  # Machine-readable listing
  quarry list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	_, modules, err := cmdCtx.macroGlobals()
	if err != nil {
		return err
	}

	var fns []macro.Function
	for _, m := range modules {
		fns = append(fns, m.Functions()...)
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(fns)
	}

	if len(fns) == 0 {
		r.Printf("No macros found in %s\n", cmdCtx.Config.MacrosDir)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Namespace", "Function", "Params", "Doc"})
	for _, fn := range fns {
		t.AppendRow(table.Row{fn.Namespace, fn.Name, fn.Params, fn.Doc})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}

	return nil
}
