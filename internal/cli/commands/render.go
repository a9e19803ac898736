package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	starctx "github.com/quarrylabs/quarry/internal/starlark"
	"github.com/spf13/cobra"
	"go.starlark.net/starlark"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "render <expression>",
		Short: "Evaluate a macro expression to SQL text",
		Long: `Evaluate a Starlark expression against the project's macros and the
fragment builtins, and print the resulting SQL.

The expression can call builtins directly (scd_type2, case_when,
case_when_in_list, assert_relationship) or functions exported by .star
files in the macros directory, namespaced by filename. An expression that
evaluates to a list of SQL texts renders each fragment separated by a
blank line.`,
		Example: `  # Call a builtin directly
  quarry render 'scd_type2("raw.customers", "updated_at", ["customer_id"])'

  # Call a project macro from macros/history.star
  quarry render 'history.customer_history()'

  # Re-render whenever a macro file changes
  quarry render 'history.customer_history()' --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render when macro files change")

	return cmd
}

// fragmentTexts extracts SQL texts from an evaluated expression result:
// either a single string or a list of strings (a macro emitting several
// fragments at once).
func fragmentTexts(v starlark.Value) ([]string, error) {
	gv, err := starctx.ToGo(v)
	if err != nil {
		return nil, fmt.Errorf("expression must evaluate to SQL text, got %s", v.Type())
	}

	switch val := gv.(type) {
	case string:
		return []string{val}, nil
	case []any:
		if len(val) == 0 {
			return nil, fmt.Errorf("expression evaluated to an empty list")
		}
		texts := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list element %d must be SQL text, got %T", i, item)
			}
			texts[i] = s
		}
		return texts, nil
	default:
		return nil, fmt.Errorf("expression must evaluate to SQL text or a list of SQL texts, got %s", v.Type())
	}
}

func runRender(cmd *cobra.Command, expr string, watch bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	render := func() error {
		globals, _, err := cmdCtx.macroGlobals()
		if err != nil {
			return err
		}

		thread := &starlark.Thread{Name: "render"}
		v, err := starlark.Eval(thread, "<expr>", expr, globals) //nolint:staticcheck // SA1019: will migrate to EvalOptions later
		if err != nil {
			return fmt.Errorf("failed to evaluate expression: %w", err)
		}

		texts, err := fragmentTexts(v)
		if err != nil {
			return err
		}

		return emitSQL(cmdCtx.Renderer, "render", strings.Join(texts, "\n\n"))
	}

	if !watch {
		return render()
	}

	// Watch mode: render now, then again on every macro change. Errors are
	// reported but don't stop the loop.
	if err := render(); err != nil {
		fmt.Fprintf(cmdCtx.Renderer.ErrWriter(), "render error: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cmdCtx.Config.MacrosDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmdCtx.Config.MacrosDir, err)
	}
	cmdCtx.Logger.Debug("watching for macro changes", "dir", cmdCtx.Config.MacrosDir)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".star" {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			cmdCtx.Logger.Debug("macro change detected", "file", event.Name, "op", strings.ToLower(event.Op.String()))
			if err := render(); err != nil {
				fmt.Fprintf(cmdCtx.Renderer.ErrWriter(), "render error: %v\n", err)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmdCtx.Renderer.ErrWriter(), "watch error: %v\n", watchErr)
		}
	}
}
