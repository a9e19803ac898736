// Package commands implements the quarry subcommands.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/quarrylabs/quarry/internal/cli/config"
	"github.com/quarrylabs/quarry/internal/cli/output"
	"github.com/quarrylabs/quarry/internal/macro"
	starctx "github.com/quarrylabs/quarry/internal/starlark"
	"github.com/spf13/cobra"
	"go.starlark.net/starlark"
)

// Context keys for dependencies injected by the root command.
type configKey struct{}
type rendererKey struct{}

// WithDependencies stores the loaded config and renderer in ctx for
// retrieval by commands. Called by the root command's PersistentPreRunE.
func WithDependencies(ctx context.Context, cfg *config.Config, r *output.Renderer) context.Context {
	ctx = context.WithValue(ctx, configKey{}, cfg)
	return context.WithValue(ctx, rendererKey{}, r)
}

// CommandContext carries the dependencies every command needs.
type CommandContext struct {
	Config   *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// NewCommandContext extracts the command's dependencies from its context.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	ctx := cmd.Context()

	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		return nil, fmt.Errorf("configuration not initialized")
	}

	r, ok := ctx.Value(rendererKey{}).(*output.Renderer)
	if !ok {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeText)
	}

	return &CommandContext{
		Config:   cfg,
		Renderer: r,
		Logger:   config.GetLogger(ctx),
	}, nil
}

// macroGlobals loads the project's macro modules and merges them with the
// fragment builtins and project context globals.
func (c *CommandContext) macroGlobals() (starlark.StringDict, []*macro.Module, error) {
	builtins, err := starctx.Predeclared(c.Config.ValidTo, c.Config.Environment)
	if err != nil {
		return nil, nil, err
	}

	loader := macro.NewLoader(c.Config.MacrosDir, builtins)
	modules, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("loaded macro modules", "dir", c.Config.MacrosDir, "count", len(modules))

	globals, err := macro.Globals(builtins, modules)
	if err != nil {
		return nil, nil, err
	}
	return globals, modules, nil
}

// sqlOutput is the JSON payload for commands that emit a single fragment.
type sqlOutput struct {
	Generator string `json:"generator"`
	SQL       string `json:"sql"`
}

// emitSQL writes generated SQL in the renderer's effective mode.
func emitSQL(r *output.Renderer, generator, sql string) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(sqlOutput{Generator: generator, SQL: sql})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Generated SQL: "+generator))
		r.Println("")
		r.Println(output.FormatCodeBlock("sql", sql))
	default:
		// Text mode: just output the SQL directly
		r.Println(sql)
	}
	return nil
}
