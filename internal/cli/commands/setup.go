package commands

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/lookgraph/internal/cli/config"
	"github.com/leapstack-labs/lookgraph/internal/cli/output"
	"github.com/leapstack-labs/lookgraph/internal/dag"
	"github.com/leapstack-labs/lookgraph/internal/manifest"
	"github.com/leapstack-labs/lookgraph/internal/render"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config, logger and renderer the root command
// stored in the command context. A command run on its own gets a renderer
// for its own output streams.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)
	r, ok := output.GetRenderer(ctx)
	if !ok {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Builder returns a manifest builder configured from c.
func (c *CommandContext) Builder() *manifest.Builder {
	return &manifest.Builder{
		Root:       c.Cfg.ModelsDir,
		Patterns:   c.Cfg.Patterns,
		NameSource: manifest.NameSource(c.Cfg.ModelNameSource),
		Workers:    c.Cfg.Workers,
		Logger:     c.Logger,
	}
}

// BuildManifest builds the manifest and applies the on_empty policy.
func (c *CommandContext) BuildManifest(ctx context.Context) (*manifest.Manifest, error) {
	m, err := c.Builder().Build(ctx)
	if err != nil {
		return manifest.ResolveEmpty(err, manifest.EmptyPolicy(c.Cfg.OnEmpty), c.Logger)
	}
	return m, nil
}

// GraphRenderer returns a graph renderer configured from c.
func (c *CommandContext) GraphRenderer() *render.Renderer {
	return &render.Renderer{
		Format: c.Cfg.Format,
		Engine: c.Cfg.Engine,
		Style: render.Style{
			RankDir:   c.Cfg.RankDir,
			NodeColor: c.Cfg.NodeColor,
			NodeStyle: c.Cfg.NodeStyle,
		},
		Logger: c.Logger,
	}
}

// filterTerms merges positional filter arguments with the --filters flag.
func filterTerms(cmd *cobra.Command, args []string) []string {
	var terms []string
	for _, arg := range args {
		terms = append(terms, dag.ParseFilterTerms(arg)...)
	}
	if f := cmd.Flags().Lookup("filters"); f != nil {
		terms = append(terms, dag.ParseFilterTerms(f.Value.String())...)
	}
	return terms
}
