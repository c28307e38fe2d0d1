package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/lookgraph/internal/dag"
	"github.com/leapstack-labs/lookgraph/internal/render"
	"github.com/spf13/cobra"
)

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [filters]",
		Short: "Render the dependency graph",
		Long: `Build the manifest of every model file and render its dependency graph
with Graphviz.

Filters are space-separated identifiers such as "explore.orders view.users".
Only edges whose parent or child equals one of them are drawn.`,
		Example: `  # Render every model under ./input/models
  lookgraph graph

  # Keep only edges touching explore.orders
  lookgraph graph "explore.orders"

  # Write DOT source only
  lookgraph graph --format gv --view=false

  # Re-render whenever a model file changes
  lookgraph graph --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: RunGraph,
	}

	AddGraphFlags(cmd)
	return cmd
}

// AddGraphFlags registers the flags of the graph command on cmd.
func AddGraphFlags(cmd *cobra.Command) {
	cmd.Flags().String("filters", "", "Space-separated identifiers; keep only edges touching them")
	cmd.Flags().Bool("watch", false, "Rebuild and re-render when model files change")
}

// RunGraph builds, filters and renders the graph. With --watch it keeps
// re-rendering until interrupted.
func RunGraph(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	terms := filterTerms(cmd, args)

	// The example fallback would render fine, but there is nothing to watch.
	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		if info, err := os.Stat(cmdCtx.Cfg.ModelsDir); err != nil || !info.IsDir() {
			return fmt.Errorf("--watch needs an existing models directory, %s is not one", cmdCtx.Cfg.ModelsDir)
		}
	}

	if _, err := renderOnce(cmd.Context(), cmdCtx, terms, cmdCtx.Cfg.View); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	return watchModels(cmd.Context(), cmdCtx.Cfg.ModelsDir, cmdCtx.Logger, func() error {
		_, err := renderOnce(cmd.Context(), cmdCtx, terms, false)
		return err
	})
}

// renderOnce runs one build and render pass and returns the artifact path.
// The artifact is opened in the platform viewer when view is set.
func renderOnce(ctx context.Context, cmdCtx *CommandContext, terms []string, view bool) (string, error) {
	r := cmdCtx.Renderer

	m, err := cmdCtx.BuildManifest(ctx)
	if err != nil {
		return "", err
	}

	edges := dag.Filter(m.Edges(), terms)
	path := cmdCtx.Cfg.OutputFile

	r.Println("Rendering " + path)
	cmdCtx.Logger.Info("rendering", "path", path, "edges", len(edges), "format", cmdCtx.Cfg.Format)

	artifact, err := cmdCtx.GraphRenderer().Render(ctx, edges, path)
	if err != nil {
		return "", err
	}
	r.Muted(fmt.Sprintf("Wrote %s (%d edges)", artifact, len(edges)))

	if view {
		if err := render.Open(ctx, artifact); err != nil {
			cmdCtx.Logger.Warn("could not open artifact", "path", artifact, "error", err)
		}
	}
	return artifact, nil
}
