package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/lookgraph/internal/cli/output"
	"github.com/leapstack-labs/lookgraph/internal/dag"
	"github.com/spf13/cobra"
)

// NewEdgesCommand creates the edges command.
func NewEdgesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edges [filters]",
		Short: "List the edges of the dependency graph",
		Long: `Build the manifest and print its parent -> child edges in graph order.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown table (agent-friendly)`,
		Example: `  # All edges
  lookgraph edges

  # Edges touching two views, as JSON
  lookgraph edges "view.orders view.users" --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdges(cmd, args)
		},
	}

	cmd.Flags().String("filters", "", "Space-separated identifiers; keep only edges touching them")
	return cmd
}

// edgesOutput is the JSON shape of the edges command.
type edgesOutput struct {
	Edges []dag.Edge `json:"edges"`
	Count int        `json:"count"`
}

func runEdges(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	m, err := cmdCtx.BuildManifest(cmd.Context())
	if err != nil {
		return err
	}
	edges := dag.Filter(m.Edges(), filterTerms(cmd, args))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(edgesOutput{Edges: edges, Count: len(edges)})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Edges"))
		r.Println("")
		edgesTable(r, edges).RenderMarkdown()
		r.Println("")
		r.Println(output.FormatKeyValue("Total", fmt.Sprintf("%d", len(edges))))
	default:
		r.Header(1, "Edges")
		edgesTable(r, edges).Render()
		r.Muted(fmt.Sprintf("Total: %d edges", len(edges)))
	}
	return nil
}

func edgesTable(r *output.Renderer, edges []dag.Edge) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Parent", "Child"})
	for _, e := range edges {
		t.AppendRow(table.Row{e.Parent, e.Child})
	}
	return t
}
