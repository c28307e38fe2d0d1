// Package render draws an edge list as a Graphviz graph.
//
// The DOT source is always written to disk; unless the format is DOT itself
// the layout engine binary (dot by default) is run to produce the artifact
// next to it.
package render

import (
	"bufio"
	"io"

	"github.com/emicklei/dot"

	"github.com/leapstack-labs/lookgraph/internal/dag"
)

// Style holds the graph-wide attributes.
type Style struct {
	RankDir   string // LR, RL, TB or BT
	NodeColor string
	NodeStyle string
}

// DefaultStyle is a left-to-right graph of filled light blue nodes.
var DefaultStyle = Style{
	RankDir:   "LR",
	NodeColor: "lightblue2",
	NodeStyle: "filled",
}

// BuildGraph turns edges into a directed graph. Each identifier becomes one
// node labelled with it; duplicate edges are kept.
func BuildGraph(edges []dag.Edge, style Style) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	if style.RankDir != "" {
		g.Attr("rankdir", style.RankDir)
	}

	// Node returns the existing node for a known id.
	node := func(id string) dot.Node {
		n := g.Node(id)
		if style.NodeColor != "" {
			n.Attr("color", style.NodeColor)
		}
		if style.NodeStyle != "" {
			n.Attr("style", style.NodeStyle)
		}
		return n
	}

	for _, e := range edges {
		g.Edge(node(e.Parent), node(e.Child))
	}
	return g
}

// WriteDOT writes edges as DOT source.
func WriteDOT(w io.Writer, edges []dag.Edge, style Style) error {
	bw := bufio.NewWriter(w)
	BuildGraph(edges, style).Write(bw)
	return bw.Flush()
}
