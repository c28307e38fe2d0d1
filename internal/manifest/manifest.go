// Package manifest builds the dependency manifest of a set of model files.
//
// Each file is parsed into a generic tree, reduced to nodes by Extract and
// folded into one Manifest in discovery order. A later file's node replaces
// an earlier node of the same identifier; the replaced entry keeps its
// position and the collision is reported in Manifest.Overwritten.
package manifest

import (
	"github.com/leapstack-labs/lookgraph/internal/dag"
)

// Manifest is the global node mapping plus its child map projection.
type Manifest struct {
	Nodes    *NodeMap      `json:"nodes" yaml:"nodes"`
	ChildMap *dag.ChildMap `json:"child_map" yaml:"child_map"`

	// Overwritten lists identifiers replaced by a later file, in fold order.
	Overwritten []Identifier `json:"-" yaml:"-"`
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{
		Nodes:    NewNodeMap(),
		ChildMap: dag.NewChildMap(),
	}
}

// Fold returns a new manifest with nodes merged over m. The receiver is not
// modified.
func (m *Manifest) Fold(nodes *NodeMap) *Manifest {
	next := &Manifest{
		Nodes:       m.Nodes.Clone(),
		ChildMap:    m.ChildMap.Clone(),
		Overwritten: append([]Identifier{}, m.Overwritten...),
	}
	for _, id := range nodes.Keys() {
		node, _ := nodes.Get(id)
		node = node.clone()
		if next.Nodes.Set(id, node) {
			next.Overwritten = append(next.Overwritten, id)
		}
		next.ChildMap.Set(string(id), Strings(node.DependsOn))
	}
	return next
}

// ChildMapFrom derives the child map of nodes.
func ChildMapFrom(nodes *NodeMap) *dag.ChildMap {
	cm := dag.NewChildMap()
	for _, id := range nodes.Keys() {
		node, _ := nodes.Get(id)
		cm.Set(string(id), Strings(node.DependsOn))
	}
	return cm
}

// Edges flattens the child map.
func (m *Manifest) Edges() []dag.Edge {
	return m.ChildMap.Edges()
}
