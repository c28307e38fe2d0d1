package dag

import "strings"

// Edge is a directed parent → child pair.
type Edge struct {
	Parent string `json:"parent" yaml:"parent"`
	Child  string `json:"child" yaml:"child"`
}

func (e Edge) String() string {
	return e.Parent + " -> " + e.Child
}

// Edges flattens the child map: parents in insertion order, then each
// parent's children in list order.
func (m *ChildMap) Edges() []Edge {
	edges := make([]Edge, 0, m.EdgeCount())
	for _, parent := range m.parents {
		for _, child := range m.children[parent] {
			edges = append(edges, Edge{Parent: parent, Child: child})
		}
	}
	return edges
}

// ParseFilterTerms splits a whitespace-separated filter string.
// Blank input yields nil, which means no filtering.
func ParseFilterTerms(s string) []string {
	terms := strings.Fields(s)
	if len(terms) == 0 {
		return nil
	}
	return terms
}

// Filter keeps the edges whose parent or child exactly equals one of terms.
// Empty terms are ignored; with no usable terms every edge is kept.
// Relative order is preserved.
func Filter(edges []Edge, terms []string) []Edge {
	keep := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if term != "" {
			keep[term] = struct{}{}
		}
	}

	if len(keep) == 0 {
		return append([]Edge{}, edges...)
	}

	filtered := make([]Edge, 0)
	for _, e := range edges {
		_, parentMatch := keep[e.Parent]
		_, childMatch := keep[e.Child]
		if parentMatch || childMatch {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
