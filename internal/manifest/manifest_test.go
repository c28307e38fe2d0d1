package manifest

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/lookgraph/internal/dag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func nodeMap(pairs ...any) *NodeMap {
	m := NewNodeMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(Identifier), &Node{DependsOn: pairs[i+1].([]Identifier)})
	}
	return m
}

func TestFold_LastWriteWins(t *testing.T) {
	first := nodeMap(
		Identifier("model.a"), []Identifier{"explore.shared"},
		Identifier("explore.shared"), []Identifier{"view.x", "view.shared"},
	)
	second := nodeMap(
		Identifier("model.b"), []Identifier{"explore.shared"},
		Identifier("explore.shared"), []Identifier{"view.shared"},
	)

	m := New().Fold(first).Fold(second)

	assert.Equal(t, []Identifier{"model.a", "explore.shared", "model.b"}, m.Nodes.Keys())
	shared, _ := m.Nodes.Get("explore.shared")
	assert.Equal(t, []Identifier{"view.shared"}, shared.DependsOn)
	assert.Equal(t, []Identifier{"explore.shared"}, m.Overwritten)

	// No residue from the first definition.
	assert.Equal(t, []string{"view.shared"}, m.ChildMap.Children("explore.shared"))
	assert.NotContains(t, m.Edges(), dag.Edge{Parent: "explore.shared", Child: "view.x"})
}

func TestFold_DoesNotModifyReceiver(t *testing.T) {
	base := New().Fold(nodeMap(Identifier("model.a"), []Identifier{"explore.a"}))
	_ = base.Fold(nodeMap(Identifier("model.a"), []Identifier{"explore.b"}))

	node, _ := base.Nodes.Get("model.a")
	assert.Equal(t, []Identifier{"explore.a"}, node.DependsOn)
	assert.Empty(t, base.Overwritten)
}

func TestChildMapFrom_MatchesFold(t *testing.T) {
	m := New().
		Fold(nodeMap(Identifier("model.a"), []Identifier{"explore.a"}, Identifier("explore.a"), []Identifier{"view.a"})).
		Fold(nodeMap(Identifier("explore.a"), []Identifier{"view.b", "view.a"}))

	assert.Equal(t, ChildMapFrom(m.Nodes).Edges(), m.Edges())
}

func TestManifest_JSONKeepsOrder(t *testing.T) {
	m := New().Fold(nodeMap(
		Identifier("model.z"), []Identifier{"explore.a"},
		Identifier("explore.a"), []Identifier{"view.a"},
	))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	want := `{"nodes":{"model.z":{"depends_on":["explore.a"]},"explore.a":{"depends_on":["view.a"]}},` +
		`"child_map":{"model.z":["explore.a"],"explore.a":["view.a"]}}`
	assert.Equal(t, want, string(data))
}

func TestManifest_YAMLRoundTrip(t *testing.T) {
	m := New().Fold(nodeMap(
		Identifier("model.z"), []Identifier{"explore.a", "explore.a"},
		Identifier("explore.a"), []Identifier{"view.a"},
	))

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	var decoded Manifest
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, m.Nodes.Keys(), decoded.Nodes.Keys())
	assert.Equal(t, m.Edges(), decoded.Edges())
}

func TestNodeMap_UnmarshalRejectsSequence(t *testing.T) {
	var m NodeMap
	assert.Error(t, yaml.Unmarshal([]byte("- a\n"), &m))
}

func TestLoadExample(t *testing.T) {
	m, err := LoadExample()
	require.NoError(t, err)

	assert.Equal(t, Identifier("model.ecommerce"), m.Nodes.Keys()[0])
	assert.Equal(t, ChildMapFrom(m.Nodes).Edges(), m.Edges())
	assert.Equal(t, 5, m.ChildMap.Len())
}
