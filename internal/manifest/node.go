package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is a manifest entry: the identifiers it directly depends on, in
// extraction order. Duplicates are kept.
type Node struct {
	DependsOn []Identifier `json:"depends_on" yaml:"depends_on"`
}

func (n *Node) clone() *Node {
	return &Node{DependsOn: append([]Identifier{}, n.DependsOn...)}
}

// NodeMap is an insertion-ordered mapping of Identifier to Node.
type NodeMap struct {
	keys  []Identifier
	nodes map[Identifier]*Node
}

// NewNodeMap creates an empty NodeMap.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[Identifier]*Node)}
}

// Set stores node under id and reports whether an earlier entry was
// replaced. A replaced entry keeps its original position.
func (m *NodeMap) Set(id Identifier, node *Node) bool {
	_, exists := m.nodes[id]
	if !exists {
		m.keys = append(m.keys, id)
	}
	m.nodes[id] = node
	return exists
}

// Get returns the node stored under id.
func (m *NodeMap) Get(id Identifier) (*Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Keys returns the identifiers in insertion order.
func (m *NodeMap) Keys() []Identifier {
	return append([]Identifier{}, m.keys...)
}

// Len returns the number of entries.
func (m *NodeMap) Len() int {
	return len(m.keys)
}

// Clone returns a deep copy.
func (m *NodeMap) Clone() *NodeMap {
	c := NewNodeMap()
	for _, id := range m.keys {
		c.Set(id, m.nodes[id].clone())
	}
	return c
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *NodeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		node := m.nodes[id]
		if node.DependsOn == nil {
			node = &Node{DependsOn: []Identifier{}}
		}
		value, err := json.Marshal(node)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping with keys in insertion order.
func (m *NodeMap) MarshalYAML() (any, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range m.keys {
		var value yaml.Node
		if err := value.Encode(m.nodes[id]); err != nil {
			return nil, err
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(id)},
			&value,
		)
	}
	return mapping, nil
}

// UnmarshalYAML decodes a mapping of identifier to node, keeping key order.
func (m *NodeMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("nodes must be a mapping, got line %d", value.Line)
	}

	decoded := NewNodeMap()
	for i := 0; i+1 < len(value.Content); i += 2 {
		var node Node
		if err := value.Content[i+1].Decode(&node); err != nil {
			return fmt.Errorf("node %q: %w", value.Content[i].Value, err)
		}
		decoded.Set(Identifier(value.Content[i].Value), &node)
	}

	*m = *decoded
	return nil
}
