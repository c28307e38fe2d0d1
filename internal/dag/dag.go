// Package dag provides the parent → children projection of a manifest and
// the ordered edge list derived from it.
//
// Order is significant throughout: parents keep the position of their first
// insertion and children keep the order they were declared in, so the same
// input always flattens to the same edge sequence.
package dag

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ChildMap maps a parent identifier to the ordered list of its children.
type ChildMap struct {
	parents  []string
	children map[string][]string // parent -> children (dependencies)
}

// NewChildMap creates a new empty child map.
func NewChildMap() *ChildMap {
	return &ChildMap{
		children: make(map[string][]string),
	}
}

// Set stores the children of parent. An existing parent keeps its original
// position and has its children replaced, never appended to.
func (m *ChildMap) Set(parent string, children []string) {
	if _, exists := m.children[parent]; !exists {
		m.parents = append(m.parents, parent)
	}
	m.children[parent] = append([]string{}, children...)
}

// Has reports whether parent has an entry.
func (m *ChildMap) Has(parent string) bool {
	_, ok := m.children[parent]
	return ok
}

// Children returns the children of parent in declaration order.
func (m *ChildMap) Children(parent string) []string {
	return m.children[parent]
}

// Parents returns all parents in insertion order.
func (m *ChildMap) Parents() []string {
	return append([]string{}, m.parents...)
}

// Len returns the number of parents.
func (m *ChildMap) Len() int {
	return len(m.parents)
}

// EdgeCount returns the number of parent/child pairs.
func (m *ChildMap) EdgeCount() int {
	count := 0
	for _, children := range m.children {
		count += len(children)
	}
	return count
}

// Clone returns an independent copy.
func (m *ChildMap) Clone() *ChildMap {
	c := NewChildMap()
	for _, parent := range m.parents {
		c.Set(parent, m.children[parent])
	}
	return c
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *ChildMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, parent := range m.parents {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(parent)
		if err != nil {
			return nil, err
		}
		children := m.children[parent]
		if children == nil {
			children = []string{}
		}
		value, err := json.Marshal(children)
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
func (m *ChildMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, parent := range m.parents {
		var value yaml.Node
		if err := value.Encode(m.children[parent]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: parent},
			&value,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping of parent to children, keeping key order.
// JSON input is accepted as well since it is valid YAML.
func (m *ChildMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("child map must be a mapping, got line %d", value.Line)
	}

	decoded := NewChildMap()
	for i := 0; i+1 < len(value.Content); i += 2 {
		var children []string
		if err := value.Content[i+1].Decode(&children); err != nil {
			return fmt.Errorf("child map entry %q: %w", value.Content[i].Value, err)
		}
		decoded.Set(value.Content[i].Value, children)
	}

	*m = *decoded
	return nil
}
