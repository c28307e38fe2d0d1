package dag

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleChildMap() *ChildMap {
	m := NewChildMap()
	m.Set("model.ecommerce", []string{"explore.orders", "explore.users"})
	m.Set("explore.orders", []string{"view.customers", "view.orders"})
	m.Set("explore.users", []string{"view.users"})
	return m
}

func TestChildMap_SetAndChildren(t *testing.T) {
	m := sampleChildMap()

	if m.Len() != 3 {
		t.Errorf("expected 3 parents, got %d", m.Len())
	}
	if m.EdgeCount() != 5 {
		t.Errorf("expected 5 edges, got %d", m.EdgeCount())
	}

	children := m.Children("explore.orders")
	want := []string{"view.customers", "view.orders"}
	if !reflect.DeepEqual(children, want) {
		t.Errorf("children = %v, want %v", children, want)
	}

	if m.Has("view.orders") {
		t.Error("leaf view should not be a parent")
	}
}

func TestChildMap_SetReplacesAndKeepsPosition(t *testing.T) {
	m := sampleChildMap()
	m.Set("model.ecommerce", []string{"explore.returns"})

	parents := m.Parents()
	want := []string{"model.ecommerce", "explore.orders", "explore.users"}
	if !reflect.DeepEqual(parents, want) {
		t.Errorf("parents = %v, want %v", parents, want)
	}

	children := m.Children("model.ecommerce")
	if !reflect.DeepEqual(children, []string{"explore.returns"}) {
		t.Errorf("children should be replaced, got %v", children)
	}
}

func TestChildMap_SetCopiesInput(t *testing.T) {
	m := NewChildMap()
	children := []string{"view.a"}
	m.Set("explore.a", children)
	children[0] = "view.mutated"

	if got := m.Children("explore.a")[0]; got != "view.a" {
		t.Errorf("child map should not alias caller slice, got %q", got)
	}
}

func TestChildMap_EdgesOrder(t *testing.T) {
	edges := sampleChildMap().Edges()

	want := []Edge{
		{"model.ecommerce", "explore.orders"},
		{"model.ecommerce", "explore.users"},
		{"explore.orders", "view.customers"},
		{"explore.orders", "view.orders"},
		{"explore.users", "view.users"},
	}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("edges = %v, want %v", edges, want)
	}
}

func TestChildMap_EdgesIdempotent(t *testing.T) {
	m := sampleChildMap()
	first := m.Edges()
	second := m.Edges()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("flattening twice differs: %v vs %v", first, second)
	}
}

func TestChildMap_EdgesKeepsDuplicates(t *testing.T) {
	m := NewChildMap()
	m.Set("explore.orders", []string{"view.orders", "view.orders"})

	if n := len(m.Edges()); n != 2 {
		t.Errorf("duplicate children should produce duplicate edges, got %d", n)
	}
}

func TestChildMap_Clone(t *testing.T) {
	m := sampleChildMap()
	c := m.Clone()
	c.Set("explore.users", []string{"view.accounts"})

	if got := m.Children("explore.users"); !reflect.DeepEqual(got, []string{"view.users"}) {
		t.Errorf("clone should be independent, original now %v", got)
	}
}

func TestChildMap_MarshalJSONKeepsOrder(t *testing.T) {
	m := NewChildMap()
	m.Set("z", []string{"a"})
	m.Set("a", nil)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"z":["a"],"a":[]}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestChildMap_YAMLRoundTripKeepsOrder(t *testing.T) {
	m := NewChildMap()
	m.Set("z", []string{"a", "b"})
	m.Set("a", []string{"c"})

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded ChildMap
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(decoded.Parents(), []string{"z", "a"}) {
		t.Errorf("parents = %v, want [z a]", decoded.Parents())
	}
	if !reflect.DeepEqual(decoded.Edges(), m.Edges()) {
		t.Errorf("edges = %v, want %v", decoded.Edges(), m.Edges())
	}
}

func TestChildMap_UnmarshalJSONInput(t *testing.T) {
	var m ChildMap
	input := `{"explore.b": ["view.b"], "explore.a": ["view.x", "view.a"]}`
	if err := yaml.Unmarshal([]byte(input), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(m.Parents(), []string{"explore.b", "explore.a"}) {
		t.Errorf("parents = %v", m.Parents())
	}
}

func TestChildMap_UnmarshalRejectsNonMapping(t *testing.T) {
	var m ChildMap
	if err := yaml.Unmarshal([]byte(`["a", "b"]`), &m); err == nil {
		t.Error("expected error for sequence input")
	}
}
