package manifest

import "strings"

// Kind is the entity type encoded in an Identifier.
type Kind string

// Entity kinds.
const (
	KindModel   Kind = "model"
	KindExplore Kind = "explore"
	KindView    Kind = "view"
)

// Identifier is the "<kind>.<name>" key of a node and an edge endpoint.
type Identifier string

// NewIdentifier joins kind and name.
func NewIdentifier(kind Kind, name string) Identifier {
	return Identifier(string(kind) + "." + name)
}

// ModelID returns "model.<name>".
func ModelID(name string) Identifier { return NewIdentifier(KindModel, name) }

// ExploreID returns "explore.<name>".
func ExploreID(name string) Identifier { return NewIdentifier(KindExplore, name) }

// ViewID returns "view.<name>".
func ViewID(name string) Identifier { return NewIdentifier(KindView, name) }

// Kind returns the part before the first dot.
func (id Identifier) Kind() Kind {
	kind, _, _ := strings.Cut(string(id), ".")
	return Kind(kind)
}

// Name returns the part after the first dot.
func (id Identifier) Name() string {
	_, name, _ := strings.Cut(string(id), ".")
	return name
}

func (id Identifier) String() string {
	return string(id)
}

// Strings converts identifiers to plain strings.
func Strings(ids []Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
