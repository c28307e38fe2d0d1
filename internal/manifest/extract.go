package manifest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NameSource selects where the model portion of a model identifier comes from.
type NameSource string

const (
	// NameFromFile uses the first dot-separated component of the file name.
	NameFromFile NameSource = "file"
	// NameFromContent uses the top-level "name" value of the parsed tree.
	NameFromContent NameSource = "content"
)

// ModelName returns the first dot-separated component of path's base name,
// so "models/ecommerce.model.lkml" yields "ecommerce".
func ModelName(path string) string {
	name, _, _ := strings.Cut(filepath.Base(path), ".")
	return name
}

// modelNameFor resolves the model name of a parsed file under source.
func modelNameFor(path string, tree map[string]any, source NameSource) (string, error) {
	if source != NameFromContent {
		return ModelName(path), nil
	}
	name, ok := tree["name"].(string)
	if !ok || name == "" {
		return "", malformed("model has no name")
	}
	return name, nil
}

// Extract converts a parsed model tree into its nodes. The model node comes
// first, followed by one node per explore in declaration order. An explore
// depends on its joined views in order, then on the view of its own name.
func Extract(tree map[string]any, modelName string) (*NodeMap, error) {
	raw, ok := tree["explores"]
	if !ok {
		return nil, malformed("model %q has no explores", modelName)
	}
	explores, ok := raw.([]any)
	if !ok {
		return nil, malformed("explores of model %q must be a list, got %T", modelName, raw)
	}

	nodes := NewNodeMap()
	model := &Node{DependsOn: make([]Identifier, 0, len(explores))}
	nodes.Set(ModelID(modelName), model)

	for i, rawExplore := range explores {
		explore, ok := rawExplore.(map[string]any)
		if !ok {
			return nil, malformed("explore #%d is not a block", i+1)
		}
		exploreName, err := requireName(explore, fmt.Sprintf("explore #%d", i+1))
		if err != nil {
			return nil, err
		}

		joins, err := optionalList(explore, "joins", exploreName)
		if err != nil {
			return nil, err
		}

		node := &Node{DependsOn: make([]Identifier, 0, len(joins)+1)}
		for j, rawJoin := range joins {
			join, ok := rawJoin.(map[string]any)
			if !ok {
				return nil, malformed("join #%d of explore %q is not a block", j+1, exploreName)
			}
			joinName, err := requireName(join, fmt.Sprintf("join #%d of explore %q", j+1, exploreName))
			if err != nil {
				return nil, err
			}
			node.DependsOn = append(node.DependsOn, ViewID(joinName))
		}
		node.DependsOn = append(node.DependsOn, ViewID(exploreName))

		nodes.Set(ExploreID(exploreName), node)
		model.DependsOn = append(model.DependsOn, ExploreID(exploreName))
	}

	return nodes, nil
}

func requireName(block map[string]any, what string) (string, error) {
	name, ok := block["name"].(string)
	if !ok || name == "" {
		return "", malformed("%s has no name", what)
	}
	return name, nil
}

// optionalList returns block[key] as a list. Missing and empty values yield nil.
func optionalList(block map[string]any, key, owner string) ([]any, error) {
	raw, ok := block[key]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, malformed("%s of explore %q must be a list, got %T", key, owner, raw)
	}
	return list, nil
}
