package loader

import "github.com/leapstack-labs/lookgraph/internal/lookml"

func parseLookML(_ string, content []byte) (map[string]any, error) {
	tree, err := lookml.Parse(string(content))
	if err != nil {
		return nil, &SyntaxError{Format: "LookML", Err: err}
	}
	return tree, nil
}
