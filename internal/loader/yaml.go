package loader

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML parses YAML and JSON documents. Scalars are converted to strings
// so the tree matches the LookML shape.
func parseYAML(_ string, content []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, &SyntaxError{Format: "YAML", Err: err}
	}

	if raw == nil {
		return map[string]any{}, nil
	}

	tree, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, &SyntaxError{Format: "YAML", Err: errors.New("top level must be a mapping")}
	}
	return tree, nil
}

func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case nil:
		return nil
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
