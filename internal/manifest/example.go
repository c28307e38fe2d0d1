package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed example_manifest.json
var exampleManifest []byte

// EmptyPolicy decides what happens when discovery finds no model files.
type EmptyPolicy string

const (
	// EmptyAbort surfaces ErrNoInputFound to the caller.
	EmptyAbort EmptyPolicy = "abort"
	// EmptyExample substitutes the bundled example manifest.
	EmptyExample EmptyPolicy = "example"
)

// LoadExample decodes the bundled example manifest. Key order is preserved.
// A missing child_map is derived from the nodes; a present one must match.
func LoadExample() (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(exampleManifest, &m); err != nil {
		return nil, fmt.Errorf("failed to decode example manifest: %w", err)
	}
	if m.Nodes == nil {
		return nil, errors.New("example manifest has no nodes")
	}

	derived := ChildMapFrom(m.Nodes)
	if m.ChildMap == nil {
		m.ChildMap = derived
		return &m, nil
	}
	if !slices.Equal(m.ChildMap.Edges(), derived.Edges()) {
		return nil, errors.New("example manifest child_map does not match its nodes")
	}
	return &m, nil
}

// ResolveEmpty applies policy to a Build error. Errors other than
// ErrNoInputFound, and ErrNoInputFound under EmptyAbort, are returned as is.
// Under EmptyExample the bundled example manifest is returned instead.
func ResolveEmpty(err error, policy EmptyPolicy, logger *slog.Logger) (*Manifest, error) {
	if !errors.Is(err, ErrNoInputFound) || policy != EmptyExample {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Warn("no model files found, using example manifest", "reason", err.Error())
	return LoadExample()
}
