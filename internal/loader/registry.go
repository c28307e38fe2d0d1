// Package loader reads model definition files into a generic tree, choosing
// a parser by file suffix.
//
// Every parser returns the same shape: map[string]any for mappings, []any for
// sequences and string for scalars. LookML (.lkml), YAML (.yaml, .yml), JSON
// (.json) and HCL (.hcl) are registered by default.
package loader

import (
	"sort"
	"strings"
	"sync"
)

// Parser turns the raw content of a file into a generic tree.
type Parser interface {
	Parse(path string, content []byte) (map[string]any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(path string, content []byte) (map[string]any, error)

// Parse calls f(path, content).
func (f ParserFunc) Parse(path string, content []byte) (map[string]any, error) {
	return f(path, content)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Parser)
)

// Register associates a file suffix (such as ".lkml") with a parser.
// Suffixes are matched case-insensitively.
func Register(suffix string, p Parser) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(suffix)] = p
}

// Lookup returns the parser registered for the longest suffix of path.
func Lookup(path string) (Parser, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	lower := strings.ToLower(path)
	var (
		best    Parser
		bestLen int
	)
	for suffix, p := range registry {
		if strings.HasSuffix(lower, suffix) && len(suffix) > bestLen {
			best, bestLen = p, len(suffix)
		}
	}
	return best, best != nil
}

// ListFormats returns all registered suffixes (sorted).
func ListFormats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	suffixes := make([]string, 0, len(registry))
	for suffix := range registry {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}
