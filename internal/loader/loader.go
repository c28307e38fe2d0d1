package loader

import (
	"fmt"
	"io"
	"os"
)

func init() {
	Register(".lkml", ParserFunc(parseLookML))
	Register(".yaml", ParserFunc(parseYAML))
	Register(".yml", ParserFunc(parseYAML))
	Register(".json", ParserFunc(parseYAML))
	Register(".hcl", ParserFunc(parseHCL))
}

// Load reads the file at path and parses it with the parser registered for
// its suffix.
func Load(path string) (map[string]any, error) {
	p, ok := Lookup(path)
	if !ok {
		return nil, &FormatError{Path: path, Available: ListFormats()}
	}

	content, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return p.Parse(path, content)
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}
