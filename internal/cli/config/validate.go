package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

var (
	validOnEmpty         = []string{"abort", "example"}
	validModelNameSource = []string{"file", "content"}
	validRankDir         = []string{"LR", "RL", "TB", "BT"}
	validOutput          = []string{"auto", "text", "markdown", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ModelsDir == "" {
		return fmt.Errorf("models_dir is required")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if len(c.Patterns) == 0 {
		return fmt.Errorf("patterns must name at least one glob")
	}
	for _, p := range c.Patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}
	if err := oneOf("on_empty", c.OnEmpty, validOnEmpty); err != nil {
		return err
	}
	if err := oneOf("model_name_source", c.ModelNameSource, validModelNameSource); err != nil {
		return err
	}
	if err := oneOf("rankdir", strings.ToUpper(c.RankDir), validRankDir); err != nil {
		return err
	}
	if c.OutputFormat != "" {
		if err := oneOf("output", c.OutputFormat, validOutput); err != nil {
			return err
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

func oneOf(key, value string, valid []string) error {
	if slices.Contains(valid, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q\nValid values: %s", key, value, strings.Join(valid, ", "))
}
