package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewManifestCommand creates the manifest command.
func NewManifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the dependency manifest",
		Long: `Build the manifest of every model file and print it.

The manifest has two keys: nodes, mapping each identifier to the
identifiers it depends on, and child_map, the same relation keyed by
parent. Key order follows discovery order.`,
		Example: `  # JSON
  lookgraph manifest

  # YAML
  lookgraph manifest --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifest(cmd)
		},
	}

	cmd.Flags().Bool("yaml", false, "Print YAML instead of JSON")
	return cmd
}

func runManifest(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	m, err := cmdCtx.BuildManifest(cmd.Context())
	if err != nil {
		return err
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	if !asYAML {
		return r.JSON(m)
	}

	enc := yaml.NewEncoder(r.Writer())
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return enc.Close()
}
