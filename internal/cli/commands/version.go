package commands

import (
	"github.com/leapstack-labs/lookgraph/internal/cli/output"
	"github.com/spf13/cobra"
)

// BuildInfo identifies the running binary. Values are set with -ldflags at
// build time and read "unknown" otherwise.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display lookgraph version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(NewCommandContext(cmd).Renderer, info)
		},
	}
}

func runVersion(r *output.Renderer, info BuildInfo) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}

	r.Printf("lookgraph v%s\n", info.Version)
	r.Println("LookML dependency graph builder")
	r.Muted("commit " + info.GitCommit + ", built " + info.BuildDate)
	return nil
}
