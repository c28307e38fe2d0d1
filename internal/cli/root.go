// Package cli provides the command-line interface for lookgraph.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/leapstack-labs/lookgraph/internal/cli/commands"
	"github.com/leapstack-labs/lookgraph/internal/cli/config"
	"github.com/leapstack-labs/lookgraph/internal/cli/output"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lookgraph [filters]",
		Short: "lookgraph - LookML dependency graphs",
		Long: `lookgraph reads LookML model files and draws how models, explores and
views depend on each other.

Every model file under the models directory is parsed. Each model depends
on its explores, and each explore depends on its joined views and on the
view of its own name. The resulting graph is written as Graphviz DOT and
rendered with the dot program.

Running lookgraph without a subcommand is the same as "lookgraph graph".`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx := context.WithValue(cmd.Context(), config.LoggerKey(), logger)
			ctx = context.WithValue(ctx, config.ConfigKey(), cfg)

			// Create and store renderer based on output mode
			mode := output.Mode(cfg.OutputFormat)
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
			ctx = context.WithValue(ctx, output.RendererKey(), renderer)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		RunE:          commands.RunGraph,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./lookgraph.yaml)")
	flags.String("models-dir", "", "Directory searched recursively for model files")
	flags.StringSlice("patterns", nil, "Base-name globs of model files (default *.model.lkml)")
	flags.String("output-file", "", "Path of the DOT source; the artifact is <path>.<format>")
	flags.String("format", "", "Graphviz output format (pdf|svg|png|gv|...)")
	flags.String("engine", "", "Graphviz layout engine")
	flags.String("rankdir", "", "Graph direction (LR|RL|TB|BT)")
	flags.String("node-color", "", "Node color")
	flags.String("node-style", "", "Node style")
	flags.Bool("view", true, "Open the rendered artifact")
	flags.String("on-empty", "", "When no model files are found (abort|example)")
	flags.String("model-name-source", "", "Where model names come from (file|content)")
	flags.Int("workers", 1, "Model files parsed concurrently")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	commands.AddGraphFlags(rootCmd)

	// Register completion for enumerated flags
	completeValues := func(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	_ = rootCmd.RegisterFlagCompletionFunc("output", completeValues("auto", "text", "markdown", "json"))
	_ = rootCmd.RegisterFlagCompletionFunc("rankdir", completeValues("LR", "RL", "TB", "BT"))
	_ = rootCmd.RegisterFlagCompletionFunc("on-empty", completeValues("abort", "example"))
	_ = rootCmd.RegisterFlagCompletionFunc("model-name-source", completeValues("file", "content"))
	_ = rootCmd.RegisterFlagCompletionFunc("format", completeValues("pdf", "svg", "png", "gv"))

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(commands.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}))
	rootCmd.AddCommand(commands.NewGraphCommand())
	rootCmd.AddCommand(commands.NewEdgesCommand())
	rootCmd.AddCommand(commands.NewManifestCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command. An interrupt cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for lookgraph.

To load completions:

Bash:
  $ source <(lookgraph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ lookgraph completion bash > /etc/bash_completion.d/lookgraph
  # macOS:
  $ lookgraph completion bash > $(brew --prefix)/etc/bash_completion.d/lookgraph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ lookgraph completion zsh > "${fpath[1]}/_lookgraph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ lookgraph completion fish | source

  # To load completions for each session, execute once:
  $ lookgraph completion fish > ~/.config/fish/completions/lookgraph.fish

PowerShell:
  PS> lookgraph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> lookgraph completion powershell > lookgraph.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
