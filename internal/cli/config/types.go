// Package config provides configuration management for the lookgraph CLI.
//
// Values are layered with koanf: built-in defaults, then lookgraph.yaml,
// then LOOKGRAPH_* environment variables, then explicitly set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	ModelsDir       string   `koanf:"models_dir"`
	Patterns        []string `koanf:"patterns"`
	OutputFile      string   `koanf:"output_file"`
	Format          string   `koanf:"format"`
	Engine          string   `koanf:"engine"`
	RankDir         string   `koanf:"rankdir"`
	NodeColor       string   `koanf:"node_color"`
	NodeStyle       string   `koanf:"node_style"`
	View            bool     `koanf:"view"`
	OnEmpty         string   `koanf:"on_empty"`
	ModelNameSource string   `koanf:"model_name_source"`
	Workers         int      `koanf:"workers"`
	Verbose         bool     `koanf:"verbose"`
	OutputFormat    string   `koanf:"output"`
}

// Default configuration values.
const (
	DefaultModelsDir       = "./input/models"
	DefaultPattern         = "*.model.lkml"
	DefaultOutputFile      = "output/dependency_graph.gv"
	DefaultFormat          = "pdf"
	DefaultEngine          = "dot"
	DefaultRankDir         = "LR"
	DefaultNodeColor       = "lightblue2"
	DefaultNodeStyle       = "filled"
	DefaultOnEmpty         = "abort"
	DefaultModelNameSource = "file"
	DefaultWorkers         = 1
	DefaultOutput          = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "LOOKGRAPH_"

// configFileNames are searched in order.
var configFileNames = []string{"lookgraph.yaml", "lookgraph.yml"}

// defaults returns the default values keyed like the config file.
func defaults() map[string]any {
	return map[string]any{
		"models_dir":        DefaultModelsDir,
		"patterns":          []string{DefaultPattern},
		"output_file":       DefaultOutputFile,
		"format":            DefaultFormat,
		"engine":            DefaultEngine,
		"rankdir":           DefaultRankDir,
		"node_color":        DefaultNodeColor,
		"node_style":        DefaultNodeStyle,
		"view":              true,
		"on_empty":          DefaultOnEmpty,
		"model_name_source": DefaultModelNameSource,
		"workers":           DefaultWorkers,
		"verbose":           false,
		"output":            DefaultOutput,
	}
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		ModelsDir:       DefaultModelsDir,
		Patterns:        []string{DefaultPattern},
		OutputFile:      DefaultOutputFile,
		Format:          DefaultFormat,
		Engine:          DefaultEngine,
		RankDir:         DefaultRankDir,
		NodeColor:       DefaultNodeColor,
		NodeStyle:       DefaultNodeStyle,
		View:            true,
		OnEmpty:         DefaultOnEmpty,
		ModelNameSource: DefaultModelNameSource,
		Workers:         DefaultWorkers,
		OutputFormat:    DefaultOutput,
	}
}
