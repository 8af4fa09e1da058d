// Package config loads the search-time settings — search depth, the
// rule allowlist, and output format — layered the way the rest of the
// ecosystem does it: built-in defaults, then a project
// .prove/config.yaml, then PROVE_* environment variables, in
// increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved settings for one invocation of the CLI.
type Config struct {
	// SearchDepth bounds AllLogicRule's forward search.
	SearchDepth int `mapstructure:"search-depth"`

	// Rules restricts the Catalog to these qualified local names. Empty
	// means every built-in rule runs.
	Rules []string `mapstructure:"rules"`

	// OutputFormat is either "pretty" or "json".
	OutputFormat string `mapstructure:"output-format"`

	// NoColor disables lipgloss styling even on a TTY.
	NoColor bool `mapstructure:"no-color"`
}

func defaults() Config {
	return Config{
		SearchDepth:  3,
		OutputFormat: "pretty",
	}
}

// Load resolves a Config from, in increasing priority: built-in
// defaults, a project-local .prove/config.yaml (if present), and
// PROVE_-prefixed environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("PROVE")
	v.AutomaticEnv()

	cfg := defaults()
	v.SetDefault("search-depth", cfg.SearchDepth)
	v.SetDefault("output-format", cfg.OutputFormat)
	v.SetDefault("no-color", cfg.NoColor)

	if path, ok := findProjectConfigYaml(); ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshaling: %w", err)
	}
	return cfg, nil
}

// findProjectConfigYaml walks up from the working directory looking
// for a .prove/config.yaml.
func findProjectConfigYaml() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for dir := cwd; ; {
		candidate := filepath.Join(dir, ".prove", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
