package main

import (
	"github.com/beadslogic/prove/internal/config"
	"github.com/spf13/cobra"
)

// colorDisabled mirrors the loaded config's NoColor setting, applied
// by isInteractive so a config file or PROVE_NO-COLOR can force plain
// output even on a real terminal.
var colorDisabled bool

// loadConfig resolves the layered config and applies its rendering
// settings before the caller does anything else with it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	colorDisabled = cfg.NoColor
	return cfg, nil
}

// wantJSON resolves the effective output format: an explicitly passed
// --json flag always wins, otherwise cfg.OutputFormat decides.
func wantJSON(cmd *cobra.Command, cfg config.Config) bool {
	if cmd.Flags().Changed("json") {
		return jsonOutput
	}
	return cfg.OutputFormat == "json"
}
