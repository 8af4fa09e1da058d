package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/beadslogic/prove/internal/logic/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "inspect the built-in rule catalog",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "list the built-in rules the config allows, in catalog order, plus the meta-rule",
	RunE:  runRulesList,
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
}

func runRulesList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	type entry struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	catalog := rules.FilterCatalog(cfg.Rules)
	entries := make([]entry, 0, len(catalog)+1)
	for _, r := range catalog {
		entries = append(entries, entry{Name: r.Name().String(), Description: r.Description()})
	}
	meta := rules.NewAllLogicRule(0)
	entries = append(entries, entry{Name: meta.Name().String(), Description: meta.Description()})

	if wantJSON(cmd, cfg) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for _, e := range entries {
		name := fmt.Sprintf("%-28s", e.Name)
		desc := e.Description
		if isInteractive() {
			name = ruleStyle.Render(name)
			desc = mutedStyle.Render(desc)
		}
		fmt.Printf("%s %s\n", name, desc)
	}
	return nil
}
