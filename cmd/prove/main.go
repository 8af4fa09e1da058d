// Command prove runs the bounded forward-search rule engine over a
// YAML problem file: a set of facts and an optional goal formula.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "prove",
	Short: "prove - a bounded forward-search first-order-logic rule engine",
	Long: `prove loads a set of facts and an optional goal from a YAML problem
file, then runs the built-in logic rules to a fixed point or a depth
bound, looking for a deduction of the goal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
