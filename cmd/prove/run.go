package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/prooftext"
	"github.com/beadslogic/prove/internal/logic/rules"
	"github.com/beadslogic/prove/internal/telemetry"
	"github.com/spf13/cobra"
)

var (
	goalOverride string
	searchDepth  int
	traceOutput  bool
)

var runCmd = &cobra.Command{
	Use:   "run <problem.yaml>",
	Short: "search for a deduction of the problem's goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&goalOverride, "goal", "", "override the problem file's goal with a literal predicate, e.g. 'Q()'")
	runCmd.Flags().IntVar(&searchDepth, "search-depth", 0, "bound the number of search rounds (0 uses the config default)")
	runCmd.Flags().BoolVar(&traceOutput, "trace", false, "emit OTel spans and metrics to stderr")
}

func runRun(cmd *cobra.Command, args []string) error {
	if traceOutput {
		shutdown, err := telemetry.Init(os.Stderr)
		if err != nil {
			return err
		}
		defer shutdown(cmd.Context())
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	depth := cfg.SearchDepth
	if searchDepth > 0 {
		depth = searchDepth
	}

	problem, err := prooftext.Load(args[0])
	if err != nil {
		return err
	}
	if goalOverride != "" {
		g, err := parseGoalLiteral(goalOverride)
		if err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
		problem.Goal = g
	}
	if problem.Goal == nil {
		return fmt.Errorf("no goal given: set 'goal' in %s or pass --goal", args[0])
	}

	rule := rules.NewAllLogicRule(depth)
	if len(cfg.Rules) > 0 {
		rule.Rules = rules.FilterCatalog(cfg.Rules)
	}
	result := rule.ApplyToward(problem.Context, problem.Context.Formulas(), nil, problem.Goal)

	if wantJSON(cmd, cfg) {
		return printJSON(result)
	}
	printPretty(problem.Goal, result)
	return nil
}

// parseGoalLiteral accepts only the simplest case: a bare predicate
// name with no arguments, e.g. "Q()". Anything richer belongs in the
// problem file's YAML goal.
func parseGoalLiteral(s string) (*logic.Formula, error) {
	s = strings.TrimSpace(s)
	name, rest, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return nil, fmt.Errorf("expected NAME() syntax, got %q", s)
	}
	if name == "" {
		return nil, fmt.Errorf("empty predicate name in %q", s)
	}
	args := strings.TrimSuffix(rest, ")")
	if strings.TrimSpace(args) != "" {
		return nil, fmt.Errorf("goal literal %q must be a zero-argument predicate; use a problem file for richer goals", s)
	}
	return logic.NewPredicate(name), nil
}

func printJSON(result logic.TowardResult) error {
	out := map[string]any{"reached": result.IsReached()}
	if result.IsReached() {
		d := result.Deduction()
		out["rule"] = d.Rule.String()
		out["produced"] = d.Produced.String()
		out["dependencies"] = formulaStrings(d.Dependencies)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formulaStrings(fs []*logic.Formula) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

func printPretty(goal *logic.Formula, result logic.TowardResult) {
	fmt.Printf("goal: %s\n", goal)
	fmt.Printf("status: %s\n", renderReached(result.IsReached()))
	if !result.IsReached() {
		return
	}
	d := result.Deduction()
	tree, _ := d.Metadata["DeductionTree"].(*logic.DeductionNode)
	if tree == nil {
		return
	}
	fmt.Print(renderDeductionTree(tree))
}
