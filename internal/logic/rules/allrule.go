package rules

import (
	"context"
	"log/slog"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var searchTracer = telemetry.Tracer("github.com/beadslogic/prove/logic/rules")

var searchMetrics struct {
	ruleFired     metric.Int64Counter
	depthReached  metric.Int64Histogram
}

func init() {
	m := telemetry.Meter("github.com/beadslogic/prove/logic/rules")
	searchMetrics.ruleFired, _ = m.Int64Counter("prove.rule.fired",
		metric.WithDescription("built-in rule invocations that produced at least one new deduction"),
		metric.WithUnit("{firing}"),
	)
	searchMetrics.depthReached, _ = m.Int64Histogram("prove.search.depth_reached",
		metric.WithDescription("search rounds executed before a goal was reached or the fixed point was hit"),
		metric.WithUnit("{round}"),
	)
}

// DefaultSearchDepth is used when AllLogicRule is built with a
// non-positive depth.
const DefaultSearchDepth = 3

// identityRuleName tags the bookkeeping deductions AllLogicRule
// synthesizes for each fact already present in the input context.
var identityRuleName = qname("Identity")

// AllLogicRule is the meta-rule: a bounded, breadth-first, fixed-point
// forward search that chains the built-in Catalog's outputs, deduping
// by regular form and reconstructing a deduction tree on success.
type AllLogicRule struct {
	SearchDepth int
	Logger      *slog.Logger

	// Rules restricts which built-in rules this search chains. Nil
	// means the full Catalog, in Catalog's order; build a subset with
	// FilterCatalog to implement a rule allowlist.
	Rules []LogicRule
}

// NewAllLogicRule builds the meta-rule with the given depth bound. A
// non-positive depth falls back to DefaultSearchDepth.
func NewAllLogicRule(searchDepth int) *AllLogicRule {
	if searchDepth <= 0 {
		searchDepth = DefaultSearchDepth
	}
	return &AllLogicRule{SearchDepth: searchDepth, Logger: slog.Default()}
}

// catalog returns the rules this search chains: m.Rules if set,
// otherwise the full built-in Catalog.
func (m *AllLogicRule) catalog() []LogicRule {
	if m.Rules != nil {
		return m.Rules
	}
	return Catalog
}

// Name implements Rule.
func (m *AllLogicRule) Name() logic.QualifiedName { return qname("Logic") }

// Description implements Rule.
func (m *AllLogicRule) Description() string {
	return "bounded forward search chaining every built-in logic rule to a fixed point or depth bound"
}

// ApplyToward implements Rule: runs the bounded forward search toward desired.
func (m *AllLogicRule) ApplyToward(ctx *logic.FormulaContext, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
	result, _ := m.search(ctx, formulas, terms, desired)
	return result
}

// Apply implements Rule: runs the same search with no goal, so it
// never short-circuits, and returns every deduction discovered across
// every depth reached before the fixed point.
func (m *AllLogicRule) Apply(ctx *logic.FormulaContext, formulas []*logic.Formula, terms []logic.Term) []logic.Deduction {
	_, all := m.search(ctx, formulas, terms, nil)
	return all
}

// search is the bounded forward search from the specification: seed
// `reached` with an identity deduction per context fact, then for each
// depth run every built-in rule's ApplyIncremental against the current
// frontier, recording each newly discovered regular form in `reached`
// as soon as it appears. Once the whole round completes, the frontier
// just processed is merged into the working context and the newly
// discovered formulas become the next frontier.
func (m *AllLogicRule) search(ctx *logic.FormulaContext, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) (result logic.TowardResult, allDeductions []logic.Deduction) {
	_, span := searchTracer.Start(context.Background(), "logic.search",
		trace.WithAttributes(
			attribute.Int("prove.search_depth", m.SearchDepth),
			attribute.Int("prove.context_size", len(ctx.Formulas())),
			attribute.Bool("prove.has_goal", desired != nil),
		),
	)
	depthReached := 0
	defer func() {
		span.SetAttributes(
			attribute.Bool("prove.reached", result.IsReached()),
			attribute.Int("prove.rounds", depthReached),
		)
		searchMetrics.depthReached.Record(context.Background(), int64(depthReached))
		span.SetStatus(codes.Ok, "")
		span.End()
	}()

	working := ctx.Copy()
	reached := map[string]*logic.DeductionNode{}
	var obtained []*logic.Formula

	for _, f := range working.SortedRegularForms() {
		key := f.RegularForm().RegularKey()
		node := logic.NewDeductionNode(logic.NewDeduction(identityRuleName, f, nil, nil))
		reached[key] = node
		obtained = append(obtained, f)
	}

	for i := 0; i < m.SearchDepth; i++ {
		depthReached = i + 1
		var newObtained []*logic.Formula
		applied := false

		for _, r := range m.catalog() {
			res := r.ApplyIncremental(working, obtained, formulas, terms, desired)
			if res.IsReached() {
				searchMetrics.ruleFired.Add(context.Background(), 1, metric.WithAttributes(attribute.String("prove.rule", r.Name().String())))
				d := res.Deduction()
				node := logic.NewDeductionNode(d, childNodes(reached, d.Dependencies)...)
				// A closing step with no dependencies (ExcludeMiddle) is
				// itself childless; it is not an original context fact.
				var leafDeps []*logic.Formula
				if len(node.Children) > 0 {
					leafDeps = node.LeafDependencies()
				}
				final := logic.NewDeduction(m.Name(), desired, leafDeps, map[string]any{"DeductionTree": node})
				return logic.Reached(final), allDeductions
			}
			if ds := res.Deductions(); len(ds) > 0 {
				searchMetrics.ruleFired.Add(context.Background(), 1, metric.WithAttributes(attribute.String("prove.rule", r.Name().String())))
			}
			for _, d := range res.Deductions() {
				allDeductions = append(allDeductions, d)
				key := d.Produced.RegularForm().RegularKey()
				if _, ok := reached[key]; ok {
					continue
				}
				node := logic.NewDeductionNode(d, childNodes(reached, d.Dependencies)...)
				reached[key] = node
				newObtained = append(newObtained, d.Produced)
				applied = true
			}
		}

		m.Logger.Debug("search round complete",
			slog.Int("depth", i),
			slog.Int("frontier_size", len(obtained)),
			slog.Int("new_count", len(newObtained)))

		if !applied {
			break
		}
		working.AddAll(obtained)
		obtained = newObtained
	}

	return logic.NotReached(), allDeductions
}

func childNodes(reached map[string]*logic.DeductionNode, deps []*logic.Formula) []*logic.DeductionNode {
	out := make([]*logic.DeductionNode, 0, len(deps))
	for _, dep := range deps {
		if node, ok := reached[dep.RegularForm().RegularKey()]; ok {
			out = append(out, node)
		}
	}
	return out
}
