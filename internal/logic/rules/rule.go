// Package rules implements the uniform Rule contract, the catalog of
// built-in first-order-logic inference rules, and the AllLogicRule
// meta-rule that chains them into a bounded forward search.
package rules

import (
	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/match"
)

// Rule is the contract every built-in and composite rule satisfies.
type Rule interface {
	Name() logic.QualifiedName
	Description() string
	// Apply derives everything this rule can derive from the whole
	// context, ignoring any goal.
	Apply(ctx *logic.FormulaContext, formulas []*logic.Formula, terms []logic.Term) []logic.Deduction
	// ApplyToward is the goal-directed variant; it may short-circuit
	// with Reached.
	ApplyToward(ctx *logic.FormulaContext, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult
}

// LogicRule is a Rule that additionally knows how to restrict itself
// to a frontier of newly obtained formulas, which is what the
// meta-rule needs to run an incremental forward search instead of
// recomputing from the whole context at every depth.
type LogicRule interface {
	Rule
	ApplyIncremental(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult
}

// IncrementalFunc is the shape of a rule's incremental step.
type IncrementalFunc func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult

// FuncRule implements LogicRule from a qualified name, description,
// and a single incremental closure, the same "struct of config plus
// behavior closures" shape the gate registry in the teacher's pack
// uses for its hook checks. ApplyToward's default — restrict to the
// entire context — and Apply's default — ApplyToward with no goal —
// are derived once here so every built-in rule gets them for free.
type FuncRule struct {
	RuleName    logic.QualifiedName
	Desc        string
	Incremental IncrementalFunc
}

// Name implements Rule.
func (r *FuncRule) Name() logic.QualifiedName { return r.RuleName }

// Description implements Rule.
func (r *FuncRule) Description() string { return r.Desc }

// ApplyIncremental implements LogicRule.
func (r *FuncRule) ApplyIncremental(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
	return r.Incremental(ctx, obtained, formulas, terms, desired)
}

// ApplyToward implements Rule by running the incremental step over
// every formula currently in the context.
func (r *FuncRule) ApplyToward(ctx *logic.FormulaContext, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
	return r.ApplyIncremental(ctx, ctx.Formulas(), formulas, terms, desired)
}

// Apply implements Rule by running ApplyToward with no goal and
// flattening whichever variant comes back into a deduction list.
func (r *FuncRule) Apply(ctx *logic.FormulaContext, formulas []*logic.Formula, terms []logic.Term) []logic.Deduction {
	res := r.ApplyToward(ctx, formulas, terms, nil)
	if res.IsReached() {
		return []logic.Deduction{res.Deduction()}
	}
	return res.Deductions()
}

// regularEqual reports whether a and b denote the same formula up to
// AND/OR associativity-commutativity and bound-variable renaming.
func regularEqual(a, b *logic.Formula) bool {
	return a.RegularForm().IsIdenticalTo(b.RegularForm())
}

// goalReached reports whether produced closes the goal, when there is one.
func goalReached(produced, desired *logic.Formula) bool {
	return desired != nil && regularEqual(produced, desired)
}

// dedupByRegularForm keeps the first occurrence of each regular-form
// equivalence class, preserving original order and original (not
// canonicalized) formulas.
func dedupByRegularForm(fs []*logic.Formula) []*logic.Formula {
	seen := map[string]bool{}
	var out []*logic.Formula
	for _, f := range fs {
		key := f.RegularForm().RegularKey()
		if !seen[key] {
			seen[key] = true
			out = append(out, f)
		}
	}
	return out
}

// withoutIndex returns fs with the element at i removed.
func withoutIndex(fs []*logic.Formula, i int) []*logic.Formula {
	out := make([]*logic.Formula, 0, len(fs)-1)
	out = append(out, fs[:i]...)
	out = append(out, fs[i+1:]...)
	return out
}

// allKnown merges the persistent context's formulas with the current
// frontier. Rules that combine two distinct facts (ImplyCompose, MP,
// ForAnyAnd) pair a frontier member against this wider set so that a
// newly obtained fact gets a chance to combine with everything already
// established, not only with other newcomers — the same new-versus-all
// join shape a semi-naive Datalog evaluator uses to avoid recomputing
// old-versus-old joins every round.
func allKnown(ctx *logic.FormulaContext, obtained []*logic.Formula) []*logic.Formula {
	return append(ctx.Formulas(), obtained...)
}

// MatcherRule is a unidirectional schematic rule: one pattern, one
// replacer built from the pattern's bindings.
type MatcherRule struct {
	Pattern  *match.StructuralMatcher
	Replace  func(*match.Bindings) *logic.Formula
	RootOnly bool
}

// applyOne finds every place the pattern fits inside f and returns the
// corresponding rewritten formulas. RootOnly restricts the search to f
// itself, used by replacer directions whose pattern is a bare hole and
// would otherwise match (and rewrite) every subtree of f.
func (r *MatcherRule) applyOne(f *logic.Formula) []*logic.Formula {
	if r.RootOnly {
		b, ok := r.Pattern.MatchRoot(f)
		if !ok {
			return nil
		}
		return []*logic.Formula{r.Replace(b)}
	}
	reps := r.Pattern.ReplaceOneWith(f, r.Replace)
	out := make([]*logic.Formula, len(reps))
	for i, rep := range reps {
		out[i] = rep.Result
	}
	return out
}

// MatcherEquivRule composes several MatcherRule variants — typically a
// forward direction and one or more backward orientations needed
// because the two-child patterns here are AND/OR nodes whose children
// may appear in either order — into one equivalence-flavored schematic
// rule.
type MatcherEquivRule struct {
	Variants []*MatcherRule
}

func (r *MatcherEquivRule) applyOne(f *logic.Formula) []*logic.Formula {
	var out []*logic.Formula
	for _, v := range r.Variants {
		out = append(out, v.applyOne(f)...)
	}
	return out
}

// schematicIncremental builds the IncrementalFunc shared by every
// schematic rule: for each subject in obtained, try every rewrite
// applyOne finds and return Reached on the first one that closes the
// goal, otherwise collect them all as NotReached deductions.
func schematicIncremental(name logic.QualifiedName, applyOne func(*logic.Formula) []*logic.Formula) IncrementalFunc {
	return func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
		var produced []logic.Deduction
		for _, f := range obtained {
			for _, g := range applyOne(f) {
				d := logic.NewDeduction(name, g, []*logic.Formula{f}, nil)
				if goalReached(g, desired) {
					return logic.Reached(d)
				}
				produced = append(produced, d)
			}
		}
		return logic.NotReached(produced...)
	}
}
