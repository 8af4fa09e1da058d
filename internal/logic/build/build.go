// Package build supplies the scoped expression-builder DSL the rule
// catalog uses to write its static patterns and replacers, and that
// tests use to write example formulas without hand-nesting
// constructors. It is the builder collaborator the core formula
// package treats as external.
package build

import (
	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/match"
)

// Builder is the receiver threaded through a BuildFormula block.
type Builder struct{}

// Pred builds a predicate atom.
func (Builder) Pred(name string, args ...logic.Term) *logic.Formula {
	return logic.NewPredicate(name, args...)
}

// Named builds a named-schema atom.
func (Builder) Named(name string, args ...logic.Term) *logic.Formula {
	return logic.NewNamed(name, args...)
}

// Not builds a negation.
func (Builder) Not(f *logic.Formula) *logic.Formula { return logic.NewNot(f) }

// And builds a conjunction.
func (Builder) And(fs ...*logic.Formula) *logic.Formula { return logic.NewAnd(fs...) }

// Or builds a disjunction.
func (Builder) Or(fs ...*logic.Formula) *logic.Formula { return logic.NewOr(fs...) }

// Imply builds an implication p -> q.
func (Builder) Imply(p, q *logic.Formula) *logic.Formula { return logic.NewImply(p, q) }

// Equiv builds an equivalence p <-> q.
func (Builder) Equiv(p, q *logic.Formula) *logic.Formula { return logic.NewEquiv(p, q) }

// ForAll builds a universal quantification.
func (Builder) ForAll(v logic.Variable, body *logic.Formula) *logic.Formula {
	return logic.NewForAll(v, body)
}

// Exist builds an existential quantification.
func (Builder) Exist(v logic.Variable, body *logic.Formula) *logic.Formula {
	return logic.NewExist(v, body)
}

// Hole builds a pattern-only formula hole (P, Q, R, ...).
func (Builder) Hole(name string) *logic.Formula { return logic.NewFormulaHole(name) }

// NamedHole builds a pattern-only named-atom hole (phi, psi, ...).
func (Builder) NamedHole(name string) *logic.Formula { return logic.NewNamedHole(name) }

// Var builds a variable term.
func (Builder) Var(v logic.Variable) logic.Term { return logic.NewVar(v) }

// Const builds a constant term.
func (Builder) Const(c logic.Constant) logic.Term { return logic.NewConst(c) }

// Fun builds a function-application term.
func (Builder) Fun(f logic.Function, args ...logic.Term) logic.Term { return logic.NewFun(f, args...) }

// TermHole builds a pattern-only term hole (x, y, z, ...).
func (Builder) TermHole(name string) logic.Term { return logic.NewTermHole(name) }

// BuildFormula runs fn with a fresh Builder and returns the formula it builds.
func BuildFormula(fn func(Builder) *logic.Formula) *logic.Formula {
	return fn(Builder{})
}

// MatcherBuilder is the receiver threaded through a BuildMatcher block;
// it builds pattern formulas the same way Builder does.
type MatcherBuilder struct {
	Builder
}

// BuildMatcher runs fn with a fresh MatcherBuilder, treats the
// returned formula as a pattern (its holes are the matcher's
// variables), and wraps it as a non-strict match.StructuralMatcher.
func BuildMatcher(fn func(MatcherBuilder) *logic.Formula) *match.StructuralMatcher {
	pattern := fn(MatcherBuilder{})
	return match.FromFormula(pattern, false)
}
