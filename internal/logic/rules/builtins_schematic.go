package rules

import (
	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/build"
	"github.com/beadslogic/prove/internal/logic/match"
)

// NewDoubleNegateRule implements ¬¬P ≡ P in both directions. The
// backward direction (wrap P as ¬¬P) is root-only: its pattern is a
// bare hole, which would otherwise match — and double-negate — every
// subtree of the subject.
func NewDoubleNegateRule() *FuncRule {
	name := qname("DoubleNegate")
	forward := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Not(b.Not(b.Hole("P")))
	})
	backward := match.FromFormula(build.BuildFormula(func(b build.Builder) *logic.Formula {
		return b.Hole("P")
	}), false)
	eq := &MatcherEquivRule{Variants: []*MatcherRule{
		{Pattern: forward, Replace: func(b *match.Bindings) *logic.Formula { p, _ := b.Formula("P"); return p }},
		{Pattern: backward, RootOnly: true, Replace: func(b *match.Bindings) *logic.Formula {
			p, _ := b.Formula("P")
			return logic.NewNot(logic.NewNot(p))
		}},
	}}
	return &FuncRule{
		RuleName:    name,
		Desc:        "¬¬P is equivalent to P",
		Incremental: schematicIncremental(name, eq.applyOne),
	}
}

// NewDefImplyRule implements P→Q ≡ ¬P ∨ Q in both directions. The
// backward pattern is listed in both disjunct orders since OR's
// children may be matched in either order and this matcher does not
// search AC permutations.
func NewDefImplyRule() *FuncRule {
	name := qname("DefImply")
	forward := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Imply(b.Hole("P"), b.Hole("Q"))
	})
	backward1 := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Or(b.Not(b.Hole("P")), b.Hole("Q"))
	})
	backward2 := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Or(b.Hole("Q"), b.Not(b.Hole("P")))
	})
	toOr := func(b *match.Bindings) *logic.Formula {
		p, _ := b.Formula("P")
		q, _ := b.Formula("Q")
		return logic.NewOr(logic.NewNot(p), q)
	}
	toImply := func(b *match.Bindings) *logic.Formula {
		p, _ := b.Formula("P")
		q, _ := b.Formula("Q")
		return logic.NewImply(p, q)
	}
	eq := &MatcherEquivRule{Variants: []*MatcherRule{
		{Pattern: forward, Replace: toOr},
		{Pattern: backward1, Replace: toImply},
		{Pattern: backward2, Replace: toImply},
	}}
	return &FuncRule{
		RuleName:    name,
		Desc:        "P→Q is equivalent to ¬P ∨ Q",
		Incremental: schematicIncremental(name, eq.applyOne),
	}
}

// NewDefEquivToRule implements (P→Q) ∧ (Q→P) ≡ P↔Q in both directions,
// with both conjunct orders covered on the forward side for the same
// AC-permutation reason as DefImply.
func NewDefEquivToRule() *FuncRule {
	name := qname("DefEquivTo")
	forward1 := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.And(b.Imply(b.Hole("P"), b.Hole("Q")), b.Imply(b.Hole("Q"), b.Hole("P")))
	})
	forward2 := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.And(b.Imply(b.Hole("Q"), b.Hole("P")), b.Imply(b.Hole("P"), b.Hole("Q")))
	})
	backward := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Equiv(b.Hole("P"), b.Hole("Q"))
	})
	toEquiv := func(b *match.Bindings) *logic.Formula {
		p, _ := b.Formula("P")
		q, _ := b.Formula("Q")
		return logic.NewEquiv(p, q)
	}
	toAnd := func(b *match.Bindings) *logic.Formula {
		p, _ := b.Formula("P")
		q, _ := b.Formula("Q")
		return logic.NewAnd(logic.NewImply(p, q), logic.NewImply(q, p))
	}
	eq := &MatcherEquivRule{Variants: []*MatcherRule{
		{Pattern: forward1, Replace: toEquiv},
		{Pattern: forward2, Replace: toEquiv},
		{Pattern: backward, Replace: toAnd},
	}}
	return &FuncRule{
		RuleName:    name,
		Desc:        "(P→Q) ∧ (Q→P) is equivalent to P↔Q",
		Incremental: schematicIncremental(name, eq.applyOne),
	}
}
