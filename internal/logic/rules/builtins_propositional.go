package rules

import "github.com/beadslogic/prove/internal/logic"

const namespace = "logic"

func qname(local string) logic.QualifiedName { return logic.NewQualifiedName(namespace, local) }

// NewFlattenRule collapses nested AND into AND and nested OR into OR,
// one level at each site, recursively.
func NewFlattenRule() *FuncRule {
	name := qname("Flatten")
	return &FuncRule{
		RuleName: name,
		Desc:     "collapses nested AND/OR into a single flat AND/OR",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			var produced []logic.Deduction
			for _, f := range obtained {
				flat := f.Flatten()
				if flat.IsIdenticalTo(f) {
					continue
				}
				d := logic.NewDeduction(name, flat, []*logic.Formula{f}, nil)
				if goalReached(flat, desired) {
					return logic.Reached(d)
				}
				produced = append(produced, d)
			}
			return logic.NotReached(produced...)
		},
	}
}

// NewIdentityAndRule implements Q ∧ P ∧ P ⇒ Q ∧ P: duplicate conjuncts
// (AC-aware, via regular form) collapse to one.
func NewIdentityAndRule() *FuncRule {
	return newIdentityRule(qname("IdentityAnd"), "removes duplicate conjuncts from an AND", logic.FAnd, logic.NewAnd)
}

// NewIdentityOrRule implements Q ∨ P ∨ P ⇒ Q ∨ P.
func NewIdentityOrRule() *FuncRule {
	return newIdentityRule(qname("IdentityOr"), "removes duplicate disjuncts from an OR", logic.FOr, logic.NewOr)
}

func newIdentityRule(name logic.QualifiedName, desc string, kind logic.FormulaKind, build func(...*logic.Formula) *logic.Formula) *FuncRule {
	return &FuncRule{
		RuleName: name,
		Desc:     desc,
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			var produced []logic.Deduction
			for _, f := range obtained {
				flat := f.Flatten()
				if flat.Kind() != kind {
					continue
				}
				deduped := dedupByRegularForm(flat.Children())
				if len(deduped) == len(flat.Children()) {
					continue
				}
				g := build(deduped...)
				d := logic.NewDeduction(name, g, []*logic.Formula{f}, nil)
				if goalReached(g, desired) {
					return logic.Reached(d)
				}
				produced = append(produced, d)
			}
			return logic.NotReached(produced...)
		},
	}
}

// NewAbsorptionAndRule implements R ∧ P ∧ (P ∨ Q) ⇒ R ∧ P.
func NewAbsorptionAndRule() *FuncRule {
	name := qname("AbsorptionAnd")
	return &FuncRule{
		RuleName: name,
		Desc:     "drops an OR conjunct already implied by a sibling conjunct",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			var produced []logic.Deduction
			for _, f := range obtained {
				flat := f.Flatten()
				if flat.Kind() != logic.FAnd {
					continue
				}
				children := flat.Children()
				for i, c := range children {
					or := c.Flatten()
					if or.Kind() != logic.FOr {
						continue
					}
					if !anyChildMatchesSibling(or.Children(), children, i) {
						continue
					}
					rest := withoutIndex(children, i)
					g := logic.NewAnd(rest...)
					if len(rest) == 1 {
						g = rest[0]
					}
					d := logic.NewDeduction(name, g, []*logic.Formula{f}, nil)
					if goalReached(g, desired) {
						return logic.Reached(d)
					}
					produced = append(produced, d)
				}
			}
			return logic.NotReached(produced...)
		},
	}
}

// NewAbsorptionOrRule implements R ∨ P ∨ (P ∧ Q) ⇒ R ∨ P.
func NewAbsorptionOrRule() *FuncRule {
	name := qname("AbsorptionOr")
	return &FuncRule{
		RuleName: name,
		Desc:     "drops an AND disjunct already implied by a sibling disjunct",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			var produced []logic.Deduction
			for _, f := range obtained {
				flat := f.Flatten()
				if flat.Kind() != logic.FOr {
					continue
				}
				children := flat.Children()
				for i, c := range children {
					and := c.Flatten()
					if and.Kind() != logic.FAnd {
						continue
					}
					if !anyChildMatchesSibling(and.Children(), children, i) {
						continue
					}
					rest := withoutIndex(children, i)
					g := logic.NewOr(rest...)
					if len(rest) == 1 {
						g = rest[0]
					}
					d := logic.NewDeduction(name, g, []*logic.Formula{f}, nil)
					if goalReached(g, desired) {
						return logic.Reached(d)
					}
					produced = append(produced, d)
				}
			}
			return logic.NotReached(produced...)
		},
	}
}

// anyChildMatchesSibling reports whether any of innerChildren is
// regular-form-equal to a sibling of outerChildren other than the one
// at skipIndex.
func anyChildMatchesSibling(innerChildren, outerChildren []*logic.Formula, skipIndex int) bool {
	for _, inner := range innerChildren {
		for j, sib := range outerChildren {
			if j == skipIndex {
				continue
			}
			if regularEqual(inner, sib) {
				return true
			}
		}
	}
	return false
}

// NewAndProjectRule implements Q ∧ P ⇒ P: every conjunct of a known
// conjunction is independently derivable.
func NewAndProjectRule() *FuncRule {
	name := qname("AndProject")
	return &FuncRule{
		RuleName: name,
		Desc:     "projects each conjunct of a known AND out as its own fact",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			var produced []logic.Deduction
			for _, f := range obtained {
				flat := f.Flatten()
				if flat.Kind() != logic.FAnd {
					continue
				}
				for _, c := range flat.Children() {
					d := logic.NewDeduction(name, c, []*logic.Formula{f}, nil)
					if goalReached(c, desired) {
						return logic.Reached(d)
					}
					produced = append(produced, d)
				}
			}
			return logic.NotReached(produced...)
		},
	}
}

// NewAndConstructRule implements the goal-only rule: succeeds iff the
// goal is an AndFormula and every child's regular form is present in
// the persistent context (see the Open Question decision on whether
// `obtained`-only members may close it: they may not).
func NewAndConstructRule() *FuncRule {
	name := qname("AndConstruct")
	return &FuncRule{
		RuleName: name,
		Desc:     "closes an AND goal when every conjunct is already a known fact",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			if desired == nil {
				return logic.NotReached()
			}
			flat := desired.Flatten()
			if flat.Kind() != logic.FAnd {
				return logic.NotReached()
			}
			deps := make([]*logic.Formula, 0, len(flat.Children()))
			for _, c := range flat.Children() {
				rep, ok := ctx.Lookup(c.RegularForm().RegularKey())
				if !ok {
					return logic.NotReached()
				}
				deps = append(deps, rep)
			}
			return logic.Reached(logic.NewDeduction(name, desired, deps, nil))
		},
	}
}

// NewExcludeMiddleRule implements the goal-only rule: succeeds iff the
// goal matches P ∨ ¬P, with no dependencies.
func NewExcludeMiddleRule() *FuncRule {
	name := qname("ExcludeMiddle")
	return &FuncRule{
		RuleName: name,
		Desc:     "closes a P ∨ ¬P goal unconditionally",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			if desired == nil {
				return logic.NotReached()
			}
			flat := desired.Flatten()
			if flat.Kind() != logic.FOr || len(flat.Children()) != 2 {
				return logic.NotReached()
			}
			a, b := flat.Children()[0], flat.Children()[1]
			if (a.Kind() == logic.FNot && regularEqual(a.Child(), b)) ||
				(b.Kind() == logic.FNot && regularEqual(b.Child(), a)) {
				return logic.Reached(logic.NewDeduction(name, desired, nil, nil))
			}
			return logic.NotReached()
		},
	}
}
