package rules

import (
	"sort"

	"github.com/beadslogic/prove/internal/logic"
)

// NewImplyComposeRule implements (P→Q) ∧ (Q→R) ⇒ P→R, joining any two
// known implications that chain.
func NewImplyComposeRule() *FuncRule {
	name := qname("ImplyCompose")
	return &FuncRule{
		RuleName: name,
		Desc:     "chains two known implications P→Q and Q→R into P→R",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			known := allKnown(ctx, obtained)
			var produced []logic.Deduction
			for _, f1 := range obtained {
				if f1.Kind() != logic.FImply {
					continue
				}
				for _, f2 := range known {
					if f2.Kind() != logic.FImply || f1 == f2 {
						continue
					}
					// The frontier implication may be either link of the chain.
					for _, pair := range [][2]*logic.Formula{{f1, f2}, {f2, f1}} {
						first, second := pair[0], pair[1]
						if !regularEqual(first.Q(), second.P()) {
							continue
						}
						g := logic.NewImply(first.P(), second.Q())
						d := logic.NewDeduction(name, g, []*logic.Formula{first, second}, nil)
						if goalReached(g, desired) {
							return logic.Reached(d)
						}
						produced = append(produced, d)
					}
				}
			}
			return logic.NotReached(produced...)
		},
	}
}

// NewImplyRule implements modus ponens: given P→Q in obtained and a
// known fact whose regular form equals P, yields Q. It also considers
// the symmetric case of a newly obtained fact matching a
// previously-known implication, so either side arriving first closes
// the step in the same search round it becomes available.
func NewImplyRule() *FuncRule {
	name := qname("Imply")
	return &FuncRule{
		RuleName: name,
		Desc:     "modus ponens: from P→Q and P, derive Q",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			known := allKnown(ctx, obtained)
			var produced []logic.Deduction
			emit := func(impl, fact *logic.Formula) *logic.TowardResult {
				g := impl.Q()
				d := logic.NewDeduction(name, g, []*logic.Formula{fact, impl}, nil)
				if goalReached(g, desired) {
					r := logic.Reached(d)
					return &r
				}
				produced = append(produced, d)
				return nil
			}
			for _, impl := range obtained {
				if impl.Kind() != logic.FImply {
					continue
				}
				for _, fact := range known {
					if fact == impl || !regularEqual(fact, impl.P()) {
						continue
					}
					if r := emit(impl, fact); r != nil {
						return *r
					}
				}
			}
			for _, fact := range obtained {
				for _, impl := range known {
					if impl == fact || impl.Kind() != logic.FImply {
						continue
					}
					if !regularEqual(fact, impl.P()) {
						continue
					}
					if r := emit(impl, fact); r != nil {
						return *r
					}
				}
			}
			return logic.NotReached(produced...)
		},
	}
}

// NewEqualReplaceRule implements x=y ∧ φ(x) ⇒ φ(y): wherever term x
// occurs inside a known fact, substitute y, given a known equality
// atom "="(x, y).
func NewEqualReplaceRule() *FuncRule {
	name := qname("EqualReplace")
	return &FuncRule{
		RuleName: name,
		Desc:     "substitutes y for x inside a fact, given a known x=y",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			known := allKnown(ctx, obtained)
			var produced []logic.Deduction
			equalities := func(fs []*logic.Formula) []*logic.Formula {
				var out []*logic.Formula
				for _, f := range fs {
					if f.Kind() == logic.FPredicate && f.Pred() == "=" && len(f.Args()) == 2 {
						out = append(out, f)
					}
				}
				return out
			}
			tryPair := func(eq, fact *logic.Formula) *logic.TowardResult {
				x, y := eq.Args()[0], eq.Args()[1]
				g := fact.RecurMapTerm(func(t logic.Term) logic.Term {
					if t.IsIdenticalTo(x) {
						return y
					}
					return t
				})
				if g.IsIdenticalTo(fact) {
					return nil
				}
				d := logic.NewDeduction(name, g, []*logic.Formula{eq, fact}, nil)
				if goalReached(g, desired) {
					r := logic.Reached(d)
					return &r
				}
				produced = append(produced, d)
				return nil
			}
			for _, eq := range equalities(obtained) {
				for _, fact := range known {
					if fact == eq {
						continue
					}
					if r := tryPair(eq, fact); r != nil {
						return *r
					}
				}
			}
			for _, fact := range obtained {
				for _, eq := range equalities(known) {
					if fact == eq {
						continue
					}
					if r := tryPair(eq, fact); r != nil {
						return *r
					}
				}
			}
			return logic.NotReached(produced...)
		},
	}
}

// NewExistConstantRule implements: from φ(c) for a constant c
// occurring in a known fact, derive ∃x. φ(x) with x fresh. When terms
// hints one or more constants, only those constants are generalized.
func NewExistConstantRule() *FuncRule {
	name := qname("ExistConstant")
	return &FuncRule{
		RuleName: name,
		Desc:     "generalizes a constant occurrence into an existential",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			hinted := hintedConstants(terms)
			var produced []logic.Deduction
			for _, f := range obtained {
				for _, c := range sortedConstants(f.AllConstants()) {
					if len(hinted) > 0 && !hinted[c] {
						continue
					}
					fresh := logic.NextVar(f)
					body := f.RecurMapTerm(func(t logic.Term) logic.Term {
						if t.Kind() == logic.TermConst && t.Const() == c {
							return logic.NewVar(fresh)
						}
						return t
					})
					g := logic.NewExist(fresh, body)
					d := logic.NewDeduction(name, g, []*logic.Formula{f}, map[string]any{"constant": string(c)})
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

func hintedConstants(terms []logic.Term) map[logic.Constant]bool {
	out := map[logic.Constant]bool{}
	for _, t := range terms {
		if t.Kind() == logic.TermConst {
			out[t.Const()] = true
		}
	}
	return out
}

// sortedConstants returns cs's keys in a fixed order so that a rule
// iterating the constants occurring in a formula produces the same
// result on every run, not whatever order Go's map iteration happens
// to pick.
func sortedConstants(cs map[logic.Constant]int) []logic.Constant {
	out := make([]logic.Constant, 0, len(cs))
	for c := range cs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NewForAnyVariableRule implements the documented semantics φ(x) ⇒
// ∀x. φ(x) (universal introduction over a free variable); see the
// accompanying design notes for why the alternative, existential,
// reading was rejected.
func NewForAnyVariableRule() *FuncRule {
	name := qname("ForAnyVariable")
	return &FuncRule{
		RuleName: name,
		Desc:     "generalizes a free variable into a universal",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			hinted := hintedVariables(terms)
			var produced []logic.Deduction
			for _, f := range obtained {
				for _, v := range sortedVariables(f.Variables()) {
					if len(hinted) > 0 && !hinted[v] {
						continue
					}
					g := logic.NewForAll(v, f)
					d := logic.NewDeduction(name, g, []*logic.Formula{f}, map[string]any{"variable": string(v)})
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

func hintedVariables(terms []logic.Term) map[logic.Variable]bool {
	out := map[logic.Variable]bool{}
	for _, t := range terms {
		if t.Kind() == logic.TermVar {
			out[t.Var()] = true
		}
	}
	return out
}

// sortedVariables returns vs's keys in a fixed order, for the same
// determinism reason as sortedConstants.
func sortedVariables(vs map[logic.Variable]bool) []logic.Variable {
	out := make([]logic.Variable, 0, len(vs))
	for v := range vs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NewForAnyAndRule implements (∀x. φ(x)) ∧ (∀y. ψ(y)) ≡ ∀z. (φ(z) ∧
// ψ(z)) in both directions: merging two universals sharing a fresh
// variable, and splitting a universal over a two-way conjunction back
// into two universals.
func NewForAnyAndRule() *FuncRule {
	name := qname("ForAnyAnd")
	return &FuncRule{
		RuleName: name,
		Desc:     "merges or splits universally quantified conjunctions",
		Incremental: func(ctx *logic.FormulaContext, obtained, formulas []*logic.Formula, terms []logic.Term, desired *logic.Formula) logic.TowardResult {
			known := allKnown(ctx, obtained)
			var produced []logic.Deduction

			tryMerge := func(f1, f2 *logic.Formula) *logic.TowardResult {
				if f1.Kind() != logic.FForAll || f2.Kind() != logic.FForAll || f1 == f2 {
					return nil
				}
				fresh := logic.NextVar(logic.NewAnd(f1.Body(), f2.Body()))
				b1 := f1.Body().ReplaceVar(map[logic.Variable]logic.Term{f1.QVar(): logic.NewVar(fresh)})
				b2 := f2.Body().ReplaceVar(map[logic.Variable]logic.Term{f2.QVar(): logic.NewVar(fresh)})
				g := logic.NewForAll(fresh, logic.NewAnd(b1, b2))
				d := logic.NewDeduction(name, g, []*logic.Formula{f1, f2}, nil)
				if goalReached(g, desired) {
					r := logic.Reached(d)
					return &r
				}
				produced = append(produced, d)
				return nil
			}
			for _, f1 := range obtained {
				for _, f2 := range known {
					if r := tryMerge(f1, f2); r != nil {
						return *r
					}
				}
			}

			for _, f := range obtained {
				if f.Kind() != logic.FForAll {
					continue
				}
				flat := f.Body().Flatten()
				if flat.Kind() != logic.FAnd || len(flat.Children()) != 2 {
					continue
				}
				for _, part := range flat.Children() {
					g := logic.NewForAll(f.QVar(), part)
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
