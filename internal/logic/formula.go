package logic

import (
	"fmt"
	"sort"
	"strings"
)

// FormulaKind tags the variant held by a Formula.
type FormulaKind int

const (
	// FPredicate holds a predicate atom: p(t1, ..., tn).
	FPredicate FormulaKind = iota
	// FNamed holds a named-schema atom: name(t1, ..., tn).
	FNamed
	// FNot holds a negation.
	FNot
	// FAnd holds an associative-commutative conjunction.
	FAnd
	// FOr holds an associative-commutative disjunction.
	FOr
	// FImply holds a binary implication p -> q.
	FImply
	// FEquiv holds a binary equivalence p <-> q.
	FEquiv
	// FForAll holds a universally quantified formula.
	FForAll
	// FExist holds an existentially quantified formula.
	FExist
	// FFormulaHole is a pattern-only placeholder for an arbitrary formula.
	FFormulaHole
	// FNamedHole is a pattern-only placeholder that matches only a named atom.
	FNamedHole
)

// Formula is an immutable first-order-logic formula tree.
type Formula struct {
	kind FormulaKind

	// atomic
	pred string
	args []Term

	// unary
	child *Formula

	// n-ary AC
	children []*Formula

	// binary
	p, q *Formula

	// quantified
	body *Formula
	qvar Variable

	// hole (pattern use only)
	hole string
}

// NewPredicate builds a predicate atom p(args...).
func NewPredicate(p string, args ...Term) *Formula {
	return &Formula{kind: FPredicate, pred: p, args: append([]Term(nil), args...)}
}

// NewNamed builds a named-schema atom name(params...).
func NewNamed(name string, params ...Term) *Formula {
	return &Formula{kind: FNamed, pred: name, args: append([]Term(nil), params...)}
}

// NewNot builds a negation.
func NewNot(child *Formula) *Formula { return &Formula{kind: FNot, child: child} }

// NewAnd builds a conjunction over the given (unflattened) children.
func NewAnd(children ...*Formula) *Formula {
	return &Formula{kind: FAnd, children: append([]*Formula(nil), children...)}
}

// NewOr builds a disjunction over the given (unflattened) children.
func NewOr(children ...*Formula) *Formula {
	return &Formula{kind: FOr, children: append([]*Formula(nil), children...)}
}

// NewImply builds an implication p -> q.
func NewImply(p, q *Formula) *Formula { return &Formula{kind: FImply, p: p, q: q} }

// NewEquiv builds an equivalence p <-> q.
func NewEquiv(p, q *Formula) *Formula { return &Formula{kind: FEquiv, p: p, q: q} }

// NewForAll builds a universal quantification.
func NewForAll(v Variable, body *Formula) *Formula {
	return &Formula{kind: FForAll, qvar: v, body: body}
}

// NewExist builds an existential quantification.
func NewExist(v Variable, body *Formula) *Formula {
	return &Formula{kind: FExist, qvar: v, body: body}
}

// NewFormulaHole builds a pattern-only hole matching any formula.
func NewFormulaHole(name string) *Formula { return &Formula{kind: FFormulaHole, hole: name} }

// NewNamedHole builds a pattern-only hole matching any named atom.
func NewNamedHole(name string) *Formula { return &Formula{kind: FNamedHole, hole: name} }

// Kind reports which variant f holds.
func (f *Formula) Kind() FormulaKind { return f.kind }

// Pred returns the predicate or schema name. Valid for FPredicate and FNamed.
func (f *Formula) Pred() string { return f.pred }

// Args returns the atom's term arguments. Valid for FPredicate and FNamed.
func (f *Formula) Args() []Term { return f.args }

// Child returns the negated formula. Valid for FNot.
func (f *Formula) Child() *Formula { return f.child }

// Children returns the AC node's children. Valid for FAnd and FOr.
func (f *Formula) Children() []*Formula { return f.children }

// P returns the left side of a binary connective. Valid for FImply and FEquiv.
func (f *Formula) P() *Formula { return f.p }

// Q returns the right side of a binary connective. Valid for FImply and FEquiv.
func (f *Formula) Q() *Formula { return f.q }

// Body returns the quantified body. Valid for FForAll and FExist.
func (f *Formula) Body() *Formula { return f.body }

// QVar returns the bound variable. Valid for FForAll and FExist.
func (f *Formula) QVar() Variable { return f.qvar }

// HoleName returns the pattern hole's name. Valid for FFormulaHole and FNamedHole.
func (f *Formula) HoleName() string { return f.hole }

// IsIdenticalTo reports strict structural equality: no AC normalization,
// no alpha-renaming of bound variables.
func (f *Formula) IsIdenticalTo(other *Formula) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.kind != other.kind {
		return false
	}
	switch f.kind {
	case FPredicate, FNamed:
		if f.pred != other.pred || len(f.args) != len(other.args) {
			return false
		}
		for i := range f.args {
			if !f.args[i].IsIdenticalTo(other.args[i]) {
				return false
			}
		}
		return true
	case FNot:
		return f.child.IsIdenticalTo(other.child)
	case FAnd, FOr:
		if len(f.children) != len(other.children) {
			return false
		}
		for i := range f.children {
			if !f.children[i].IsIdenticalTo(other.children[i]) {
				return false
			}
		}
		return true
	case FImply, FEquiv:
		return f.p.IsIdenticalTo(other.p) && f.q.IsIdenticalTo(other.q)
	case FForAll, FExist:
		return f.qvar == other.qvar && f.body.IsIdenticalTo(other.body)
	case FFormulaHole, FNamedHole:
		return f.hole == other.hole
	}
	return false
}

// Flatten collapses nested AND into AND and nested OR into OR, one level
// at each site, recursively through the whole tree. It does not recurse
// into non-AC connectives beyond rebuilding their children.
func (f *Formula) Flatten() *Formula {
	switch f.kind {
	case FNot:
		return NewNot(f.child.Flatten())
	case FAnd:
		return &Formula{kind: FAnd, children: flattenChildren(f.children, FAnd)}
	case FOr:
		return &Formula{kind: FOr, children: flattenChildren(f.children, FOr)}
	case FImply:
		return NewImply(f.p.Flatten(), f.q.Flatten())
	case FEquiv:
		return NewEquiv(f.p.Flatten(), f.q.Flatten())
	case FForAll:
		return NewForAll(f.qvar, f.body.Flatten())
	case FExist:
		return NewExist(f.qvar, f.body.Flatten())
	default:
		return f
	}
}

func flattenChildren(children []*Formula, kind FormulaKind) []*Formula {
	var out []*Formula
	for _, c := range children {
		fc := c.Flatten()
		if fc.kind == kind {
			out = append(out, fc.children...)
		} else {
			out = append(out, fc)
		}
	}
	return out
}

// Variables returns the set of free variables occurring in f.
func (f *Formula) Variables() map[Variable]bool {
	out := map[Variable]bool{}
	f.collectVars(out, map[Variable]bool{})
	return out
}

func (f *Formula) collectVars(out, bound map[Variable]bool) {
	switch f.kind {
	case FPredicate, FNamed:
		for _, a := range f.args {
			for v := range a.Variables() {
				if !bound[v] {
					out[v] = true
				}
			}
		}
	case FNot:
		f.child.collectVars(out, bound)
	case FAnd, FOr:
		for _, c := range f.children {
			c.collectVars(out, bound)
		}
	case FImply, FEquiv:
		f.p.collectVars(out, bound)
		f.q.collectVars(out, bound)
	case FForAll, FExist:
		nb := map[Variable]bool{f.qvar: true}
		for v := range bound {
			nb[v] = true
		}
		f.body.collectVars(out, nb)
	}
}

// AllConstants returns the multiset of constants appearing anywhere in f's terms.
func (f *Formula) AllConstants() map[Constant]int {
	out := map[Constant]int{}
	f.collectConstants(out)
	return out
}

func (f *Formula) collectConstants(out map[Constant]int) {
	switch f.kind {
	case FPredicate, FNamed:
		for _, a := range f.args {
			for c, n := range a.Constants() {
				out[c] += n
			}
		}
	case FNot:
		f.child.collectConstants(out)
	case FAnd, FOr:
		for _, c := range f.children {
			c.collectConstants(out)
		}
	case FImply, FEquiv:
		f.p.collectConstants(out)
		f.q.collectConstants(out)
	case FForAll, FExist:
		f.body.collectConstants(out)
	}
}

// RecurMapTerm rewrites every term occurring in f via t.MapBottomUp(fn),
// preserving the formula's structure.
func (f *Formula) RecurMapTerm(fn func(Term) Term) *Formula {
	switch f.kind {
	case FPredicate:
		return NewPredicate(f.pred, mapTerms(f.args, fn)...)
	case FNamed:
		return NewNamed(f.pred, mapTerms(f.args, fn)...)
	case FNot:
		return NewNot(f.child.RecurMapTerm(fn))
	case FAnd:
		return &Formula{kind: FAnd, children: mapFormulas(f.children, fn)}
	case FOr:
		return &Formula{kind: FOr, children: mapFormulas(f.children, fn)}
	case FImply:
		return NewImply(f.p.RecurMapTerm(fn), f.q.RecurMapTerm(fn))
	case FEquiv:
		return NewEquiv(f.p.RecurMapTerm(fn), f.q.RecurMapTerm(fn))
	case FForAll:
		return NewForAll(f.qvar, f.body.RecurMapTerm(fn))
	case FExist:
		return NewExist(f.qvar, f.body.RecurMapTerm(fn))
	}
	return f
}

func mapTerms(ts []Term, fn func(Term) Term) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = t.MapBottomUp(fn)
	}
	return out
}

func mapFormulas(fs []*Formula, fn func(Term) Term) []*Formula {
	out := make([]*Formula, len(fs))
	for i, c := range fs {
		out[i] = c.RecurMapTerm(fn)
	}
	return out
}

// ReplaceVar substitutes free-variable occurrences per the mapping.
func (f *Formula) ReplaceVar(mapping map[Variable]Term) *Formula {
	return f.RecurMapTerm(func(t Term) Term {
		if t.Kind() == TermVar {
			if repl, ok := mapping[t.Var()]; ok {
				return repl
			}
		}
		return t
	})
}

// ReplaceNamed substitutes any NamedFormula atom whose name is in the
// mapping with the mapped replacement formula.
func (f *Formula) ReplaceNamed(mapping map[string]*Formula) *Formula {
	switch f.kind {
	case FNamed:
		if repl, ok := mapping[f.pred]; ok {
			return repl
		}
		return f
	case FNot:
		return NewNot(f.child.ReplaceNamed(mapping))
	case FAnd:
		return &Formula{kind: FAnd, children: replaceNamedSlice(f.children, mapping)}
	case FOr:
		return &Formula{kind: FOr, children: replaceNamedSlice(f.children, mapping)}
	case FImply:
		return NewImply(f.p.ReplaceNamed(mapping), f.q.ReplaceNamed(mapping))
	case FEquiv:
		return NewEquiv(f.p.ReplaceNamed(mapping), f.q.ReplaceNamed(mapping))
	case FForAll:
		return NewForAll(f.qvar, f.body.ReplaceNamed(mapping))
	case FExist:
		return NewExist(f.qvar, f.body.ReplaceNamed(mapping))
	default:
		return f
	}
}

func replaceNamedSlice(fs []*Formula, mapping map[string]*Formula) []*Formula {
	out := make([]*Formula, len(fs))
	for i, c := range fs {
		out[i] = c.ReplaceNamed(mapping)
	}
	return out
}

// NextVar returns a variable guaranteed not to occur (bound or free) in f.
func NextVar(f *Formula) Variable {
	used := map[Variable]bool{}
	f.collectAllVars(used)
	for i := 0; ; i++ {
		cand := Variable(fmt.Sprintf("v%d", i))
		if !used[cand] {
			return cand
		}
	}
}

func (f *Formula) collectAllVars(out map[Variable]bool) {
	switch f.kind {
	case FPredicate, FNamed:
		for _, a := range f.args {
			for v := range a.Variables() {
				out[v] = true
			}
		}
	case FNot:
		f.child.collectAllVars(out)
	case FAnd, FOr:
		for _, c := range f.children {
			c.collectAllVars(out)
		}
	case FImply, FEquiv:
		f.p.collectAllVars(out)
		f.q.collectAllVars(out)
	case FForAll, FExist:
		out[f.qvar] = true
		f.body.collectAllVars(out)
	}
}

// FreshNameSource deterministically hands out fresh variable names not
// already present in the "used" set supplied at construction time.
type FreshNameSource struct {
	used map[Variable]bool
	next int
}

// NewFreshNameSource builds a fresh-name supply seeded from f's variables.
func NewFreshNameSource(f *Formula) *FreshNameSource {
	used := map[Variable]bool{}
	f.collectAllVars(used)
	return &FreshNameSource{used: used}
}

func (s *FreshNameSource) Next() Variable {
	for {
		cand := Variable(fmt.Sprintf("v%d", s.next))
		s.next++
		if !s.used[cand] {
			s.used[cand] = true
			return cand
		}
	}
}

// RegularizeQualifiedVar alpha-renames every bound variable in f from the
// given fresh-name source, deterministically and capture-avoidingly.
func (f *Formula) RegularizeQualifiedVar(src *FreshNameSource) *Formula {
	switch f.kind {
	case FForAll:
		fresh := src.Next()
		newBody := f.body.ReplaceVar(map[Variable]Term{f.qvar: NewVar(fresh)})
		return NewForAll(fresh, newBody.RegularizeQualifiedVar(src))
	case FExist:
		fresh := src.Next()
		newBody := f.body.ReplaceVar(map[Variable]Term{f.qvar: NewVar(fresh)})
		return NewExist(fresh, newBody.RegularizeQualifiedVar(src))
	case FNot:
		return NewNot(f.child.RegularizeQualifiedVar(src))
	case FAnd:
		return &Formula{kind: FAnd, children: regularizeSlice(f.children, src)}
	case FOr:
		return &Formula{kind: FOr, children: regularizeSlice(f.children, src)}
	case FImply:
		return NewImply(f.p.RegularizeQualifiedVar(src), f.q.RegularizeQualifiedVar(src))
	case FEquiv:
		return NewEquiv(f.p.RegularizeQualifiedVar(src), f.q.RegularizeQualifiedVar(src))
	default:
		return f
	}
}

func regularizeSlice(fs []*Formula, src *FreshNameSource) []*Formula {
	out := make([]*Formula, len(fs))
	for i, c := range fs {
		out[i] = c.RegularizeQualifiedVar(src)
	}
	return out
}

// key produces a deterministic string encoding used for total ordering.
func (f *Formula) key() string {
	switch f.kind {
	case FPredicate:
		return "P:" + f.pred + argsKey(f.args)
	case FNamed:
		return "N:" + f.pred + argsKey(f.args)
	case FNot:
		return "!(" + f.child.key() + ")"
	case FAnd:
		return "&(" + childrenKey(f.children) + ")"
	case FOr:
		return "|(" + childrenKey(f.children) + ")"
	case FImply:
		return "->(" + f.p.key() + "," + f.q.key() + ")"
	case FEquiv:
		return "<->(" + f.p.key() + "," + f.q.key() + ")"
	case FForAll:
		return "A" + string(f.qvar) + ".(" + f.body.key() + ")"
	case FExist:
		return "E" + string(f.qvar) + ".(" + f.body.key() + ")"
	case FFormulaHole:
		return "?F:" + f.hole
	case FNamedHole:
		return "?N:" + f.hole
	}
	return "?"
}

func argsKey(args []Term) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.key()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func childrenKey(children []*Formula) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.key()
	}
	return strings.Join(parts, ",")
}

// RegularKey returns the deterministic string encoding of f, suitable
// as a map key for the regular-form-keyed sets the rule engine uses
// (FormulaContext.regularForms, the meta-rule's reached/obtained
// tables). Callers normally compute it from a formula already reduced
// via RegularForm.
func (f *Formula) RegularKey() string { return f.key() }

// FormulaComparator is a total order on formulas, consistent with
// IsIdenticalTo and stable across calls. Any implementation that
// satisfies those constraints is acceptable to the engine; the core
// depends only on having an order, not a specific one.
type FormulaComparator func(a, b *Formula) int

// DefaultComparator orders formulas by their deterministic key string.
// It is the FormulaComparator used throughout this package.
func DefaultComparator(a, b *Formula) int {
	ka, kb := a.key(), b.key()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// SortFormulas sorts formulas in place using DefaultComparator.
func SortFormulas(fs []*Formula) {
	sort.Slice(fs, func(i, j int) bool { return DefaultComparator(fs[i], fs[j]) < 0 })
}

func (f *Formula) String() string {
	switch f.kind {
	case FPredicate, FNamed:
		parts := make([]string, len(f.args))
		for i, a := range f.args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s(%s)", f.pred, strings.Join(parts, ", "))
	case FNot:
		return "¬" + f.child.String()
	case FAnd:
		return joinFormulas(f.children, " ∧ ")
	case FOr:
		return joinFormulas(f.children, " ∨ ")
	case FImply:
		return fmt.Sprintf("(%s → %s)", f.p, f.q)
	case FEquiv:
		return fmt.Sprintf("(%s ↔ %s)", f.p, f.q)
	case FForAll:
		return fmt.Sprintf("∀%s. %s", f.qvar, f.body)
	case FExist:
		return fmt.Sprintf("∃%s. %s", f.qvar, f.body)
	case FFormulaHole:
		return "?" + f.hole
	case FNamedHole:
		return "?" + f.hole
	}
	return "<invalid formula>"
}

func joinFormulas(fs []*Formula, sep string) string {
	parts := make([]string, len(fs))
	for i, c := range fs {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}
