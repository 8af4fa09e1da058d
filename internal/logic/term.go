package logic

import (
	"fmt"
	"sort"
	"strings"
)

// Variable names a bound or free individual variable.
type Variable string

// Constant names an individual constant.
type Constant string

// Function names a function symbol applied to a fixed-arity argument list.
type Function string

// TermKind tags the variant held by a Term.
type TermKind int

const (
	// TermVar holds a Variable.
	TermVar TermKind = iota
	// TermConst holds a Constant.
	TermConst
	// TermFun holds a Function applied to child Terms.
	TermFun
	// TermRef is a matcher-binding placeholder, invisible to rules once substituted.
	TermRef
	// TermHole is a pattern-only placeholder bound during matching; never appears
	// in a formula produced by a rule.
	TermHole
)

// Term is an immutable node in a term tree: a variable, a constant, a
// function application, or (internally) a matcher placeholder.
type Term struct {
	kind TermKind
	v    Variable
	c    Constant
	fn   Function
	args []Term
	ref  *Term
	hole string
}

// NewVar builds a variable term.
func NewVar(v Variable) Term { return Term{kind: TermVar, v: v} }

// NewConst builds a constant term.
func NewConst(c Constant) Term { return Term{kind: TermConst, c: c} }

// NewFun builds a function-application term.
func NewFun(f Function, children ...Term) Term {
	return Term{kind: TermFun, fn: f, args: append([]Term(nil), children...)}
}

// NewRef wraps a term as a matcher-binding placeholder.
func NewRef(t Term) Term { return Term{kind: TermRef, ref: &t} }

// NewTermHole builds a pattern-only term hole with the given name.
func NewTermHole(name string) Term { return Term{kind: TermHole, hole: name} }

// Kind reports which variant t holds.
func (t Term) Kind() TermKind { return t.kind }

// Var returns the variable payload. Panics if Kind() != TermVar.
func (t Term) Var() Variable {
	if t.kind != TermVar {
		panic("logic: Var() called on non-variable term")
	}
	return t.v
}

// Const returns the constant payload. Panics if Kind() != TermConst.
func (t Term) Const() Constant {
	if t.kind != TermConst {
		panic("logic: Const() called on non-constant term")
	}
	return t.c
}

// Fun returns the function symbol. Panics if Kind() != TermFun.
func (t Term) Fun() Function {
	if t.kind != TermFun {
		panic("logic: Fun() called on non-function term")
	}
	return t.fn
}

// Args returns the function's children. Panics if Kind() != TermFun.
func (t Term) Args() []Term {
	if t.kind != TermFun {
		panic("logic: Args() called on non-function term")
	}
	return t.args
}

// Ref returns the wrapped term. Panics if Kind() != TermRef.
func (t Term) Ref() Term {
	if t.kind != TermRef {
		panic("logic: Ref() called on non-ref term")
	}
	return *t.ref
}

// HoleName returns the pattern hole's name. Panics if Kind() != TermHole.
func (t Term) HoleName() string {
	if t.kind != TermHole {
		panic("logic: HoleName() called on non-hole term")
	}
	return t.hole
}

// IsIdenticalTo reports strict structural equality (no AC, no alpha-renaming).
func (t Term) IsIdenticalTo(other Term) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case TermVar:
		return t.v == other.v
	case TermConst:
		return t.c == other.c
	case TermFun:
		if t.fn != other.fn || len(t.args) != len(other.args) {
			return false
		}
		for i := range t.args {
			if !t.args[i].IsIdenticalTo(other.args[i]) {
				return false
			}
		}
		return true
	case TermRef:
		return t.ref.IsIdenticalTo(*other.ref)
	case TermHole:
		return t.hole == other.hole
	}
	return false
}

// MapBottomUp rewrites t by applying f to every subterm, children first.
func (t Term) MapBottomUp(f func(Term) Term) Term {
	switch t.kind {
	case TermFun:
		newArgs := make([]Term, len(t.args))
		for i, a := range t.args {
			newArgs[i] = a.MapBottomUp(f)
		}
		return f(NewFun(t.fn, newArgs...))
	case TermRef:
		inner := t.ref.MapBottomUp(f)
		return f(NewRef(inner))
	default:
		return f(t)
	}
}

// Variables returns the set of variables occurring in t.
func (t Term) Variables() map[Variable]bool {
	out := map[Variable]bool{}
	t.collectVars(out)
	return out
}

func (t Term) collectVars(out map[Variable]bool) {
	switch t.kind {
	case TermVar:
		out[t.v] = true
	case TermFun:
		for _, a := range t.args {
			a.collectVars(out)
		}
	case TermRef:
		t.ref.collectVars(out)
	}
}

// Constants returns the multiset of constants occurring in t.
func (t Term) Constants() map[Constant]int {
	out := map[Constant]int{}
	t.collectConsts(out)
	return out
}

func (t Term) collectConsts(out map[Constant]int) {
	switch t.kind {
	case TermConst:
		out[t.c]++
	case TermFun:
		for _, a := range t.args {
			a.collectConsts(out)
		}
	case TermRef:
		t.ref.collectConsts(out)
	}
}

// ReplaceVar substitutes variables found in the mapping, bottom-up.
func (t Term) ReplaceVar(mapping map[Variable]Term) Term {
	return t.MapBottomUp(func(cur Term) Term {
		if cur.kind == TermVar {
			if repl, ok := mapping[cur.v]; ok {
				return repl
			}
		}
		return cur
	})
}

// key produces a deterministic string key used for total ordering and
// as part of a formula's regular-form key. It is not meant to be a
// user-facing rendering.
func (t Term) key() string {
	switch t.kind {
	case TermVar:
		return "v:" + string(t.v)
	case TermConst:
		return "c:" + string(t.c)
	case TermFun:
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.key()
		}
		return "f:" + string(t.fn) + "(" + strings.Join(parts, ",") + ")"
	case TermRef:
		return "r:" + t.ref.key()
	case TermHole:
		return "h:" + t.hole
	}
	return "?"
}

// CompareTerms imposes a total, deterministic order over terms.
func CompareTerms(a, b Term) int {
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

// SortTerms sorts terms in place using CompareTerms.
func SortTerms(ts []Term) {
	sort.Slice(ts, func(i, j int) bool { return CompareTerms(ts[i], ts[j]) < 0 })
}

func (t Term) String() string {
	switch t.kind {
	case TermVar:
		return string(t.v)
	case TermConst:
		return string(t.c)
	case TermFun:
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s(%s)", t.fn, strings.Join(parts, ", "))
	case TermRef:
		return "ref(" + t.ref.String() + ")"
	case TermHole:
		return "?" + t.hole
	}
	return "<invalid term>"
}
