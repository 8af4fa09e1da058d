package logic

import "fmt"

// RegularForm returns the canonical representative of f's equivalence
// class under AND/OR associativity, AND/OR child-order commutativity,
// bound-variable alpha-renaming, and duplicate-conjunct/disjunct
// removal. Two formulas are equivalent under that relation exactly
// when their regular forms are IsIdenticalTo one another.
//
// Bound variables are renamed by nesting depth along the path from the
// root ("_b0", "_b1", ...), a de-Bruijn-flavored scheme chosen because
// it is deterministic and requires no global fresh-name bookkeeping:
// two alpha-equivalent subformulas reached at the same depth always
// rename to the same names.
func (f *Formula) RegularForm() *Formula {
	return canonicalize(f.Flatten(), 0)
}

func canonicalize(f *Formula, depth int) *Formula {
	switch f.kind {
	case FPredicate, FNamed, FFormulaHole, FNamedHole:
		return f
	case FNot:
		return NewNot(canonicalize(f.child, depth))
	case FAnd:
		return &Formula{kind: FAnd, children: canonicalizeACChildren(f.children, depth)}
	case FOr:
		return &Formula{kind: FOr, children: canonicalizeACChildren(f.children, depth)}
	case FImply:
		return NewImply(canonicalize(f.p, depth), canonicalize(f.q, depth))
	case FEquiv:
		return NewEquiv(canonicalize(f.p, depth), canonicalize(f.q, depth))
	case FForAll:
		fresh, body := renameBound(f.qvar, f.body, depth)
		return NewForAll(fresh, canonicalize(body, depth+1))
	case FExist:
		fresh, body := renameBound(f.qvar, f.body, depth)
		return NewExist(fresh, canonicalize(body, depth+1))
	}
	return f
}

func renameBound(qvar Variable, body *Formula, depth int) (Variable, *Formula) {
	fresh := Variable(fmt.Sprintf("_b%d", depth))
	return fresh, body.ReplaceVar(map[Variable]Term{qvar: NewVar(fresh)})
}

func canonicalizeACChildren(children []*Formula, depth int) []*Formula {
	out := make([]*Formula, len(children))
	for i, c := range children {
		out[i] = canonicalize(c, depth)
	}
	return dedupFormulas(out)
}

// dedupFormulas sorts fs by DefaultComparator and removes adjacent
// IsIdenticalTo duplicates.
func dedupFormulas(fs []*Formula) []*Formula {
	SortFormulas(fs)
	out := make([]*Formula, 0, len(fs))
	for _, c := range fs {
		if len(out) == 0 || !out[len(out)-1].IsIdenticalTo(c) {
			out = append(out, c)
		}
	}
	return out
}
