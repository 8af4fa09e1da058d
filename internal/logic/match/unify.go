package match

import "github.com/beadslogic/prove/internal/logic"

// unify attempts to fit pattern against subject exactly at this node,
// recording hole bindings into b as it descends. A hole bound earlier
// in the same attempt must agree (by IsIdenticalTo) with every later
// occurrence of the same name — this is what makes a pattern like
// "P -> P" require both sides to be the same formula.
func unify(pattern, subject *logic.Formula, b *Bindings) bool {
	switch pattern.Kind() {
	case logic.FFormulaHole:
		return bindFormula(b, pattern.HoleName(), subject)
	case logic.FNamedHole:
		if subject.Kind() != logic.FNamed {
			return false
		}
		return bindFormula(b, pattern.HoleName(), subject)
	case logic.FPredicate, logic.FNamed:
		if subject.Kind() != pattern.Kind() || subject.Pred() != pattern.Pred() {
			return false
		}
		if len(subject.Args()) != len(pattern.Args()) {
			return false
		}
		for i := range pattern.Args() {
			if !unifyTerm(pattern.Args()[i], subject.Args()[i], b) {
				return false
			}
		}
		return true
	case logic.FNot:
		return subject.Kind() == logic.FNot && unify(pattern.Child(), subject.Child(), b)
	case logic.FImply:
		return subject.Kind() == logic.FImply &&
			unify(pattern.P(), subject.P(), b) &&
			unify(pattern.Q(), subject.Q(), b)
	case logic.FEquiv:
		return subject.Kind() == logic.FEquiv &&
			unify(pattern.P(), subject.P(), b) &&
			unify(pattern.Q(), subject.Q(), b)
	case logic.FAnd:
		return subject.Kind() == logic.FAnd && unifyChildrenInOrder(pattern.Children(), subject.Children(), b)
	case logic.FOr:
		return subject.Kind() == logic.FOr && unifyChildrenInOrder(pattern.Children(), subject.Children(), b)
	case logic.FForAll:
		return subject.Kind() == logic.FForAll && pattern.QVar() == subject.QVar() && unify(pattern.Body(), subject.Body(), b)
	case logic.FExist:
		return subject.Kind() == logic.FExist && pattern.QVar() == subject.QVar() && unify(pattern.Body(), subject.Body(), b)
	}
	return false
}

// unifyChildrenInOrder matches two AND/OR child lists position by
// position. It does not try permutations: patterns that need
// AC-aware (order-independent) matching over AND/OR children are
// handled directly in the rules package instead of through Matcher.
func unifyChildrenInOrder(pats, subs []*logic.Formula, b *Bindings) bool {
	if len(pats) != len(subs) {
		return false
	}
	for i := range pats {
		if !unify(pats[i], subs[i], b) {
			return false
		}
	}
	return true
}

func bindFormula(b *Bindings, name string, subject *logic.Formula) bool {
	if existing, ok := b.Formulas[name]; ok {
		return existing.IsIdenticalTo(subject)
	}
	b.Formulas[name] = subject
	return true
}

func bindTerm(b *Bindings, name string, subject logic.Term) bool {
	if existing, ok := b.Terms[name]; ok {
		return existing.IsIdenticalTo(subject)
	}
	b.Terms[name] = subject
	return true
}

func unifyTerm(pattern, subject logic.Term, b *Bindings) bool {
	switch pattern.Kind() {
	case logic.TermHole:
		return bindTerm(b, pattern.HoleName(), subject)
	case logic.TermVar:
		return subject.Kind() == logic.TermVar && subject.Var() == pattern.Var()
	case logic.TermConst:
		return subject.Kind() == logic.TermConst && subject.Const() == pattern.Const()
	case logic.TermFun:
		if subject.Kind() != logic.TermFun || subject.Fun() != pattern.Fun() || len(subject.Args()) != len(pattern.Args()) {
			return false
		}
		for i := range pattern.Args() {
			if !unifyTerm(pattern.Args()[i], subject.Args()[i], b) {
				return false
			}
		}
		return true
	case logic.TermRef:
		return unifyTerm(pattern.Ref(), subject, b)
	}
	return false
}
