// Package match supplies the pattern matcher the rule engine consumes:
// given a pattern formula built with named holes and a subject
// formula, it yields variable bindings for every subtree at which the
// pattern fits, and can rebuild the subject with one matched subtree
// rewritten. It is the matcher collaborator the core formula package
// treats as external.
package match

import "github.com/beadslogic/prove/internal/logic"

// Bindings carries the holes resolved during one match attempt. A
// formula hole (P, Q, phi, ...) resolves to a *logic.Formula; a term
// hole (x, y, ...) resolves to a logic.Term.
type Bindings struct {
	Formulas map[string]*logic.Formula
	Terms    map[string]logic.Term
}

// NewBindings returns an empty binding set.
func NewBindings() *Bindings {
	return &Bindings{Formulas: map[string]*logic.Formula{}, Terms: map[string]logic.Term{}}
}

// Formula looks up a bound formula hole. ok is false if the hole was
// never bound, which is a programmer error in the rule that built the
// pattern or the replacer.
func (b *Bindings) Formula(name string) (*logic.Formula, bool) {
	f, ok := b.Formulas[name]
	return f, ok
}

// Term looks up a bound term hole.
func (b *Bindings) Term(name string) (logic.Term, bool) {
	t, ok := b.Terms[name]
	return t, ok
}

// MatchResult pairs the bindings produced at one match site with the
// subtree (the witness) they were matched against.
type MatchResult struct {
	Bindings *Bindings
	Witness  *logic.Formula
}

// Replacement is the result of rewriting one match site: Result is the
// whole subject formula with Witness replaced by the transform's
// output.
type Replacement struct {
	Result  *logic.Formula
	Witness *logic.Formula
}

// Matcher is the matcher collaborator's contract: find every subtree
// of a subject that a pattern fits, and rewrite one matched subtree at
// a time.
type Matcher interface {
	// Match returns one MatchResult per subtree of subject the pattern
	// structurally fits, searching the whole tree, not only the root.
	Match(subject *logic.Formula) []MatchResult
	// ReplaceOneWith returns one Replacement per match site: the
	// subject with that site's subtree replaced by transform's result
	// given that site's bindings.
	ReplaceOneWith(subject *logic.Formula, transform func(*Bindings) *logic.Formula) []Replacement
}

// StructuralMatcher is a recursive structural unifier: it walks the
// pattern and a candidate subtree in lock-step, binding FFormulaHole
// and FNamedHole formula nodes and TermHole term nodes as it goes.
//
// It does not implement AC (associative-commutative) matching over
// AndFormula/OrFormula children — the built-in rules whose contracts
// need that (IdentityAnd, AbsorptionAnd, AndProject, and their Or
// duals) operate directly on a formula's flattened, regularized
// children instead of going through a Matcher; see the rules package.
// StructuralMatcher serves the built-ins whose patterns have fixed
// shape: DoubleNegate, DefImply, DefEquivTo.
type StructuralMatcher struct {
	Pattern *logic.Formula
	Strict  bool
}

// FromFormula builds a StructuralMatcher from an example formula. When
// strict is true the example is taken as a literal pattern: any holes
// it contains still bind normally, but the matcher never treats a
// subject node as compatible on anything looser than exact kind
// equality. Non-strict FromFormula matchers are otherwise identical;
// the flag exists for collaborators (the builder DSL, tests) that
// construct a matcher from a formula without first deciding whether
// its holes, if any, should be honored loosely.
func FromFormula(example *logic.Formula, strict bool) *StructuralMatcher {
	return &StructuralMatcher{Pattern: example, Strict: strict}
}

// MatchRoot attempts to fit the pattern against subject itself, without
// searching subtrees. Used by replacer directions whose pattern is (or
// contains at top level) a bare hole, which would otherwise match every
// subtree of subject via Match.
func (m *StructuralMatcher) MatchRoot(subject *logic.Formula) (*Bindings, bool) {
	b := NewBindings()
	return b, unify(m.Pattern, subject, b)
}

// Match implements Matcher.
func (m *StructuralMatcher) Match(subject *logic.Formula) []MatchResult {
	var results []MatchResult
	for _, sub := range subformulas(subject) {
		b := NewBindings()
		if unify(m.Pattern, sub, b) {
			results = append(results, MatchResult{Bindings: b, Witness: sub})
		}
	}
	return results
}

// ReplaceOneWith implements Matcher.
func (m *StructuralMatcher) ReplaceOneWith(subject *logic.Formula, transform func(*Bindings) *logic.Formula) []Replacement {
	var out []Replacement
	for _, res := range m.Match(subject) {
		replacement := transform(res.Bindings)
		out = append(out, Replacement{
			Result:  replaceAt(subject, res.Witness, replacement),
			Witness: res.Witness,
		})
	}
	return out
}

// subformulas returns every node of f, in pre-order, including f
// itself. Pointers are shared with f's own tree so callers can compare
// by identity.
func subformulas(f *logic.Formula) []*logic.Formula {
	if f == nil {
		return nil
	}
	out := []*logic.Formula{f}
	switch f.Kind() {
	case logic.FNot:
		out = append(out, subformulas(f.Child())...)
	case logic.FAnd, logic.FOr:
		for _, c := range f.Children() {
			out = append(out, subformulas(c)...)
		}
	case logic.FImply, logic.FEquiv:
		out = append(out, subformulas(f.P())...)
		out = append(out, subformulas(f.Q())...)
	case logic.FForAll, logic.FExist:
		out = append(out, subformulas(f.Body())...)
	}
	return out
}

// replaceAt rewrites root, substituting replacement for the node
// identical-by-pointer to target. It assumes target came from a
// subformulas(root) traversal, so exactly one node qualifies.
func replaceAt(root, target, replacement *logic.Formula) *logic.Formula {
	if root == target {
		return replacement
	}
	switch root.Kind() {
	case logic.FNot:
		return logic.NewNot(replaceAt(root.Child(), target, replacement))
	case logic.FAnd:
		children := make([]*logic.Formula, len(root.Children()))
		for i, c := range root.Children() {
			children[i] = replaceAt(c, target, replacement)
		}
		return logic.NewAnd(children...)
	case logic.FOr:
		children := make([]*logic.Formula, len(root.Children()))
		for i, c := range root.Children() {
			children[i] = replaceAt(c, target, replacement)
		}
		return logic.NewOr(children...)
	case logic.FImply:
		return logic.NewImply(replaceAt(root.P(), target, replacement), replaceAt(root.Q(), target, replacement))
	case logic.FEquiv:
		return logic.NewEquiv(replaceAt(root.P(), target, replacement), replaceAt(root.Q(), target, replacement))
	case logic.FForAll:
		return logic.NewForAll(root.QVar(), replaceAt(root.Body(), target, replacement))
	case logic.FExist:
		return logic.NewExist(root.QVar(), replaceAt(root.Body(), target, replacement))
	default:
		return root
	}
}
