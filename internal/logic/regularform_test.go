package logic_test

import (
	"testing"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/stretchr/testify/assert"
)

func TestRegularFormIsACInvariant(t *testing.T) {
	p, q, r := pred("P"), pred("Q"), pred("R")
	left := logic.NewAnd(p, logic.NewAnd(q, r))
	right := logic.NewAnd(r, logic.NewAnd(p, q))
	assert.True(t, left.RegularForm().IsIdenticalTo(right.RegularForm()))
}

func TestRegularFormDedupsDuplicates(t *testing.T) {
	p := pred("P")
	withDup := logic.NewAnd(p, p, pred("Q"))
	without := logic.NewAnd(p, pred("Q"))
	assert.True(t, withDup.RegularForm().IsIdenticalTo(without.RegularForm()))
}

func TestRegularFormAlphaRenamesConsistently(t *testing.T) {
	body1 := logic.NewPredicate("P", logic.NewVar("x"))
	body2 := logic.NewPredicate("P", logic.NewVar("y"))
	f1 := logic.NewForAll("x", body1)
	f2 := logic.NewForAll("y", body2)
	assert.True(t, f1.RegularForm().IsIdenticalTo(f2.RegularForm()))
}

func TestRegularFormIdempotent(t *testing.T) {
	f := logic.NewOr(pred("Q"), logic.NewAnd(pred("P"), pred("P")))
	once := f.RegularForm()
	twice := once.RegularForm()
	assert.True(t, once.IsIdenticalTo(twice))
}

func TestRegularFormDistinguishesNonEquivalent(t *testing.T) {
	a := logic.NewAnd(pred("P"), pred("Q"))
	b := logic.NewAnd(pred("P"), pred("R"))
	assert.False(t, a.RegularForm().IsIdenticalTo(b.RegularForm()))
}

func TestRegularFormNestedQuantifiersDepthKeyed(t *testing.T) {
	inner := logic.NewPredicate("P", logic.NewVar("x"), logic.NewVar("y"))
	f1 := logic.NewForAll("x", logic.NewExist("y", inner))
	f2 := logic.NewForAll("a", logic.NewExist("b", logic.NewPredicate("P", logic.NewVar("a"), logic.NewVar("b"))))
	assert.True(t, f1.RegularForm().IsIdenticalTo(f2.RegularForm()))
}
