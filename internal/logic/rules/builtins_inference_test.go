package rules_test

import (
	"testing"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplyComposeChainsTwoImplications(t *testing.T) {
	p, q, r := pred("P"), pred("Q"), pred("R")
	pq, qr := logic.NewImply(p, q), logic.NewImply(q, r)
	ctx := newContext(pq, qr)

	rule := rules.NewImplyComposeRule()
	result := rule.ApplyToward(ctx, []*logic.Formula{pq}, nil, nil)

	require.NotEmpty(t, result.Deductions())
	want := logic.NewImply(p, r)
	found := false
	for _, d := range result.Deductions() {
		if d.Produced.IsIdenticalTo(want) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestImplyModusPonens(t *testing.T) {
	p, q := pred("P"), pred("Q")
	pq := logic.NewImply(p, q)
	ctx := newContext(p, pq)

	rule := rules.NewImplyRule()
	result := rule.ApplyToward(ctx, []*logic.Formula{pq}, nil, q)

	require.True(t, result.IsReached())
	assert.True(t, result.Deduction().Produced.IsIdenticalTo(q))
	assert.Len(t, result.Deduction().Dependencies, 2)
}

func TestImplyModusPonensSymmetricNewFactOldImplication(t *testing.T) {
	p, q := pred("P"), pred("Q")
	pq := logic.NewImply(p, q)
	ctx := newContext(pq)

	rule := rules.NewImplyRule()
	result := rule.ApplyIncremental(ctx, []*logic.Formula{p}, nil, nil, q)

	require.True(t, result.IsReached())
}

func TestEqualReplaceSubstitutesInFact(t *testing.T) {
	x, y := logic.NewVar("x"), logic.NewVar("y")
	eq := logic.NewPredicate("=", x, y)
	fact := logic.NewPredicate("phi", x)
	ctx := newContext(eq, fact)

	rule := rules.NewEqualReplaceRule()
	result := rule.ApplyToward(ctx, []*logic.Formula{eq}, nil, nil)

	require.NotEmpty(t, result.Deductions())
	want := logic.NewPredicate("phi", y)
	found := false
	for _, d := range result.Deductions() {
		if d.Produced.IsIdenticalTo(want) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestExistConstantGeneralizesConstant(t *testing.T) {
	c := logic.NewConst("c")
	fact := logic.NewPredicate("phi", c)
	ctx := newContext(fact)

	rule := rules.NewExistConstantRule()
	result := rule.ApplyToward(ctx, []*logic.Formula{fact}, nil, nil)

	require.NotEmpty(t, result.Deductions())
	d := result.Deductions()[0]
	assert.Equal(t, logic.FExist, d.Produced.Kind())
	assert.Equal(t, "c", d.Metadata["constant"])
}

func TestExistConstantHonorsTermsHint(t *testing.T) {
	c1, c2 := logic.NewConst("c1"), logic.NewConst("c2")
	fact := logic.NewPredicate("phi", c1, c2)
	ctx := newContext(fact)

	rule := rules.NewExistConstantRule()
	result := rule.ApplyToward(ctx, []*logic.Formula{fact}, []logic.Term{c1}, nil)

	require.NotEmpty(t, result.Deductions())
	for _, d := range result.Deductions() {
		assert.Equal(t, "c1", d.Metadata["constant"])
	}
}

func TestExistConstantUnhintedOrderIsDeterministic(t *testing.T) {
	c1, c2 := logic.NewConst("c1"), logic.NewConst("c2")
	fact := logic.NewPredicate("phi", c1, c2)

	var first []string
	for i := 0; i < 20; i++ {
		ctx := newContext(fact)
		rule := rules.NewExistConstantRule()
		result := rule.ApplyToward(ctx, []*logic.Formula{fact}, nil, nil)
		require.Len(t, result.Deductions(), 2)

		order := make([]string, len(result.Deductions()))
		for j, d := range result.Deductions() {
			order[j] = d.Metadata["constant"].(string)
		}
		if i == 0 {
			first = order
			continue
		}
		assert.Equal(t, first, order, "ExistConstant's deduction order must not depend on map iteration order")
	}
}

func TestForAnyVariableUnhintedOrderIsDeterministic(t *testing.T) {
	x, y := logic.NewVar("x"), logic.NewVar("y")
	fact := logic.NewPredicate("phi", x, y)

	var first []string
	for i := 0; i < 20; i++ {
		ctx := newContext(fact)
		rule := rules.NewForAnyVariableRule()
		result := rule.ApplyToward(ctx, []*logic.Formula{fact}, nil, nil)
		require.Len(t, result.Deductions(), 2)

		order := make([]string, len(result.Deductions()))
		for j, d := range result.Deductions() {
			order[j] = d.Metadata["variable"].(string)
		}
		if i == 0 {
			first = order
			continue
		}
		assert.Equal(t, first, order, "ForAnyVariable's deduction order must not depend on map iteration order")
	}
}

func TestForAnyVariableGeneralizesFreeVariable(t *testing.T) {
	x := logic.NewVar("x")
	fact := logic.NewPredicate("phi", x)
	ctx := newContext(fact)

	rule := rules.NewForAnyVariableRule()
	result := rule.ApplyToward(ctx, []*logic.Formula{fact}, nil, nil)

	require.NotEmpty(t, result.Deductions())
	d := result.Deductions()[0]
	assert.Equal(t, logic.FForAll, d.Produced.Kind())
	assert.Equal(t, "x", d.Metadata["variable"])
}

func TestForAnyAndMergesTwoUniversals(t *testing.T) {
	x, y := logic.Variable("x"), logic.Variable("y")
	f1 := logic.NewForAll(x, logic.NewPredicate("phi", logic.NewVar(x)))
	f2 := logic.NewForAll(y, logic.NewPredicate("psi", logic.NewVar(y)))
	ctx := newContext(f1, f2)

	rule := rules.NewForAnyAndRule()
	result := rule.ApplyToward(ctx, []*logic.Formula{f1}, nil, nil)

	require.NotEmpty(t, result.Deductions())
	found := false
	for _, d := range result.Deductions() {
		if d.Produced.Kind() == logic.FForAll && d.Produced.Body().Kind() == logic.FAnd {
			found = true
		}
	}
	assert.True(t, found)
}

func TestForAnyAndSplitsUniversalOverConjunction(t *testing.T) {
	x := logic.Variable("x")
	body := logic.NewAnd(logic.NewPredicate("phi", logic.NewVar(x)), logic.NewPredicate("psi", logic.NewVar(x)))
	f := logic.NewForAll(x, body)
	ctx := newContext(f)

	rule := rules.NewForAnyAndRule()
	result := rule.ApplyToward(ctx, []*logic.Formula{f}, nil, nil)

	require.Len(t, result.Deductions(), 2)
}
