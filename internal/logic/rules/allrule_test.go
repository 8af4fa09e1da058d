package rules_test

import (
	"testing"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pred(name string, args ...logic.Term) *logic.Formula { return logic.NewPredicate(name, args...) }

func newContext(fs ...*logic.Formula) *logic.FormulaContext {
	ctx := logic.NewFormulaContext()
	ctx.AddAll(fs)
	return ctx
}

// assertDepsSubsetOfContext checks scenario postcondition: a Reached
// result's leaf dependencies are all present in the original context.
func assertDepsSubsetOfContext(t *testing.T, ctx *logic.FormulaContext, result logic.TowardResult) {
	t.Helper()
	require.True(t, result.IsReached())
	d := result.Deduction()
	for _, dep := range d.Dependencies {
		assert.True(t, ctx.Contains(dep), "dependency %s not present in original context", dep)
	}
	tree, ok := d.Metadata["DeductionTree"].(*logic.DeductionNode)
	require.True(t, ok, "Reached result must carry a DeductionTree")
	tree.RecurApply(func(n *logic.DeductionNode) bool {
		if len(n.Children) == 0 {
			assert.True(t, ctx.Contains(n.Deduction.Produced), "leaf %s not present in original context", n.Deduction.Produced)
		}
		return true
	})
}

func TestScenario1ModusPonens(t *testing.T) {
	p, q := pred("P"), pred("Q")
	ctx := newContext(p, logic.NewImply(p, q))

	meta := rules.NewAllLogicRule(3)
	result := meta.ApplyToward(ctx, nil, nil, q)

	assertDepsSubsetOfContext(t, ctx, result)
}

func TestScenario2ExcludeMiddle(t *testing.T) {
	ctx := newContext()
	p := pred("P")
	goal := logic.NewOr(p, logic.NewNot(p))

	meta := rules.NewAllLogicRule(3)
	result := meta.ApplyToward(ctx, nil, nil, goal)

	require.True(t, result.IsReached())
	assert.Empty(t, result.Deduction().Dependencies)
}

func TestScenario3AndConstruct(t *testing.T) {
	p, q := pred("P"), pred("Q")
	ctx := newContext(p, q)
	goal := logic.NewAnd(p, q)

	meta := rules.NewAllLogicRule(3)
	result := meta.ApplyToward(ctx, nil, nil, goal)

	assertDepsSubsetOfContext(t, ctx, result)
}

func TestScenario4DoubleNegate(t *testing.T) {
	p := pred("P")
	ctx := newContext(logic.NewNot(logic.NewNot(p)))

	meta := rules.NewAllLogicRule(1)
	result := meta.ApplyToward(ctx, nil, nil, p)

	assertDepsSubsetOfContext(t, ctx, result)
}

func TestScenario5ImplyChain(t *testing.T) {
	p, q, r := pred("P"), pred("Q"), pred("R")
	ctx := newContext(logic.NewImply(p, q), logic.NewImply(q, r), p)

	meta := rules.NewAllLogicRule(3)
	result := meta.ApplyToward(ctx, nil, nil, r)

	assertDepsSubsetOfContext(t, ctx, result)
}

func TestScenario6ExistConstant(t *testing.T) {
	c := logic.NewConst("c")
	fact := logic.NewPredicate("phi", c)
	ctx := newContext(fact)

	fresh := logic.NextVar(fact)
	goal := logic.NewExist(fresh, logic.NewPredicate("phi", logic.NewVar(fresh)))

	meta := rules.NewAllLogicRule(1)
	result := meta.ApplyToward(ctx, nil, []logic.Term{c}, goal)

	assertDepsSubsetOfContext(t, ctx, result)
	d := result.Deduction()
	tree := d.Metadata["DeductionTree"].(*logic.DeductionNode)
	found := false
	tree.RecurApply(func(n *logic.DeductionNode) bool {
		if n.Deduction.Rule.Local == "ExistConstant" {
			assert.Equal(t, "c", n.Deduction.Metadata["constant"])
			found = true
		}
		return true
	})
	assert.True(t, found, "expected an ExistConstant step in the proof tree")
}

func TestAllLogicRuleNotReachedWithinDepth(t *testing.T) {
	ctx := newContext(pred("P"))
	meta := rules.NewAllLogicRule(1)
	result := meta.ApplyToward(ctx, nil, nil, pred("Unreachable"))
	assert.False(t, result.IsReached())
}

func TestAllLogicRuleDeterministic(t *testing.T) {
	p, q := pred("P"), pred("Q")
	ctx := newContext(p, logic.NewImply(p, q))

	r1 := rules.NewAllLogicRule(3).ApplyToward(ctx, nil, nil, q)
	r2 := rules.NewAllLogicRule(3).ApplyToward(ctx, nil, nil, q)

	require.Equal(t, r1.IsReached(), r2.IsReached())
	assert.True(t, r1.Deduction().Produced.IsIdenticalTo(r2.Deduction().Produced))
}

func TestAllLogicRuleDefaultSearchDepthFallback(t *testing.T) {
	meta := rules.NewAllLogicRule(0)
	assert.Equal(t, rules.DefaultSearchDepth, meta.SearchDepth)
}
