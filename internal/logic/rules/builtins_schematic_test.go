package rules_test

import (
	"testing"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleNegateForward(t *testing.T) {
	p := pred("P")
	f := logic.NewNot(logic.NewNot(p))

	rule := rules.NewDoubleNegateRule()
	result := rule.ApplyToward(newContext(f), []*logic.Formula{f}, nil, nil)

	require.NotEmpty(t, result.Deductions())
	found := false
	for _, d := range result.Deductions() {
		if d.Produced.IsIdenticalTo(p) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDoubleNegateBackwardReachesGoal(t *testing.T) {
	p := pred("P")
	goal := logic.NewNot(logic.NewNot(p))

	rule := rules.NewDoubleNegateRule()
	result := rule.ApplyToward(newContext(p), []*logic.Formula{p}, nil, goal)

	require.True(t, result.IsReached())
	assert.True(t, result.Deduction().Produced.IsIdenticalTo(goal))
}

func TestDefImplyForwardToOr(t *testing.T) {
	p, q := pred("P"), pred("Q")
	f := logic.NewImply(p, q)

	rule := rules.NewDefImplyRule()
	result := rule.ApplyToward(newContext(f), []*logic.Formula{f}, nil, nil)

	require.NotEmpty(t, result.Deductions())
	want := logic.NewOr(logic.NewNot(p), q)
	found := false
	for _, d := range result.Deductions() {
		if d.Produced.IsIdenticalTo(want) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDefImplyBackwardFromOr(t *testing.T) {
	p, q := pred("P"), pred("Q")
	f := logic.NewOr(logic.NewNot(p), q)
	goal := logic.NewImply(p, q)

	rule := rules.NewDefImplyRule()
	result := rule.ApplyToward(newContext(f), []*logic.Formula{f}, nil, goal)

	require.True(t, result.IsReached())
	assert.True(t, result.Deduction().Produced.IsIdenticalTo(goal))
}

func TestDefImplyBackwardHandlesEitherDisjunctOrder(t *testing.T) {
	p, q := pred("P"), pred("Q")
	f := logic.NewOr(q, logic.NewNot(p))
	goal := logic.NewImply(p, q)

	rule := rules.NewDefImplyRule()
	result := rule.ApplyToward(newContext(f), []*logic.Formula{f}, nil, goal)

	require.True(t, result.IsReached())
}

func TestDefEquivToForward(t *testing.T) {
	p, q := pred("P"), pred("Q")
	f := logic.NewAnd(logic.NewImply(p, q), logic.NewImply(q, p))
	goal := logic.NewEquiv(p, q)

	rule := rules.NewDefEquivToRule()
	result := rule.ApplyToward(newContext(f), []*logic.Formula{f}, nil, goal)

	require.True(t, result.IsReached())
}

func TestDefEquivToBackward(t *testing.T) {
	p, q := pred("P"), pred("Q")
	f := logic.NewEquiv(p, q)

	rule := rules.NewDefEquivToRule()
	result := rule.ApplyToward(newContext(f), []*logic.Formula{f}, nil, nil)

	require.NotEmpty(t, result.Deductions())
	want := logic.NewAnd(logic.NewImply(p, q), logic.NewImply(q, p))
	found := false
	for _, d := range result.Deductions() {
		if d.Produced.IsIdenticalTo(want) {
			found = true
		}
	}
	assert.True(t, found)
}
