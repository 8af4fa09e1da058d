package logic_test

import (
	"testing"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRule = logic.NewQualifiedName("logic", "Test")

func TestTowardResultPanicsOnWrongAccessor(t *testing.T) {
	reached := logic.Reached(logic.NewDeduction(testRule, pred("P"), nil, nil))
	assert.Panics(t, func() { reached.Deductions() })

	notReached := logic.NotReached()
	assert.Panics(t, func() { notReached.Deduction() })
}

func TestNewDeductionDefaultsMetadata(t *testing.T) {
	d := logic.NewDeduction(testRule, pred("P"), nil, nil)
	assert.NotNil(t, d.Metadata)
}

func TestDeductionNodeLeafDependenciesDedupsAndSkipsInternal(t *testing.T) {
	leaf1 := logic.NewDeductionNode(logic.NewDeduction(testRule, pred("P"), nil, nil))
	leaf2 := logic.NewDeductionNode(logic.NewDeduction(testRule, pred("P"), nil, nil))
	leaf3 := logic.NewDeductionNode(logic.NewDeduction(testRule, pred("Q"), nil, nil))

	internal := logic.NewDeductionNode(
		logic.NewDeduction(testRule, logic.NewAnd(pred("P"), pred("Q")), []*logic.Formula{pred("P"), pred("Q")}, nil),
		leaf1, leaf3,
	)
	root := logic.NewDeductionNode(
		logic.NewDeduction(testRule, pred("R"), nil, nil),
		internal, leaf2,
	)

	deps := root.LeafDependencies()
	require.Len(t, deps, 2, "leaf2 duplicates leaf1's regular form")
	names := map[string]bool{}
	for _, d := range deps {
		names[d.Pred()] = true
	}
	assert.True(t, names["P"])
	assert.True(t, names["Q"])
}

func TestDeductionNodeRecurApplyShortCircuits(t *testing.T) {
	leaf := logic.NewDeductionNode(logic.NewDeduction(testRule, pred("P"), nil, nil))
	root := logic.NewDeductionNode(logic.NewDeduction(testRule, pred("Q"), nil, nil), leaf)

	visited := 0
	root.RecurApply(func(*logic.DeductionNode) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}
