package match_test

import (
	"testing"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/build"
	"github.com/beadslogic/prove/internal/logic/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuralMatcherFindsRootMatch(t *testing.T) {
	matcher := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Not(b.Not(b.Hole("P")))
	})
	subject := logic.NewNot(logic.NewNot(logic.NewPredicate("P")))

	results := matcher.Match(subject)
	require.Len(t, results, 1)
	p, ok := results[0].Bindings.Formula("P")
	require.True(t, ok)
	assert.True(t, p.IsIdenticalTo(logic.NewPredicate("P")))
}

func TestStructuralMatcherFindsNestedMatch(t *testing.T) {
	matcher := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Not(b.Not(b.Hole("P")))
	})
	inner := logic.NewNot(logic.NewNot(logic.NewPredicate("Q")))
	subject := logic.NewAnd(logic.NewPredicate("P"), inner)

	results := matcher.Match(subject)
	require.Len(t, results, 1)
	assert.True(t, results[0].Witness.IsIdenticalTo(inner))
}

func TestStructuralMatcherRepeatedHoleRequiresAgreement(t *testing.T) {
	matcher := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Imply(b.Hole("P"), b.Hole("P"))
	})

	matches := logic.NewImply(logic.NewPredicate("P"), logic.NewPredicate("P"))
	noMatch := logic.NewImply(logic.NewPredicate("P"), logic.NewPredicate("Q"))

	assert.Len(t, matcher.Match(matches), 1)
	assert.Empty(t, matcher.Match(noMatch))
}

func TestStructuralMatcherReplaceOneWith(t *testing.T) {
	matcher := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Not(b.Not(b.Hole("P")))
	})
	subject := logic.NewAnd(logic.NewPredicate("R"), logic.NewNot(logic.NewNot(logic.NewPredicate("Q"))))

	reps := matcher.ReplaceOneWith(subject, func(b *match.Bindings) *logic.Formula {
		p, _ := b.Formula("P")
		return p
	})
	require.Len(t, reps, 1)
	assert.True(t, reps[0].Result.IsIdenticalTo(logic.NewAnd(logic.NewPredicate("R"), logic.NewPredicate("Q"))))
}

func TestMatchRootOnlyMatchesTopLevel(t *testing.T) {
	matcher := build.BuildMatcher(func(b build.MatcherBuilder) *logic.Formula {
		return b.Hole("P")
	})
	subject := logic.NewAnd(logic.NewPredicate("P"), logic.NewPredicate("Q"))

	b, ok := matcher.MatchRoot(subject)
	require.True(t, ok)
	bound, ok := b.Formula("P")
	require.True(t, ok)
	assert.True(t, bound.IsIdenticalTo(subject))
}
