package prooftext_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/prooftext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecodesFactsAndGoal(t *testing.T) {
	raw := []byte(`
facts:
  - pred: P
  - imply:
      p: { pred: P }
      q: { pred: Q }
goal:
  pred: Q
`)
	p, err := prooftext.Parse(raw)
	require.NoError(t, err)
	require.NotNil(t, p.Goal)
	assert.Equal(t, "Q", p.Goal.Pred())
	assert.True(t, p.Context.Contains(logic.NewPredicate("P")))
	assert.True(t, p.Context.Contains(logic.NewImply(logic.NewPredicate("P"), logic.NewPredicate("Q"))))
}

func TestParseWithoutGoal(t *testing.T) {
	raw := []byte(`
facts:
  - pred: P
`)
	p, err := prooftext.Parse(raw)
	require.NoError(t, err)
	assert.Nil(t, p.Goal)
}

func TestParseRejectsMalformedFormulaNode(t *testing.T) {
	raw := []byte(`
facts:
  - {}
`)
	_, err := prooftext.Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := prooftext.Parse([]byte("facts: [this is not: valid: yaml"))
	assert.Error(t, err)
}

func TestMarshalParseRoundTrip(t *testing.T) {
	x := logic.NewVar("x")
	c := logic.NewConst("c")
	ctx := logic.NewFormulaContext()
	ctx.AddAll([]*logic.Formula{
		logic.NewPredicate("P"),
		logic.NewAnd(logic.NewPredicate("Q"), logic.NewPredicate("R")),
		logic.NewForAll("x", logic.NewPredicate("phi", x)),
		logic.NewPredicate("owns", c),
	})
	goal := logic.NewExist("y", logic.NewPredicate("phi", logic.NewVar("y")))
	p := &prooftext.Problem{Context: ctx, Goal: goal}

	raw, err := prooftext.Marshal(p)
	require.NoError(t, err)

	back, err := prooftext.Parse(raw)
	require.NoError(t, err)

	require.NotNil(t, back.Goal)
	assert.True(t, back.Goal.IsIdenticalTo(goal))
	for _, f := range ctx.Formulas() {
		assert.True(t, back.Context.Contains(f), "round trip lost fact %s", f)
	}
}

func TestSaveAndLoad(t *testing.T) {
	ctx := logic.NewFormulaContext()
	ctx.AddAll([]*logic.Formula{logic.NewPredicate("P")})
	p := &prooftext.Problem{Context: ctx, Goal: logic.NewPredicate("P")}

	dir := t.TempDir()
	path := filepath.Join(dir, "problem.yaml")
	require.NoError(t, prooftext.Save(path, p))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "pred: P")

	loaded, err := prooftext.Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded.Goal)
	assert.True(t, loaded.Goal.IsIdenticalTo(p.Goal))
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := prooftext.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
