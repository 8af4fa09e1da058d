package rules_test

import (
	"testing"

	"github.com/beadslogic/prove/internal/logic"
	"github.com/beadslogic/prove/internal/logic/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCatalogEmptyReturnsFullCatalog(t *testing.T) {
	assert.Equal(t, rules.Catalog, rules.FilterCatalog(nil))
	assert.Equal(t, rules.Catalog, rules.FilterCatalog([]string{}))
}

func TestFilterCatalogRestrictsByLocalName(t *testing.T) {
	filtered := rules.FilterCatalog([]string{"Imply", "DoubleNegate"})
	require.Len(t, filtered, 2)
	names := map[string]bool{}
	for _, r := range filtered {
		names[r.Name().Local] = true
	}
	assert.True(t, names["Imply"])
	assert.True(t, names["DoubleNegate"])
}

func TestFilterCatalogPreservesCatalogOrder(t *testing.T) {
	filtered := rules.FilterCatalog([]string{"ForAnyAnd", "Flatten"})
	require.Len(t, filtered, 2)
	assert.Equal(t, "Flatten", filtered[0].Name().Local)
	assert.Equal(t, "ForAnyAnd", filtered[1].Name().Local)
}

func TestFilterCatalogIgnoresUnknownNames(t *testing.T) {
	filtered := rules.FilterCatalog([]string{"NoSuchRule"})
	assert.Empty(t, filtered)
}

func TestAllLogicRuleHonorsRulesAllowlist(t *testing.T) {
	p, q := pred("P"), pred("Q")
	ctx := newContext(p, logic.NewImply(p, q))

	meta := rules.NewAllLogicRule(3)
	meta.Rules = rules.FilterCatalog([]string{"DoubleNegate"})

	result := meta.ApplyToward(ctx, nil, nil, q)
	assert.False(t, result.IsReached(), "Imply is excluded from the allowlist, so Q should not be reachable")
}
