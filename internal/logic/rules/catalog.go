package rules

import "github.com/beadslogic/prove/internal/logic"

// Catalog is the fixed, ordered list of built-in logic rules the
// meta-rule iterates every depth. Order matters: it is part of what
// makes two invocations with identical inputs produce identical
// results.
var Catalog = buildCatalog()

func buildCatalog() []LogicRule {
	return []LogicRule{
		NewFlattenRule(),
		NewDoubleNegateRule(),
		NewIdentityAndRule(),
		NewIdentityOrRule(),
		NewAbsorptionAndRule(),
		NewAbsorptionOrRule(),
		NewAndProjectRule(),
		NewAndConstructRule(),
		NewImplyComposeRule(),
		NewDefImplyRule(),
		NewDefEquivToRule(),
		NewImplyRule(),
		NewEqualReplaceRule(),
		NewExcludeMiddleRule(),
		NewExistConstantRule(),
		NewForAnyVariableRule(),
		NewForAnyAndRule(),
	}
}

// RulesAsMap looks up a built-in rule by its qualified name.
func RulesAsMap() map[logic.QualifiedName]LogicRule {
	out := make(map[logic.QualifiedName]LogicRule, len(Catalog))
	for _, r := range Catalog {
		out[r.Name()] = r
	}
	return out
}

// FilterCatalog restricts Catalog to the rules whose local name (e.g.
// "Imply", not "logic::Imply") appears in names, preserving Catalog's
// order. A nil or empty names returns Catalog unchanged, so callers
// can pass a config-driven allowlist straight through without a
// special case for "no allowlist configured".
func FilterCatalog(names []string) []LogicRule {
	if len(names) == 0 {
		return Catalog
	}
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	out := make([]LogicRule, 0, len(names))
	for _, r := range Catalog {
		if allowed[r.Name().Local] {
			out = append(out, r)
		}
	}
	return out
}
