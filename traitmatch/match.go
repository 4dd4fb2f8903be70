// Package traitmatch resolves an individual's observed genotypes against the
// trait knowledge base and aggregates the results by category.
package traitmatch

import (
	"github.com/carbocation/traitscan"
	"github.com/carbocation/traitscan/traitdb"
)

// MatchResult pairs an observed variant with a rule it satisfied. Results
// are ephemeral: produced by Match, consumed by Aggregate, discarded after
// the report is rendered.
type MatchResult struct {
	Variant traitscan.Variant
	Rule    traitdb.TraitRule
}

// Match walks every identifier present in both the store and the rule set
// and emits one MatchResult per satisfied rule. A variant whose genotype
// contains a no-call is skipped silently, and a variant with no rules simply
// yields nothing. Runs in O(V): rule lookup is O(1) and per-identifier rule
// lists are small.
func Match(store *traitscan.VariantStore, rules *traitdb.RuleSet) []MatchResult {
	var out []MatchResult

	for _, rsid := range store.RSIDs() {
		variant, ok := store.Lookup(rsid)
		if !ok {
			continue
		}

		if variant.Genotype.IsNoCall() {
			continue
		}

		for _, rule := range rules.Rules(rsid) {
			if rule.Condition.Matches(variant.Genotype) {
				out = append(out, MatchResult{Variant: variant, Rule: rule})
			}
		}
	}

	return out
}
