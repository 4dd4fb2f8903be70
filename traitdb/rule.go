package traitdb

import (
	"fmt"
	"strings"

	"github.com/carbocation/traitscan"
)

// Condition is the genotype requirement of a rule: either an exact unordered
// allele pair, or a single risk allele that matches when present in either
// position of the observed genotype.
type Condition struct {
	Genotype   traitscan.Genotype // canonical (sorted) form; valid when RiskAllele is empty
	RiskAllele traitscan.Allele   // when set, the rule is in risk-allele mode
}

// ParseCondition reads the knowledge-base genotype syntax: "A;G" for an
// exact pair, a bare "A" for a risk allele.
func ParseCondition(raw string) (Condition, error) {
	raw = strings.TrimSpace(raw)

	if !strings.Contains(raw, ";") {
		a, err := traitscan.ParseAllele(raw)
		if err != nil {
			return Condition{}, err
		}
		if a.IsNoCall() {
			return Condition{}, fmt.Errorf("risk allele may not be a no-call (%q)", raw)
		}

		return Condition{RiskAllele: a}, nil
	}

	parts := strings.SplitN(raw, ";", 2)
	a1, err := traitscan.ParseAllele(parts[0])
	if err != nil {
		return Condition{}, err
	}
	a2, err := traitscan.ParseAllele(parts[1])
	if err != nil {
		return Condition{}, err
	}
	if a1.IsNoCall() || a2.IsNoCall() {
		return Condition{}, fmt.Errorf("rule genotype may not contain a no-call (%q)", raw)
	}

	return Condition{Genotype: traitscan.Genotype{Allele1: a1, Allele2: a2}.Sorted()}, nil
}

// Matches applies the condition to an observed genotype. No-call genotypes
// never match; callers are expected to have filtered them already, but the
// check here keeps the invariant local.
func (c Condition) Matches(observed traitscan.Genotype) bool {
	if observed.IsNoCall() {
		return false
	}

	if c.RiskAllele != "" {
		// One copy of the risk allele counts: heterozygous carriers match
		// the same as homozygous carriers.
		return observed.Contains(c.RiskAllele)
	}

	return observed.Sorted() == c.Genotype
}

func (c Condition) String() string {
	if c.RiskAllele != "" {
		return string(c.RiskAllele)
	}

	return c.Genotype.String()
}

// TraitRule associates a variant+genotype condition with a phenotypic trait.
// Multiple rules may share one rsID, with different or opposing conditions.
type TraitRule struct {
	RSID           string
	Condition      Condition
	Trait          string
	Category       Category
	Interpretation string
}
