package traitmatch

import (
	"strings"
	"testing"

	"github.com/carbocation/traitscan"
	"github.com/carbocation/traitscan/traitdb"
)

func mustStore(t *testing.T, input string) *traitscan.VariantStore {
	t.Helper()

	store, err := traitscan.ReadVariantStore(traitscan.NewRaw(strings.NewReader(input), '\t'))
	if err != nil {
		t.Fatal(err)
	}

	return store
}

func mustRules(t *testing.T) *traitdb.RuleSet {
	t.Helper()

	rules, err := traitdb.Load()
	if err != nil {
		t.Fatal(err)
	}

	return rules
}

func TestMatchExactPair(t *testing.T) {
	// rs5030858 T;T is a Metabolism rule in the knowledge base
	store := mustStore(t, "rs5030858\t12\t103234252\tT\tT\n")

	results := Match(store, mustRules(t))
	if len(results) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(results))
	}
	if results[0].Rule.Category != traitdb.Metabolism {
		t.Errorf("Expected Metabolism, got %s", results[0].Rule.Category)
	}
}

func TestMatchIsGenotypeOrderIndependent(t *testing.T) {
	rules := mustRules(t)

	// rs683395 C;T is a Bipolar Disorder rule; present it in both orders
	forward := Match(mustStore(t, "rs683395\t2\t58222928\tC\tT\n"), rules)
	reversed := Match(mustStore(t, "rs683395\t2\t58222928\tT\tC\n"), rules)

	if len(forward) != 1 || len(reversed) != 1 {
		t.Fatalf("Expected 1 match each, got %d and %d", len(forward), len(reversed))
	}
	if forward[0].Rule != reversed[0].Rule {
		t.Error("Mismatch: allele order changed the matched rule")
	}
}

func TestMatchRiskAllele(t *testing.T) {
	rules := mustRules(t)

	// rs1799752 carries a single-risk-allele rule for I; a heterozygous
	// carrier counts the same as a homozygous one.
	het := Match(mustStore(t, "rs1799752\t17\t61565892\tD\tI\n"), rules)
	hom := Match(mustStore(t, "rs1799752\t17\t61565892\tI\tI\n"), rules)

	if len(het) != 1 || len(hom) != 1 {
		t.Fatalf("Expected 1 match each, got %d and %d", len(het), len(hom))
	}
	if het[0].Rule != hom[0].Rule {
		t.Error("Heterozygous and homozygous carriers matched different rules")
	}

	// D;D must match the exact-pair deletion rule instead
	dd := Match(mustStore(t, "rs1799752\t17\t61565892\tD\tD\n"), rules)
	if len(dd) != 1 {
		t.Fatalf("Expected 1 match for D/D, got %d", len(dd))
	}
	if dd[0].Rule.Condition.RiskAllele != "" {
		t.Error("D/D should not have matched the insertion risk-allele rule")
	}
}

func TestMatchSkipsNoCalls(t *testing.T) {
	store := mustStore(t, "rs5030858\t12\t103234252\t-\t-\n")

	if results := Match(store, mustRules(t)); len(results) != 0 {
		t.Errorf("No-call genotype produced %d matches", len(results))
	}
}

func TestMatchUnknownVariantYieldsNothing(t *testing.T) {
	store := mustStore(t, "rs999999999\t1\t1000\tA\tA\n")

	if results := Match(store, mustRules(t)); len(results) != 0 {
		t.Errorf("Unknown variant produced %d matches", len(results))
	}
}

func TestMatchEmitsEveryMatchingRule(t *testing.T) {
	// rs429358 C;T satisfies the heterozygous APOE4 rule, and rs12913832
	// A;G the intermediate eye color rule; one pass yields both.
	input := "rs429358\t19\t45411941\tC\tT\nrs12913832\t15\t28365618\tA\tG\n"

	results := Match(mustStore(t, input), mustRules(t))
	if len(results) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(results))
	}
}

func TestAggregateKeepsEmptyCategories(t *testing.T) {
	report := Aggregate(nil)

	if len(report) != len(traitdb.Categories()) {
		t.Fatalf("Expected %d categories, got %d", len(traitdb.Categories()), len(report))
	}

	for _, category := range traitdb.Categories() {
		matches, present := report[category]
		if !present {
			t.Errorf("Category %s missing from report", category)
		}
		if len(matches) != 0 {
			t.Errorf("Category %s should be empty", category)
		}
	}
}

func TestAggregateOrdersWithinCategory(t *testing.T) {
	rules := mustRules(t)

	// Two Metabolism matches, deliberately in descending rsID input order
	input := "rs4988235\t2\t136608646\tT\tT\nrs1801133\t1\t11856378\tT\tT\n"

	report := Aggregate(Match(mustStore(t, input), rules))
	metabolism := report[traitdb.Metabolism]
	if len(metabolism) != 2 {
		t.Fatalf("Expected 2 Metabolism matches, got %d", len(metabolism))
	}

	if metabolism[0].Variant.RSID != "rs1801133" || metabolism[1].Variant.RSID != "rs4988235" {
		t.Errorf("Within-category order should be by rsID, got %s then %s",
			metabolism[0].Variant.RSID, metabolism[1].Variant.RSID)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	rules := mustRules(t)
	input := "rs12913832\t15\t28365618\tG\tG\nrs4988235\t2\t136608646\tT\tT\nrs429358\t19\t45411941\tC\tC\n"
	shuffled := "rs429358\t19\t45411941\tC\tC\nrs12913832\t15\t28365618\tG\tG\nrs4988235\t2\t136608646\tT\tT\n"

	a := Match(mustStore(t, input), rules)
	b := Match(mustStore(t, shuffled), rules)

	if len(a) != len(b) {
		t.Fatalf("Run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Result %d differs between input orderings", i)
		}
	}
}
