package traitscan

import (
	"fmt"
	"regexp"
	"strings"
)

// Allele is a single allele call. Beyond the four nucleotides, D and I denote
// deletion and insertion calls, and "-" denotes a no-call.
type Allele string

const NoCall Allele = "-"

var validAlleles = map[Allele]struct{}{
	"A": {}, "C": {}, "G": {}, "T": {}, "D": {}, "I": {}, NoCall: {},
}

// ParseAllele canonicalizes a raw allele symbol to uppercase. An empty symbol
// is treated as a no-call.
func ParseAllele(raw string) (Allele, error) {
	if raw == "" {
		return NoCall, nil
	}

	a := Allele(strings.ToUpper(raw))
	if _, ok := validAlleles[a]; !ok {
		return "", fmt.Errorf("%q is not a valid allele symbol", raw)
	}

	return a, nil
}

// IsNoCall is true when the allele could not be determined.
func (a Allele) IsNoCall() bool {
	return a == NoCall || a == ""
}

// Genotype is the unordered pair of alleles observed at one position.
type Genotype struct {
	Allele1 Allele
	Allele2 Allele
}

// Sorted returns the canonical form of the genotype, with the two alleles in
// lexicographic order. (A,T) and (T,A) sort to the same value, which is what
// makes genotype comparison order-independent.
func (g Genotype) Sorted() Genotype {
	if g.Allele2 < g.Allele1 {
		return Genotype{Allele1: g.Allele2, Allele2: g.Allele1}
	}

	return g
}

// IsNoCall is true when either allele is a no-call. A genotype with a no-call
// on either side never matches any rule.
func (g Genotype) IsNoCall() bool {
	return g.Allele1.IsNoCall() || g.Allele2.IsNoCall()
}

// Contains reports whether either position holds the given allele.
func (g Genotype) Contains(a Allele) bool {
	return g.Allele1 == a || g.Allele2 == a
}

func (g Genotype) String() string {
	return string(g.Allele1) + "/" + string(g.Allele2)
}

// Variant is one parsed row of an individual's raw genotype file. It is
// constructed once during parsing and never modified afterwards.
type Variant struct {
	RSID       string // canonical lowercase, e.g. "rs12913832"
	Chromosome string
	Position   int
	Genotype   Genotype
}

var rsidPattern = regexp.MustCompile(`^rs[0-9]+$`)

// CanonicalRSID lowercases an rs identifier and validates it against the
// rs[0-9]+ pattern.
func CanonicalRSID(raw string) (string, error) {
	rsid := strings.ToLower(strings.TrimSpace(raw))
	if !rsidPattern.MatchString(rsid) {
		return "", fmt.Errorf("%q does not look like an rs identifier", raw)
	}

	return rsid, nil
}
