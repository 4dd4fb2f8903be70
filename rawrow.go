package traitscan

// Map columns in the raw genotype file to their positions
const (
	ColVariantID int = iota
	ColChromosome
	ColPosition
	ColAllele1
	ColAllele2
)

type RawRow struct {
	VariantID  string // E.g., RSID
	Chromosome string
	Position   int // Base-pair coordinate
	Allele1    string
	Allele2    string
}
