package traitmatch

import (
	"sort"

	"github.com/carbocation/traitscan/traitdb"
)

// CategoryReport maps every known category to its ordered matches. Empty
// categories are present with a nil slice so the formatter can render an
// explicit "no matches" block instead of dropping the category.
type CategoryReport map[traitdb.Category][]MatchResult

// Aggregate groups results by category and orders each group by rsID, then
// trait name. Output ordering is therefore a function of content alone,
// never of input file line order.
func Aggregate(results []MatchResult) CategoryReport {
	report := make(CategoryReport)
	for _, category := range traitdb.Categories() {
		report[category] = nil
	}

	for _, result := range results {
		report[result.Rule.Category] = append(report[result.Rule.Category], result)
	}

	for _, matches := range report {
		sort.SliceStable(matches, func(i, j int) bool {
			if matches[i].Variant.RSID != matches[j].Variant.RSID {
				return matches[i].Variant.RSID < matches[j].Variant.RSID
			}
			return matches[i].Rule.Trait < matches[j].Rule.Trait
		})
	}

	return report
}
