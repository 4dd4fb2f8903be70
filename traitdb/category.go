// Package traitdb holds the bundled knowledge base of SNP-to-trait
// association rules and the closed set of trait categories used to organize
// the final report.
package traitdb

import (
	"fmt"
)

// Category is one of the fixed trait groupings. The set is closed: rules
// naming anything else fail at load time rather than leaking open-ended
// string keys into the report.
type Category int

const (
	Alzheimers Category = iota
	Autism
	Bipolar
	Immunity
	Intelligence
	Longevity
	Metabolism
	Muscle
	OCD
	Schizophrenia
	Eyes
)

var categoryNames = map[Category]string{
	Alzheimers:    "Alzheimer's Disease",
	Autism:        "Autism",
	Bipolar:       "Bipolar Disorder",
	Immunity:      "Immunity",
	Intelligence:  "Intelligence",
	Longevity:     "Longevity",
	Metabolism:    "Metabolism",
	Muscle:        "Muscular Performance",
	OCD:           "OCD",
	Schizophrenia: "Schizophrenia",
	Eyes:          "Eye Characteristics",
}

// Categories returns all known categories in the fixed order used by the
// report, one block per category.
func Categories() []Category {
	return []Category{
		Alzheimers,
		Autism,
		Bipolar,
		Immunity,
		Intelligence,
		Longevity,
		Metabolism,
		Muscle,
		OCD,
		Schizophrenia,
		Eyes,
	}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a display name back to its Category. Unknown names are
// an error so that future knowledge-base additions surface loudly instead of
// being silently grouped.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
