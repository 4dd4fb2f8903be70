package traitscan

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// VariantStore is the immutable mapping from canonical rs identifier to the
// Variant observed in the input. It is built once per run and must not be
// shared across concurrent runs.
type VariantStore struct {
	variants map[string]Variant

	// Skipped counts malformed lines that were discarded during parsing.
	Skipped int

	// Duplicates counts rows whose identifier was already present. The
	// first occurrence wins; later ones are discarded.
	Duplicates int
}

// ReadVariantStore drains raw and builds the store. Malformed lines are
// counted and skipped, never fatal; only a failure of the underlying reader
// aborts the parse.
func ReadVariantStore(raw *Raw) (*VariantStore, error) {
	store := &VariantStore{
		variants: make(map[string]Variant),
	}

	for {
		row, err := raw.Read()
		if err == io.EOF {
			break
		} else if errors.Is(err, ErrMalformedLine) {
			store.Skipped++
			continue
		} else if err != nil {
			return nil, fmt.Errorf("ReadVariantStore: %w", err)
		}

		variant, err := rowToVariant(row)
		if err != nil {
			store.Skipped++
			continue
		}

		if _, exists := store.variants[variant.RSID]; exists {
			store.Duplicates++
			continue
		}
		store.variants[variant.RSID] = variant
	}

	return store, nil
}

func rowToVariant(row *RawRow) (Variant, error) {
	rsid, err := CanonicalRSID(row.VariantID)
	if err != nil {
		return Variant{}, err
	}

	a1, err := ParseAllele(row.Allele1)
	if err != nil {
		return Variant{}, err
	}

	a2, err := ParseAllele(row.Allele2)
	if err != nil {
		return Variant{}, err
	}

	return Variant{
		RSID:       rsid,
		Chromosome: row.Chromosome,
		Position:   row.Position,
		Genotype:   Genotype{Allele1: a1, Allele2: a2},
	}, nil
}

// Lookup returns the variant for a canonical rs identifier.
func (s *VariantStore) Lookup(rsid string) (Variant, bool) {
	v, ok := s.variants[rsid]
	return v, ok
}

// Len is the number of distinct variants held.
func (s *VariantStore) Len() int {
	return len(s.variants)
}

// RSIDs returns the stored identifiers in ascending order, so that callers
// iterating the store are deterministic regardless of map ordering.
func (s *VariantStore) RSIDs() []string {
	out := make([]string, 0, len(s.variants))
	for rsid := range s.variants {
		out = append(out, rsid)
	}
	sort.Strings(out)

	return out
}
