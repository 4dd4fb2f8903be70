package traitdb

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/carbocation/traitscan"
)

// Version identifies the bundled knowledge-base revision.
const Version = "2026-08"

//go:embed lookups/*
var embeddedLookups embed.FS

const lookupFile = "lookups/traits.tsv"

// ErrUnknownCategory is returned when a rule names a category outside the
// closed set.
var ErrUnknownCategory = errors.New("unknown trait category")

// LoadError is fatal: the program cannot match anything without a valid
// knowledge base.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading knowledge base %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// RuleSet is the loaded knowledge base, indexed by rsID for O(1) retrieval.
// It is read-only after Load and safe to share across concurrent matching
// runs without synchronization.
type RuleSet struct {
	byRSID map[string][]TraitRule
	count  int
}

// The on-disk row shape; conversion to TraitRule happens after unmarshaling
// so that syntax problems surface as LoadError with the offending rsID.
type ruleRow struct {
	RSID           string `csv:"rsid"`
	Genotype       string `csv:"genotype"`
	Trait          string `csv:"trait"`
	Category       string `csv:"category"`
	Interpretation string `csv:"interpretation"`
}

// Load parses the embedded trait table and indexes it. Loading twice yields
// rule sets that are equal in content and indexing.
func Load() (*RuleSet, error) {
	fileBytes, err := embeddedLookups.ReadFile(lookupFile)
	if err != nil {
		return nil, &LoadError{Resource: lookupFile, Err: err}
	}

	return load(fileBytes)
}

func load(fileBytes []byte) (*RuleSet, error) {
	rows := []*ruleRow{}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.Comment = '#'
		r.LazyQuotes = true
		return r
	})

	if err := gocsv.UnmarshalBytes(fileBytes, &rows); err != nil {
		return nil, &LoadError{Resource: lookupFile, Err: err}
	}

	out := &RuleSet{byRSID: make(map[string][]TraitRule)}
	for _, row := range rows {
		rule, err := rowToRule(row)
		if err != nil {
			return nil, &LoadError{Resource: lookupFile, Err: err}
		}

		out.byRSID[rule.RSID] = append(out.byRSID[rule.RSID], rule)
		out.count++
	}

	if out.count == 0 {
		return nil, &LoadError{Resource: lookupFile, Err: errors.New("no rules found")}
	}

	return out, nil
}

func rowToRule(row *ruleRow) (TraitRule, error) {
	rsid, err := traitscan.CanonicalRSID(row.RSID)
	if err != nil {
		return TraitRule{}, err
	}

	cond, err := ParseCondition(row.Genotype)
	if err != nil {
		return TraitRule{}, fmt.Errorf("%s: %w", rsid, err)
	}

	cat, err := ParseCategory(row.Category)
	if err != nil {
		return TraitRule{}, fmt.Errorf("%s: %w", rsid, err)
	}

	if row.Trait == "" {
		return TraitRule{}, fmt.Errorf("%s: rule has no trait name", rsid)
	}

	interp := row.Interpretation
	if interp == "" {
		interp = fmt.Sprintf("Variant associated with %s.", cat)
	}

	return TraitRule{
		RSID:           rsid,
		Condition:      cond,
		Trait:          row.Trait,
		Category:       cat,
		Interpretation: interp,
	}, nil
}

// Rules returns the rules attached to a canonical rs identifier.
func (rs *RuleSet) Rules(rsid string) []TraitRule {
	return rs.byRSID[rsid]
}

// Len is the total number of rules held.
func (rs *RuleSet) Len() int {
	return rs.count
}

// RSIDs returns every keyed identifier in ascending order.
func (rs *RuleSet) RSIDs() []string {
	out := make([]string, 0, len(rs.byRSID))
	for rsid := range rs.byRSID {
		out = append(out, rsid)
	}
	sort.Strings(out)

	return out
}
