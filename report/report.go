// Package report renders a CategoryReport as plain text. It holds no
// matching logic; everything here is presentation.
package report

import (
	"fmt"
	"io"

	"github.com/carbocation/traitscan/traitdb"
	"github.com/carbocation/traitscan/traitmatch"
)

const placeholder = "  (no matches)"

// Write renders one block per category, in the fixed category order, with
// one "<trait>: <interpretation>" line per match.
func Write(w io.Writer, rep traitmatch.CategoryReport) error {
	for i, category := range traitdb.Categories() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "== %s ==\n", category); err != nil {
			return err
		}

		matches := rep[category]
		if len(matches) == 0 {
			if _, err := fmt.Fprintln(w, placeholder); err != nil {
				return err
			}
			continue
		}

		for _, m := range matches {
			if _, err := fmt.Fprintf(w, "  %s: %s [%s %s]\n", m.Rule.Trait, m.Rule.Interpretation, m.Variant.RSID, m.Variant.Genotype); err != nil {
				return err
			}
		}
	}

	return nil
}
