package traitscan

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file. Raw genotype exports
// are usually tab-delimited, so that is the fallback when detection finds
// nothing better.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
