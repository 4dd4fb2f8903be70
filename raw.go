package traitscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine marks a line that could not be parsed into a RawRow. The
// caller is expected to count it and keep reading; it is never fatal.
var ErrMalformedLine = errors.New("malformed line")

// Raw scans an individual's raw genotype export line by line. Lines that are
// blank or begin with '#' are skipped without comment. Consumers call Read
// until it returns io.EOF and check Err afterwards for scanner-level
// failures.
type Raw struct {
	scanner   *bufio.Scanner
	delimiter rune
	line      int
	sawData   bool
}

// NewRaw prepares a scanner over r. delimiter is typically the output of
// DetermineDelimiter; a comma splits on commas, anything else splits on runs
// of whitespace, which also covers tab-delimited exports.
func NewRaw(r io.Reader, delimiter rune) *Raw {
	return &Raw{
		scanner:   bufio.NewScanner(r),
		delimiter: delimiter,
	}
}

func (r *Raw) Err() error {
	return r.scanner.Err()
}

// Line is the 1-based number of the most recently read line.
func (r *Raw) Line() int {
	return r.line
}

// Read returns the next data row. Malformed rows yield an error wrapping
// ErrMalformedLine; io.EOF signals the end of the input.
func (r *Raw) Read() (*RawRow, error) {
	for r.scanner.Scan() {
		r.line++

		data := strings.TrimSpace(r.scanner.Text())
		if data == "" || strings.HasPrefix(data, "#") {
			continue
		}

		var cols []string
		if r.delimiter == ',' {
			cols = strings.Split(data, ",")
		} else {
			cols = strings.Fields(data)
		}

		// An optional single header row is tolerated and skipped.
		if !r.sawData && strings.EqualFold(cols[ColVariantID], "rsid") {
			continue
		}
		r.sawData = true

		if len(cols) < ColAllele2+1 {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d: %w", r.line, ColAllele2+1, len(cols), ErrMalformedLine)
		}

		row := &RawRow{
			VariantID:  strings.TrimSpace(cols[ColVariantID]),
			Chromosome: strings.TrimSpace(cols[ColChromosome]),
			Allele1:    strings.TrimSpace(cols[ColAllele1]),
			Allele2:    strings.TrimSpace(cols[ColAllele2]),
		}

		pos, err := strconv.Atoi(strings.TrimSpace(cols[ColPosition]))
		if err != nil {
			return nil, fmt.Errorf("line %d: position %q is not an integer: %w", r.line, cols[ColPosition], ErrMalformedLine)
		}
		row.Position = pos

		return row, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}
