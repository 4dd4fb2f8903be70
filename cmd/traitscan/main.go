// traitscan matches an individual's raw genotype export against the bundled
// SNP-to-trait knowledge base and prints a categorized report.
//
// Usage: traitscan [path]. When no path is given, it prompts for one. The
// path may be local or a gs:// URL, and the file may be plain text or a
// compressed (zip/gzip/xz/bzip2) export.
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"

	"github.com/carbocation/traitscan"
	_ "github.com/carbocation/traitscan/compileinfoprint"
	"github.com/carbocation/traitscan/report"
	"github.com/carbocation/traitscan/traitdb"
	"github.com/carbocation/traitscan/traitmatch"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else {
		fmt.Fprint(os.Stderr, "Enter DNA data file location: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			path = strings.TrimSpace(scanner.Text())
		}
	}

	if path == "" {
		log.Fatalln("No input file was provided")
	}

	rules, err := traitdb.Load()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Knowledge base revision", traitdb.Version, "holds", rules.Len(), "rules covering", len(rules.RSIDs()), "variants")

	store, err := readInput(traitscan.ExpandHome(path))
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Read", store.Len(), "variants;", store.Skipped, "malformed lines skipped;", store.Duplicates, "duplicate identifiers discarded")

	results := traitmatch.Match(store, rules)
	log.Println("Matched", len(results), "trait associations")

	if err := report.Write(STDOUT, traitmatch.Aggregate(results)); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

// readInput opens a local or gs:// path, transparently decompresses it, and
// parses it into a VariantStore. The file handle is released on every path
// out of this function.
func readInput(path string) (*traitscan.VariantStore, error) {
	var client *storage.Client
	if strings.HasPrefix(path, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			return nil, err
		}
	}

	f, _, err := traitscan.MaybeOpenFromGoogleStorage(path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// The whole export is buffered so that the delimiter can be sniffed
	// before parsing begins. These files run tens of megabytes at most.
	data, err := readAllMaybeCompressed(f)
	if err != nil {
		return nil, err
	}

	delimiter := traitscan.DetermineDelimiter(bytes.NewReader(data))

	return traitscan.ReadVariantStore(traitscan.NewRaw(bytes.NewReader(data), delimiter))
}

func readAllMaybeCompressed(f traitscan.ReaderAtCloser) ([]byte, error) {
	if osFile, ok := f.(*os.File); ok {
		rc, err := traitscan.MaybeDecompressReadCloserFromFile(osFile)
		if err != nil {
			return nil, err
		}
		if rc != osFile {
			defer rc.Close()
		}

		return io.ReadAll(rc)
	}

	return io.ReadAll(f)
}
