// Command morphenc reads tab-separated (surface, lemma, tag[, frequency])
// training triples and prints one FSA record per line, encoded under a
// chosen delta scheme.
//
//	go run ./cmd/morphenc -scheme standard -separator + -encoding UTF-8 <triples.tsv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/smietanka/morfologik-stemming"
	"github.com/smietanka/morfologik-stemming/morphtab"
)

func main() {
	inPath := flag.String("in", "", "path to the TSV training file (default: stdin)")
	outPath := flag.String("out", "", "path to write records to (default: stdout)")
	scheme := flag.String("scheme", "standard", "delta scheme: standard, prefix or infix")
	encoding := flag.String("encoding", "UTF-8", "dictionary character encoding")
	separator := flag.String("separator", "+", "single-byte record separator")
	usesPrefixes := flag.Bool("prefixes", false, "dictionary uses the prefix scheme")
	usesInfixes := flag.Bool("infixes", false, "dictionary uses the infix scheme")
	dedup := flag.Bool("dedup", true, "drop duplicate (surface,lemma,tag) triples")
	flag.Parse()

	if err := run(*inPath, *outPath, *scheme, *encoding, *separator, *usesPrefixes, *usesInfixes, *dedup); err != nil {
		fmt.Fprintln(os.Stderr, "morphenc:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, scheme, encoding, separator string, usesPrefixes, usesInfixes, dedup bool) error {
	if len(separator) != 1 {
		return fmt.Errorf("separator must be exactly one byte, got %q", separator)
	}
	features, err := morphologik.NewFeatures(encoding, separator[0], usesPrefixes, usesInfixes)
	if err != nil {
		return err
	}

	in := os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	var reader morphtab.TrainingReader = morphtab.NewTSVReader(in)
	if dedup {
		reader = morphtab.NewDedupReader(reader)
	}

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read training record: %w", err)
		}
		line, err := encodeWith(features, scheme, rec.Surface, rec.Lemma, rec.Tag)
		if err != nil {
			return fmt.Errorf("encode %q/%q/%q: %w", rec.Surface, rec.Lemma, rec.Tag, err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func encodeWith(f morphologik.Features, scheme, form, lemma, tag string) (string, error) {
	switch scheme {
	case "standard":
		return f.StandardEncode(form, lemma, tag)
	case "prefix":
		return f.PrefixEncode(form, lemma, tag)
	case "infix":
		return f.InfixEncode(form, lemma, tag)
	default:
		return "", fmt.Errorf("unknown scheme %q", scheme)
	}
}
