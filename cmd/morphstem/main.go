// Command morphstem loads a compiled dictionary (a newline-delimited file
// of FSA records, as produced by morphenc) plus a features file, and
// prints stems for words given as trailing arguments or read line-by-line
// from stdin.
//
//	go run ./cmd/morphstem -dict records.txt -features features.json werken
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/smietanka/morfologik-stemming"
	"github.com/smietanka/morfologik-stemming/fsa"
)

func main() {
	dictPath := flag.String("dict", "", "path to a newline-delimited FSA record file")
	featuresPath := flag.String("features", "", "path to the features JSON file")
	withForms := flag.Bool("forms", false, "also print the tag for each lemma")
	flag.Parse()

	if err := run(*dictPath, *featuresPath, *withForms, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "morphstem:", err)
		os.Exit(1)
	}
}

func run(dictPath, featuresPath string, withForms bool, words []string) error {
	if dictPath == "" || featuresPath == "" {
		return fmt.Errorf("both -dict and -features are required")
	}

	features, err := morphologik.LoadFeaturesFile(featuresPath)
	if err != nil {
		return fmt.Errorf("load features: %w", err)
	}

	automaton, err := loadAutomaton(dictPath)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	dict := morphologik.LoadDictionary(automaton, features)
	lookup := morphologik.NewLookup(dict)

	if len(words) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := stemOne(lookup, scanner.Text(), withForms); err != nil {
				return err
			}
		}
		return scanner.Err()
	}

	for _, word := range words {
		if err := stemOne(lookup, word, withForms); err != nil {
			return err
		}
	}
	return nil
}

func stemOne(lookup *morphologik.Lookup, word string, withForms bool) error {
	if withForms {
		forms, err := lookup.StemAndForm(word)
		if err != nil {
			return fmt.Errorf("stem %q: %w", word, err)
		}
		fmt.Println(word, forms)
		return nil
	}
	lemmas, err := lookup.Stem(word)
	if err != nil {
		return fmt.Errorf("stem %q: %w", word, err)
	}
	fmt.Println(word, lemmas)
	return nil
}

func loadAutomaton(path string) (*fsa.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b := fsa.NewBuilder()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		b.Insert([]byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Freeze(), nil
}
