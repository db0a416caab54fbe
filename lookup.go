package morphologik

import (
	"bytes"
	"fmt"

	"github.com/smietanka/morfologik-stemming/fsa"
)

// Lookup orchestrates matching, separator handling, continuation
// enumeration and delta decoding over one Dictionary. It owns a reusable
// scratch buffer for decoded lemmas (grown, never shrunk) and borrows the
// dictionary's automaton and Features immutably. The scratch buffer is
// not safe for concurrent use, so every caller wanting concurrent lookups
// constructs its own Lookup over the same *Dictionary.
type Lookup struct {
	dict    *Dictionary
	scratch []byte
}

// NewLookup creates a Lookup bound to dict.
func NewLookup(dict *Dictionary) *Lookup {
	return &Lookup{dict: dict}
}

// Stem returns the lemmas stored for word, or an empty (never nil) slice
// if there is no match.
func (l *Lookup) Stem(word string) ([]string, error) {
	return l.lookup(word, false)
}

// StemAndForm returns [lemma₁, tag₁, lemma₂, tag₂, …] for word.
func (l *Lookup) StemAndForm(word string) ([]string, error) {
	return l.lookup(word, true)
}

func (l *Lookup) lookup(word string, returnForms bool) ([]string, error) {
	out := make([]string, 0)

	wb, err := l.dict.features.EncodeWord(word)
	if err != nil {
		return nil, fmt.Errorf("morphologik: encode %q: %w", word, err)
	}

	backend := l.dict.backend
	res := backend.Match(wb, backend.Root())
	if res.Kind != fsa.PrematureEnd {
		return out, nil
	}

	sepWalk := backend.Match([]byte{l.dict.features.Separator}, res.State)
	if sepWalk.Kind != fsa.PrematureEnd {
		// Either no separator arc exists, or the separator arc is itself
		// final, which should never happen in a well-formed dictionary.
		// Both degrade to "no result" rather than crashing.
		return out, nil
	}

	it := backend.EnumerateAccepted(sepWalk.State)
	for {
		rec, ok := it.Next()
		if !ok {
			break
		}

		sep := l.dict.features.Separator
		j := bytes.IndexByte(rec, sep)
		var delta, tag []byte
		if j < 0 {
			delta, tag = rec, nil
		} else {
			delta, tag = rec[:j], rec[j+1:]
		}

		lemmaBytes := decodeDelta(&l.scratch, delta, wb, l.dict.features.UsesPrefixes, l.dict.features.UsesInfixes)
		lemma, err := l.dict.features.DecodeWord(lemmaBytes)
		if err != nil {
			return nil, fmt.Errorf("morphologik: decode lemma for %q: %w", word, err)
		}
		out = append(out, lemma)

		if returnForms {
			tagStr, err := l.dict.features.DecodeWord(tag)
			if err != nil {
				return nil, fmt.Errorf("morphologik: decode tag for %q: %w", word, err)
			}
			out = append(out, tagStr)
		}
	}
	return out, nil
}
