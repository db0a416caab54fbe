package morphologik

import (
	"fmt"
	"io"

	"github.com/smietanka/morfologik-stemming/fsa"
	"github.com/smietanka/morfologik-stemming/morphtab"
)

// Dictionary is a compiled FSA plus the Features it was built under. It is
// immutable after BuildDictionary/LoadDictionary returns and may be shared
// read-only across any number of Lookup instances.
type Dictionary struct {
	features Features
	backend  fsaBackend
}

// Scheme selects which delta-codec variant the compiler uses when
// composing a training record into an FSA entry.
type Scheme string

const (
	SchemeStandard Scheme = "standard"
	SchemePrefix   Scheme = "prefix"
	SchemeInfix    Scheme = "infix"
)

// BuildDictionary reads every training triple from r, encodes it under
// scheme and features, and compiles the resulting records into a frozen
// automaton.
//
// A record whose Frequency is non-zero gets a one-byte payload attached
// to its terminal state (clamped to 255).
func BuildDictionary(r morphtab.TrainingReader, scheme Scheme, features Features) (*Dictionary, error) {
	b := fsa.NewBuilder()
	for {
		rec, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("morphologik: read training record: %w", err)
		}
		line, err := encodeForScheme(features, scheme, rec.Surface, rec.Lemma, rec.Tag)
		if err != nil {
			return nil, fmt.Errorf("morphologik: encode record %q/%q/%q: %w", rec.Surface, rec.Lemma, rec.Tag, err)
		}
		recordBytes := []byte(line)
		if rec.Frequency != 0 {
			freq := rec.Frequency
			if freq > 255 {
				freq = 255
			}
			if freq < 0 {
				freq = 0
			}
			b.SetPayload(recordBytes, []byte{byte(freq)})
		} else {
			b.Insert(recordBytes)
		}
	}
	a := b.Freeze()
	st := a.Stats()
	tracer().Infof("fsa build stats used=%d total=%d fill=%.2f maxStateID=%d", st.UsedSlots, st.TotalSlots, st.FillRatio(), st.MaxStateID)
	return LoadDictionary(a, features), nil
}

// LoadDictionary wraps an already-frozen automaton (e.g. one read back
// from disk by a future dictionary loader) together with the Features it
// was compiled under.
func LoadDictionary(a *fsa.Automaton, features Features) *Dictionary {
	return &Dictionary{features: features, backend: newWalker(a)}
}

func encodeForScheme(f Features, scheme Scheme, form, lemma, tag string) (string, error) {
	switch scheme {
	case SchemeStandard:
		return f.StandardEncode(form, lemma, tag)
	case SchemePrefix:
		return f.PrefixEncode(form, lemma, tag)
	case SchemeInfix:
		return f.InfixEncode(form, lemma, tag)
	default:
		return "", fmt.Errorf("morphologik: unknown scheme %q", scheme)
	}
}

// Frequency re-encodes (form, lemma, tag) under scheme and reports the
// payload byte attached to that exact record's terminal state, if any.
func (d *Dictionary) Frequency(scheme Scheme, form, lemma, tag string) (int, bool, error) {
	line, err := encodeForScheme(d.features, scheme, form, lemma, tag)
	if err != nil {
		return 0, false, err
	}
	res := d.backend.Match([]byte(line), d.backend.Root())
	if res.Kind != fsa.ExactMatch {
		return 0, false, nil
	}
	payload, ok := d.backend.Payload(res.State)
	if !ok || len(payload) == 0 {
		return 0, false, nil
	}
	return int(payload[0]), true, nil
}
