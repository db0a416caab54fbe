// Package morphtab provides format-agnostic readers for morphological
// training data: (surface, lemma, tag) triples used to build a dictionary
// automaton. It is a streaming adapter between a concrete file format and
// the format-agnostic TrainingReader contract.
package morphtab

// Record is one training triple: an inflected surface form, its lemma,
// and a morphosyntactic tag. Frequency is optional usage-count metadata
// (0 means "not supplied") that callers may attach to dictionary entries.
type Record struct {
	Surface   string
	Lemma     string
	Tag       string
	Frequency int
}

// TrainingReader yields Records one at a time. It returns io.EOF when
// exhausted.
type TrainingReader interface {
	Next() (Record, error)
}
