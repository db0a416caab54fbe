package morphtab

import (
	"strings"

	"github.com/derekparker/trie"
)

const dedupSep = "\x00"

// DedupReader wraps a TrainingReader and skips records whose
// (surface, lemma, tag) triple was already seen. Large training corpora
// assembled from multiple sources routinely contain repeated entries;
// compiling duplicates into the automaton would simply waste build time
// and FSA states on records that collapse to the one already inserted.
//
// Seen triples are tracked in a derekparker/trie keyed by
// "surface\x00lemma\x00tag", which gives the same prefix-sharing memory
// benefit over a large surface-sharing corpus that a plain map would not.
type DedupReader struct {
	inner TrainingReader
	seen  *trie.Trie
}

// NewDedupReader wraps inner so that Next never returns the same
// (surface, lemma, tag) triple twice.
func NewDedupReader(inner TrainingReader) *DedupReader {
	return &DedupReader{inner: inner, seen: trie.New()}
}

// Next returns the next not-yet-seen record, or io.EOF.
func (d *DedupReader) Next() (Record, error) {
	for {
		rec, err := d.inner.Next()
		if err != nil {
			return Record{}, err
		}
		key := strings.Join([]string{rec.Surface, rec.Lemma, rec.Tag}, dedupSep)
		if _, found := d.seen.Find(key); found {
			continue
		}
		d.seen.Add(key, nil)
		return rec, nil
	}
}

var _ TrainingReader = (*DedupReader)(nil)
