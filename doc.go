/*
Package morphologik implements a morphological dictionary lookup and
encoding engine over a byte-level finite-state automaton.

Given an inflected surface word it returns the (lemma, tag) pairs stored
in a compiled dictionary; given (surface, lemma, tag) training triples it
produces the compact delta-coded byte record the dictionary compiler
would insert into the FSA. The codec supports three schemes — standard,
prefix and infix — and the caller chooses which one encodes a record;
the encoders do not compare schemes against each other.

The dictionary automaton itself lives in the fsa subpackage; charset
resolution lives in charset; training-data adapters live in morphtab.

Further Reading

	https://github.com/morfologik/morfologik-stemming
	http://www.eti.pg.gda.pl/~jandac/fsa.html (Jan Daciuk's FSA package)

----------------------------------------------------------------------

# BSD License

License information is available in the LICENSE file.
*/
package morphologik

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'morphologik'
func tracer() tracing.Trace {
	return tracing.Select("morphologik")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
