package morphologik

import "github.com/smietanka/morfologik-stemming/fsa"

// fsaBackend is the narrow surface Lookup needs from the automaton: walk
// a byte sequence from a state, enumerate accepted continuations below a
// state, and fetch a state's optional payload. Keeping it as an
// interface means Lookup never depends on the concrete automaton layout,
// only on this contract.
type fsaBackend interface {
	Root() fsa.State
	Match(input []byte, start fsa.State) fsa.WalkResult
	EnumerateAccepted(s fsa.State) *fsa.AcceptedIter
	Payload(s fsa.State) ([]byte, bool)
}

// walker adapts a frozen fsa.Automaton to fsaBackend. It holds no mutable
// state between calls.
type walker struct {
	automaton *fsa.Automaton
}

func newWalker(a *fsa.Automaton) *walker { return &walker{automaton: a} }

func (w *walker) Root() fsa.State { return w.automaton.Root() }

func (w *walker) Match(input []byte, start fsa.State) fsa.WalkResult {
	return w.automaton.Match(input, start)
}

func (w *walker) EnumerateAccepted(s fsa.State) *fsa.AcceptedIter {
	return w.automaton.EnumerateAccepted(s)
}

func (w *walker) Payload(s fsa.State) ([]byte, bool) {
	return w.automaton.Payload(s)
}

var _ fsaBackend = (*walker)(nil)
