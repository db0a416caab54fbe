package fsa

// AcceptedIter enumerates byte strings accepted from a given state, one
// per accepting path below it. It is finite, non-restartable, and
// produces a freshly-owned slice per call to Next — the contract
// FsaWalker.EnumerateAccepted promises its caller.
//
// Ordering is a pre-order, ascending-byte-label depth-first walk, which is
// stable for a given (frozen) automaton as required.
type AcceptedIter struct {
	a     *Automaton
	stack []iterFrame
}

type iterFrame struct {
	state   State
	prefix  []byte
	next    int
	yielded bool
}

// EnumerateAccepted returns an iterator over every byte string accepted
// starting from state s.
func (a *Automaton) EnumerateAccepted(s State) *AcceptedIter {
	return &AcceptedIter{a: a, stack: []iterFrame{{state: s}}}
}

// Next returns the next accepted byte string, or ok=false when exhausted.
func (it *AcceptedIter) Next() (out []byte, ok bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if !top.yielded {
			top.yielded = true
			if it.a.IsTerminal(top.state) {
				out = make([]byte, len(top.prefix))
				copy(out, top.prefix)
				return out, true
			}
		}
		descended := false
		for top.next <= 0xff {
			label := byte(top.next)
			top.next++
			next, ok := it.a.Transition(top.state, label)
			if !ok {
				continue
			}
			child := iterFrame{state: next, prefix: append(append([]byte(nil), top.prefix...), label)}
			it.stack = append(it.stack, child)
			descended = true
			break
		}
		if !descended {
			it.stack = it.stack[:len(it.stack)-1]
		}
	}
	return nil, false
}
