package fsa

// MatchKind classifies the outcome of walking a byte sequence through the
// automaton from a given start state.
type MatchKind int

const (
	// NoMatch is the zero value of MatchKind. Automaton.Match never
	// returns it; it is defined for completeness of the tagged variant
	// in the data model.
	NoMatch MatchKind = iota
	// ExactMatch means every input byte was consumed and the resulting
	// state is terminal.
	ExactMatch
	// PrematureEnd means every input byte was consumed but the resulting
	// state is not terminal — there may still be a continuation below it
	// (e.g. a separator arc).
	PrematureEnd
	// Mismatch means a byte in the input had no corresponding arc.
	Mismatch
)

// WalkResult is the outcome of Automaton.Match.
type WalkResult struct {
	Kind     MatchKind
	State    State // node_where_input_exhausted (PrematureEnd) or node_where_diverged (Mismatch)
	Consumed int   // bytes consumed before Mismatch; meaningless otherwise
}

// Match walks input one byte at a time from start, stopping at the first
// byte with no matching arc.
func (a *Automaton) Match(input []byte, start State) WalkResult {
	state := start
	for i, b := range input {
		next, ok := a.Transition(state, b)
		if !ok {
			return WalkResult{Kind: Mismatch, State: state, Consumed: i}
		}
		state = next
	}
	if a.IsTerminal(state) {
		return WalkResult{Kind: ExactMatch, State: state}
	}
	return WalkResult{Kind: PrematureEnd, State: state}
}
