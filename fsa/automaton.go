package fsa

// State identifies a node of a frozen Automaton. The zero State never
// denotes a valid node; Root() returns the first usable one.
type State uint32

// Automaton is a frozen, byte-labelled double-array trie.
//
// Ported from a rune-alphabet double array (Base/Check over a dense BMP
// mapping) to a byte alphabet: since bytes are already a small, dense
// 256-element alphabet, no Unicode-to-dense-ID paging layer is needed —
// dense(b) = int(b)+1 directly, reserving 0 as "absent".
type Automaton struct {
	root     State
	base     []int32
	check    []int32
	terminal []bool
	payload  *PositionStore
}

// Root returns the automaton's start state.
func (a *Automaton) Root() State { return a.root }

// NStates reports the number of allocated state slots.
func (a *Automaton) NStates() int { return len(a.base) }

func dense(b byte) int32 { return int32(b) + 1 }

// Transition returns the state reached from s on label b, if any.
func (a *Automaton) Transition(s State, b byte) (State, bool) {
	if int(s) >= len(a.base) || int(s) >= len(a.check) {
		return 0, false
	}
	t := a.base[s] + dense(b)
	if t <= 0 || int(t) >= len(a.check) {
		return 0, false
	}
	if a.check[t] != int32(s) {
		return 0, false
	}
	return State(t), true
}

// IsTerminal reports whether s is the end of at least one inserted record.
func (a *Automaton) IsTerminal(s State) bool {
	if int(s) >= len(a.terminal) {
		return false
	}
	return a.terminal[s]
}

// Payload returns the optional per-state annotation (e.g. a frequency
// count) attached via the builder, if any.
func (a *Automaton) Payload(s State) ([]byte, bool) {
	if a.payload == nil {
		return nil, false
	}
	return a.payload.Get(int(s))
}

// Stats reports density metrics for the underlying double array.
type Stats struct {
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio returns UsedSlots/TotalSlots, or 0 if the automaton is empty.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats computes occupancy statistics for this automaton.
func (a *Automaton) Stats() Stats {
	st := Stats{TotalSlots: len(a.check), MaxStateID: int(a.root)}
	if st.TotalSlots == 0 {
		return st
	}
	used := 0
	maxID := int(a.root)
	for i := range a.check {
		if State(i) == a.root || a.check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	st.UsedSlots = used
	st.MaxStateID = maxID
	return st
}
