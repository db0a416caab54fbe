package fsa

import "fmt"

const absentPayload = 0xFF

// PositionStore keeps small, fixed-width opaque payloads directly indexed
// by automaton state, growing on demand: a length table plus a flat byte
// array sliced in width-sized chunks. Used to carry an optional frequency
// byte attached by the builder when training data supplies one.
type PositionStore struct {
	width   uint8
	length  []uint8
	payload []byte
}

func newPositionStore(width uint8, slots int) *PositionStore {
	s := &PositionStore{
		width:   width,
		length:  make([]uint8, slots),
		payload: make([]byte, slots*int(width)),
	}
	for i := range s.length {
		s.length[i] = absentPayload
	}
	return s
}

func (s *PositionStore) ensure(pos int) {
	if pos < len(s.length) {
		return
	}
	grow := pos + 1 - len(s.length)
	old := len(s.length)
	s.length = append(s.length, make([]uint8, grow)...)
	for i := old; i < len(s.length); i++ {
		s.length[i] = absentPayload
	}
	if s.width > 0 {
		s.payload = append(s.payload, make([]byte, grow*int(s.width))...)
	}
}

// Put stores data at state position pos.
func (s *PositionStore) Put(pos int, data []byte) error {
	if pos < 0 {
		return fmt.Errorf("fsa: negative position: %d", pos)
	}
	if len(data) > int(s.width) {
		return fmt.Errorf("fsa: payload too large for width %d: %d", s.width, len(data))
	}
	s.ensure(pos)
	s.length[pos] = uint8(len(data))
	base := pos * int(s.width)
	copy(s.payload[base:base+len(data)], data)
	return nil
}

// Get returns the payload stored at pos, if any.
func (s *PositionStore) Get(pos int) ([]byte, bool) {
	if pos < 0 || pos >= len(s.length) {
		return nil, false
	}
	n := s.length[pos]
	if n == absentPayload {
		return nil, false
	}
	base := pos * int(s.width)
	return s.payload[base : base+int(n)], true
}
