package fsa

import (
	"fmt"
	"sort"
)

// buildNode is one state of the mutable build-time trie. Insert grows this
// tree; Freeze compiles it into a double array and discards it.
type buildNode struct {
	state    State
	terminal bool
	payload  []byte
	children map[byte]*buildNode
}

// Builder accumulates records into a mutable trie, then compiles that trie
// into a frozen Automaton in two phases: build a pointer tree while
// inserting, then Freeze walks it breadth-first to compute Base/Check.
type Builder struct {
	root *buildNode
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{root: &buildNode{children: make(map[byte]*buildNode)}}
}

// Build inserts every record into a fresh Builder and freezes the result
// in one step. Records must already be assembled in final on-disk form
// (surface/delta/tag joined by the dictionary's separator); Build itself
// does no encoding.
func Build(records [][]byte) (*Automaton, error) {
	b := NewBuilder()
	for _, r := range records {
		if len(r) == 0 {
			return nil, fmt.Errorf("fsa: empty record")
		}
		b.Insert(r)
	}
	return b.Freeze(), nil
}

// Insert adds record to the trie, marking its final state as terminal.
// Inserting the same record twice is a no-op beyond the second walk.
func (b *Builder) Insert(record []byte) {
	n := b.root
	for _, c := range record {
		child := n.children[c]
		if child == nil {
			child = &buildNode{children: make(map[byte]*buildNode)}
			n.children[c] = child
		}
		n = child
	}
	n.terminal = true
}

// SetPayload inserts record (as Insert does, if it is not already present)
// and attaches an opaque, small annotation to its terminal state. Payloads
// survive Freeze and are retrievable via Automaton.Payload.
func (b *Builder) SetPayload(record []byte, payload []byte) {
	n := b.root
	for _, c := range record {
		child := n.children[c]
		if child == nil {
			child = &buildNode{children: make(map[byte]*buildNode)}
			n.children[c] = child
		}
		n = child
	}
	n.terminal = true
	n.payload = payload
}

// Freeze compiles the build trie into a double-array Automaton.
//
// The base-finding search (findBase) walks the breadth-first layout: for
// every node, find the smallest base such that base+label is unoccupied
// for every one of the node's children, then claim those slots.
func (b *Builder) Freeze() *Automaton {
	a := &Automaton{root: 1}
	a.base = make([]int32, 2)
	a.check = make([]int32, 2)
	a.terminal = make([]bool, 2)

	b.root.state = a.root
	queue := []*buildNode{b.root}
	maxPacked := 0
	type pending struct {
		state State
		data  []byte
	}
	var pendingPayloads []pending

	for qi := 0; qi < len(queue); qi++ {
		n := queue[qi]
		ensureIndex(a, int(n.state))
		a.terminal[n.state] = n.terminal
		if n.payload != nil {
			pendingPayloads = append(pendingPayloads, pending{state: n.state, data: n.payload})
			if len(n.payload) > maxPacked {
				maxPacked = len(n.payload)
			}
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(a.check, labels)
		ensureIndex(a, base+int(dense(labels[len(labels)-1])))
		a.base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(dense(label))
			ensureIndex(a, t)
			child := n.children[label]
			child.state = State(t)
			a.check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}

	if len(pendingPayloads) > 0 {
		a.payload = newPositionStore(uint8(maxPacked), len(a.base))
		for _, p := range pendingPayloads {
			_ = a.payload.Put(int(p.state), p.data)
		}
	}
	tracer().Infof("freeze states=%d payloads=%d", len(queue), len(pendingPayloads))
	return a
}

func sortedLabels(children map[byte]*buildNode) []byte {
	labels := make([]byte, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// findBase finds the smallest base >= 1 such that base+dense(label) is
// unoccupied (check==0) for every label in labels.
func findBase(check []int32, labels []byte) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(dense(label))
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(a *Automaton, idx int) {
	if idx < len(a.base) {
		return
	}
	grow := idx + 1 - len(a.base)
	a.base = append(a.base, make([]int32, grow)...)
	a.check = append(a.check, make([]int32, grow)...)
	a.terminal = append(a.terminal, make([]bool, grow)...)
}
