// Package fsa implements a frozen, byte-labelled double-array automaton.
//
// It plays the role of the external FSA container that a morphological
// dictionary compiler (Jan Daciuk's tool, in the original toolchain this
// package descends from) would normally supply pre-built: construction,
// freezing and byte-level traversal live here so that the lookup and
// encoding logic in the parent package can be written purely in terms of
// states, transitions and accepted continuations.
//
// States are indices into Base/Check (0 is unused; Root is the first
// allocated state). A transition on state s with label b lands on
// t := Base[s] + dense(b), valid only if Check[t] == s, where dense(b) =
// int(b)+1 so that byte 0x00 is a legal label and 0 stays reserved as the
// "no such child" sentinel.
package fsa

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fsa'
func tracer() tracing.Trace {
	return tracing.Select("fsa")
}
