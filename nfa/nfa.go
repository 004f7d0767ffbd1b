// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nfa

import "sort"

// StateID identifies a state in the automaton arena. State IDs are stable
// for the lifetime of the automaton and double as externally visible match
// results (the recognizer keys its handler table by accepting StateID).
type StateID uint32

// Root is the StateID of the automaton root.
const Root StateID = 0

// State is one node of the automaton graph: the character class that gates
// transitions arriving at it, an ordered list of successor states, and the
// acceptance/capture flags set by the pattern compiler. States are owned by
// the arena and never removed; all mutation goes through the NFA's methods.
type State[M any] struct {
	id           StateID
	guard        CharClass
	next         []StateID
	accepting    bool
	startCapture bool
	endCapture   bool
	metadata     *M
}

// ID returns the state's identity.
func (s *State[M]) ID() StateID { return s.id }

// Guard returns the character class gating transitions into this state.
func (s *State[M]) Guard() CharClass { return s.guard }

// Transitions returns the successor state IDs in insertion order. The
// returned slice is the arena's own storage; callers must not modify it.
func (s *State[M]) Transitions() []StateID { return s.next }

// Accepting reports whether a trace may end on this state.
func (s *State[M]) Accepting() bool { return s.accepting }

// StartsCapture reports whether entering this state opens a capture.
func (s *State[M]) StartsCapture() bool { return s.startCapture }

// EndsCapture reports whether leaving this state closes a capture.
func (s *State[M]) EndsCapture() bool { return s.endCapture }

// Metadata returns the value attached via SetMetadata, or nil.
func (s *State[M]) Metadata() *M { return s.metadata }

// NFA is an automaton built once during route registration and read-only
// afterwards. The type parameter M is the metadata attached to accepting
// states; Process uses it to rank competing accepting traces.
type NFA[M any] struct {
	states []State[M]
}

// New returns an automaton containing only the root state. The root's guard
// matches any rune, though it is never consulted: no edge points back to the
// root unless the caller wires one explicitly.
func New[M any]() *NFA[M] {
	return &NFA[M]{states: []State[M]{{id: Root, guard: AllowAny()}}}
}

// Len returns the number of states in the arena, root included.
func (n *NFA[M]) Len() int { return len(n.states) }

// State returns a read-only view of the state with the given ID. The ID must
// have been returned by Put (or be Root).
func (n *NFA[M]) State(id StateID) *State[M] { return &n.states[id] }

// Put inserts an edge from the given state through the given character
// class and returns the target state. If an outgoing transition to a state
// guarded by an equal class already exists, that state is reused instead of
// allocating a new one. This structural sharing is what lets two patterns
// with a common literal prefix walk identical states.
func (n *NFA[M]) Put(from StateID, guard CharClass) StateID {
	for _, id := range n.states[from].next {
		if n.states[id].guard.Equal(guard) {
			return id
		}
	}

	id := StateID(len(n.states))
	n.states = append(n.states, State[M]{id: id, guard: guard})
	n.states[from].next = append(n.states[from].next, id)
	return id
}

// PutState appends an existing state to another state's transition list
// without the deduplication check. Its one use is wiring a dynamic segment's
// self-loop so the segment can consume more than one rune.
func (n *NFA[M]) PutState(from, to StateID) {
	n.states[from].next = append(n.states[from].next, to)
}

// Acceptance marks the state as a valid end of input.
func (n *NFA[M]) Acceptance(id StateID) {
	n.states[id].accepting = true
}

// StartCapture marks the state as opening a capture.
func (n *NFA[M]) StartCapture(id StateID) {
	n.states[id].startCapture = true
}

// EndCapture marks the state as closing a capture.
func (n *NFA[M]) EndCapture(id StateID) {
	n.states[id].endCapture = true
}

// SetMetadata attaches metadata to the state, replacing any previous value.
func (n *NFA[M]) SetMetadata(id StateID, m M) {
	n.states[id].metadata = &m
}

// Match is the result of a successful Process call.
type Match struct {
	// State is the accepting state of the winning trace.
	State StateID

	// Captures holds one input substring per capturing segment of the
	// winning trace, in left-to-right order.
	Captures []string

	// PeakTraces is the largest number of live traces observed during the
	// run. Callers can surface it as a diagnostic for pathologically
	// ambiguous pattern sets.
	PeakTraces int
}

// Process simulates the automaton over the input and returns the winning
// accepting trace's state plus its captures.
//
// Every live trace is advanced once per input rune: each transition of the
// trace's last state whose guard matches the rune forks the trace. A run
// fails with *NoTransitionError the moment all live traces die on the same
// rune, and with *NoAcceptanceError when the input is exhausted but no
// surviving trace ends on an accepting state.
//
// When several traces accept, they are stable-sorted in discovery order by
// cmp applied to their accepting states' metadata, ascending, and the last
// element wins. A nil cmp ranks all traces equal, so the last-discovered
// accepting trace wins. cmp must treat a nil metadata pointer as valid if
// any accepting state lacks metadata.
func (n *NFA[M]) Process(input string, cmp func(a, b *M) int) (Match, error) {
	runes := []rune(input)
	traces := [][]StateID{{Root}}
	peak := 1

	for i, r := range runes {
		next := make([][]StateID, 0, len(traces))
		for _, trace := range traces {
			last := trace[len(trace)-1]
			for _, id := range n.states[last].next {
				if n.states[id].guard.Matches(r) {
					fork := make([]StateID, len(trace)+1)
					copy(fork, trace)
					fork[len(trace)] = id
					next = append(next, fork)
				}
			}
		}

		if len(next) == 0 {
			return Match{}, &NoTransitionError{Input: input, Offset: i}
		}
		if len(next) > peak {
			peak = len(next)
		}
		traces = next
	}

	accepted := traces[:0:0]
	for _, trace := range traces {
		if n.states[trace[len(trace)-1]].accepting {
			accepted = append(accepted, trace)
		}
	}
	if len(accepted) == 0 {
		return Match{}, &NoAcceptanceError{Input: input}
	}

	if cmp != nil {
		sort.SliceStable(accepted, func(i, j int) bool {
			a := n.states[accepted[i][len(accepted[i])-1]].metadata
			b := n.states[accepted[j][len(accepted[j])-1]].metadata
			return cmp(a, b) < 0
		})
	}

	winner := accepted[len(accepted)-1]
	return Match{
		State:      winner[len(winner)-1],
		Captures:   n.extractCaptures(runes, winner),
		PeakTraces: peak,
	}, nil
}

// extractCaptures scans the winning trace and slices the captured substrings
// out of the input.
//
// A dynamic segment is a single self-looping state flagged as both capture
// start and capture end. Closing the capture every time the end flag is seen
// would fragment a multi-rune capture into one-rune pieces on each loop
// iteration, so a capture only closes when the next step leaves the state
// (or the input ends).
func (n *NFA[M]) extractCaptures(runes []rune, trace []StateID) []string {
	var captures []string
	last := len(trace) - 1
	start := -1

	for p := 1; p <= last; p++ {
		state := &n.states[trace[p]]

		// trace position p corresponds to the rune at index p-1: the root
		// occupies trace position 0 without consuming input.
		if start < 0 && state.startCapture {
			start = p - 1
		}

		if p < last {
			if start >= 0 && state.endCapture && trace[p] != trace[p+1] {
				captures = append(captures, string(runes[start:p]))
				start = -1
			}
		} else if start >= 0 && state.endCapture {
			captures = append(captures, string(runes[start:]))
		}
	}

	return captures
}
