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

package recognizer

import (
	"strings"

	"rivaas.dev/recognizer/nfa"
)

// Add registers a pattern with its handler.
//
// One leading separator is stripped, the remainder is split on "/", and
// each segment is compiled into automaton states: literal segments become
// one allow-edge per character, :name segments become a self-looping
// deny-separator state with capture flags. Edge deduplication means
// patterns sharing a literal prefix share states.
//
// Registering the same pattern twice reuses the same accepting state and
// overwrites the stored handler: the last registration wins. A
// DiagDuplicatePattern diagnostic fires when that happens.
//
// By default malformed patterns are accepted structurally - an empty
// pattern behaves like "/" and a bare ":" segment binds a zero-length
// parameter name - and Add returns nil. Under WithStrictPatterns those
// return ErrEmptyPattern and ErrEmptyParameterName respectively. After
// Freeze, Add returns ErrFrozen.
func (r *Recognizer[T]) Add(pattern string, handler T) error {
	if r.frozen.Load() {
		return ErrFrozen
	}

	path := strings.TrimPrefix(pattern, "/")
	segments := strings.Split(path, "/")

	if err := r.validatePattern(pattern, segments); err != nil {
		return err
	}

	state := nfa.Root
	var meta metadata

	for i, segment := range segments {
		if i > 0 {
			state = r.nfa.Put(state, nfa.AllowRune('/'))
		}

		if strings.HasPrefix(segment, ":") {
			name := segment[1:]
			if name == "" {
				r.emitDiagnostic(DiagEmptyParamName, "pattern binds a zero-length parameter name", map[string]any{
					"pattern": pattern,
				})
			}
			state = r.compileDynamicSegment(state)
			meta.spec.Dynamics++
			meta.paramNames = append(meta.paramNames, name)
		} else {
			state = r.compileStaticSegment(state, segment)
			meta.spec.Statics++
		}
	}

	if _, exists := r.handlers[state]; exists {
		r.emitDiagnostic(DiagDuplicatePattern, "pattern re-registered, previous handler replaced", map[string]any{
			"pattern": pattern,
		})
	}

	r.nfa.Acceptance(state)
	r.nfa.SetMetadata(state, meta)
	r.handlers[state] = &handler
	r.patterns[state] = pattern

	if meta.spec.Dynamics == 0 && meta.spec.Stars == 0 {
		r.staticEntries = append(r.staticEntries, staticRoute{path: path, state: state})
	}

	r.emitDiagnostic(DiagPatternRegistered, "pattern registered", map[string]any{
		"pattern": pattern,
		"statics": meta.spec.Statics,
		"params":  meta.spec.Dynamics,
	})

	return nil
}

// validatePattern enforces WithStrictPatterns. The permissive default
// accepts everything, preserving the recognizer's legacy registration
// behavior.
func (r *Recognizer[T]) validatePattern(pattern string, segments []string) error {
	if !r.strict {
		return nil
	}
	if pattern == "" {
		return ErrEmptyPattern
	}
	for _, segment := range segments {
		if segment == ":" {
			return ErrEmptyParameterName
		}
	}
	return nil
}

// compileStaticSegment wires one allow-edge per rune of the segment. An
// empty segment (the root pattern, or doubled separators) adds no states:
// the segment's end state is its start state.
func (r *Recognizer[T]) compileStaticSegment(state nfa.StateID, segment string) nfa.StateID {
	for _, ch := range segment {
		state = r.nfa.Put(state, nfa.AllowRune(ch))
	}
	return state
}

// compileDynamicSegment wires a :name segment: a single state that accepts
// any rune but the separator, looping on itself so the segment consumes one
// or more runes, flagged as both capture start and capture end.
func (r *Recognizer[T]) compileDynamicSegment(state nfa.StateID) nfa.StateID {
	state = r.nfa.Put(state, nfa.DenyRune('/'))

	// Put deduplicates: a second dynamic segment off the same predecessor
	// lands on the existing state, which already loops. Adding the loop
	// again would fork duplicate traces on every consumed rune.
	if !hasSelfLoop(r.nfa.State(state)) {
		r.nfa.PutState(state, state)
	}

	r.nfa.StartCapture(state)
	r.nfa.EndCapture(state)
	return state
}

func hasSelfLoop(s *nfa.State[metadata]) bool {
	for _, id := range s.Transitions() {
		if id == s.ID() {
			return true
		}
	}
	return false
}
