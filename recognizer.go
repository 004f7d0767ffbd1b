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
	"sync/atomic"

	"rivaas.dev/recognizer/nfa"
)

// Match is the result of a successful Recognize call.
type Match[T any] struct {
	// Handler points at the value registered with the winning pattern. The
	// recognizer never inspects the handler; it only stores and returns it.
	Handler *T

	// Params holds the extracted path parameters in declaration order.
	Params Params

	// Pattern is the winning pattern as registered (e.g. "/users/:id").
	// Observability code should label metrics with this, never the raw
	// path, to keep cardinality bounded.
	Pattern string
}

// Recognizer matches input paths against a registered set of URL-style
// patterns, extracts named parameters, and resolves ambiguity by pattern
// specificity. The type parameter T is the caller-chosen handler type.
//
// Pattern syntax:
//
//   - literal segments match themselves: /posts/new
//   - :name segments match one or more non-separator characters and bind
//     the match to the parameter name: /posts/:id
//
// When several patterns match the same input, the most specific wins:
// fewer parameter segments beats more, regardless of registration order, so
// /posts/new beats /posts/:id for the input /posts/new.
//
// Thread safety: Add must happen during a single-threaded registration
// phase. After Freeze the recognizer is immutable and Recognize is safe for
// concurrent use without locking.
type Recognizer[T any] struct {
	settings

	nfa      *nfa.NFA[metadata]
	handlers map[nfa.StateID]*T
	patterns map[nfa.StateID]string

	// staticEntries collects parameterless patterns during registration;
	// Freeze compiles them into the fast table.
	staticEntries []staticRoute
	static        atomic.Pointer[staticTable]
	frozen        atomic.Bool
}

// New creates a recognizer with the given options.
//
// Construction cannot fail today; the error return leaves room for options
// that validate, matching the constructor contract used across rivaas
// modules.
func New[T any](opts ...Option) (*Recognizer[T], error) {
	r := &Recognizer[T]{
		settings: settings{traceWarnThreshold: defaultTraceWarnThreshold},
		nfa:      nfa.New[metadata](),
		handlers: make(map[nfa.StateID]*T),
		patterns: make(map[nfa.StateID]string),
	}

	for _, opt := range opts {
		opt(&r.settings)
	}

	return r, nil
}

// MustNew creates a recognizer with the given options and panics if
// construction fails.
func MustNew[T any](opts ...Option) *Recognizer[T] {
	r, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of distinct registered patterns.
func (r *Recognizer[T]) Len() int {
	return len(r.handlers)
}

// Freeze ends the registration phase: it compiles the static fast table
// (unless disabled) and publishes the recognizer for concurrent use. Add
// returns ErrFrozen afterwards. Freeze is idempotent.
//
// Recognize works before Freeze too, but only single-threaded; the freeze
// boundary is what makes lock-free concurrent recognition sound.
func (r *Recognizer[T]) Freeze() {
	if r.frozen.Swap(true) {
		return
	}
	if !r.noStaticTable {
		r.static.Store(compileStaticTable(r.staticEntries))
	}
}

// Recognize matches the path against the registered patterns. On success it
// returns the stored handler, the extracted parameters, and the winning
// pattern. On failure it returns the automaton's error unchanged: a
// *nfa.NoTransitionError when a character had no matching edge, or a
// *nfa.NoAcceptanceError when the path ended short of every pattern.
func (r *Recognizer[T]) Recognize(path string) (Match[T], error) {
	var obsState any
	if r.observability != nil {
		obsState = r.observability.OnRecognizeStart(path)
	}

	match, err := r.recognize(path)

	if r.observability != nil {
		r.observability.OnRecognizeEnd(obsState, match.Pattern, err)
	}

	return match, err
}

func (r *Recognizer[T]) recognize(path string) (Match[T], error) {
	path = strings.TrimPrefix(path, "/")

	// Fast path: frozen parameterless patterns resolve with a hash probe.
	if table := r.static.Load(); table != nil {
		if state, ok := table.lookup(path); ok {
			return Match[T]{Handler: r.handlers[state], Pattern: r.patterns[state]}, nil
		}
	}

	result, err := r.nfa.Process(path, compareMetadata)
	if err != nil {
		return Match[T]{}, err
	}

	if r.traceWarnThreshold > 0 && result.PeakTraces > r.traceWarnThreshold {
		r.emitDiagnostic(DiagHighTraceCount, "recognition trace fan-out exceeded threshold", map[string]any{
			"peak_traces": result.PeakTraces,
			"threshold":   r.traceWarnThreshold,
		})
	}

	meta := r.nfa.State(result.State).Metadata()
	return Match[T]{
		Handler: r.handlers[result.State],
		Params:  newParams(meta.paramNames, result.Captures),
		Pattern: r.patterns[result.State],
	}, nil
}
