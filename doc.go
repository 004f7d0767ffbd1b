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

// Package recognizer matches URL-style paths against registered patterns.
//
// It is a matching engine, not a web server: it owns no sockets, no dispatch
// loop, and no middleware chain. Routing layers hand it a path string and a
// pre-registered pattern set with opaque handler values; it answers with the
// winning handler and the extracted path parameters.
//
// # Matching Model
//
// Patterns compile into a shared non-deterministic finite automaton (see the
// nfa subpackage). Recognition simulates every viable path through the
// automaton at once, so overlapping patterns like /posts/new and /posts/:id
// are both followed to the end of the input and the winner is chosen by
// specificity, not by registration order or greedy first-match:
//
//   - fewer wildcard segments wins, then
//   - fewer parameter segments, then
//   - fewer literal segments
//
// Parameterless patterns additionally compile into a full-path hash table at
// Freeze time, so the common static lookup skips simulation entirely.
//
// # Lifecycle
//
// Registration is single-threaded; Freeze marks the boundary after which the
// recognizer is immutable and Recognize may be called from any number of
// goroutines without locking.
//
// # Quick Start
//
//	r := recognizer.MustNew[string]()
//
//	r.Add("/posts/new", "new post form")
//	r.Add("/posts/:id", "show post")
//	r.Freeze()
//
//	m, err := r.Recognize("/posts/42")
//	if err != nil {
//	    // *nfa.NoTransitionError or *nfa.NoAcceptanceError
//	}
//	id, _ := m.Params.Get("id") // "42"
//	fmt.Println(*m.Handler)     // "show post"
//
// # Constructor Pattern
//
// New returns an error for consistency with rivaas module constructors even
// though recognizer construction cannot fail today; MustNew panics instead.
// All configuration options use the "With" prefix (WithDiagnostics,
// WithObservability, WithStrictPatterns, ...) and validate at application
// time.
package recognizer
