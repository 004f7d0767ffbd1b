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

// Package nfa implements the non-deterministic finite automaton that backs
// route recognition.
//
// The automaton is an append-only arena of states addressed by StateID.
// State 0 is the root. Every other state is created by Put, which
// deduplicates edges by character class so that patterns sharing a literal
// prefix share states. Simulation (Process) tracks the full set of live
// traces generation by generation instead of backtracking, which makes
// ambiguity resolution exact: every accepting trace is known at the end of
// the input, and the caller's comparator picks the winner.
//
// # Thread Safety
//
// Construction (Put, PutState, Acceptance, StartCapture, EndCapture,
// SetMetadata) must happen single-threaded. After construction the automaton
// is read-only and Process may be called concurrently without locking.
package nfa
