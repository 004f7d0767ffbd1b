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

import "fmt"

// NoTransitionError is returned by Process when the input contains a rune
// for which no live trace has a matching edge. The run stops at the first
// such rune; Offset is its rune index within Input.
type NoTransitionError struct {
	Input  string
	Offset int
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition for %q at rune offset %d", e.Input, e.Offset)
}

// NoAcceptanceError is returned by Process when the input was fully consumed
// but no surviving trace ended in an accepting state.
type NoAcceptanceError struct {
	Input string
}

func (e *NoAcceptanceError) Error() string {
	return fmt.Sprintf("input %q exhausted before reaching an acceptance state", e.Input)
}
