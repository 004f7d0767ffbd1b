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

// Specificity records how a pattern is composed: how many literal segments,
// how many parameter segments, and how many wildcard segments. It is
// accumulated once per registered pattern and attached to the pattern's
// accepting state, where it breaks ties when several patterns match the same
// input.
//
// Stars counts a reserved segment kind that would match across separator
// boundaries. No current pattern syntax produces one, but the field
// participates in the ordering so wildcard-bearing patterns will rank below
// parameterized ones when the syntax lands.
type Specificity struct {
	Statics  int32
	Dynamics int32
	Stars    int32
}

// Compare implements the total order used to rank competing accepting
// traces. It returns a negative value when s ranks below other, positive
// when s ranks above, and zero when they rank equal.
//
// Fields are compared in the order Stars, Dynamics, Statics, and for every
// field the smaller count ranks higher: a pattern with fewer wildcards beats
// one with more, then fewer parameters, then fewer literal segments.
//
// The statics leg looks backwards at first glance ("fewer literals wins"),
// but it can only decide on its own when two patterns with identical
// wildcard and parameter counts both match the same input, and for
// same-length inputs that pins the literal counts too. The convention
// matches the long-standing recognizer behavior and is pinned by tests; do
// not invert it.
func (s Specificity) Compare(other Specificity) int {
	switch {
	case s.Stars > other.Stars:
		return -1
	case s.Stars < other.Stars:
		return 1
	case s.Dynamics > other.Dynamics:
		return -1
	case s.Dynamics < other.Dynamics:
		return 1
	case s.Statics > other.Statics:
		return -1
	case s.Statics < other.Statics:
		return 1
	default:
		return 0
	}
}

// metadata is attached to every accepting state at registration time: the
// pattern's specificity for trace ranking, and its parameter names in
// declaration order for pairing with extracted captures.
type metadata struct {
	spec       Specificity
	paramNames []string
}

// compareMetadata ranks accepting traces for nfa.Process. Accepting states
// always carry metadata (Add attaches it), but a nil check keeps the
// comparator total.
func compareMetadata(a, b *metadata) int {
	if a == nil || b == nil {
		return 0
	}
	return a.spec.Compare(b.spec)
}
