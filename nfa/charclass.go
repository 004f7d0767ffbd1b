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

import (
	"fmt"
	"slices"
	"strings"
)

// CharClass is a predicate over a single input rune. It is one of two
// variants:
//
//   - allow: matches iff the rune is in the set
//   - deny: matches iff the rune is NOT in the set
//
// A deny class over the empty set matches every rune.
//
// CharClass values are immutable once built and comparable via Equal.
// Equality is what drives edge deduplication in the automaton: Put reuses an
// existing transition when its target is guarded by an equal class.
type CharClass struct {
	// chars holds the set as a sorted, deduplicated rune string so that
	// equality is a plain string comparison.
	chars string
	deny  bool
}

// AllowAny returns a class that matches every rune (a deny class over the
// empty set). The automaton root is guarded by this class; dynamic route
// segments use Deny("/") instead so the separator stops the match.
func AllowAny() CharClass {
	return CharClass{deny: true}
}

// Allow returns a class matching exactly the runes of chars.
func Allow(chars string) CharClass {
	return CharClass{chars: normalize(chars)}
}

// AllowRune returns a class matching exactly r.
func AllowRune(r rune) CharClass {
	return CharClass{chars: string(r)}
}

// Deny returns a class matching every rune except those in chars.
func Deny(chars string) CharClass {
	return CharClass{chars: normalize(chars), deny: true}
}

// DenyRune returns a class matching every rune except r.
func DenyRune(r rune) CharClass {
	return CharClass{chars: string(r), deny: true}
}

// Matches reports whether r satisfies the class predicate.
func (c CharClass) Matches(r rune) bool {
	return strings.ContainsRune(c.chars, r) != c.deny
}

// Equal reports whether both classes have the same variant and set.
func (c CharClass) Equal(other CharClass) bool {
	return c.deny == other.deny && c.chars == other.chars
}

// String returns a compact description, used in test failure output.
func (c CharClass) String() string {
	if c.deny {
		if c.chars == "" {
			return "any"
		}
		return fmt.Sprintf("deny(%q)", c.chars)
	}
	return fmt.Sprintf("allow(%q)", c.chars)
}

// normalize sorts and deduplicates the runes of chars so that classes built
// from differently ordered inputs compare equal.
func normalize(chars string) string {
	if len(chars) <= 1 {
		return chars
	}
	runes := []rune(chars)
	slices.Sort(runes)
	return string(slices.Compact(runes))
}
