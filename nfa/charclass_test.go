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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharClassMatches(t *testing.T) {
	tests := []struct {
		name  string
		class CharClass
		rune  rune
		want  bool
	}{
		{"allow contains", Allow("abc"), 'b', true},
		{"allow excludes", Allow("abc"), 'd', false},
		{"allow empty matches nothing", Allow(""), 'a', false},
		{"allow single rune", AllowRune('/'), '/', true},
		{"allow single rune other", AllowRune('/'), 'x', false},
		{"deny excludes member", Deny("/"), '/', false},
		{"deny matches non-member", Deny("/"), 'x', true},
		{"deny empty matches everything", Deny(""), 'q', true},
		{"allow any", AllowAny(), '/', true},
		{"deny single rune", DenyRune('/'), 'a', true},
		{"unicode allow", AllowRune('é'), 'é', true},
		{"unicode deny", DenyRune('/'), 'é', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.Matches(tt.rune))
		})
	}
}

func TestCharClassEqual(t *testing.T) {
	assert.True(t, Allow("ab").Equal(Allow("ba")), "set order must not matter")
	assert.True(t, Allow("aab").Equal(Allow("ab")), "duplicates must not matter")
	assert.True(t, AllowAny().Equal(Deny("")), "AllowAny is the empty deny set")

	assert.False(t, Allow("a").Equal(Deny("a")), "variant is part of identity")
	assert.False(t, Allow("a").Equal(Allow("b")))
	assert.False(t, AllowRune('/').Equal(DenyRune('/')))
}

func TestCharClassString(t *testing.T) {
	assert.Equal(t, "any", AllowAny().String())
	assert.Equal(t, `allow("a")`, AllowRune('a').String())
	assert.Equal(t, `deny("/")`, DenyRune('/').String())
}
