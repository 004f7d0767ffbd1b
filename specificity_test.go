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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificityCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Specificity
		want int
	}{
		{
			name: "equal",
			a:    Specificity{Statics: 2, Dynamics: 1},
			b:    Specificity{Statics: 2, Dynamics: 1},
			want: 0,
		},
		{
			name: "fewer stars ranks higher",
			a:    Specificity{Stars: 1},
			b:    Specificity{Stars: 0},
			want: -1,
		},
		{
			name: "fewer dynamics ranks higher",
			a:    Specificity{Statics: 1, Dynamics: 1},
			b:    Specificity{Statics: 2, Dynamics: 0},
			want: -1,
		},
		{
			name: "stars outrank dynamics",
			a:    Specificity{Dynamics: 5},
			b:    Specificity{Stars: 1},
			want: 1,
		},
		{
			name: "legacy statics convention: fewer literals ranks higher",
			a:    Specificity{Statics: 3},
			b:    Specificity{Statics: 1},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a), "order must be antisymmetric")
		})
	}
}

func TestCompareMetadataTotal(t *testing.T) {
	a := &metadata{spec: Specificity{Statics: 1}}

	assert.Zero(t, compareMetadata(nil, nil))
	assert.Zero(t, compareMetadata(a, nil))
	assert.Zero(t, compareMetadata(nil, a))
	assert.Zero(t, compareMetadata(a, a))
}
