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
	"fmt"
	"testing"
)

var benchPatterns = []string{
	"/posts/:post_id/comments/:id",
	"/posts/:post_id/comments",
	"/posts/:post_id",
	"/posts",
	"/comments",
	"/comments/:id",
}

func benchRecognizer(b *testing.B) *Recognizer[string] {
	b.Helper()
	r := MustNew[string]()
	for _, p := range benchPatterns {
		if err := r.Add(p, p); err != nil {
			b.Fatal(err)
		}
	}
	return r
}

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r := MustNew[string]()
		for _, p := range benchPatterns {
			if err := r.Add(p, p); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkRecognizeTwoParams(b *testing.B) {
	r := benchRecognizer(b)
	r.Freeze()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := r.Recognize("/posts/100/comments/200")
		if err != nil {
			b.Fatal(err)
		}
		if m.Params.Len() != 2 {
			b.Fatal("expected two parameters")
		}
	}
}

func BenchmarkRecognizeStatic(b *testing.B) {
	r := benchRecognizer(b)
	r.Freeze()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Recognize("/posts"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecognizeStaticNoTable(b *testing.B) {
	r := MustNew[string](WithoutStaticTable())
	for _, p := range benchPatterns {
		if err := r.Add(p, p); err != nil {
			b.Fatal(err)
		}
	}
	r.Freeze()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Recognize("/posts"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecognizeMiss(b *testing.B) {
	r := benchRecognizer(b)
	r.Freeze()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Recognize("/users/100"); err == nil {
			b.Fatal("expected a miss")
		}
	}
}

func BenchmarkRecognizeWideFanout(b *testing.B) {
	r := MustNew[string]()
	for i := 0; i < 100; i++ {
		if err := r.Add(fmt.Sprintf("/api/v1/resource%d/:id", i), "h"); err != nil {
			b.Fatal(err)
		}
	}
	r.Freeze()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Recognize("/api/v1/resource50/7"); err != nil {
			b.Fatal(err)
		}
	}
}
