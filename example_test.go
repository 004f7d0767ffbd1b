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

package recognizer_test

import (
	"fmt"

	"rivaas.dev/recognizer"
)

func Example() {
	r, err := recognizer.New[string]()
	if err != nil {
		panic(err)
	}

	if err := r.Add("/posts/new", "posts#new"); err != nil {
		panic(err)
	}
	if err := r.Add("/posts/:id", "posts#show"); err != nil {
		panic(err)
	}

	m, err := r.Recognize("/posts/12345")
	if err != nil {
		panic(err)
	}

	id, _ := m.Params.Get("id")
	fmt.Println(*m.Handler, id)

	m, err = r.Recognize("/posts/new")
	if err != nil {
		panic(err)
	}
	fmt.Println(*m.Handler)

	// Output:
	// posts#show 12345
	// posts#new
}

func ExampleRecognizer_Add_multipleParams() {
	r := recognizer.MustNew[string]()
	if err := r.Add("/posts/:post_id/comments/:id", "comments#show"); err != nil {
		panic(err)
	}

	m, err := r.Recognize("/posts/12/comments/100")
	if err != nil {
		panic(err)
	}

	for _, name := range m.Params.Keys() {
		v, _ := m.Params.Get(name)
		fmt.Printf("%s=%s\n", name, v)
	}

	// Output:
	// post_id=12
	// id=100
}

func ExampleRecognizer_Freeze() {
	r := recognizer.MustNew[int]()
	if err := r.Add("/health", 200); err != nil {
		panic(err)
	}

	// Freeze once registration is done; lookups become lock-free and static
	// paths take the hash-table fast path.
	r.Freeze()

	m, err := r.Recognize("/health")
	if err != nil {
		panic(err)
	}
	fmt.Println(*m.Handler)

	// Output:
	// 200
}

func ExampleParams_Int() {
	r := recognizer.MustNew[string]()
	if err := r.Add("/users/:id", "users#show"); err != nil {
		panic(err)
	}

	m, err := r.Recognize("/users/42")
	if err != nil {
		panic(err)
	}

	id, err := m.Params.Int("id")
	if err != nil {
		panic(err)
	}
	fmt.Println(id + 1)

	// Output:
	// 43
}
