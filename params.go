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
	"strconv"
)

// Params holds the parameters extracted from a recognized path, in the order
// the pattern declared them. A fresh Params is produced per successful
// Recognize call; it never aliases recognizer state.
//
// Lookup by name comes in two strengths: Lookup is the soft variant, while
// Get and the typed getters fail loudly with ErrUnknownParameter when the
// name was never populated. Asking for a parameter the matched pattern does
// not declare is a programming error, not a recognition failure, so it is
// surfaced rather than papered over with an empty string.
type Params struct {
	names  []string
	values []string
}

// Len returns the number of extracted parameters.
func (p Params) Len() int { return len(p.names) }

// Keys returns the parameter names in declaration order.
func (p Params) Keys() []string {
	keys := make([]string, len(p.names))
	copy(keys, p.names)
	return keys
}

// Lookup returns the value for name and whether it was populated.
func (p Params) Lookup(name string) (string, bool) {
	for i, n := range p.names {
		if n == name {
			return p.values[i], true
		}
	}
	return "", false
}

// Get returns the value for name, or an error wrapping ErrUnknownParameter
// if the matched pattern declared no such parameter.
func (p Params) Get(name string) (string, error) {
	if v, ok := p.Lookup(name); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownParameter, name)
}

// MustGet returns the value for name and panics if it was never populated.
func (p Params) MustGet(name string) string {
	v, err := p.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Int parses the named parameter as an int.
// Returns an error if the parameter is missing or cannot be parsed.
func (p Params) Int(name string) (int, error) {
	s, err := p.Get(name)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%w)", ErrInvalidParameter, name, err)
	}

	return val, nil
}

// Int64 parses the named parameter as an int64.
// Returns an error if the parameter is missing or cannot be parsed.
func (p Params) Int64(name string) (int64, error) {
	s, err := p.Get(name)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%w)", ErrInvalidParameter, name, err)
	}

	return val, nil
}

// Uint64 parses the named parameter as a uint64.
// Returns an error if the parameter is missing or cannot be parsed.
func (p Params) Uint64(name string) (uint64, error) {
	s, err := p.Get(name)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%w)", ErrInvalidParameter, name, err)
	}

	return val, nil
}

// Float64 parses the named parameter as a float64.
// Returns an error if the parameter is missing or cannot be parsed.
func (p Params) Float64(name string) (float64, error) {
	s, err := p.Get(name)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%w)", ErrInvalidParameter, name, err)
	}

	return val, nil
}

// Bool parses the named parameter as a bool (per strconv.ParseBool).
// Returns an error if the parameter is missing or cannot be parsed.
func (p Params) Bool(name string) (bool, error) {
	s, err := p.Get(name)
	if err != nil {
		return false, err
	}

	val, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s (%w)", ErrInvalidParameter, name, err)
	}

	return val, nil
}

// newParams pairs captures positionally with the parameter names recorded at
// registration time. Construction guarantees the counts line up, so no
// revalidation happens here.
func newParams(names, values []string) Params {
	return Params{names: names, values: values}
}
