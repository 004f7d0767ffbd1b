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

import "errors"

var (
	// ErrUnknownParameter indicates that a requested parameter name was not
	// populated by the matched pattern. This is a usage error, distinct from
	// recognition failure.
	ErrUnknownParameter = errors.New("parameter not found")

	// ErrInvalidParameter indicates that a parameter value could not be
	// parsed as the requested type.
	ErrInvalidParameter = errors.New("invalid parameter value")

	// ErrEmptyPattern indicates that an empty pattern was rejected under
	// strict validation.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrEmptyParameterName indicates that a pattern segment declared a
	// parameter without a name (a bare ":"), rejected under strict
	// validation.
	ErrEmptyParameterName = errors.New("empty parameter name")

	// ErrFrozen indicates that Add was called after Freeze.
	ErrFrozen = errors.New("recognizer is frozen")
)
