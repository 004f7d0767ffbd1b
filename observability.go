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
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"rivaas.dev/recognizer/nfa"
)

// ObservabilityRecorder provides lifecycle hooks around recognition calls.
// Implementations typically record metrics (recognition counts, durations,
// outcome breakdown) or attach events to an active trace span.
//
// Lifecycle:
//  1. Recognize calls OnRecognizeStart(path) → state
//     - state is an opaque token (typically a start timestamp or a span);
//       the recognizer never inspects it
//  2. Recognition runs
//  3. Recognize calls OnRecognizeEnd(state, pattern, err)
//     - pattern is the matched pattern (e.g. "/users/:id"), or "" when err
//       is non-nil
//     - implementations should record the pattern, never the raw path, to
//       keep metric cardinality bounded
//
// Thread safety: both methods must be safe for concurrent use; after Freeze
// the recognizer invokes them from arbitrary goroutines.
type ObservabilityRecorder interface {
	OnRecognizeStart(path string) any
	OnRecognizeEnd(state any, pattern string, err error)
}

// Outcome attribute values reported by RecognitionAttributes.
const (
	OutcomeMatch        = "match"
	OutcomeNoTransition = "no_transition"
	OutcomeNoAcceptance = "no_acceptance"
)

// RecognitionAttributes builds the canonical OpenTelemetry attribute set for
// a finished recognition call, so every ObservabilityRecorder implementation
// labels its metrics the same way. pattern and err are the values passed to
// OnRecognizeEnd.
func RecognitionAttributes(pattern string, err error) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 2)
	attrs = append(attrs, attribute.String("recognizer.outcome", outcomeOf(err)))
	if pattern != "" {
		attrs = append(attrs, attribute.String("recognizer.pattern", pattern))
	}
	return attrs
}

func outcomeOf(err error) string {
	var noTransition *nfa.NoTransitionError
	var noAcceptance *nfa.NoAcceptanceError

	switch {
	case err == nil:
		return OutcomeMatch
	case errors.As(err, &noTransition):
		return OutcomeNoTransition
	case errors.As(err, &noAcceptance):
		return OutcomeNoAcceptance
	default:
		return "error"
	}
}
