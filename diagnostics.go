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

// DiagnosticEvent represents a recognizer diagnostic or anomaly.
// These are informational events that may indicate pattern-set issues.
//
// Diagnostic events are optional - the recognizer functions correctly
// whether they are collected or not. They provide visibility into edge cases
// for observability systems.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// Pattern registration diagnostics
	DiagPatternRegistered DiagnosticKind = "pattern_registered"
	DiagEmptyParamName    DiagnosticKind = "pattern_empty_param_name"
	DiagDuplicatePattern  DiagnosticKind = "pattern_duplicate"

	// Recognition diagnostics
	DiagHighTraceCount DiagnosticKind = "recognize_trace_count_high"
)

// DiagnosticHandler receives diagnostic events from the recognizer.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped. The recognizer's behavior is unchanged whether diagnostics are
// collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := recognizer.DiagnosticHandlerFunc(func(e recognizer.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	r := recognizer.MustNew[string](recognizer.WithDiagnostics(handler))
//
// Example with metrics:
//
//	handler := recognizer.DiagnosticHandlerFunc(func(e recognizer.DiagnosticEvent) {
//	    metrics.Increment("recognizer.diagnostics", "kind", string(e.Kind))
//	})
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

// emitDiagnostic forwards an event to the configured handler, if any.
func (r *Recognizer[T]) emitDiagnostic(kind DiagnosticKind, message string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
