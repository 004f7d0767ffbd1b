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

// defaultTraceWarnThreshold is the live-trace fan-out above which Recognize
// emits a DiagHighTraceCount event. Edge deduplication keeps typical route
// sets far below this.
const defaultTraceWarnThreshold = 32

// settings holds the option-configurable state of a Recognizer. It is kept
// separate from the generic Recognizer type so Option does not need a type
// parameter.
type settings struct {
	diagnostics        DiagnosticHandler
	observability      ObservabilityRecorder
	strict             bool
	noStaticTable      bool
	traceWarnThreshold int
}

// Option configures a Recognizer at construction time.
type Option func(*settings)

// WithDiagnostics sets a diagnostic handler for the recognizer.
//
// Diagnostic events are optional informational events that may indicate
// pattern-set issues (empty parameter names, duplicate patterns, unusually
// high trace fan-out). The recognizer functions correctly whether
// diagnostics are collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := recognizer.DiagnosticHandlerFunc(func(e recognizer.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	r := recognizer.MustNew[string](recognizer.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(s *settings) {
		s.diagnostics = handler
	}
}

// WithObservability sets a recorder whose hooks run around every Recognize
// call. See ObservabilityRecorder for the lifecycle contract; the package
// tests include an OpenTelemetry-backed reference implementation.
func WithObservability(recorder ObservabilityRecorder) Option {
	return func(s *settings) {
		s.observability = recorder
	}
}

// WithStrictPatterns makes Add reject malformed patterns instead of
// accepting them structurally: an empty pattern returns ErrEmptyPattern and
// a bare ":" segment returns ErrEmptyParameterName.
//
// The permissive default mirrors the recognizer's legacy behavior, where
// such patterns register and simply bind a zero-length parameter name. A
// DiagEmptyParamName diagnostic fires in both modes.
func WithStrictPatterns() Option {
	return func(s *settings) {
		s.strict = true
	}
}

// WithoutStaticTable disables the full-path fast table that Freeze compiles
// for parameterless patterns, forcing every Recognize call through the
// automaton. Intended for tests and for callers that want one code path.
func WithoutStaticTable() Option {
	return func(s *settings) {
		s.noStaticTable = true
	}
}

// WithTraceWarnThreshold overrides the live-trace fan-out above which a
// DiagHighTraceCount event fires. Values below one disable the event.
func WithTraceWarnThreshold(n int) Option {
	return func(s *settings) {
		s.traceWarnThreshold = n
	}
}
