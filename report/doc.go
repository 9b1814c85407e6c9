// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report provides a robust diagnostics framework.
//
// A [Report] is a collection of [Diagnostic] values, each of which carries a
// [Level], an optional [Tag] for machine-readable identification, a message,
// and zero or more annotated source spans. Reports are rendered for humans by
// a [Renderer], either as compact one-line errors in the style of the Go
// compiler or as annotated source windows in the style of the Rust compiler.
//
// Diagnostics are constructed with functions like [Report.Errorf], and then
// decorated with [DiagnosticOption]s:
//
//	r.Errorf("expected %s, got %s", want, got).Apply(
//		report.Snippet(tok),
//		report.Tag("unexpected-token"),
//	)
package report
