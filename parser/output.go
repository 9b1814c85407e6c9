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

package parser

import (
	"fmt"
	"strings"

	"github.com/tidwall/btree"

	"github.com/bufbuild/gqlsyntax/report"
	"github.com/bufbuild/gqlsyntax/source"
	"github.com/bufbuild/gqlsyntax/syntax"
	"github.com/bufbuild/gqlsyntax/syntax/green"
)

// Output is the result of parsing a document: a syntax tree covering the
// entire input, and the diagnostics recorded while building it.
type Output struct {
	file   *source.File
	green  *green.Node
	report *report.Report
	limits Limits

	// Indices into report.Diagnostics, keyed by the start offset of each
	// diagnostic's primary span.
	index  btree.Map[int, []int]
	widest int
}

// Limits describes how close a parse came to the resource limits it was
// run with.
type Limits struct {
	// The recursion limit in effect, or -1 if there was none.
	RecursionLimit int
	// The deepest nesting of recursive productions reached.
	MaxDepth int
	// The token limit in effect, or -1 if there was none.
	TokenLimit int
	// The number of tokens lexed, not counting the remainder left over after
	// the token limit was hit.
	Tokens int
}

func newOutput(file *source.File, root *green.Node, r *report.Report, limits Limits) *Output {
	o := &Output{file: file, green: root, report: r, limits: limits}
	for i := range r.Diagnostics {
		span := r.Diagnostics[i].Primary()
		if span.IsZero() {
			continue
		}
		idx, _ := o.index.Get(span.Start)
		o.index.Set(span.Start, append(idx, i))
		o.widest = max(o.widest, span.Len())
	}
	return o
}

// Root returns the root of the syntax tree, which is always a DOCUMENT node.
//
// Each call returns a fresh view over the same underlying tree.
func (o *Output) Root() *syntax.Node {
	return syntax.NewRoot(o.green, o.file)
}

// Green returns the underlying green tree.
func (o *Output) Green() *green.Node {
	return o.green
}

// File returns the file that was parsed.
func (o *Output) File() *source.File {
	return o.file
}

// Report returns the report containing this parse's diagnostics.
func (o *Output) Report() *report.Report {
	return o.report
}

// Errors returns the diagnostics recorded during parsing, in the order they
// were recorded, which is also the order of the input.
func (o *Output) Errors() []report.Diagnostic {
	return o.report.Diagnostics
}

// HasErrors returns whether parsing recorded any errors.
func (o *Output) HasErrors() bool {
	return o.report.HasErrors()
}

// Err returns the diagnostics as an error, or nil if there were no errors.
func (o *Output) Err() error {
	if !o.HasErrors() {
		return nil
	}
	return &report.AsError{Report: o.report}
}

// Limits returns resource usage information for this parse.
func (o *Output) Limits() Limits {
	return o.limits
}

// ErrorsIn returns the diagnostics whose primary span intersects the byte
// range [start, end). Zero-width spans are included when they fall within
// the range, including at end.
func (o *Output) ErrorsIn(start, end int) []report.Diagnostic {
	var out []report.Diagnostic
	iter := o.index.Iter()

	for ok := iter.Seek(start - o.widest); ok && iter.Key() <= end; ok = iter.Next() {
		for _, i := range iter.Value() {
			d := o.report.Diagnostics[i]
			span := d.Primary()
			s, e := span.Start, span.End
			if s < end && start < e || s == e && start <= s && s <= end {
				out = append(out, d)
			}
		}
	}
	return out
}

// Debug renders the tree with [syntax.Debug], followed by one line for each
// diagnostic.
func (o *Output) Debug() string {
	var out strings.Builder
	out.WriteString(syntax.Debug(o.Root()))
	for _, d := range o.report.Diagnostics {
		span := d.Primary()
		fmt.Fprintf(&out, "error@%d..%d: %s\n", span.Start, span.End, d.Message())
	}
	return out.String()
}
