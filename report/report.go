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

package report

import (
	"cmp"
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
)

// Report is a collection of diagnostics.
//
// Report is not thread-safe (in the sense that distinct goroutines should not
// all write to Report at the same time). Instead, the recommendation is to
// create multiple reports and then merge them, using [Report.Sort] to
// canonicalize the result.
type Report struct {
	// The actual diagnostics on this report. Generally, you'll want to use one
	// of the helpers like [Report.Errorf] instead of appending directly.
	Diagnostics []Diagnostic
}

// Errorf pushes a diagnostic with the [Error] level.
//
// The message is formatted with [fmt.Sprintf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(Error, fmt.Sprintf(format, args...))
}

// Warnf pushes a diagnostic with the [Warning] level.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(Warning, fmt.Sprintf(format, args...))
}

// Remarkf pushes a diagnostic with the [Remark] level.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(Remark, fmt.Sprintf(format, args...))
}

// Fatalf pushes a diagnostic with the [ICE] level.
func (r *Report) Fatalf(format string, args ...any) *Diagnostic {
	return r.push(ICE, fmt.Sprintf(format, args...))
}

// Len returns the number of diagnostics in this report.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Diagnostics)
}

// HasErrors returns whether this report contains any diagnostic at the
// [Error] level or worse.
func (r *Report) HasErrors() bool {
	if r == nil {
		return false
	}
	return slices.ContainsFunc(r.Diagnostics, func(d Diagnostic) bool {
		return d.level <= Error
	})
}

// Merge appends every diagnostic in other to r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
}

// CatchICE will recover a panic (an internal compiler error, or ICE) and log it
// as an error diagnostic. This function should be called in a defer statement.
//
// When constructing the diagnostic, diagnose is called, to provide an
// opportunity to annotate further.
//
// If resume is true, resumes the recovered panic after logging it.
func (r *Report) CatchICE(resume bool, diagnose func(*Diagnostic)) {
	panicked := recover()
	if panicked == nil {
		return
	}

	// Instead of using the built-in tracing function, which causes the stack
	// trace to be hidden by default, use debug.Stack and convert it into notes
	// so that it is always visible.
	d := r.Fatalf("%v", panicked).Apply(
		Note("this is a bug in the parser; please report it"),
	)
	for _, line := range strings.Split(strings.TrimSpace(string(debug.Stack())), "\n") {
		d.Apply(Debug("%s", strings.ReplaceAll(line, "\t", "    ")))
	}
	if diagnose != nil {
		diagnose(d)
	}

	if resume {
		panic(panicked)
	}
}

// Sort canonicalizes this report's diagnostic order, such that diagnostics
// are sorted by file, then by start offset, then by end offset.
//
// Diagnostics at the same position keep the order they were pushed in.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		aSpan, bSpan := a.Primary(), b.Primary()
		if diff := strings.Compare(a.InFile(), b.InFile()); diff != 0 {
			return diff
		}
		if diff := cmp.Compare(aSpan.Start, bSpan.Start); diff != 0 {
			return diff
		}
		return cmp.Compare(aSpan.End, bSpan.End)
	})
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(level Level, message string) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		level:   level,
		message: message,
	})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}
