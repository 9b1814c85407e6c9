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
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/gqlsyntax/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	//
	// Ignored by [Renderer.Diagnostic].
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of errors
// and warnings that were rendered.
//
// On the other hand, the actual error-typed return is an error when writing to
// the writer.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	if report == nil {
		return 0, 0, nil
	}

	for i := range report.Diagnostics {
		d := &report.Diagnostics[i]
		if !r.ShowRemarks && d.level == Remark {
			continue
		}

		if _, err = fmt.Fprintln(out, r.Diagnostic(d)); err != nil {
			return
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return
			}
		}

		switch d.level {
		case ICE, Error:
			errorCount++
		case Warning:
			if r.WarningsAreErrors {
				errorCount++
			} else {
				warningCount++
			}
		}
	}
	if r.Compact {
		return
	}

	c := newStyleSheet(r)
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Error), "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Error), "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Warning), "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string. The result has no
// trailing newline.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	level := d.level.String()
	if d.level == Warning && r.WarningsAreErrors {
		level = Error.String()
	}

	c := newStyleSheet(r)
	primary := d.Primary()

	// For the simple style, we imitate the Go compiler.
	if r.Compact {
		switch {
		case !primary.IsZero():
			start := primary.StartLoc()
			return fmt.Sprintf("%s%s: %s:%d:%d: %s%s",
				c.ColorForLevel(d.level), level,
				primary.Path(), start.Line, start.Column,
				d.message, c.reset,
			)
		case d.inFile != "":
			return fmt.Sprintf("%s%s: %s: %s%s",
				c.ColorForLevel(d.level), level,
				d.inFile, d.message, c.reset,
			)
		default:
			return fmt.Sprintf("%s%s: %s%s",
				c.ColorForLevel(d.level), level,
				d.message, c.reset,
			)
		}
	}

	// For the other styles, we imitate the Rust compiler. See
	// https://github.com/rust-lang/rustc-dev-guide/blob/master/src/diagnostics.md
	var out strings.Builder
	fmt.Fprint(&out, c.BoldForLevel(d.level), level, ": ", d.message, c.reset)

	// Figure out how wide the line bar needs to be. This is given by
	// the width of the largest line value among the annotations.
	var greatestLine int
	for _, a := range d.annotations {
		greatestLine = max(greatestLine, a.StartLoc().Line)
	}
	lineBarWidth := max(2, len(strconv.Itoa(greatestLine)))

	// Render one window per run of annotations in the same file.
	for i, group := range groupByFile(d.annotations) {
		out.WriteByte('\n')
		out.WriteString(c.accent())
		out.WriteString(strings.Repeat(" ", lineBarWidth))

		start := group[0].StartLoc()
		arrow := "-->"
		if i > 0 {
			arrow = ":::"
		}
		fmt.Fprintf(&out, "%s %s:%d:%d", arrow, group[0].Path(), start.Line, start.Column)

		// Add a blank line after the file. This gives the diagnostic window
		// some visual breathing room.
		out.WriteByte('\n')
		out.WriteString(strings.Repeat(" ", lineBarWidth))
		out.WriteString(" |")

		renderWindow(d.level, group, lineBarWidth, &c, &out)
	}

	// Render a remedial file name for spanless errors.
	if len(d.annotations) == 0 && d.inFile != "" {
		out.WriteByte('\n')
		out.WriteString(c.accent())
		out.WriteString(strings.Repeat(" ", lineBarWidth))
		fmt.Fprintf(&out, "--> %s", d.inFile)
	}

	// Render the footers. For simplicity we collect them into an array first.
	footers := make([][3]string, 0, len(d.notes)+len(d.help)+len(d.debug))
	for _, note := range d.notes {
		footers = append(footers, [3]string{c.BoldForLevel(Remark), "note", note})
	}
	for _, help := range d.help {
		footers = append(footers, [3]string{c.BoldForLevel(Remark), "help", help})
	}
	if r.ShowDebug {
		for _, debug := range d.debug {
			footers = append(footers, [3]string{c.BoldForLevel(Error), "debug", debug})
		}
	}
	for _, footer := range footers {
		out.WriteByte('\n')
		out.WriteString(c.accent())
		out.WriteString(strings.Repeat(" ", lineBarWidth))
		out.WriteString(" = ")
		fmt.Fprint(&out, footer[0], footer[1], ": ", c.reset)
		for i, line := range strings.Split(footer[2], "\n") {
			if i > 0 {
				out.WriteByte('\n')
				out.WriteString(strings.Repeat(" ", lineBarWidth+3+len(footer[1])+2))
			}
			out.WriteString(line)
		}
	}

	out.WriteString(c.reset)
	return out.String()
}

// underline is a single-line annotation laid out in terminal columns.
type underline struct {
	line       int
	start, end int // 1-indexed columns.
	level      Level
	message    string
}

// groupByFile partitions annotations into runs sharing a file.
func groupByFile(annotations []annotation) [][]annotation {
	var groups [][]annotation
	for i, a := range annotations {
		if i == 0 || a.File != annotations[i-1].File {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], a)
	}
	return groups
}

// renderWindow renders the source lines that annotations touch, with their
// underlines beneath them.
//
// Spans that cross a line boundary are underlined up to the end of their
// first line.
func renderWindow(level Level, annotations []annotation, lineBarWidth int, c *styleSheet, out *strings.Builder) {
	file := annotations[0].File

	underlines := make([]underline, 0, len(annotations))
	for _, a := range annotations {
		loc := file.Location(a.Start, source.Bytes)
		text := file.Line(loc.Line)
		lineStart := a.Start - (loc.Column - 1)
		endInLine := min(a.End, lineStart+len(text))

		from := min(a.Start-lineStart, len(text))
		to := max(min(endInLine-lineStart, len(text)), from)

		start := stringWidth(0, text[:from], nil) + 1
		end := stringWidth(start-1, text[from:to], nil) + 1
		if end == start {
			// Make sure no empty underlines exist.
			end++
		}

		ul := underline{
			line:    loc.Line,
			start:   start,
			end:     end,
			level:   noteLevel,
			message: a.message,
		}
		if a.primary {
			ul.level = level
		}
		underlines = append(underlines, ul)
	}
	slices.SortStableFunc(underlines, func(a, b underline) int {
		if a.line != b.line {
			return a.line - b.line
		}
		return a.start - b.start
	})

	prevLine := 0
	for i := 0; i < len(underlines); {
		line := underlines[i].line
		j := i
		for j < len(underlines) && underlines[j].line == line {
			j++
		}
		part := underlines[i:j]
		i = j

		if prevLine != 0 && line > prevLine+1 {
			out.WriteByte('\n')
			out.WriteString(c.accent())
			out.WriteString("...")
		}
		prevLine = line

		// The source line itself.
		out.WriteByte('\n')
		fmt.Fprintf(out, "%s%*d |%s", c.accent(), lineBarWidth, line, c.reset)
		var text strings.Builder
		stringWidth(0, file.Line(line), &text)
		if rendered := strings.TrimRight(text.String(), " "); rendered != "" {
			out.WriteByte(' ')
			out.WriteString(rendered)
		}

		renderUnderlines(part, lineBarWidth, c, out)
	}
}

// renderUnderlines renders all underlines for one source line.
func renderUnderlines(part []underline, lineBarWidth int, c *styleSheet, out *strings.Builder) {
	margin := c.accent() + strings.Repeat(" ", lineBarWidth) + " | "

	// Lay out the physical underlines. Where underlines overlap, the more
	// severe level wins.
	var buf []Level
	for _, ul := range part {
		for len(buf) < ul.end-1 {
			buf = append(buf, 0)
		}
		for j := ul.start - 1; j < ul.end-1; j++ {
			if buf[j] == 0 || buf[j] > ul.level {
				buf[j] = ul.level
			}
		}
	}

	var line strings.Builder
	for j, level := range buf {
		if j == 0 || buf[j-1] != level {
			if level == 0 {
				line.WriteString(c.reset)
			} else {
				line.WriteString(c.BoldForLevel(level))
			}
		}
		switch level {
		case 0:
			line.WriteByte(' ')
		case noteLevel:
			line.WriteByte('-')
		default:
			line.WriteByte('^')
		}
	}

	// The message belonging to the rightmost underline goes inline.
	rightmost := 0
	for k, ul := range part {
		if ul.end >= part[rightmost].end {
			rightmost = k
		}
	}
	out.WriteByte('\n')
	out.WriteString(margin)
	out.WriteString(line.String())
	if msg := part[rightmost].message; msg != "" {
		fmt.Fprint(out, " ", c.BoldForLevel(part[rightmost].level), msg)
	}
	out.WriteString(c.reset)

	// Every other message goes on its own line, right to left, below a pipe
	// that connects it to its underline.
	for k := len(part) - 1; k >= 0; k-- {
		ul := part[k]
		if k == rightmost || ul.message == "" {
			continue
		}
		pad := strings.Repeat(" ", ul.start-1)
		out.WriteByte('\n')
		fmt.Fprint(out, margin, pad, c.BoldForLevel(ul.level), "|", c.reset)
		out.WriteByte('\n')
		fmt.Fprint(out, margin, pad, c.BoldForLevel(ul.level), ul.message, c.reset)
	}
}
