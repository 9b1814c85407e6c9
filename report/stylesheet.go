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

import "fmt"

// ANSI color numbers.
const (
	red    = 31
	yellow = 33
	blue   = 34
	cyan   = 36
)

// style is the escape sequences for one color, in normal and bold weights.
type style struct {
	normal, bold string
}

func newStyle(color int) style {
	return style{
		normal: escape(0, color),
		bold:   escape(1, color),
	}
}

func escape(weight, color int) string {
	return fmt.Sprintf("\033[%d;%dm", weight, color)
}

// styleSheet is the colors used for pretty-rendering diagnostics. The zero
// value renders without color.
type styleSheet struct {
	reset string

	// Indexed by Level.
	levels [noteLevel + 1]style

	warningsAreErrors bool
}

func newStyleSheet(r Renderer) styleSheet {
	c := styleSheet{warningsAreErrors: r.WarningsAreErrors}
	if !r.Colorize {
		return c
	}

	c.reset = "\033[0m"
	c.levels[ICE] = newStyle(red)
	c.levels[Error] = newStyle(red)
	c.levels[Warning] = newStyle(yellow)
	c.levels[Remark] = newStyle(cyan)
	// Accents, such as line numbers and secondary underlines, separate
	// rendering details from the source code.
	c.levels[noteLevel] = newStyle(blue)
	return c
}

func (c styleSheet) level(l Level) style {
	if l == Warning && c.warningsAreErrors {
		l = Error
	}
	if l < 0 || int(l) >= len(c.levels) {
		return style{}
	}
	return c.levels[l]
}

// ColorForLevel returns the escape sequence for the non-bold color to use for
// the given level.
func (c styleSheet) ColorForLevel(l Level) string {
	return c.level(l).normal
}

// BoldForLevel returns the escape sequence for the bold color to use for
// the given level.
func (c styleSheet) BoldForLevel(l Level) string {
	return c.level(l).bold
}

// accent returns the escape sequence for rendering details.
func (c styleSheet) accent() string {
	return c.levels[noteLevel].normal
}
