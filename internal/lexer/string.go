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

package lexer

import (
	"strings"

	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// lexString lexes a StringValue, either a line string or a block string. The
// cursor must be on the opening quote.
func lexString(l *lexer) {
	start := l.cursor
	if strings.HasPrefix(l.rest(), `"""`) {
		l.cursor += 3
		lexBlockString(l, start)
		return
	}

	l.cursor++
	problem := NoProblem
	for {
		if l.done() {
			l.push(start, kind.String, UnterminatedString)
			return
		}

		switch l.text[l.cursor] {
		case '"':
			l.cursor++
			l.push(start, kind.String, problem)
			return

		case '\n', '\r':
			// Line strings cannot span lines. The newline is not part of the
			// string.
			l.push(start, kind.String, UnterminatedString)
			return

		case '\\':
			if !lexEscape(l) {
				problem = InvalidEscape
			}

		default:
			l.cursor++
		}
	}
}

// lexBlockString lexes the remainder of a block string, after the opening
// triple quote.
func lexBlockString(l *lexer, start int) {
	for {
		rest := l.rest()
		end := strings.Index(rest, `"""`)
		if end == -1 {
			l.cursor = len(l.text)
			l.push(start, kind.String, UnterminatedBlockString)
			return
		}

		if end > 0 && rest[end-1] == '\\' {
			// Escaped triple quote; keep going.
			l.cursor += end + 3
			continue
		}

		l.cursor += end + 3
		l.push(start, kind.String, NoProblem)
		return
	}
}

// lexEscape consumes an escape sequence. The cursor must be on the backslash.
//
// Returns false if the escape is not valid.
func lexEscape(l *lexer) bool {
	l.cursor++ // Skip the backslash.

	switch l.peek(0) {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		l.cursor++
		return true

	case 'u':
		l.cursor++
		if l.peek(0) == '{' {
			// Variable-width escape, \u{X...}.
			l.cursor++
			digits := l.takeWhile(isHex)
			value := 0
			for _, b := range []byte(l.text[l.cursor-digits : l.cursor]) {
				value = value*16 + hexValue(b)
				if value > 0x10ffff {
					break
				}
			}
			if l.peek(0) != '}' {
				return false
			}
			l.cursor++
			return digits > 0 && value <= 0x10ffff
		}

		for range 4 {
			if !isHex(l.peek(0)) {
				return false
			}
			l.cursor++
		}
		return true

	case 0, '\n', '\r':
		// Leave the terminator for the caller.
		return false

	default:
		l.cursor++
		return false
	}
}

func hexValue(b byte) int {
	switch {
	case isDigit(b):
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
