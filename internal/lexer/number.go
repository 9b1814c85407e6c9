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

import "github.com/bufbuild/gqlsyntax/syntax/kind"

// lexNumber lexes an IntValue or FloatValue. The cursor must be on a digit, or
// on a - followed by a digit.
//
// Malformed numbers are consumed as far as they plausibly extend and are
// marked with [InvalidNumber].
func lexNumber(l *lexer) {
	start := l.cursor
	problem := NoProblem
	k := kind.Int

	if l.peek(0) == '-' {
		l.cursor++
	}

	// IntegerPart. Leading zeros are not permitted.
	if l.peek(0) == '0' {
		l.cursor++
		if l.takeWhile(isDigit) > 0 {
			problem = InvalidNumber
		}
	} else {
		l.takeWhile(isDigit)
	}

	// FractionalPart.
	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		l.cursor++
		l.takeWhile(isDigit)
		k = kind.Float
	}

	// ExponentPart.
	if b := l.peek(0); b == 'e' || b == 'E' {
		k = kind.Float
		l.cursor++
		if b := l.peek(0); b == '+' || b == '-' {
			l.cursor++
		}
		if l.takeWhile(isDigit) == 0 {
			problem = InvalidNumber
		}
	}

	// A number may not be directly followed by a . or a NameStart.
	if b := l.peek(0); b == '.' || isNameStart(b) {
		problem = InvalidNumber
		l.takeWhile(func(b byte) bool { return b == '.' || isNameContinue(b) })
	}

	l.push(start, k, problem)
}
