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

const bom = "\ufeff"

// loop is the main loop of the lexer.
func loop(l *lexer) {
	// This is the main loop of the lexer. Each iteration will examine the next
	// rune in the source file to determine what action to take.
	mp := l.mustProgress()
	for !l.done() {
		mp.check()

		pending := 0
		if l.badStart >= 0 {
			pending = 1
		}
		if l.limit > 0 && len(l.tokens)+pending >= l.limit {
			// A pending unrecognized run counts towards the limit; it ends here,
			// and everything else goes into one token.
			l.flushBad(l.cursor)
			start := l.cursor
			l.cursor = len(l.text)
			l.tokens = append(l.tokens, Token{Kind: kind.Unknown, Start: start, End: l.cursor})
			l.truncated = true
			return
		}

		start := l.cursor
		b := l.text[l.cursor]
		switch {
		case isSpace(b) || strings.HasPrefix(l.rest(), bom):
			for !l.done() {
				if isSpace(l.text[l.cursor]) {
					l.cursor++
				} else if strings.HasPrefix(l.rest(), bom) {
					l.cursor += len(bom)
				} else {
					break
				}
			}
			l.push(start, kind.Whitespace, NoProblem)

		case b == ',':
			l.cursor++
			l.push(start, kind.Comma, NoProblem)

		case b == '#':
			if end := strings.IndexAny(l.rest(), "\r\n"); end != -1 {
				l.cursor += end
			} else {
				l.cursor = len(l.text)
			}
			l.push(start, kind.Comment, NoProblem)

		case b == '.':
			if !strings.HasPrefix(l.rest(), "...") {
				// A stray . or .. is merged into the unrecognized run.
				l.bad()
				continue
			}
			l.cursor += 3
			l.push(start, kind.Spread, NoProblem)

		case b == '"':
			lexString(l)

		case b == '-' || isDigit(b):
			if b == '-' && !isDigit(l.peek(1)) {
				l.bad()
				continue
			}
			lexNumber(l)

		case isNameStart(b):
			l.takeWhile(isNameContinue)
			l.push(start, kind.Lookup(l.text[start:l.cursor]), NoProblem)

		default:
			if k, ok := kind.FromChar(rune(b)); ok {
				l.cursor++
				l.push(start, k, NoProblem)
				continue
			}
			l.bad()
		}
	}
	l.flushBad(l.cursor)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
