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

// Package lexer converts GraphQL source text into a flat token sequence.
//
// The lexer never fails: every byte of input lands in exactly one token, and
// anything malformed is marked with a [Problem] for the parser to report when
// it consumes the token.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

const (
	NoProblem Problem = iota
	Unrecognized
	UnterminatedString
	UnterminatedBlockString
	InvalidEscape
	InvalidNumber
)

// Problem is a lexical problem detected on a token.
type Problem int8

// String returns a human-readable description of this problem, suitable for
// use in a diagnostic.
func (p Problem) String() string {
	switch p {
	case NoProblem:
		return "no problem"
	case Unrecognized:
		return "unrecognized token"
	case UnterminatedString:
		return "unterminated string literal"
	case UnterminatedBlockString:
		return "unterminated block string literal"
	case InvalidEscape:
		return "invalid escape sequence in string literal"
	case InvalidNumber:
		return "invalid number literal"
	default:
		return fmt.Sprintf("Problem(%d)", int(p))
	}
}

// Token is a single lexed token: a kind and a byte range in the source text.
type Token struct {
	Kind       kind.Kind
	Start, End int
	Problem    Problem
}

// Len returns this token's length in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Text returns this token's text within src, which must be the text it was
// lexed from.
func (t Token) Text(src string) string {
	return src[t.Start:t.End]
}

// Result is the result of lexing a source text.
type Result struct {
	// The tokens, in order. Their ranges are contiguous and cover the whole
	// input.
	Tokens []Token

	// Set if the token limit was hit. The final token then contains all of the
	// remaining input, and has kind [kind.Unknown].
	Truncated bool
}

// Lex lexes text.
//
// If limit is positive, at most that many tokens will be lexed; the rest of
// the input is then placed into a single [kind.Unknown] token.
func Lex(text string, limit int) Result {
	l := &lexer{text: text, limit: limit, badStart: -1}
	loop(l)
	return Result{Tokens: l.tokens, Truncated: l.truncated}
}

// lexer is the actual lexer book-keeping used in this package.
type lexer struct {
	text   string
	cursor int
	limit  int

	tokens    []Token
	truncated bool

	// The start of the current run of unrecognized runes, or -1.
	badStart int
}

// push pushes a new token onto the stream, ending at the cursor.
//
// Any pending run of unrecognized runes is pushed first; it must end exactly
// at start.
func (l *lexer) push(start int, k kind.Kind, problem Problem) {
	l.flushBad(start)
	l.tokens = append(l.tokens, Token{Kind: k, Start: start, End: l.cursor, Problem: problem})
}

// flushBad pushes the pending run of unrecognized runes, if any.
func (l *lexer) flushBad(end int) {
	if l.badStart < 0 {
		return
	}
	l.tokens = append(l.tokens, Token{
		Kind:    kind.Unknown,
		Start:   l.badStart,
		End:     end,
		Problem: Unrecognized,
	})
	l.badStart = -1
}

// bad marks the rune at the cursor as unrecognized and consumes it.
func (l *lexer) bad() {
	if l.badStart < 0 {
		l.badStart = l.cursor
	}
	_, n := utf8.DecodeRuneInString(l.rest())
	l.cursor += n
}

// rest returns the remaining unlexed text.
func (l *lexer) rest() string {
	return l.text[l.cursor:]
}

// done returns whether or not we're done lexing runes.
func (l *lexer) done() bool {
	return l.cursor >= len(l.text)
}

// peek peeks the byte n bytes after the cursor.
//
// Returns 0 past the end of the input.
func (l *lexer) peek(n int) byte {
	if l.cursor+n >= len(l.text) {
		return 0
	}
	return l.text[l.cursor+n]
}

// takeWhile consumes bytes while they match the given function, and returns
// the number consumed.
func (l *lexer) takeWhile(f func(byte) bool) int {
	start := l.cursor
	for !l.done() && f(l.text[l.cursor]) {
		l.cursor++
	}
	return l.cursor - start
}

// mustProgress returns a progress checker for this lexer.
func (l *lexer) mustProgress() mustProgress {
	return mustProgress{l, -1}
}

func isNameStart(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isNameContinue(b byte) bool {
	return isNameStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isHex(b byte) bool {
	return isDigit(b) || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}
