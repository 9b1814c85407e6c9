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

	"github.com/bufbuild/gqlsyntax/internal/lexer"
	"github.com/bufbuild/gqlsyntax/report"
	"github.com/bufbuild/gqlsyntax/source"
	"github.com/bufbuild/gqlsyntax/syntax/green"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// parser is the state of a single parse.
//
// The cursor always points at the next token not yet placed into the tree,
// which may be trivia. Trivia is attached lazily: immediately before the next
// significant token is bumped, or before a node is started, trivia is flushed
// into whichever node is open at that moment. This places trivia between two
// sibling nodes into their parent rather than into either sibling.
type parser struct {
	text   string
	file   *source.File
	tokens []lexer.Token
	// Whether the last token is the unlexed remainder of the input after the
	// token limit was hit.
	truncated bool

	cursor  int
	lastEnd int // End offset of the last significant token bumped.

	builder green.Builder
	report  *report.Report

	recursionLimit  int
	depth, maxDepth int

	// Set once a limit is hit. From then on, the parser behaves as though it
	// has reached the end of the input, and records no further diagnostics.
	aborted bool
}

// guard is a handle on an open node, returned by [parser.startNode].
//
// Productions should defer a call to finish immediately after starting a
// node; finish may also be called earlier, in which case the deferred call
// does nothing.
type guard struct {
	p     *parser
	depth int
	start int
	done  bool
}

// checkpoint is a position in the tree that content can be wrapped from.
type checkpoint struct {
	at    green.Checkpoint
	start int
}

// peek returns the kind of the next significant token, or [kind.EOF].
//
// If the next significant token is the remainder left over by the token
// limit, this reports the limit and returns [kind.EOF].
func (p *parser) peek() kind.Kind {
	return p.peekN(0)
}

// peekN returns the kind of the nth significant token after the current one,
// or [kind.EOF].
func (p *parser) peekN(n int) kind.Kind {
	if p.aborted {
		return kind.EOF
	}

	skip := n
	for i := p.cursor; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		if tok.Kind.IsTrivia() {
			continue
		}

		if p.truncated && i == len(p.tokens)-1 {
			// Only running into the limit at the current token stops the
			// parse; lookahead past it just sees the end of the input.
			if n == 0 {
				p.abort(p.file.Span(tok.Start, tok.End), TagTokenLimit,
					"document has more than %d tokens", len(p.tokens)-1)
			}
			return kind.EOF
		}

		if skip == 0 {
			return tok.Kind
		}
		skip--
	}
	return kind.EOF
}

// peekData returns the text of the next significant token.
func (p *parser) peekData() (string, bool) {
	if p.peek() == kind.EOF {
		return "", false
	}
	return p.tokens[p.next()].Text(p.text), true
}

// at returns whether the next significant token has the given kind.
func (p *parser) at(k kind.Kind) bool {
	return p.peek() == k
}

// atName returns whether the next significant token can be used as a Name.
func (p *parser) atName() bool {
	return isName(p.peek())
}

// isName returns whether a token of the given kind can be used as a Name.
//
// GraphQL has no reserved words, so every keyword is also a valid Name.
func isName(k kind.Kind) bool {
	return k == kind.Ident || k.IsKeyword()
}

// next returns the index of the next significant token, or len(p.tokens).
func (p *parser) next() int {
	i := p.cursor
	for i < len(p.tokens) && p.tokens[i].Kind.IsTrivia() {
		i++
	}
	return i
}

// nextN returns the index of the nth significant token after the next one,
// or len(p.tokens).
func (p *parser) nextN(n int) int {
	i := p.next()
	for ; n > 0 && i < len(p.tokens); n-- {
		i++
		for i < len(p.tokens) && p.tokens[i].Kind.IsTrivia() {
			i++
		}
	}
	return i
}

// nextStart returns the offset of the next significant token, or the end of
// the input.
func (p *parser) nextStart() int {
	if i := p.next(); i < len(p.tokens) {
		return p.tokens[i].Start
	}
	return len(p.text)
}

// flushTrivia attaches all trivia before the next significant token to the
// currently open node.
func (p *parser) flushTrivia() {
	if p.aborted {
		return
	}
	for p.cursor < len(p.tokens) && p.tokens[p.cursor].Kind.IsTrivia() {
		tok := p.tokens[p.cursor]
		p.builder.Token(tok.Kind, tok.Text(p.text))
		p.cursor++
	}
}

// bump consumes the next significant token, attaching it to the currently
// open node with the given kind.
//
// The kind is not checked against the lexed kind; this is how keywords are
// turned into names. Panics if there is no token to consume.
func (p *parser) bump(k kind.Kind) {
	i := p.next()
	if p.aborted || i >= len(p.tokens) || p.truncated && i == len(p.tokens)-1 {
		panic("gqlsyntax/parser: bump past end of input")
	}

	p.flushTrivia()
	tok := p.tokens[i]
	p.builder.Token(k, tok.Text(p.text))
	p.cursor = i + 1
	p.lastEnd = tok.End

	if tok.Problem != lexer.NoProblem {
		p.errorAt(p.file.Span(tok.Start, tok.End), TagLexical, "%v", tok.Problem)
	}
}

// bumpAny consumes the next significant token with its lexed kind.
func (p *parser) bumpAny() {
	p.bump(p.tokens[p.next()].Kind)
}

// startNode opens a new node of the given kind as a child of the currently
// open node.
func (p *parser) startNode(k kind.Kind) *guard {
	p.flushTrivia()
	g := &guard{p: p, depth: p.builder.Depth(), start: p.nextStart()}
	p.builder.Start(k)
	return g
}

// checkpoint returns the current position, for use with [parser.wrap].
func (p *parser) checkpoint() checkpoint {
	p.flushTrivia()
	return checkpoint{at: p.builder.Checkpoint(), start: p.nextStart()}
}

// wrap opens a new node of the given kind, whose children begin with
// everything built since cp.
func (p *parser) wrap(cp checkpoint, k kind.Kind) *guard {
	g := &guard{p: p, depth: p.builder.Depth(), start: cp.start}
	p.builder.StartAt(cp.at, k)
	return g
}

// finish closes this guard's node, along with any nodes opened after it that
// are still open.
func (g *guard) finish() {
	if g.done {
		return
	}
	g.done = true
	for g.p.builder.Depth() > g.depth {
		g.p.builder.Finish()
	}
}

// span returns the span of the significant tokens consumed since this
// guard's node was opened.
func (g *guard) span() source.Span {
	return g.p.file.Span(g.start, max(g.start, g.p.lastEnd))
}

// got describes the next significant token, for use in diagnostics.
func (p *parser) got() string {
	if p.peek() == kind.EOF {
		return "EOF"
	}
	return p.describe(p.next())
}

// pushErr records a diagnostic at the next significant token, or at the end
// of the input.
//
// This does not alter the parser state in any way; the production that
// called it continues as though whatever was expected had been present.
func (p *parser) pushErr(tag report.Tag, format string, args ...any) {
	span := p.file.EOF()
	if p.peek() != kind.EOF {
		tok := p.tokens[p.next()]
		span = p.file.Span(tok.Start, tok.End)
	}
	p.errorAt(span, tag, format, args...)
}

// errorAt records a diagnostic at the given span.
func (p *parser) errorAt(span source.Span, tag report.Tag, format string, args ...any) {
	if p.aborted {
		return
	}
	p.report.Errorf(format, args...).Apply(report.Snippet(span), tag)
}

// expect consumes a token of the given kind, or records a diagnostic if the
// next token is something else.
func (p *parser) expect(k kind.Kind) bool {
	if p.at(k) {
		p.bump(k)
		return true
	}
	p.pushErr(TagUnexpectedToken, "expected %s, got %s", expectedToken(k), p.got())
	return false
}

// recover reports the next token as unexpected, and consumes it into an
// error node.
//
// Unrecognized tokens are not reported twice; consuming them already records
// a lexical diagnostic.
func (p *parser) recover(what string) {
	if p.peek() == kind.EOF {
		p.pushErr(TagUnexpectedToken, "expected %s, got EOF", what)
		return
	}
	if p.peek() != kind.Unknown {
		p.pushErr(TagUnexpectedToken, "expected %s, got %s", what, p.got())
	}

	g := p.startNode(kind.Error)
	defer g.finish()
	p.bumpAny()
}

// enter records entry into a recursive production. If it returns false, the
// recursion limit has been exceeded and the production must return without
// doing anything. Otherwise, the production must defer a call to leave.
func (p *parser) enter() bool {
	if p.aborted {
		return false
	}
	if p.recursionLimit > 0 && p.depth >= p.recursionLimit {
		p.abort(p.file.Span(p.nextStart(), p.nextStart()), TagRecursionLimit,
			"document is nested more than %d levels deep", p.recursionLimit)
		return false
	}
	p.depth++
	p.maxDepth = max(p.maxDepth, p.depth)
	return true
}

// leave records exit from a recursive production.
func (p *parser) leave() {
	p.depth--
}

// abort reports a limit being hit and stops parsing. Everything not yet
// consumed is later placed into an error node by [parser.finishDocument].
func (p *parser) abort(span source.Span, tag report.Tag, format string, args ...any) {
	if p.aborted {
		return
	}
	p.errorAt(span, tag, format, args...)
	p.aborted = true
}

// finishDocument attaches everything not yet consumed to the root node, and
// closes it.
func (p *parser) finishDocument() {
	if p.aborted && p.cursor < len(p.tokens) {
		p.builder.Start(kind.Error)
		for _, tok := range p.tokens[p.cursor:] {
			p.builder.Token(tok.Kind, tok.Text(p.text))
		}
		p.builder.Finish()
		p.cursor = len(p.tokens)
	}

	p.flushTrivia()
	if p.cursor != len(p.tokens) {
		panic(fmt.Sprintf("gqlsyntax/parser: %d tokens left over at end of document", len(p.tokens)-p.cursor))
	}
	p.builder.Finish()
}

// mustProgress is a helper for ensuring that the parser makes progress in
// each loop iteration. This is intended for turning infinite loops into
// panics.
type mustProgress struct {
	p    *parser
	prev int
}

// mustProgress returns a progress checker for this parser.
func (p *parser) mustProgress() mustProgress {
	return mustProgress{p, -1}
}

// check panics if the parser has not advanced since the last call.
func (mp *mustProgress) check() {
	if mp.prev == mp.p.cursor {
		panic("gqlsyntax/parser: parser failed to make progress")
	}
	mp.prev = mp.p.cursor
}
