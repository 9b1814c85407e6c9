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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/gqlsyntax/internal/lexer"
	"github.com/bufbuild/gqlsyntax/report"
	"github.com/bufbuild/gqlsyntax/source"
	"github.com/bufbuild/gqlsyntax/syntax"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

func newTestParser(text string) *parser {
	lexed := lexer.Lex(text, 0)
	return &parser{
		text:           text,
		file:           source.NewFile("test.graphql", text),
		tokens:         lexed.Tokens,
		report:         new(report.Report),
		recursionLimit: DefaultRecursionLimit,
	}
}

func TestICE(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	p := newTestParser("{ a }")
	// Leaving an extra node open makes building the tree panic.
	p.builder.Start(kind.Error)

	root := run(p)
	assert.Nil(root)
	require.Equal(t, 1, p.report.Len())
	d := p.report.Diagnostics[0]
	assert.Equal(report.ICE, d.Level())
	assert.Equal("test.graphql", d.InFile())
	assert.Contains(d.Message(), "unfinished nodes")

	tree := syntax.NewRoot(flat(p), p.file)
	assert.Equal("{ a }", tree.Text())
	require.Equal(t, 1, tree.Len())
	assert.Equal(kind.Error, tree.FirstChild().Kind())
}

func TestGuard(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	p := newTestParser("a b")
	p.builder.Start(kind.Document)

	outer := p.startNode(kind.Field)
	p.startNode(kind.Name) // Closed by outer.
	p.bump(kind.Ident)
	assert.Equal(3, p.builder.Depth())

	outer.finish()
	assert.Equal(1, p.builder.Depth())
	outer.finish()
	assert.Equal(1, p.builder.Depth())
	assert.Equal(source.Span{File: p.file, Start: 0, End: 1}, outer.span())

	cp := p.checkpoint()
	p.startNode(kind.NamedType).finish()
	wrapped := p.wrap(cp, kind.NonNullType)
	p.bump(kind.Ident)
	wrapped.finish()

	p.finishDocument()
	tree := syntax.NewRoot(p.builder.Build(), p.file)
	assert.Equal(`- DOCUMENT@0..3
    - FIELD@0..1
        - NAME@0..1
            - IDENT@0..1 "a"
    - WHITESPACE@1..2 " "
    - NON_NULL_TYPE@2..3
        - NAMED_TYPE@2..2
        - IDENT@2..3 "b"
`, syntax.Debug(tree))
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	p := newTestParser(`"s" 1 1.5 ? x {`)
	var got []string
	for i, tok := range p.tokens {
		if !tok.Kind.IsTrivia() {
			got = append(got, p.describe(i))
		}
	}
	got = append(got, p.describe(len(p.tokens)))
	assert.Equal([]string{
		"a string literal",
		"an integer literal",
		"a float literal",
		"an unrecognized token",
		"`x`",
		"`{`",
		"EOF",
	}, got)

	assert.Equal("`...`", expectedToken(kind.Spread))
	assert.Equal("IDENT", expectedToken(kind.Ident))
	assert.Equal("Input Fields Definition", nameOf(kind.InputFieldsDefinition))
	assert.Equal("an Input Value Definition", article(nameOf(kind.InputValueDefinition)))
	assert.Equal("a Field", article(nameOf(kind.Field)))
}

func TestMustProgress(t *testing.T) {
	t.Parallel()

	p := newTestParser("a")
	mp := p.mustProgress()
	mp.check()
	assert.Panics(t, func() { mp.check() })
}
