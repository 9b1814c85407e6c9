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
	"github.com/bufbuild/gqlsyntax/internal/lexer"
	"github.com/bufbuild/gqlsyntax/report"
	"github.com/bufbuild/gqlsyntax/source"
	"github.com/bufbuild/gqlsyntax/syntax/green"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// DefaultRecursionLimit is the nesting limit used when
// [Parser.RecursionLimit] is zero.
const DefaultRecursionLimit = 500

// Parser is configuration for parsing documents. The zero value is ready to
// use, and a Parser may be used by any number of goroutines at once.
type Parser struct {
	// The maximum nesting depth of selection sets, list and object values,
	// and list types. Zero means [DefaultRecursionLimit]; a negative value
	// means no limit.
	RecursionLimit int

	// The maximum number of tokens, including trivia, in a document. Zero or
	// a negative value means no limit.
	TokenLimit int
}

// Parse parses a document with the default configuration.
func Parse(text string) *Output {
	return Parser{}.Parse("", text)
}

// Parse parses a document. path is used only for diagnostics.
//
// This never fails: the returned tree always contains the entire input, and
// anything wrong with it is described by [Output.Errors].
func (c Parser) Parse(path, text string) *Output {
	limits := Limits{RecursionLimit: c.RecursionLimit, TokenLimit: c.TokenLimit}
	switch {
	case limits.RecursionLimit == 0:
		limits.RecursionLimit = DefaultRecursionLimit
	case limits.RecursionLimit < 0:
		limits.RecursionLimit = -1
	}
	if limits.TokenLimit <= 0 {
		limits.TokenLimit = -1
	}

	lexed := lexer.Lex(text, max(limits.TokenLimit, 0))
	p := &parser{
		text:           text,
		file:           source.NewFile(path, text),
		tokens:         lexed.Tokens,
		truncated:      lexed.Truncated,
		report:         new(report.Report),
		recursionLimit: limits.RecursionLimit,
	}
	p.builder.Cache = green.NewCache()

	root := run(p)
	if root == nil {
		root = flat(p)
	}

	limits.MaxDepth = p.maxDepth
	limits.Tokens = len(p.tokens)
	if p.truncated {
		limits.Tokens--
	}
	return newOutput(p.file, root, p.report, limits)
}

// run runs the grammar to completion. If the parser panics, the panic is
// recorded as an internal error and run returns nil.
func run(p *parser) (root *green.Node) {
	defer p.report.CatchICE(false, func(d *report.Diagnostic) {
		d.Apply(report.InFile(p.file.Path()))
	})

	document(p)
	return p.builder.Build()
}

// flat builds a tree that places every token into a single error node. This
// is used when the grammar could not produce a tree at all, so that the
// output still covers the input.
func flat(p *parser) *green.Node {
	b := green.Builder{Cache: p.builder.Cache}
	b.Start(kind.Document)
	if len(p.tokens) > 0 {
		b.Start(kind.Error)
		for _, tok := range p.tokens {
			b.Token(tok.Kind, tok.Text(p.text))
		}
		b.Finish()
	}
	b.Finish()
	return b.Build()
}
