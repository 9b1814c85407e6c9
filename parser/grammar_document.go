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

import "github.com/bufbuild/gqlsyntax/syntax/kind"

// document parses a whole Document:
//
//	Document : Definition+
//
// An empty document is accepted without a diagnostic.
func document(p *parser) {
	// The root does not flush trivia into a parent, since it has none.
	p.builder.Start(kind.Document)

	mp := p.mustProgress()
	for !p.at(kind.EOF) {
		mp.check()
		definition(p)
	}

	p.finishDocument()
}

// definition parses a single top-level Definition, dispatching on the next one
// or two tokens.
func definition(p *parser) {
	k, at := p.peek(), 0
	if k == kind.String {
		// A description; what follows it decides the definition.
		k, at = p.peekN(1), 1
	}

	switch k {
	case kind.KwQuery, kind.KwMutation, kind.KwSubscription, kind.LCurly:
		operationDefinition(p)
	case kind.KwFragment:
		fragmentDefinition(p)
	case kind.KwSchema:
		schemaDefinition(p)
	case kind.KwScalar:
		scalarTypeDefinition(p)
	case kind.KwType:
		objectTypeDefinition(p)
	case kind.KwInterface:
		interfaceTypeDefinition(p)
	case kind.KwUnion:
		unionTypeDefinition(p)
	case kind.KwEnum:
		enumTypeDefinition(p)
	case kind.KwInput:
		inputObjectTypeDefinition(p)
	case kind.KwDirective:
		directiveDefinition(p)
	case kind.KwExtend:
		if !extension(p) {
			recoverDefinition(p, "expected a type system extension after `extend`, got %s", p.describe(p.nextN(at+1)))
		}
	default:
		recoverDefinition(p, "expected a definition, got %s", p.got())
	}
}

// atDefinition returns whether the next tokens plausibly begin a new
// top-level definition.
//
// Because GraphQL has no reserved words, this also requires the keyword to be
// followed by something that cannot follow a field or enum value name, so that
// `type: String` inside a block is not mistaken for a definition.
func atDefinition(p *parser) bool {
	k, next := p.peek(), p.peekN(1)
	if k == kind.String {
		k, next = next, p.peekN(2)
	}

	switch k {
	case kind.LCurly:
		return true
	case kind.KwFragment:
		return isName(next) && next != kind.KwOn
	case kind.KwQuery, kind.KwMutation, kind.KwSubscription:
		return next == kind.LCurly || next == kind.At || next == kind.LParen || isName(next)
	case kind.KwSchema:
		return next == kind.LCurly || next == kind.At
	case kind.KwScalar, kind.KwType, kind.KwInterface, kind.KwUnion, kind.KwEnum, kind.KwInput:
		return isName(next)
	case kind.KwDirective:
		return next == kind.At
	case kind.KwExtend:
		switch next {
		case kind.KwSchema, kind.KwScalar, kind.KwType, kind.KwInterface,
			kind.KwUnion, kind.KwEnum, kind.KwInput:
			return true
		}
	}
	return false
}

// atDefinitionInBlock is like [atDefinition], but for use inside a delimited
// block of members. A name followed by `:` or `(` is always a member there,
// even if it is spelled like a definition keyword.
func atDefinitionInBlock(p *parser) bool {
	next := p.peekN(1)
	if p.at(kind.String) {
		next = p.peekN(2)
	}
	if next == kind.Colon || next == kind.LParen {
		return false
	}
	return atDefinition(p)
}

// recoverDefinition consumes everything up to the start of the next
// definition into a single error node, reported once with the given message.
func recoverDefinition(p *parser, format string, args ...any) {
	if p.peek() != kind.Unknown {
		p.pushErr(TagUnexpectedToken, format, args...)
	}

	g := p.startNode(kind.Error)
	defer g.finish()

	p.bumpAny()
	for !p.at(kind.EOF) && !atDefinition(p) {
		p.bumpAny()
	}
}

// description parses an optional Description, which must be a string.
//
//	Description : StringValue
func description(p *parser) {
	if !p.at(kind.String) {
		return
	}
	g := p.startNode(kind.Description)
	defer g.finish()
	p.bump(kind.String)
}

// noDescription reports and consumes a description in front of a definition
// that does not permit one.
func noDescription(p *parser, what kind.Kind) {
	if !p.at(kind.String) {
		return
	}
	p.pushErr(TagUnexpectedToken, "descriptions are not permitted on %s", plural(what))
	description(p)
}

// plural returns the plural of a node's name, for use in diagnostics.
func plural(k kind.Kind) string {
	return nameOf(k) + "s"
}

// name parses a required Name. If it is missing, an empty name node is
// created in its place.
//
//	Name : /[_A-Za-z][_0-9A-Za-z]*/
func name(p *parser) {
	g := p.startNode(kind.Name)
	defer g.finish()

	if !p.atName() {
		p.pushErr(TagUnexpectedToken, "expected a Name, got %s", p.got())
		return
	}
	p.bump(kind.Ident)
}
