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

// directives parses Directives. If constant is set, directive arguments must
// be constant.
//
//	Directives[Const] : Directive[?Const]+
func directives(p *parser, constant bool) {
	g := p.startNode(kind.Directives)
	defer g.finish()

	mp := p.mustProgress()
	for p.at(kind.At) {
		mp.check()
		directive(p, constant)
	}
}

// directive parses a Directive.
//
//	Directive[Const] : @ Name Arguments[?Const]?
func directive(p *parser, constant bool) {
	g := p.startNode(kind.Directive)
	defer g.finish()

	p.bump(kind.At)
	name(p)
	if p.at(kind.LParen) {
		arguments(p, constant)
	}
}

// directiveDefinition parses a DirectiveDefinition.
//
//	DirectiveDefinition :
//	  Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
func directiveDefinition(p *parser) {
	g := p.startNode(kind.DirectiveDefinition)
	defer g.finish()

	description(p)
	p.bump(kind.KwDirective)
	p.expect(kind.At)
	name(p)
	if p.at(kind.LParen) {
		argumentsDefinition(p)
	}
	if p.at(kind.KwRepeatable) {
		p.bump(kind.KwRepeatable)
	}

	if p.at(kind.KwOn) {
		p.bump(kind.KwOn)
		directiveLocations(p)
		return
	}

	p.pushErr(TagUnexpectedToken, "expected `on` before Directive Locations, got %s", p.got())
	// Without the `on`, a bare name is more likely the start of the next
	// definition than an unknown location.
	if k := p.peek(); k == kind.Pipe || k.IsLocation() {
		directiveLocations(p)
	}
}

// directiveLocations parses DirectiveLocations.
//
//	DirectiveLocations :
//	  DirectiveLocations | DirectiveLocation
//	  |? DirectiveLocation
func directiveLocations(p *parser) {
	g := p.startNode(kind.DirectiveLocations)
	defer g.finish()

	if p.at(kind.Pipe) {
		p.bump(kind.Pipe)
	}
	directiveLocation(p)

	mp := p.mustProgress()
	for p.at(kind.Pipe) {
		mp.check()
		p.bump(kind.Pipe)
		directiveLocation(p)
	}
}

// directiveLocation parses a DirectiveLocation.
//
// A name that is not a known location is reported and kept as an identifier.
//
//	DirectiveLocation : ExecutableDirectiveLocation | TypeSystemDirectiveLocation
func directiveLocation(p *parser) {
	g := p.startNode(kind.DirectiveLocation)
	defer g.finish()

	if !p.atName() {
		p.pushErr(TagUnexpectedToken, "expected a Directive Location, got %s", p.got())
		return
	}

	text, _ := p.peekData()
	if loc, ok := kind.Location(text); ok {
		p.bump(loc)
		return
	}
	p.pushErr(TagUnknownDirectiveLocation, "unknown directive location `%s`", text)
	p.bump(kind.Ident)
}
