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

// value parses a Value. If constant is set, variables are reported but still
// parsed.
//
//	Value[Const] :
//	  [~Const] Variable
//	  IntValue
//	  FloatValue
//	  StringValue
//	  BooleanValue
//	  NullValue
//	  EnumValue
//	  ListValue[?Const]
//	  ObjectValue[?Const]
func value(p *parser, constant bool) {
	var k kind.Kind
	switch p.peek() {
	case kind.Dollar:
		variable(p, constant)
		return
	case kind.LBrack:
		listValue(p, constant)
		return
	case kind.LCurly:
		objectValue(p, constant)
		return
	case kind.Int:
		k = kind.IntValue
	case kind.Float:
		k = kind.FloatValue
	case kind.String:
		k = kind.StringValue
	case kind.KwTrue, kind.KwFalse:
		k = kind.BooleanValue
	case kind.KwNull:
		k = kind.NullValue
	default:
		if !p.atName() {
			p.pushErr(TagUnexpectedToken, "expected a Value, got %s", p.got())
			return
		}

		g := p.startNode(kind.EnumValue)
		defer g.finish()
		name(p)
		return
	}

	g := p.startNode(k)
	defer g.finish()
	p.bumpAny()
}

// listValue parses a ListValue.
//
//	ListValue[Const] :
//	  [ ]
//	  [ Value[?Const]+ ]
func listValue(p *parser, constant bool) {
	if !p.enter() {
		return
	}
	defer p.leave()

	g := p.startNode(kind.ListValue)
	defer g.finish()

	p.bump(kind.LBrack)
	mp := p.mustProgress()
	for !p.at(kind.RBrack) && !p.at(kind.EOF) {
		mp.check()
		switch p.peek() {
		case kind.RParen, kind.RCurly:
			p.expect(kind.RBrack)
			return
		case kind.Dollar, kind.LBrack, kind.LCurly, kind.Int, kind.Float, kind.String:
			value(p, constant)
		default:
			if p.atName() {
				value(p, constant)
			} else {
				p.recover("a Value")
			}
		}
	}
	p.expect(kind.RBrack)
}

// objectValue parses an ObjectValue.
//
//	ObjectValue[Const] :
//	  { }
//	  { ObjectField[?Const]+ }
func objectValue(p *parser, constant bool) {
	if !p.enter() {
		return
	}
	defer p.leave()

	g := p.startNode(kind.ObjectValue)
	defer g.finish()

	p.bump(kind.LCurly)
	mp := p.mustProgress()
	for !p.at(kind.RCurly) && !p.at(kind.EOF) {
		mp.check()
		switch {
		case p.atName():
			objectField(p, constant)
		case p.at(kind.RParen), p.at(kind.RBrack):
			p.expect(kind.RCurly)
			return
		default:
			p.recover("an Object Field")
		}
	}
	p.expect(kind.RCurly)
}

// objectField parses an ObjectField.
//
//	ObjectField[Const] : Name : Value[?Const]
func objectField(p *parser, constant bool) {
	g := p.startNode(kind.ObjectField)
	defer g.finish()

	name(p)
	p.expect(kind.Colon)
	value(p, constant)
}

// type_ parses a Type.
//
//	Type :
//	  NamedType
//	  ListType
//	  NonNullType
//
//	NonNullType :
//	  NamedType !
//	  ListType !
func type_(p *parser) {
	cp := p.checkpoint()
	switch {
	case p.at(kind.LBrack):
		if !listType(p) {
			return
		}
	case p.atName():
		namedType(p)
	default:
		p.pushErr(TagUnexpectedToken, "expected a Type, got %s", p.got())
		g := p.startNode(kind.NamedType)
		p.startNode(kind.Name).finish()
		g.finish()
		return
	}

	if p.at(kind.Bang) {
		g := p.wrap(cp, kind.NonNullType)
		defer g.finish()
		p.bump(kind.Bang)
	}
}

// listType parses a ListType. Returns false if the recursion limit was hit.
//
//	ListType : [ Type ]
func listType(p *parser) bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	g := p.startNode(kind.ListType)
	defer g.finish()

	p.bump(kind.LBrack)
	type_(p)
	p.expect(kind.RBrack)
	return true
}

// namedType parses a NamedType.
//
//	NamedType : Name
func namedType(p *parser) {
	g := p.startNode(kind.NamedType)
	defer g.finish()
	name(p)
}
