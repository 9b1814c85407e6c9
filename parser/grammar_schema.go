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
	"strings"

	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// schemaDefinition parses a SchemaDefinition.
//
//	SchemaDefinition :
//	  Description? schema Directives[Const]? { RootOperationTypeDefinition+ }
func schemaDefinition(p *parser) {
	g := p.startNode(kind.SchemaDefinition)
	defer g.finish()

	description(p)
	p.bump(kind.KwSchema)
	if p.at(kind.At) {
		directives(p, true)
	}
	if p.at(kind.LCurly) {
		rootOperationTypes(p)
	} else {
		p.expect(kind.LCurly)
	}
}

// rootOperationTypes parses the braced list of root operation types of a
// schema definition or extension.
func rootOperationTypes(p *parser) {
	block(p, kind.LCurly, kind.RCurly, kind.RootOperationTypeDefinition, true,
		func(p *parser) bool {
			switch p.peek() {
			case kind.KwQuery, kind.KwMutation, kind.KwSubscription:
				return true
			}
			return false
		},
		rootOperationTypeDefinition)
}

// rootOperationTypeDefinition parses a RootOperationTypeDefinition.
//
//	RootOperationTypeDefinition : OperationType : NamedType
func rootOperationTypeDefinition(p *parser) {
	g := p.startNode(kind.RootOperationTypeDefinition)
	defer g.finish()

	operationType(p)
	p.expect(kind.Colon)
	namedType(p)
}

// scalarTypeDefinition parses a ScalarTypeDefinition.
//
//	ScalarTypeDefinition : Description? scalar Name Directives[Const]?
func scalarTypeDefinition(p *parser) {
	g := p.startNode(kind.ScalarTypeDefinition)
	defer g.finish()

	description(p)
	p.bump(kind.KwScalar)
	name(p)
	if p.at(kind.At) {
		directives(p, true)
	}
}

// objectTypeDefinition parses an ObjectTypeDefinition.
//
//	ObjectTypeDefinition :
//	  Description? type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func objectTypeDefinition(p *parser) {
	g := p.startNode(kind.ObjectTypeDefinition)
	defer g.finish()

	description(p)
	p.bump(kind.KwType)
	name(p)
	objectClauses(p)
}

// interfaceTypeDefinition parses an InterfaceTypeDefinition.
//
//	InterfaceTypeDefinition :
//	  Description? interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func interfaceTypeDefinition(p *parser) {
	g := p.startNode(kind.InterfaceTypeDefinition)
	defer g.finish()

	description(p)
	p.bump(kind.KwInterface)
	name(p)
	objectClauses(p)
}

// objectClauses parses the optional clauses shared by object and interface
// types and their extensions. Returns whether any were present.
func objectClauses(p *parser) bool {
	var found bool
	if p.at(kind.KwImplements) {
		implementsInterfaces(p)
		found = true
	}
	if p.at(kind.At) {
		directives(p, true)
		found = true
	}
	if p.at(kind.LCurly) {
		fieldsDefinition(p)
		found = true
	}
	return found
}

// implementsInterfaces parses ImplementsInterfaces.
//
//	ImplementsInterfaces :
//	  ImplementsInterfaces & NamedType
//	  implements &? NamedType
func implementsInterfaces(p *parser) {
	g := p.startNode(kind.ImplementsInterfaces)
	defer g.finish()

	p.bump(kind.KwImplements)
	if p.at(kind.Amp) {
		p.bump(kind.Amp)
	}
	namedType(p)

	mp := p.mustProgress()
	for p.at(kind.Amp) {
		mp.check()
		p.bump(kind.Amp)
		namedType(p)
	}
}

// fieldsDefinition parses a FieldsDefinition.
//
//	FieldsDefinition : { FieldDefinition+ }
func fieldsDefinition(p *parser) {
	g := p.startNode(kind.FieldsDefinition)
	defer g.finish()

	block(p, kind.LCurly, kind.RCurly, kind.FieldDefinition, true, atItem, fieldDefinition)
}

// fieldDefinition parses a FieldDefinition.
//
//	FieldDefinition :
//	  Description? Name ArgumentsDefinition? : Type Directives[Const]?
func fieldDefinition(p *parser) {
	g := p.startNode(kind.FieldDefinition)
	defer g.finish()

	description(p)
	name(p)
	if p.at(kind.LParen) {
		argumentsDefinition(p)
	}
	p.expect(kind.Colon)
	type_(p)
	if p.at(kind.At) {
		directives(p, true)
	}
}

// argumentsDefinition parses an ArgumentsDefinition.
//
//	ArgumentsDefinition : ( InputValueDefinition+ )
func argumentsDefinition(p *parser) {
	g := p.startNode(kind.ArgumentsDefinition)
	defer g.finish()

	block(p, kind.LParen, kind.RParen, kind.InputValueDefinition, true, atItem, inputValueDefinition)
}

// inputValueDefinition parses an InputValueDefinition.
//
//	InputValueDefinition :
//	  Description? Name : Type DefaultValue? Directives[Const]?
func inputValueDefinition(p *parser) {
	g := p.startNode(kind.InputValueDefinition)
	defer g.finish()

	description(p)
	name(p)
	p.expect(kind.Colon)
	type_(p)
	if p.at(kind.Eq) {
		defaultValue(p)
	}
	if p.at(kind.At) {
		directives(p, true)
	}
}

// unionTypeDefinition parses a UnionTypeDefinition.
//
//	UnionTypeDefinition :
//	  Description? union Name Directives[Const]? UnionMemberTypes?
func unionTypeDefinition(p *parser) {
	g := p.startNode(kind.UnionTypeDefinition)
	defer g.finish()

	description(p)
	p.bump(kind.KwUnion)
	name(p)
	unionClauses(p)
}

// unionClauses parses the optional clauses of a union type or extension.
// Returns whether any were present.
func unionClauses(p *parser) bool {
	var found bool
	if p.at(kind.At) {
		directives(p, true)
		found = true
	}
	if p.at(kind.Eq) {
		unionMemberTypes(p)
		found = true
	}
	return found
}

// unionMemberTypes parses UnionMemberTypes.
//
//	UnionMemberTypes :
//	  UnionMemberTypes | NamedType
//	  = |? NamedType
func unionMemberTypes(p *parser) {
	g := p.startNode(kind.UnionMemberTypes)
	defer g.finish()

	p.bump(kind.Eq)
	if p.at(kind.Pipe) {
		p.bump(kind.Pipe)
	}
	namedType(p)

	mp := p.mustProgress()
	for p.at(kind.Pipe) {
		mp.check()
		p.bump(kind.Pipe)
		namedType(p)
	}
}

// enumTypeDefinition parses an EnumTypeDefinition.
//
//	EnumTypeDefinition :
//	  Description? enum Name Directives[Const]? EnumValuesDefinition?
func enumTypeDefinition(p *parser) {
	g := p.startNode(kind.EnumTypeDefinition)
	defer g.finish()

	description(p)
	p.bump(kind.KwEnum)
	name(p)
	enumClauses(p)
}

// enumClauses parses the optional clauses of an enum type or extension.
// Returns whether any were present.
func enumClauses(p *parser) bool {
	var found bool
	if p.at(kind.At) {
		directives(p, true)
		found = true
	}
	if p.at(kind.LCurly) {
		enumValuesDefinition(p)
		found = true
	}
	return found
}

// enumValuesDefinition parses an EnumValuesDefinition.
//
//	EnumValuesDefinition : { EnumValueDefinition+ }
func enumValuesDefinition(p *parser) {
	g := p.startNode(kind.EnumValuesDefinition)
	defer g.finish()

	// Enum values are bare names, so a keyword followed by a name is just two
	// values rather than the start of a definition.
	block(p, kind.LCurly, kind.RCurly, kind.EnumValueDefinition, false, atItem, enumValueDefinition)
}

// enumValueDefinition parses an EnumValueDefinition.
//
//	EnumValueDefinition : Description? EnumValue Directives[Const]?
//	EnumValue : Name but not `true`, `false` or `null`
func enumValueDefinition(p *parser) {
	g := p.startNode(kind.EnumValueDefinition)
	defer g.finish()

	description(p)
	switch p.peek() {
	case kind.KwTrue, kind.KwFalse, kind.KwNull:
		p.pushErr(TagUnexpectedToken, "%s is not permitted as an enum value", p.got())
	}

	ev := p.startNode(kind.EnumValue)
	name(p)
	ev.finish()

	if p.at(kind.At) {
		directives(p, true)
	}
}

// inputObjectTypeDefinition parses an InputObjectTypeDefinition.
//
//	InputObjectTypeDefinition :
//	  Description? input Name Directives[Const]? InputFieldsDefinition?
func inputObjectTypeDefinition(p *parser) {
	g := p.startNode(kind.InputObjectTypeDefinition)
	defer g.finish()

	description(p)
	p.bump(kind.KwInput)
	name(p)
	inputObjectClauses(p)
}

// inputObjectClauses parses the optional clauses of an input object type or
// extension. Returns whether any were present.
func inputObjectClauses(p *parser) bool {
	var found bool
	if p.at(kind.At) {
		directives(p, true)
		found = true
	}
	if p.at(kind.LCurly) {
		inputFieldsDefinition(p)
		found = true
	}
	return found
}

// inputFieldsDefinition parses an InputFieldsDefinition.
//
//	InputFieldsDefinition : { InputValueDefinition+ }
func inputFieldsDefinition(p *parser) {
	g := p.startNode(kind.InputFieldsDefinition)
	defer g.finish()

	block(p, kind.LCurly, kind.RCurly, kind.InputValueDefinition, true, atItem, inputValueDefinition)
}

// extension parses a SchemaExtension or TypeExtension. Returns false without
// consuming anything if `extend` is not followed by something extensible.
//
//	TypeSystemExtension :
//	  SchemaExtension
//	  TypeExtension
func extension(p *parser) bool {
	next := p.peekN(1)
	if p.at(kind.String) {
		next = p.peekN(2)
	}

	switch next {
	case kind.KwSchema:
		typeExtension(p, kind.SchemaExtension, next,
			"Directives or Root Operation Type Definitions", func(p *parser) bool {
				var found bool
				if p.at(kind.At) {
					directives(p, true)
					found = true
				}
				if p.at(kind.LCurly) {
					rootOperationTypes(p)
					found = true
				}
				return found
			})
	case kind.KwScalar:
		typeExtension(p, kind.ScalarTypeExtension, next,
			"Directives", func(p *parser) bool {
				if !p.at(kind.At) {
					return false
				}
				directives(p, true)
				return true
			})
	case kind.KwType:
		typeExtension(p, kind.ObjectTypeExtension, next,
			"Implements Interfaces, Directives or a Fields Definition", objectClauses)
	case kind.KwInterface:
		typeExtension(p, kind.InterfaceTypeExtension, next,
			"Implements Interfaces, Directives or a Fields Definition", objectClauses)
	case kind.KwUnion:
		typeExtension(p, kind.UnionTypeExtension, next,
			"Directives or Union Member Types", unionClauses)
	case kind.KwEnum:
		typeExtension(p, kind.EnumTypeExtension, next,
			"Directives or an Enum Values Definition", enumClauses)
	case kind.KwInput:
		typeExtension(p, kind.InputObjectTypeExtension, next,
			"Directives or an Input Fields Definition", inputObjectClauses)
	default:
		return false
	}
	return true
}

// typeExtension parses an extension of the given kind. clauses parses the
// extension's optional clauses, at least one of which must be present; if
// none is, the whole extension is reported as incomplete.
//
//	SchemaExtension :
//	  extend schema Directives[Const]? { RootOperationTypeDefinition+ }
//	  extend schema Directives[Const]
//
//	ScalarTypeExtension :
//	  extend scalar Name Directives[Const]
//
// and so on for the other types.
func typeExtension(p *parser, k, keyword kind.Kind, required string, clauses func(*parser) bool) {
	g := p.startNode(k)
	defer g.finish()

	noDescription(p, k)
	p.bump(kind.KwExtend)
	p.bump(keyword)
	if keyword != kind.KwSchema {
		name(p)
	}

	if !clauses(p) {
		p.errorAt(g.span(), TagMissingClause, "expected %s in %s", required, nameOf(k))
	}
}

// block parses a delimited, non-empty list of items into the currently open
// node. start reports whether the next token begins an item, and item parses
// one.
//
// If stop is set, the list also ends at anything that looks like the start of
// a new definition, which is most likely a missing closing delimiter.
func block(
	p *parser,
	open, end, item kind.Kind,
	stop bool,
	start func(*parser) bool,
	parse func(*parser),
) {
	p.bump(open)
	if p.at(end) {
		p.pushErr(TagUnexpectedToken, "expected at least one %s, got %s", nameOf(item), p.got())
	}

	mp := p.mustProgress()
	for !p.at(end) && !p.at(kind.EOF) {
		mp.check()
		switch {
		case stop && atDefinitionInBlock(p):
			p.expect(end)
			return
		case start(p):
			parse(p)
		default:
			p.recover(article(nameOf(item)))
		}
	}
	p.expect(end)
}

// atItem returns whether the next token begins an item of a type system
// block: a name, possibly preceded by a description.
func atItem(p *parser) bool {
	return p.atName() || p.at(kind.String)
}

// article prefixes a name with the appropriate indefinite article.
func article(name string) string {
	if name != "" && strings.ContainsRune("AEIOU", rune(name[0])) {
		return "an " + name
	}
	return "a " + name
}
