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

// operationDefinition parses an OperationDefinition.
//
//	OperationDefinition :
//	  OperationType Name? VariableDefinitions? Directives? SelectionSet
//	  SelectionSet
func operationDefinition(p *parser) {
	g := p.startNode(kind.OperationDefinition)
	defer g.finish()

	noDescription(p, kind.OperationDefinition)
	if p.at(kind.LCurly) {
		selectionSet(p)
		return
	}

	operationType(p)
	if p.atName() {
		name(p)
	}
	if p.at(kind.LParen) {
		variableDefinitions(p)
	}
	if p.at(kind.At) {
		directives(p, false)
	}
	if p.at(kind.LCurly) {
		selectionSet(p)
	} else {
		p.pushErr(TagUnexpectedToken, "expected a Selection Set, got %s", p.got())
	}
}

// operationType parses an OperationType.
//
//	OperationType : one of `query` `mutation` `subscription`
func operationType(p *parser) {
	g := p.startNode(kind.OperationType)
	defer g.finish()

	switch k := p.peek(); k {
	case kind.KwQuery, kind.KwMutation, kind.KwSubscription:
		p.bump(k)
	default:
		p.pushErr(TagUnexpectedToken, "expected an Operation Type, got %s", p.got())
	}
}

// variableDefinitions parses VariableDefinitions.
//
//	VariableDefinitions : ( VariableDefinition+ )
func variableDefinitions(p *parser) {
	g := p.startNode(kind.VariableDefinitions)
	defer g.finish()

	p.bump(kind.LParen)
	if p.at(kind.RParen) {
		p.pushErr(TagUnexpectedToken, "expected at least one Variable Definition, got %s", p.got())
	}

	mp := p.mustProgress()
	for !p.at(kind.RParen) && !p.at(kind.EOF) {
		mp.check()
		switch p.peek() {
		case kind.Dollar:
			variableDefinition(p)
		case kind.LCurly, kind.RCurly:
			// Probably a missing ), so let the caller deal with this.
			p.expect(kind.RParen)
			return
		default:
			p.recover("a Variable Definition")
		}
	}
	p.expect(kind.RParen)
}

// variableDefinition parses a VariableDefinition.
//
//	VariableDefinition : Variable : Type DefaultValue? Directives[Const]?
func variableDefinition(p *parser) {
	g := p.startNode(kind.VariableDefinition)
	defer g.finish()

	variable(p, false)
	p.expect(kind.Colon)
	type_(p)
	if p.at(kind.Eq) {
		defaultValue(p)
	}
	if p.at(kind.At) {
		directives(p, true)
	}
}

// variable parses a Variable. If constant is set, this reports that variables
// are not permitted here but keeps the variable in the tree.
//
//	Variable : $ Name
func variable(p *parser, constant bool) {
	g := p.startNode(kind.Variable)
	defer g.finish()

	if constant {
		p.pushErr(TagInvalidConst, "variables are not permitted in constant values")
	}
	p.expect(kind.Dollar)
	name(p)
}

// defaultValue parses a DefaultValue.
//
//	DefaultValue : = Value[Const]
func defaultValue(p *parser) {
	g := p.startNode(kind.DefaultValue)
	defer g.finish()

	p.bump(kind.Eq)
	value(p, true)
}

// selectionSet parses a SelectionSet.
//
//	SelectionSet : { Selection+ }
func selectionSet(p *parser) {
	if !p.enter() {
		return
	}
	defer p.leave()

	g := p.startNode(kind.SelectionSet)
	defer g.finish()

	p.bump(kind.LCurly)
	if p.at(kind.RCurly) {
		p.pushErr(TagUnexpectedToken, "expected at least one Selection, got %s", p.got())
	}

	mp := p.mustProgress()
	for !p.at(kind.RCurly) && !p.at(kind.EOF) {
		mp.check()
		selection(p)
	}
	p.expect(kind.RCurly)
}

// selection parses a Selection.
//
//	Selection :
//	  Field
//	  FragmentSpread
//	  InlineFragment
func selection(p *parser) {
	switch {
	case p.at(kind.Spread):
		if next := p.peekN(1); isName(next) && next != kind.KwOn {
			fragmentSpread(p)
		} else {
			inlineFragment(p)
		}
	case p.atName():
		field(p)
	default:
		p.recover("a Selection")
	}
}

// field parses a Field.
//
//	Field : Alias? Name Arguments? Directives? SelectionSet?
func field(p *parser) {
	g := p.startNode(kind.Field)
	defer g.finish()

	if p.peekN(1) == kind.Colon {
		alias(p)
	}
	name(p)
	if p.at(kind.LParen) {
		arguments(p, false)
	}
	if p.at(kind.At) {
		directives(p, false)
	}
	if p.at(kind.LCurly) {
		selectionSet(p)
	}
}

// alias parses an Alias.
//
//	Alias : Name :
func alias(p *parser) {
	g := p.startNode(kind.Alias)
	defer g.finish()

	name(p)
	p.expect(kind.Colon)
}

// arguments parses Arguments.
//
//	Arguments[Const] : ( Argument[?Const]+ )
func arguments(p *parser, constant bool) {
	g := p.startNode(kind.Arguments)
	defer g.finish()

	p.bump(kind.LParen)
	if p.at(kind.RParen) {
		p.pushErr(TagUnexpectedToken, "expected at least one Argument, got %s", p.got())
	}

	mp := p.mustProgress()
	for !p.at(kind.RParen) && !p.at(kind.EOF) {
		mp.check()
		switch {
		case p.atName():
			argument(p, constant)
		case p.at(kind.LCurly), p.at(kind.RCurly):
			p.expect(kind.RParen)
			return
		default:
			p.recover("an Argument")
		}
	}
	p.expect(kind.RParen)
}

// argument parses an Argument.
//
//	Argument[Const] : Name : Value[?Const]
func argument(p *parser, constant bool) {
	g := p.startNode(kind.Argument)
	defer g.finish()

	name(p)
	p.expect(kind.Colon)
	value(p, constant)
}

// fragmentSpread parses a FragmentSpread.
//
//	FragmentSpread : ... FragmentName Directives?
func fragmentSpread(p *parser) {
	g := p.startNode(kind.FragmentSpread)
	defer g.finish()

	p.bump(kind.Spread)
	fragmentName(p)
	if p.at(kind.At) {
		directives(p, false)
	}
}

// inlineFragment parses an InlineFragment.
//
//	InlineFragment : ... TypeCondition? Directives? SelectionSet
func inlineFragment(p *parser) {
	g := p.startNode(kind.InlineFragment)
	defer g.finish()

	p.bump(kind.Spread)
	if p.at(kind.KwOn) {
		typeCondition(p)
	}
	if p.at(kind.At) {
		directives(p, false)
	}
	if p.at(kind.LCurly) {
		selectionSet(p)
	} else {
		p.pushErr(TagUnexpectedToken, "expected a Selection Set, got %s", p.got())
	}
}

// fragmentDefinition parses a FragmentDefinition.
//
//	FragmentDefinition :
//	  fragment FragmentName TypeCondition Directives? SelectionSet
func fragmentDefinition(p *parser) {
	g := p.startNode(kind.FragmentDefinition)
	defer g.finish()

	noDescription(p, kind.FragmentDefinition)
	p.bump(kind.KwFragment)
	fragmentName(p)

	if p.at(kind.KwOn) {
		typeCondition(p)
	} else {
		p.pushErr(TagUnexpectedToken, "expected a Type Condition, got %s", p.got())
	}
	if p.at(kind.At) {
		directives(p, false)
	}
	if p.at(kind.LCurly) {
		selectionSet(p)
	} else {
		p.pushErr(TagUnexpectedToken, "expected a Selection Set, got %s", p.got())
	}
}

// fragmentName parses a FragmentName.
//
//	FragmentName : Name but not `on`
func fragmentName(p *parser) {
	g := p.startNode(kind.FragmentName)
	defer g.finish()

	if p.at(kind.KwOn) {
		// Most likely the name is missing and this begins the type condition,
		// so leave it for the caller.
		p.pushErr(TagUnexpectedToken, "expected a Fragment Name, got `on`")
		p.startNode(kind.Name).finish()
		return
	}
	name(p)
}

// typeCondition parses a TypeCondition.
//
//	TypeCondition : on NamedType
func typeCondition(p *parser) {
	g := p.startNode(kind.TypeCondition)
	defer g.finish()

	p.bump(kind.KwOn)
	namedType(p)
}
