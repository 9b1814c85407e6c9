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

	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// names is the user-visible name of every node kind, spelled the way the
// GraphQL specification names the corresponding production.
var names = map[kind.Kind]string{
	kind.Document:                    "Document",
	kind.Name:                        "Name",
	kind.Description:                 "Description",
	kind.OperationDefinition:         "Operation Definition",
	kind.OperationType:               "Operation Type",
	kind.VariableDefinitions:         "Variable Definitions",
	kind.VariableDefinition:          "Variable Definition",
	kind.Variable:                    "Variable",
	kind.DefaultValue:                "Default Value",
	kind.SelectionSet:                "Selection Set",
	kind.Field:                       "Field",
	kind.Alias:                       "Alias",
	kind.Arguments:                   "Arguments",
	kind.Argument:                    "Argument",
	kind.FragmentSpread:              "Fragment Spread",
	kind.InlineFragment:              "Inline Fragment",
	kind.FragmentDefinition:          "Fragment Definition",
	kind.FragmentName:                "Fragment Name",
	kind.TypeCondition:               "Type Condition",
	kind.Directives:                  "Directives",
	kind.Directive:                   "Directive",
	kind.ListValue:                   "List Value",
	kind.ObjectValue:                 "Object Value",
	kind.ObjectField:                 "Object Field",
	kind.NamedType:                   "Named Type",
	kind.ListType:                    "List Type",
	kind.NonNullType:                 "Non-Null Type",
	kind.SchemaDefinition:            "Schema Definition",
	kind.SchemaExtension:             "Schema Extension",
	kind.RootOperationTypeDefinition: "Root Operation Type Definition",
	kind.ScalarTypeDefinition:        "Scalar Type Definition",
	kind.ScalarTypeExtension:         "Scalar Type Extension",
	kind.ObjectTypeDefinition:        "Object Type Definition",
	kind.ObjectTypeExtension:         "Object Type Extension",
	kind.ImplementsInterfaces:        "Implements Interfaces",
	kind.FieldsDefinition:            "Fields Definition",
	kind.FieldDefinition:             "Field Definition",
	kind.ArgumentsDefinition:         "Arguments Definition",
	kind.InputValueDefinition:        "Input Value Definition",
	kind.InterfaceTypeDefinition:     "Interface Type Definition",
	kind.InterfaceTypeExtension:      "Interface Type Extension",
	kind.UnionTypeDefinition:         "Union Type Definition",
	kind.UnionTypeExtension:          "Union Type Extension",
	kind.UnionMemberTypes:            "Union Member Types",
	kind.EnumTypeDefinition:          "Enum Type Definition",
	kind.EnumTypeExtension:           "Enum Type Extension",
	kind.EnumValuesDefinition:        "Enum Values Definition",
	kind.EnumValueDefinition:         "Enum Value Definition",
	kind.InputObjectTypeDefinition:   "Input Object Type Definition",
	kind.InputObjectTypeExtension:    "Input Object Type Extension",
	kind.InputFieldsDefinition:       "Input Fields Definition",
	kind.DirectiveDefinition:         "Directive Definition",
	kind.DirectiveLocations:          "Directive Locations",
	kind.DirectiveLocation:           "Directive Location",
}

// nameOf returns the user-visible name of a node kind.
func nameOf(k kind.Kind) string {
	if name, ok := names[k]; ok {
		return name
	}
	return k.String()
}

// describe returns a description of the ith token, for use in a diagnostic
// such as "expected X, got Y".
func (p *parser) describe(i int) string {
	if i >= len(p.tokens) {
		return "EOF"
	}

	tok := p.tokens[i]
	switch tok.Kind {
	case kind.String:
		return "a string literal"
	case kind.Int:
		return "an integer literal"
	case kind.Float:
		return "a float literal"
	case kind.Unknown:
		return "an unrecognized token"
	default:
		return fmt.Sprintf("`%s`", tok.Text(p.text))
	}
}

// expectedToken returns how a token kind is referred to in a diagnostic.
func expectedToken(k kind.Kind) string {
	if text := k.Text(); text != "" {
		return fmt.Sprintf("`%s`", text)
	}
	return k.String()
}
