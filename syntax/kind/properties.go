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

package kind

type property uint16

const (
	sentinel property = 1 << iota
	punct
	keyword
	location
	literal
	trivia
	token
	node
	definition
	extension
)

func (k Kind) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// IsValid returns whether this is a kind that may appear in a finished tree.
func (k Kind) IsValid() bool {
	p := k.properties()
	return p != 0 && p&sentinel == 0
}

// IsPunct returns whether this is a punctuation token.
func (k Kind) IsPunct() bool {
	return k.properties()&punct != 0
}

// IsKeyword returns whether this is a keyword token, including the
// uppercase directive location keywords.
func (k Kind) IsKeyword() bool {
	return k.properties()&keyword != 0
}

// IsLocation returns whether this is a directive location keyword, such as
// FIELD_DEFINITION.
func (k Kind) IsLocation() bool {
	return k.properties()&location != 0
}

// IsLiteral returns whether this is an int, float or string literal token.
func (k Kind) IsLiteral() bool {
	return k.properties()&literal != 0
}

// IsTrivia returns whether this is a token that carries no syntactic
// meaning: whitespace, comments and commas.
func (k Kind) IsTrivia() bool {
	return k.properties()&trivia != 0
}

// IsToken returns whether this kind labels a token.
func (k Kind) IsToken() bool {
	return k.properties()&token != 0
}

// IsNode returns whether this kind labels a node.
func (k Kind) IsNode() bool {
	return k.properties()&node != 0
}

// IsDefinition returns whether this is one of the node kinds that may appear
// directly under [Document], which includes extensions.
func (k Kind) IsDefinition() bool {
	return k.properties()&definition != 0
}

// IsExtension returns whether this is a schema or type extension node.
func (k Kind) IsExtension() bool {
	return k.properties()&extension != 0
}

// Text returns the source text of a punctuation or keyword kind, or the
// empty string for every other kind.
func (k Kind) Text() string {
	if int(k) < len(texts) {
		return texts[k]
	}
	return ""
}

// properties is a table of kind properties, stored as bitsets.
var properties = [...]property{
	Tombstone: sentinel,
	EOF:       sentinel,

	Bang:   token | punct,
	Dollar: token | punct,
	Amp:    token | punct,
	Spread: token | punct,
	LParen: token | punct,
	RParen: token | punct,
	Colon:  token | punct,
	Eq:     token | punct,
	At:     token | punct,
	LBrack: token | punct,
	RBrack: token | punct,
	LCurly: token | punct,
	Pipe:   token | punct,
	RCurly: token | punct,
	Comma:  token | punct | trivia,

	KwQuery:        token | keyword,
	KwMutation:     token | keyword,
	KwSubscription: token | keyword,
	KwFragment:     token | keyword,
	KwOn:           token | keyword,
	KwNull:         token | keyword,
	KwTrue:         token | keyword,
	KwFalse:        token | keyword,
	KwExtend:       token | keyword,
	KwSchema:       token | keyword,
	KwScalar:       token | keyword,
	KwType:         token | keyword,
	KwImplements:   token | keyword,
	KwInterface:    token | keyword,
	KwUnion:        token | keyword,
	KwEnum:         token | keyword,
	KwInput:        token | keyword,
	KwDirective:    token | keyword,
	KwRepeatable:   token | keyword,

	LocQuery:                token | keyword | location,
	LocMutation:             token | keyword | location,
	LocSubscription:         token | keyword | location,
	LocField:                token | keyword | location,
	LocFragmentDefinition:   token | keyword | location,
	LocFragmentSpread:       token | keyword | location,
	LocInlineFragment:       token | keyword | location,
	LocVariableDefinition:   token | keyword | location,
	LocSchema:               token | keyword | location,
	LocScalar:               token | keyword | location,
	LocObject:               token | keyword | location,
	LocFieldDefinition:      token | keyword | location,
	LocArgumentDefinition:   token | keyword | location,
	LocInterface:            token | keyword | location,
	LocUnion:                token | keyword | location,
	LocEnum:                 token | keyword | location,
	LocEnumValue:            token | keyword | location,
	LocInputObject:          token | keyword | location,
	LocInputFieldDefinition: token | keyword | location,

	Int:    token | literal,
	Float:  token | literal,
	String: token | literal,

	Ident:      token,
	Whitespace: token | trivia,
	Comment:    token | trivia,
	Unknown:    token,

	Document:                    node,
	Error:                       node,
	Name:                        node,
	Description:                 node,
	OperationDefinition:         node | definition,
	OperationType:               node,
	VariableDefinitions:         node,
	VariableDefinition:          node,
	Variable:                    node,
	DefaultValue:                node,
	SelectionSet:                node,
	Field:                       node,
	Alias:                       node,
	Arguments:                   node,
	Argument:                    node,
	FragmentSpread:              node,
	InlineFragment:              node,
	FragmentDefinition:          node | definition,
	FragmentName:                node,
	TypeCondition:               node,
	Directives:                  node,
	Directive:                   node,
	IntValue:                    node,
	FloatValue:                  node,
	StringValue:                 node,
	BooleanValue:                node,
	NullValue:                   node,
	EnumValue:                   node,
	ListValue:                   node,
	ObjectValue:                 node,
	ObjectField:                 node,
	NamedType:                   node,
	ListType:                    node,
	NonNullType:                 node,
	SchemaDefinition:            node | definition,
	SchemaExtension:             node | definition | extension,
	RootOperationTypeDefinition: node,
	ScalarTypeDefinition:        node | definition,
	ScalarTypeExtension:         node | definition | extension,
	ObjectTypeDefinition:        node | definition,
	ObjectTypeExtension:         node | definition | extension,
	ImplementsInterfaces:        node,
	FieldsDefinition:            node,
	FieldDefinition:             node,
	ArgumentsDefinition:         node,
	InputValueDefinition:        node,
	InterfaceTypeDefinition:     node | definition,
	InterfaceTypeExtension:      node | definition | extension,
	UnionTypeDefinition:         node | definition,
	UnionTypeExtension:          node | definition | extension,
	UnionMemberTypes:            node,
	EnumTypeDefinition:          node | definition,
	EnumTypeExtension:           node | definition | extension,
	EnumValuesDefinition:        node,
	EnumValueDefinition:         node,
	InputObjectTypeDefinition:   node | definition,
	InputObjectTypeExtension:    node | definition | extension,
	InputFieldsDefinition:       node,
	DirectiveDefinition:         node | definition,
	DirectiveLocations:          node,
	DirectiveLocation:           node,
}

// texts is the source text of every punctuation and keyword kind.
var texts = [...]string{
	Bang:   "!",
	Dollar: "$",
	Amp:    "&",
	Spread: "...",
	LParen: "(",
	RParen: ")",
	Colon:  ":",
	Eq:     "=",
	At:     "@",
	LBrack: "[",
	RBrack: "]",
	LCurly: "{",
	Pipe:   "|",
	RCurly: "}",
	Comma:  ",",

	KwQuery:        "query",
	KwMutation:     "mutation",
	KwSubscription: "subscription",
	KwFragment:     "fragment",
	KwOn:           "on",
	KwNull:         "null",
	KwTrue:         "true",
	KwFalse:        "false",
	KwExtend:       "extend",
	KwSchema:       "schema",
	KwScalar:       "scalar",
	KwType:         "type",
	KwImplements:   "implements",
	KwInterface:    "interface",
	KwUnion:        "union",
	KwEnum:         "enum",
	KwInput:        "input",
	KwDirective:    "directive",
	KwRepeatable:   "repeatable",

	LocQuery:                "QUERY",
	LocMutation:             "MUTATION",
	LocSubscription:         "SUBSCRIPTION",
	LocField:                "FIELD",
	LocFragmentDefinition:   "FRAGMENT_DEFINITION",
	LocFragmentSpread:       "FRAGMENT_SPREAD",
	LocInlineFragment:       "INLINE_FRAGMENT",
	LocVariableDefinition:   "VARIABLE_DEFINITION",
	LocSchema:               "SCHEMA",
	LocScalar:               "SCALAR",
	LocObject:               "OBJECT",
	LocFieldDefinition:      "FIELD_DEFINITION",
	LocArgumentDefinition:   "ARGUMENT_DEFINITION",
	LocInterface:            "INTERFACE",
	LocUnion:                "UNION",
	LocEnum:                 "ENUM",
	LocEnumValue:            "ENUM_VALUE",
	LocInputObject:          "INPUT_OBJECT",
	LocInputFieldDefinition: "INPUT_FIELD_DEFINITION",
}

// Every kind must have properties; this fails to compile otherwise.
var _ = [1]struct{}{}[len(properties)-total]
