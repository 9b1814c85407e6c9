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

package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

func TestClassification(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.False(kind.Tombstone.IsValid())
	assert.False(kind.EOF.IsValid())
	assert.Equal(kind.Kind(0), kind.Tombstone)

	assert.True(kind.Bang.IsPunct())
	assert.True(kind.Spread.IsPunct())
	assert.False(kind.Bang.IsKeyword())

	assert.True(kind.KwQuery.IsKeyword())
	assert.True(kind.LocField.IsKeyword())
	assert.True(kind.LocField.IsLocation())
	assert.False(kind.KwQuery.IsLocation())

	assert.True(kind.Int.IsLiteral())
	assert.True(kind.Float.IsLiteral())
	assert.True(kind.String.IsLiteral())
	assert.False(kind.Ident.IsLiteral())

	assert.True(kind.Whitespace.IsTrivia())
	assert.True(kind.Comment.IsTrivia())
	assert.True(kind.Comma.IsTrivia())
	assert.False(kind.Unknown.IsTrivia())

	assert.True(kind.Document.IsNode())
	assert.False(kind.Document.IsToken())
	assert.True(kind.Ident.IsToken())
	assert.True(kind.OperationDefinition.IsDefinition())
	assert.True(kind.InputObjectTypeExtension.IsDefinition())
	assert.True(kind.InputObjectTypeExtension.IsExtension())
	assert.False(kind.SelectionSet.IsDefinition())
}

func TestEveryKindClassified(t *testing.T) {
	t.Parallel()

	for k := range kind.All() {
		assert.True(t, k.IsValid(), "%#v", k)
		assert.NotEqual(t, k.IsNode(), k.IsToken(), "%#v", k)
		if k.IsPunct() || k.IsKeyword() {
			assert.NotEmpty(t, k.Text(), "%#v", k)
		}

		back, ok := kind.FromString(k.String())
		assert.True(t, ok, "%v", k)
		assert.Equal(t, k, back)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(kind.KwQuery, kind.Lookup("query"))
	assert.Equal(kind.KwRepeatable, kind.Lookup("repeatable"))
	assert.Equal(kind.LocInputFieldDefinition, kind.Lookup("INPUT_FIELD_DEFINITION"))
	assert.Equal(kind.Ident, kind.Lookup("Query"))
	assert.Equal(kind.Ident, kind.Lookup("queryx"))

	for c, want := range map[rune]kind.Kind{
		'!': kind.Bang, '$': kind.Dollar, '&': kind.Amp, '(': kind.LParen,
		')': kind.RParen, ':': kind.Colon, '=': kind.Eq, '@': kind.At,
		'[': kind.LBrack, ']': kind.RBrack, '{': kind.LCurly, '|': kind.Pipe,
		'}': kind.RCurly, ',': kind.Comma,
	} {
		got, ok := kind.FromChar(c)
		assert.True(ok, "%q", c)
		assert.Equal(want, got, "%q", c)
	}
	_, ok := kind.FromChar('.')
	assert.False(ok)
	_, ok = kind.FromChar('é')
	assert.False(ok)

	spread, ok := kind.FromPunct("...")
	assert.True(ok)
	assert.Equal(kind.Spread, spread)

	loc, ok := kind.Location("FIELD")
	assert.True(ok)
	assert.Equal(kind.LocField, loc)
	_, ok = kind.Location("field")
	assert.False(ok)
	_, ok = kind.Location("NOT_A_LOCATION")
	assert.False(ok)
}

func TestT(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(kind.LCurly, kind.T("{"))
	assert.Equal(kind.Spread, kind.T("..."))
	assert.Equal(kind.KwQuery, kind.T("query"))
	assert.Equal(kind.LocSchema, kind.T("SCHEMA"))
	assert.Panics(func() { kind.T("nope") })
}

func TestStrings(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("DIRECTIVE_DEFINITION", kind.DirectiveDefinition.String())
	assert.Equal("directive_KW", kind.KwDirective.String())
	assert.Equal("FIELD_KW", kind.LocField.String())
	assert.Equal("L_CURLY", kind.LCurly.String())
	assert.Equal("kind.SelectionSet", kind.SelectionSet.GoString())
	assert.Equal("Kind(9999)", kind.Kind(9999).String())
}
