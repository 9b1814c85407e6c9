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

package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/graph-guard/gqlscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	gqlparser "github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/gqlsyntax/internal/golden"
	"github.com/bufbuild/gqlsyntax/parser"
	"github.com/bufbuild/gqlsyntax/syntax"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata",
		Refresh:   "GQLSYNTAX_REFRESH",
		Extension: "graphql",
		Outputs: []golden.Output{
			{Extension: "tree.txt"},
			{Extension: "errors.txt"},
		},
		Test: func(t *testing.T, path, text string) []string {
			out := parser.Parser{}.Parse(path, text)
			checkTree(t, text, out)

			var errs strings.Builder
			for _, d := range out.Errors() {
				span := d.Primary()
				fmt.Fprintf(&errs, "error@%d..%d: %s\n", span.Start, span.End, d.Message())
			}
			return []string{syntax.Debug(out.Root()), errs.String()}
		},
	}
	corpus.Run(t)
}

// valid is a collection of documents that conform to the grammar. Each is
// either an executable document or a schema document, which determines how
// it is cross-checked.
var valid = []struct {
	name, text string
	schema     bool
}{
	{name: "query", text: "query { field }"},
	{name: "shorthand", text: "{ a b, c }"},
	{name: "keywords", text: "{ query mutation type: fragment on }"},
	{name: "variables", text: `query Q($id: ID! = 1, $l: [String!] = ["x"] @d) @dir(a: 1) {
	user(id: $id) {
		name
		...F
		... on User { id }
		... @include(if: true) { x }
	}
}`},
	{name: "values", text: `mutation M { a: b(c: {d: [1, -2.5e3, "s", """block""", true, null, ENUM, []], e: {}}) }`},
	{name: "subscription", text: "subscription S { s }"},
	{name: "fragment", text: "fragment F on User @d { id ... G }"},
	{name: "comments", text: "# leading\n{\n  a # trailing\n}\n"},
	{name: "object", schema: true, text: `"desc" type T implements A & B @d { "f" f(a: Int = 1 @d, b: [[T]!]): [T!]! @deprecated }`},
	{name: "schema", schema: true, text: "schema @d { query: Q mutation: M subscription: S }"},
	{name: "scalar", schema: true, text: `"""block "" desc""" scalar S @specifiedBy(url: "x")`},
	{name: "interface", schema: true, text: "interface I implements & J & K { f: Int }"},
	{name: "union", schema: true, text: "union U @d = | A | B"},
	{name: "enum", schema: true, text: `enum E { A "b" B @d type input }`},
	{name: "input", schema: true, text: "input In { a: Int = 1, b: [In] = [{a: 2}] @d }"},
	{name: "input_empty", schema: true, text: "input Example"},
	{name: "directive", schema: true, text: "directive @d(a: Int) repeatable on | FIELD | QUERY | FIELD_DEFINITION"},
	{name: "extensions", schema: true, text: `extend schema @d
extend schema { query: Q }
extend scalar S @d
extend type T implements I
extend interface I @d
extend union U = C
extend enum E { C }
extend input In { c: Int }`},
	{name: "field_named_type", schema: true, text: "type T { type: String input: Int }"},
	{name: "field_named_fragment", schema: true, text: "type T { fragment: String }"},
	{name: "input_field_named_fragment", schema: true, text: "input I { fragment: Int }"},
	{name: "field_named_query", schema: true, text: "type Query { query(id: ID): Thing }"},
	{name: "field_named_schema", schema: true, text: "interface I { schema(a: Int): S }"},
	{name: "described_keyword_field", schema: true, text: `type T { "d" mutation(a: Int): M "e" subscription: S }`},
	{name: "empty", text: ""},
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, test := range valid {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			out := parser.Parse(test.text)
			checkTree(t, test.text, out)
			assert.Empty(out.Errors(), "%s", out.Debug())
			assert.False(out.HasErrors())
			assert.Equal(kind.Document, out.Root().Kind())

			for child := range out.Root().ChildNodes() {
				assert.True(child.Kind().IsDefinition(), "%v", child.Kind())
			}

			if test.text == "" {
				return
			}
			source := &ast.Source{Name: test.name, Input: test.text}
			if test.schema {
				_, err := gqlparser.ParseSchema(source)
				assert.True(err == nil, "gqlparser rejected the document: %v", err)
			} else {
				_, err := gqlparser.ParseQuery(source)
				assert.True(err == nil, "gqlparser rejected the document: %v", err)
			}
		})
	}
}

func TestFieldCount(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"{ a b c }",
		"query Q($v: Int) { a(x: $v) { b c: d } e }",
		"{ a { ... on T { b } ...F } } fragment F on T { c d }",
	} {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			var want int
			err := gqlscan.ScanAll([]byte(text), func(i *gqlscan.Iterator) {
				if i.Token() == gqlscan.TokenField {
					want++
				}
			})
			require.False(t, err.IsErr(), "%v", err)

			out := parser.Parse(text)
			require.Empty(t, out.Errors())

			var got int
			for n := range out.Root().Descendants() {
				if n.Kind() == kind.Field {
					got++
				}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestQuery(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	out := parser.Parse("query { field }")
	assert.Empty(out.Errors())

	root := out.Root()
	require.Equal(t, 1, root.Len())
	op := root.ChildOfKind(kind.OperationDefinition)
	require.NotNil(t, op)
	field := op.ChildOfKind(kind.SelectionSet).ChildOfKind(kind.Field)
	require.NotNil(t, field)
	assert.Equal("field", field.Text())
}

func TestMissingOn(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	out := parser.Parse("directive @example FIELD")
	require.NotEmpty(t, out.Errors())
	assert.Contains(out.Errors()[0].Message(), "Directive Locations")
	assert.True(out.Errors()[0].Is(parser.TagUnexpectedToken))

	def := out.Root().ChildOfKind(kind.DirectiveDefinition)
	require.NotNil(t, def)
	locs := def.ChildOfKind(kind.DirectiveLocations)
	require.NotNil(t, locs)
	loc := locs.ChildOfKind(kind.DirectiveLocation)
	require.NotNil(t, loc)
	assert.NotNil(loc.TokenOfKind(kind.LocField))
}

func TestOptionalClauses(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	out := parser.Parse("input Example")
	assert.Empty(out.Errors())

	def := out.Root().ChildOfKind(kind.InputObjectTypeDefinition)
	require.NotNil(t, def)
	assert.Equal("input Example", def.Text())
	assert.Nil(def.ChildOfKind(kind.InputFieldsDefinition))
	assert.Nil(def.ChildOfKind(kind.Directives))
}

func TestExtensionRequiresClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, want string
	}{
		{"extend input Example", "expected Directives or an Input Fields Definition in Input Object Type Extension"},
		{"extend schema", "expected Directives or Root Operation Type Definitions in Schema Extension"},
		{"extend scalar S", "expected Directives in Scalar Type Extension"},
		{"extend type T", "expected Implements Interfaces, Directives or a Fields Definition in Object Type Extension"},
		{"extend interface I", "expected Implements Interfaces, Directives or a Fields Definition in Interface Type Extension"},
		{"extend union U", "expected Directives or Union Member Types in Union Type Extension"},
		{"extend enum E", "expected Directives or an Enum Values Definition in Enum Type Extension"},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			out := parser.Parse(test.text)
			require.Len(t, out.Errors(), 1)
			d := out.Errors()[0]
			assert.Equal(test.want, d.Message())
			assert.True(d.Is(parser.TagMissingClause))
			assert.Equal(0, d.Primary().Start)
			assert.Equal(len(test.text), d.Primary().End)
			assert.Equal(1, out.Root().Len())
			assert.True(out.Root().FirstChild().Kind().IsExtension())
		})
	}
}

func TestErr(t *testing.T) {
	t.Parallel()

	assert.NoError(t, parser.Parse("{ a }").Err())
	assert.ErrorContains(t, parser.Parse("query").Err(), "1:6: expected a Selection Set, got EOF")
}

func TestIdempotentDebug(t *testing.T) {
	t.Parallel()

	for _, test := range valid {
		a := parser.Parse(test.text).Debug()
		b := parser.Parse(test.text).Debug()
		assert.Equal(t, a, b, test.name)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []string
	}{
		{"query", []string{"error@5..5: expected a Selection Set, got EOF"}},
		{"{ }", []string{"error@2..3: expected at least one Selection, got `}`"}},
		{"{ a(x: 1 }", []string{"error@9..10: expected `)`, got `}`"}},
		{"{ a(x: $v) }", nil},
		{"query ($v: Int = $w) { a }", []string{"error@17..18: variables are not permitted in constant values"}},
		{"enum E { true B }", []string{"error@9..13: `true` is not permitted as an enum value"}},
		{"fragment on T { a }", []string{"error@9..11: expected a Fragment Name, got `on`"}},
		{`"d" query { a }`, []string{"error@0..3: descriptions are not permitted on Operation Definitions"}},
		{"{ a ? }", []string{"error@4..5: unrecognized token"}},
		{"type T { f(): Int }", []string{"error@11..12: expected at least one Input Value Definition, got `)`"}},
		{"extend foo", []string{"error@0..6: expected a type system extension after `extend`, got `foo`"}},
		{"{ a(: 1) }", []string{
			"error@4..5: expected an Argument, got `:`",
			"error@6..7: expected an Argument, got an integer literal",
		}},
		{"type T { a: }", []string{"error@12..13: expected a Type, got `}`"}},
		{"type T { a: Int\ntype U { b: Int }", []string{"error@16..20: expected `}`, got `type`"}},
		{"type T { a: Int\nfragment F on T { x }", []string{"error@16..24: expected `}`, got `fragment`"}},
		{"type T { a: Int\nschema { query: Q }", []string{"error@16..22: expected `}`, got `schema`"}},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			out := parser.Parse(test.text)
			checkTree(t, test.text, out)

			var got []string
			for _, d := range out.Errors() {
				span := d.Primary()
				got = append(got, fmt.Sprintf("error@%d..%d: %s", span.Start, span.End, d.Message()))
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s\n%s", diff, out.Debug())
			}
		})
	}
}

func TestLexical(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	out := parser.Parse(`{ a(x: "abc) }`)
	require.NotEmpty(t, out.Errors())
	assert.True(out.Errors()[0].Is(parser.TagLexical))
	assert.Equal(7, out.Errors()[0].Primary().Start)
}

func TestErrorsIn(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	out := parser.Parse("query { a } }")
	require.Len(t, out.Errors(), 1)
	assert.Len(out.ErrorsIn(12, 13), 1)
	assert.Len(out.ErrorsIn(0, 13), 1)
	assert.Len(out.ErrorsIn(12, 12), 0)
	assert.Empty(out.ErrorsIn(0, 12))
	assert.Empty(out.ErrorsIn(13, 20))

	out = parser.Parse("query")
	require.Len(t, out.Errors(), 1)
	assert.Len(out.ErrorsIn(5, 5), 1)
	assert.Len(out.ErrorsIn(0, 5), 1)
	assert.Empty(out.ErrorsIn(0, 4))
}

func TestRecursionLimit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text := strings.Repeat("{a", 10) + strings.Repeat("}", 10)
	out := parser.Parser{RecursionLimit: 5}.Parse("deep.graphql", text)
	checkTree(t, text, out)

	require.Len(t, out.Errors(), 1)
	d := out.Errors()[0]
	assert.True(d.Is(parser.TagRecursionLimit))
	assert.Equal("document is nested more than 5 levels deep", d.Message())
	assert.Equal("deep.graphql", d.Primary().File.Path())
	assert.Equal(10, d.Primary().Start)

	limits := out.Limits()
	assert.Equal(5, limits.RecursionLimit)
	assert.Equal(5, limits.MaxDepth)
	assert.Equal(-1, limits.TokenLimit)

	last, ok := out.Root().LastChild().(*syntax.Node)
	require.True(t, ok)
	assert.Equal(kind.Error, last.Kind())
	assert.Equal(text[10:], last.Text())

	// Without a limit, this is perfectly valid.
	out = parser.Parser{RecursionLimit: -1}.Parse("", text)
	assert.Empty(out.Errors())
	assert.Equal(10, out.Limits().MaxDepth)

	// The default limit is generous, but finite.
	text = strings.Repeat("[", parser.DefaultRecursionLimit*2)
	out = parser.Parse("{ a(x: " + text + ") }")
	require.Len(t, out.Errors(), 1)
	assert.True(out.Errors()[0].Is(parser.TagRecursionLimit))
}

func TestTokenLimit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text := "{ a b c d }"
	out := parser.Parser{TokenLimit: 4}.Parse("", text)
	checkTree(t, text, out)

	require.Len(t, out.Errors(), 1)
	d := out.Errors()[0]
	assert.True(d.Is(parser.TagTokenLimit))
	assert.Equal("document has more than 4 tokens", d.Message())
	assert.Equal(4, d.Primary().Start)
	assert.Equal(len(text), d.Primary().End)
	assert.Equal(4, out.Limits().Tokens)
	assert.Equal(4, out.Limits().TokenLimit)

	// Looking ahead from `a` runs into the limit, but `a` is still parsed as
	// a field. The whitespace consumed before the limit was hit goes into the
	// error node along with the remainder.
	first, ok := out.Root().FirstChild().(*syntax.Node)
	require.True(t, ok)
	assert.Equal(kind.OperationDefinition, first.Kind())
	assert.Equal("{ a", first.Text())
	var fields []string
	for n := range first.Descendants() {
		if n.Kind() == kind.Field {
			fields = append(fields, n.Text())
		}
	}
	assert.Equal([]string{"a"}, fields)

	last, ok := out.Root().LastChild().(*syntax.Node)
	require.True(t, ok)
	assert.Equal(kind.Error, last.Kind())
	assert.Equal(" b c d }", last.Text())
	assert.Equal(3, last.Offset())

	out = parser.Parser{TokenLimit: 100}.Parse("", text)
	assert.Empty(out.Errors())
	assert.Equal(11, out.Limits().Tokens)
}

func TestParallel(t *testing.T) {
	t.Parallel()

	sequential := make([]string, len(valid))
	for i, test := range valid {
		sequential[i] = parser.Parse(test.text).Debug()
	}

	parallel := make([]string, len(valid))
	var group errgroup.Group
	for i, test := range valid {
		group.Go(func() error {
			parallel[i] = parser.Parse(test.text).Debug()
			return nil
		})
	}
	require.NoError(t, group.Wait())
	assert.Equal(t, sequential, parallel)
}

// checkTree checks the invariants that hold for every tree, regardless of
// whether the input was valid: the tokens reproduce the input exactly, and
// every node is exactly as wide as its children.
func checkTree(t *testing.T, text string, out *parser.Output) {
	t.Helper()

	root := out.Root()
	assert.Equal(t, len(text), root.Width())

	var b strings.Builder
	for tok := range root.Tokens() {
		b.WriteString(tok.Text())
	}
	assert.Equal(t, text, b.String())

	for n := range root.Descendants() {
		var width int
		for child := range n.Children() {
			width += child.Width()
		}
		assert.Equal(t, n.Width(), width, "width of %v@%d", n.Kind(), n.Offset())
	}
}
