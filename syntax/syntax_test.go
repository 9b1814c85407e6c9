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

package syntax_test

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/gqlsyntax/source"
	"github.com/bufbuild/gqlsyntax/syntax"
	"github.com/bufbuild/gqlsyntax/syntax/green"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

const queryText = "query { a }"

// buildQuery builds the tree for queryText by hand.
func buildQuery() *green.Node {
	var b green.Builder
	b.Start(kind.Document)
	b.Start(kind.OperationDefinition)
	b.Start(kind.OperationType)
	b.Token(kind.KwQuery, "query")
	b.Finish()
	b.Token(kind.Whitespace, " ")
	b.Start(kind.SelectionSet)
	b.Token(kind.LCurly, "{")
	b.Token(kind.Whitespace, " ")
	b.Start(kind.Field)
	b.Start(kind.Name)
	b.Token(kind.Ident, "a")
	b.Finish()
	b.Finish()
	b.Token(kind.Whitespace, " ")
	b.Token(kind.RCurly, "}")
	b.Finish()
	b.Finish()
	b.Finish()
	return b.Build()
}

func TestDebug(t *testing.T) {
	t.Parallel()

	root := syntax.NewRoot(buildQuery(), nil)
	want := strings.Join([]string{
		`- DOCUMENT@0..11`,
		`    - OPERATION_DEFINITION@0..11`,
		`        - OPERATION_TYPE@0..5`,
		`            - query_KW@0..5 "query"`,
		`        - WHITESPACE@5..6 " "`,
		`        - SELECTION_SET@6..11`,
		`            - L_CURLY@6..7 "{"`,
		`            - WHITESPACE@7..8 " "`,
		`            - FIELD@8..9`,
		`                - NAME@8..9`,
		`                    - IDENT@8..9 "a"`,
		`            - WHITESPACE@9..10 " "`,
		`            - R_CURLY@10..11 "}"`,
		``,
	}, "\n")
	assert.Equal(t, want, syntax.Debug(root))
	assert.Equal(t, syntax.Debug(root), syntax.Debug(root))
}

func TestNavigation(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := source.NewFile("q.graphql", queryText)
	root := syntax.NewRoot(buildQuery(), file)
	assert.Equal(queryText, root.Text())
	assert.Equal(file.Span(0, 11), root.Span())
	assert.Nil(root.Parent())

	op := root.ChildOfKind(kind.OperationDefinition)
	require.NotNil(t, op)
	assert.Nil(root.ChildOfKind(kind.FragmentDefinition))
	assert.Equal(3, op.Len())

	set := op.ChildOfKind(kind.SelectionSet)
	require.NotNil(t, set)
	assert.Equal(6, set.Offset())
	assert.Equal("{ a }", set.Text())
	assert.Equal("{", set.TokenOfKind(kind.LCurly).Text())
	assert.Equal(10, set.TokenOfKind(kind.RCurly).Offset())
	assert.Nil(set.TokenOfKind(kind.Comma))

	var ancestors []kind.Kind
	for a := range set.Ancestors() {
		ancestors = append(ancestors, a.Kind())
	}
	assert.Equal([]kind.Kind{kind.OperationDefinition, kind.Document}, ancestors)

	first := set.FirstChild()
	last := set.LastChild()
	assert.Equal(kind.LCurly, first.Kind())
	assert.Equal(kind.RCurly, last.Kind())
	assert.Equal(10, last.Offset())
	assert.Equal(kind.Whitespace, first.(*syntax.Token).NextSibling().Kind()) //nolint:errcheck
	assert.Nil(first.(*syntax.Token).PrevSibling())                            //nolint:errcheck

	ws := op.Child(1)
	assert.Equal(kind.Whitespace, ws.Kind())
	assert.Equal(5, ws.Offset())
	assert.Equal(kind.SelectionSet, ws.(*syntax.Token).NextSibling().Kind()) //nolint:errcheck
	assert.Equal(kind.OperationType, ws.(*syntax.Token).PrevSibling().Kind()) //nolint:errcheck

	var nodes []kind.Kind
	for n := range set.ChildNodes() {
		nodes = append(nodes, n.Kind())
	}
	assert.Equal([]kind.Kind{kind.Field}, nodes)

	var tokens int
	for range set.ChildTokens() {
		tokens++
	}
	assert.Equal(4, tokens)

	field := set.ChildOfKind(kind.Field)
	assert.Equal(file.Span(8, 9), field.Span())
	assert.Equal("a", field.Span().Text())
	assert.Len(collect(set.ChildrenOfKind(kind.Field)), 1)
}

func TestTokens(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root := syntax.NewRoot(buildQuery(), nil)

	var text strings.Builder
	var kinds []kind.Kind
	for tok := range root.Tokens() {
		text.WriteString(tok.Text())
		kinds = append(kinds, tok.Kind())
	}
	assert.Equal(queryText, text.String())
	assert.Len(kinds, 7)

	// Walk forwards and backwards across node boundaries.
	tok := root.TokenAtOffset(0)
	require.NotNil(t, tok)
	var forward []string
	for ; tok != nil; tok = tok.NextToken() {
		forward = append(forward, tok.Text())
	}
	assert.Equal([]string{"query", " ", "{", " ", "a", " ", "}"}, forward)

	tok = root.TokenAtOffset(len(queryText))
	require.NotNil(t, tok)
	assert.Equal("}", tok.Text())
	var backward []string
	for ; tok != nil; tok = tok.PrevToken() {
		backward = append(backward, tok.Text())
	}
	assert.Equal([]string{"}", " ", "a", " ", "{", " ", "query"}, backward)

	assert.Equal("a", root.TokenAtOffset(8).Text())
	assert.Equal("query", root.TokenAtOffset(4).Text())
	assert.Nil(root.TokenAtOffset(12))
	assert.Nil(root.TokenAtOffset(-1))
}

func TestCovering(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root := syntax.NewRoot(buildQuery(), nil)
	assert.Equal(kind.Ident, root.CoveringElement(8, 9).Kind())
	assert.Equal(kind.SelectionSet, root.CoveringElement(6, 9).Kind())
	assert.Equal(kind.OperationDefinition, root.CoveringElement(0, 11).Kind())
	assert.Equal(kind.KwQuery, root.CoveringElement(2, 2).Kind())
	assert.Nil(root.CoveringElement(3, 20))
}

func TestPreorder(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root := syntax.NewRoot(buildQuery(), nil)

	var enters, leaves int
	for e := range root.Preorder() {
		if e.Leave {
			leaves++
			_, ok := e.Element.(*syntax.Node)
			assert.True(ok)
		} else {
			enters++
		}
	}
	assert.Equal(13, enters)
	assert.Equal(6, leaves)

	var descendants []kind.Kind
	for n := range root.Descendants() {
		descendants = append(descendants, n.Kind())
	}
	assert.Equal([]kind.Kind{
		kind.Document, kind.OperationDefinition, kind.OperationType,
		kind.SelectionSet, kind.Field, kind.Name,
	}, descendants)

	// Early exit.
	for n := range root.Descendants() {
		assert.Equal(kind.Document, n.Kind())
		break
	}
}

func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
