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

package green_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/gqlsyntax/syntax/green"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var b green.Builder
	b.Start(kind.Document)
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
	assert.Zero(b.Depth())

	root := b.Build()
	assert.Equal(kind.Document, root.Kind())
	assert.Equal(5, root.Width())
	assert.Equal("{ a }", root.Text())
	require.Equal(t, 1, root.Len())

	set, ok := root.Child(0).(*green.Node)
	require.True(t, ok)
	assert.Equal(kind.SelectionSet, set.Kind())
	assert.Equal(5, set.Len())

	var sum int
	for _, child := range set.Children() {
		sum += child.Width()
	}
	assert.Equal(set.Width(), sum)
}

func TestStartAt(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// [Int]! built by wrapping the list type after the fact.
	var b green.Builder
	b.Start(kind.Document)
	cp := b.Checkpoint()
	b.Start(kind.ListType)
	b.Token(kind.LBrack, "[")
	b.Start(kind.NamedType)
	b.Token(kind.Ident, "Int")
	b.Finish()
	b.Token(kind.RBrack, "]")
	b.Finish()
	b.StartAt(cp, kind.NonNullType)
	b.Token(kind.Bang, "!")
	b.Finish()
	b.Finish()

	root := b.Build()
	assert.Equal("[Int]!", root.Text())
	require.Equal(t, 1, root.Len())

	nonNull := root.Child(0).(*green.Node) //nolint:errcheck
	assert.Equal(kind.NonNullType, nonNull.Kind())
	assert.Equal(2, nonNull.Len())
	assert.Equal(kind.ListType, nonNull.Child(0).Kind())
	assert.Equal(kind.Bang, nonNull.Child(1).Kind())
}

func TestSharing(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cache := green.NewCache()
	b := green.Builder{Cache: cache}
	b.Start(kind.Document)
	for range 2 {
		b.Start(kind.Name)
		b.Token(kind.Ident, "x")
		b.Finish()
	}
	b.Finish()

	root := b.Build()
	assert.Same(root.Child(0), root.Child(1))

	first := root.Child(0).(*green.Node) //nolint:errcheck
	assert.Same(first.Child(0), cache.Token(kind.Ident, "x"))
	assert.NotSame(first.Child(0), cache.Token(kind.Ident, "y"))
	assert.NotSame(first.Child(0), cache.Token(kind.KwQuery, "x"))

	hits, misses := cache.Stats()
	assert.Equal(3, hits)
	assert.Equal(5, misses)
}

func TestEmptyNode(t *testing.T) {
	t.Parallel()

	var b green.Builder
	b.Start(kind.Document)
	b.Start(kind.Name)
	b.Finish()
	b.Finish()

	root := b.Build()
	assert.Zero(t, root.Width())
	assert.Empty(t, root.Text())
	assert.Equal(t, kind.Name, root.Child(0).Kind())
}

func TestUnbalanced(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Panics(func() {
		var b green.Builder
		b.Finish()
	})
	assert.Panics(func() {
		var b green.Builder
		b.Start(kind.Document)
		b.Build()
	})
	assert.Panics(func() {
		var b green.Builder
		b.Start(kind.Document)
		b.Finish()
		b.Start(kind.Document)
		b.Finish()
		b.Build()
	})
	assert.Panics(func() {
		var b green.Builder
		b.StartAt(5, kind.Document)
	})
}
