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

// Package green provides the immutable, position-independent layer of the
// syntax tree.
//
// Green elements record only their kind, their width in bytes, and their
// children. Because they carry no absolute offsets or parent pointers,
// identical subtrees may be shared, both within one tree and between trees
// built with the same [Cache]. Navigation with absolute positions is provided
// by package syntax, which wraps a green tree on demand.
package green

import (
	"iter"
	"strings"

	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// Element is either a [*Node] or a [*Token].
type Element interface {
	// Kind returns this element's kind.
	Kind() kind.Kind
	// Width returns this element's length in bytes.
	Width() int
	// Text returns this element's source text.
	Text() string

	hash() uint64
	writeTo(*strings.Builder)
}

// Token is a leaf of a green tree.
type Token struct {
	kind kind.Kind
	text string
	h    uint64
}

// Node is an interior element of a green tree.
type Node struct {
	kind     kind.Kind
	width    int
	children []Element
	h        uint64
}

var (
	_ Element = (*Token)(nil)
	_ Element = (*Node)(nil)
)

// Kind implements [Element].
func (t *Token) Kind() kind.Kind { return t.kind }

// Width implements [Element].
func (t *Token) Width() int { return len(t.text) }

// Text implements [Element].
func (t *Token) Text() string { return t.text }

func (t *Token) hash() uint64                 { return t.h }
func (t *Token) writeTo(out *strings.Builder) { out.WriteString(t.text) }

// Kind implements [Element].
func (n *Node) Kind() kind.Kind { return n.kind }

// Width implements [Element].
func (n *Node) Width() int { return n.width }

// Text implements [Element]. It reconstructs the text by concatenating every
// token in the subtree.
func (n *Node) Text() string {
	var out strings.Builder
	out.Grow(n.width)
	n.writeTo(&out)
	return out.String()
}

func (n *Node) hash() uint64 { return n.h }
func (n *Node) writeTo(out *strings.Builder) {
	for _, child := range n.children {
		child.writeTo(out)
	}
}

// Len returns the number of children of this node.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the ith child of this node.
func (n *Node) Child(i int) Element {
	return n.children[i]
}

// Children returns an iterator over this node's children and their indices.
func (n *Node) Children() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, child := range n.children {
			if !yield(i, child) {
				return
			}
		}
	}
}
