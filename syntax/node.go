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

package syntax

import (
	"iter"

	"github.com/bufbuild/gqlsyntax/source"
	"github.com/bufbuild/gqlsyntax/syntax/green"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// Element is either a [*Node] or a [*Token].
type Element interface {
	source.Spanner

	Kind() kind.Kind
	Offset() int
	Width() int
	Text() string
	Parent() *Node
	Index() int

	greenElement() green.Element
}

// Node is an interior node of a syntax tree, with a position.
type Node struct {
	g      *green.Node
	parent *Node
	file   *source.File
	index  int
	offset int
}

var (
	_ Element = (*Node)(nil)
	_ Element = (*Token)(nil)
)

// NewRoot wraps a green tree's root. file may be nil; if it is not, its text
// must be the text of the tree.
func NewRoot(g *green.Node, file *source.File) *Node {
	return &Node{g: g, file: file}
}

// Green returns the underlying green node.
func (n *Node) Green() *green.Node { return n.g }
func (n *Node) greenElement() green.Element { return n.g }

// Kind returns this node's kind.
func (n *Node) Kind() kind.Kind { return n.g.Kind() }

// Offset returns the byte offset this node starts at.
func (n *Node) Offset() int { return n.offset }

// Width returns this node's length in bytes.
func (n *Node) Width() int { return n.g.Width() }

// End returns the byte offset just past the end of this node.
func (n *Node) End() int { return n.offset + n.g.Width() }

// Parent returns this node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Index returns this node's index within its parent's children.
func (n *Node) Index() int { return n.index }

// File returns the file this tree was built from, if known.
func (n *Node) File() *source.File { return n.file }

// Span implements [source.Spanner].
//
// Returns the zero span if this tree has no file.
func (n *Node) Span() source.Span {
	return n.file.Span(n.offset, n.End())
}

// Text returns this node's source text.
func (n *Node) Text() string {
	if n.file != nil {
		return n.file.Text()[n.offset:n.End()]
	}
	return n.g.Text()
}

// Ancestors returns an iterator over this node's ancestors, starting with its
// parent.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of children of this node.
func (n *Node) Len() int { return n.g.Len() }

// Child returns this node's ith child.
func (n *Node) Child(i int) Element {
	offset := n.offset
	for j := range i {
		offset += n.g.Child(j).Width()
	}
	return n.wrap(i, offset)
}

// Children returns an iterator over this node's children.
func (n *Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		offset := n.offset
		for i, child := range n.g.Children() {
			if !yield(n.wrap(i, offset)) {
				return
			}
			offset += child.Width()
		}
	}
}

// ChildNodes returns an iterator over this node's children which are nodes.
func (n *Node) ChildNodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for child := range n.Children() {
			if child, ok := child.(*Node); ok && !yield(child) {
				return
			}
		}
	}
}

// ChildTokens returns an iterator over this node's children which are tokens.
func (n *Node) ChildTokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for child := range n.Children() {
			if child, ok := child.(*Token); ok && !yield(child) {
				return
			}
		}
	}
}

// FirstChild returns this node's first child, or nil.
func (n *Node) FirstChild() Element {
	if n.Len() == 0 {
		return nil
	}
	return n.wrap(0, n.offset)
}

// LastChild returns this node's last child, or nil.
func (n *Node) LastChild() Element {
	last := n.Len() - 1
	if last < 0 {
		return nil
	}
	return n.wrap(last, n.End()-n.g.Child(last).Width())
}

// NextSibling returns the element after this one in its parent, or nil.
func (n *Node) NextSibling() Element { return nextSibling(n) }

// PrevSibling returns the element before this one in its parent, or nil.
func (n *Node) PrevSibling() Element { return prevSibling(n) }

// ChildOfKind returns the first child node of the given kind, or nil.
func (n *Node) ChildOfKind(k kind.Kind) *Node {
	for child := range n.ChildrenOfKind(k) {
		return child
	}
	return nil
}

// ChildrenOfKind returns an iterator over the child nodes of the given kind.
func (n *Node) ChildrenOfKind(k kind.Kind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for child := range n.ChildNodes() {
			if child.Kind() == k && !yield(child) {
				return
			}
		}
	}
}

// TokenOfKind returns the first child token of the given kind, or nil.
func (n *Node) TokenOfKind(k kind.Kind) *Token {
	for tok := range n.ChildTokens() {
		if tok.Kind() == k {
			return tok
		}
	}
	return nil
}

// Descendants returns an iterator over every node in this subtree, in
// preorder, starting with n itself.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for e := range n.Preorder() {
			if node, ok := e.Element.(*Node); ok && !e.Leave && !yield(node) {
				return
			}
		}
	}
}

// Tokens returns an iterator over every token in this subtree, in order.
//
// Concatenating their text reproduces [Node.Text].
func (n *Node) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for e := range n.Preorder() {
			if tok, ok := e.Element.(*Token); ok && !e.Leave && !yield(tok) {
				return
			}
		}
	}
}

// TokenAtOffset returns the token containing the given byte offset.
//
// An offset equal to [Node.End] selects the last token. Returns nil if offset
// is outside of this node or the node contains no tokens.
func (n *Node) TokenAtOffset(offset int) *Token {
	if offset < n.offset || offset > n.End() {
		return nil
	}

	var last *Token
	for child := range n.Children() {
		switch child := child.(type) {
		case *Token:
			if offset < child.End() {
				return child
			}
			last = child
		case *Node:
			if child.Width() == 0 {
				continue
			}
			if offset < child.End() {
				return child.TokenAtOffset(offset)
			}
			last = child.lastToken()
		}
	}
	return last
}

// CoveringElement returns the smallest element that contains the byte range
// [start, end). A zero-width range selects the element its offset falls in.
//
// Returns nil if the range is not within this node.
func (n *Node) CoveringElement(start, end int) Element {
	if start > end || start < n.offset || end > n.End() {
		return nil
	}

	var cur Element = n
	for {
		node, ok := cur.(*Node)
		if !ok {
			return cur
		}

		var next Element
		for child := range node.Children() {
			cs, ce := child.Offset(), child.Offset()+child.Width()
			if cs <= start && end <= ce && (start < ce || start == end && cs == ce) {
				next = child
				break
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// wrap builds the red element for the ith child, which starts at offset.
func (n *Node) wrap(i, offset int) Element {
	switch g := n.g.Child(i).(type) {
	case *green.Node:
		return &Node{g: g, parent: n, file: n.file, index: i, offset: offset}
	case *green.Token:
		return &Token{g: g, parent: n, index: i, offset: offset}
	default:
		panic("gqlsyntax/syntax: unknown green element")
	}
}

// firstToken returns the first token in this subtree, or nil.
func (n *Node) firstToken() *Token {
	for tok := range n.Tokens() {
		return tok
	}
	return nil
}

// lastToken returns the last token in this subtree, or nil.
func (n *Node) lastToken() *Token {
	for i := n.Len() - 1; i >= 0; i-- {
		switch child := n.Child(i).(type) {
		case *Token:
			return child
		case *Node:
			if tok := child.lastToken(); tok != nil {
				return tok
			}
		}
	}
	return nil
}

func nextSibling(e Element) Element {
	p := e.Parent()
	if p == nil || e.Index()+1 >= p.Len() {
		return nil
	}
	return p.wrap(e.Index()+1, e.Offset()+e.Width())
}

func prevSibling(e Element) Element {
	p := e.Parent()
	if p == nil || e.Index() == 0 {
		return nil
	}
	prev := e.Index() - 1
	return p.wrap(prev, e.Offset()-p.g.Child(prev).Width())
}
