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
	"github.com/bufbuild/gqlsyntax/source"
	"github.com/bufbuild/gqlsyntax/syntax/green"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// Token is a leaf of a syntax tree, with a position.
type Token struct {
	g      *green.Token
	parent *Node
	index  int
	offset int
}

// Green returns the underlying green token.
func (t *Token) Green() *green.Token         { return t.g }
func (t *Token) greenElement() green.Element { return t.g }

// Kind returns this token's kind.
func (t *Token) Kind() kind.Kind { return t.g.Kind() }

// Text returns this token's text.
func (t *Token) Text() string { return t.g.Text() }

// Offset returns the byte offset this token starts at.
func (t *Token) Offset() int { return t.offset }

// Width returns this token's length in bytes.
func (t *Token) Width() int { return t.g.Width() }

// End returns the byte offset just past the end of this token.
func (t *Token) End() int { return t.offset + t.g.Width() }

// Parent returns the node containing this token.
func (t *Token) Parent() *Node { return t.parent }

// Index returns this token's index within its parent's children.
func (t *Token) Index() int { return t.index }

// Span implements [source.Spanner].
//
// Returns the zero span if this tree has no file.
func (t *Token) Span() source.Span {
	return t.parent.file.Span(t.offset, t.End())
}

// NextSibling returns the element after this one in its parent, or nil.
func (t *Token) NextSibling() Element { return nextSibling(t) }

// PrevSibling returns the element before this one in its parent, or nil.
func (t *Token) PrevSibling() Element { return prevSibling(t) }

// NextToken returns the token after this one in the whole tree, or nil.
func (t *Token) NextToken() *Token {
	var e Element = t
	for e.Parent() != nil {
		for next := nextSibling(e); next != nil; next = nextSibling(next) {
			switch next := next.(type) {
			case *Token:
				return next
			case *Node:
				if tok := next.firstToken(); tok != nil {
					return tok
				}
			}
		}
		e = e.Parent()
	}
	return nil
}

// PrevToken returns the token before this one in the whole tree, or nil.
func (t *Token) PrevToken() *Token {
	var e Element = t
	for e.Parent() != nil {
		for prev := prevSibling(e); prev != nil; prev = prevSibling(prev) {
			switch prev := prev.(type) {
			case *Token:
				return prev
			case *Node:
				if tok := prev.lastToken(); tok != nil {
					return tok
				}
			}
		}
		e = e.Parent()
	}
	return nil
}
