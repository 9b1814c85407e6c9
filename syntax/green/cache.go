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

package green

import (
	"encoding/binary"
	"slices"

	"github.com/zeebo/xxh3"

	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// maxCachedChildren is the largest number of children a node may have and
// still be deduplicated by a [Cache]. Larger nodes are rarely repeated, and
// hashing them is not worth it.
const maxCachedChildren = 3

// Cache interns green elements, so that structurally identical tokens and
// small nodes are represented by the same pointer.
//
// A Cache is not safe for concurrent use. The zero value is ready to use.
type Cache struct {
	tokens map[uint64][]*Token
	nodes  map[uint64][]*Node

	hits, misses int
}

// NewCache returns a new, empty cache.
func NewCache() *Cache {
	return new(Cache)
}

// Stats returns how many elements this cache has served from its tables, and
// how many it had to create.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Token returns a token with the given kind and text, reusing an existing one
// if possible.
func (c *Cache) Token(k kind.Kind, text string) *Token {
	h := xxh3.HashSeed([]byte(text), uint64(k))
	for _, tok := range c.tokens[h] {
		if tok.kind == k && tok.text == text {
			c.hits++
			return tok
		}
	}

	c.misses++
	tok := &Token{kind: k, text: text, h: h}
	if c.tokens == nil {
		c.tokens = make(map[uint64][]*Token)
	}
	c.tokens[h] = append(c.tokens[h], tok)
	return tok
}

// Node returns a node with the given kind and children, reusing an existing
// one if possible.
//
// children is copied if a new node is created.
func (c *Cache) Node(k kind.Kind, children []Element) *Node {
	h := hashNode(k, children)
	if len(children) <= maxCachedChildren {
		for _, node := range c.nodes[h] {
			if node.kind == k && slices.Equal(node.children, children) {
				c.hits++
				return node
			}
		}
	}

	c.misses++
	node := &Node{kind: k, children: slices.Clone(children), h: h}
	for _, child := range children {
		node.width += child.Width()
	}
	if len(children) <= maxCachedChildren {
		if c.nodes == nil {
			c.nodes = make(map[uint64][]*Node)
		}
		c.nodes[h] = append(c.nodes[h], node)
	}
	return node
}

// hashNode computes the structural hash of a node from its kind and the
// hashes of its children.
func hashNode(k kind.Kind, children []Element) uint64 {
	buf := make([]byte, 2, 2+8*len(children))
	binary.LittleEndian.PutUint16(buf, uint16(k))
	for _, child := range children {
		buf = binary.LittleEndian.AppendUint64(buf, child.hash())
	}
	return xxh3.Hash(buf)
}
