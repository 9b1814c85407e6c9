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
	"fmt"

	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// Checkpoint is a position in a [Builder]'s event log, used for retroactively
// wrapping already-built content in a new node with [Builder.StartAt].
type Checkpoint int

// Builder constructs a green tree from a stream of events.
//
// Events are recorded in an append-only log, and replayed into a tree by
// [Builder.Build]. The zero value is ready to use.
type Builder struct {
	Cache *Cache // If nil, a fresh cache is used by Build.

	events []event
	depth  int
}

type op int8

const (
	opStart op = iota
	opStartAt
	opToken
	opFinish
)

type event struct {
	op   op
	kind kind.Kind
	text string
	at   Checkpoint // For opStartAt.
}

// Start opens a new node of the given kind.
func (b *Builder) Start(k kind.Kind) {
	b.events = append(b.events, event{op: opStart, kind: k})
	b.depth++
}

// StartAt opens a new node of the given kind whose first child is whatever
// was recorded just after cp.
//
// cp must have been taken while the currently open node was open, and at the
// same depth as now.
func (b *Builder) StartAt(cp Checkpoint, k kind.Kind) {
	if cp < 0 || int(cp) > len(b.events) {
		panic(fmt.Sprintf("gqlsyntax/green: checkpoint %d out of range", cp))
	}
	b.events = append(b.events, event{op: opStartAt, kind: k, at: cp})
	b.depth++
}

// Token appends a token to the currently open node.
func (b *Builder) Token(k kind.Kind, text string) {
	b.events = append(b.events, event{op: opToken, kind: k, text: text})
}

// Finish closes the currently open node.
func (b *Builder) Finish() {
	if b.depth == 0 {
		panic("gqlsyntax/green: called Finish with no open node")
	}
	b.events = append(b.events, event{op: opFinish})
	b.depth--
}

// Checkpoint returns the current position in the event log.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.events))
}

// Depth returns the number of currently open nodes.
func (b *Builder) Depth() int {
	return b.depth
}

// Build replays the event log and returns the finished tree.
//
// Every opened node must have been finished, and the log must describe
// exactly one root node; Build panics otherwise.
func (b *Builder) Build() *Node {
	if b.depth != 0 {
		panic(fmt.Sprintf("gqlsyntax/green: called Build with %d unfinished nodes", b.depth))
	}

	cache := b.Cache
	if cache == nil {
		cache = NewCache()
	}

	type parent struct {
		kind  kind.Kind
		first int
	}
	var (
		parents  []parent
		children []Element
		// The length of children just before each event. Used for resolving
		// checkpoints.
		marks = make([]int, len(b.events)+1)
	)

	for i, e := range b.events {
		marks[i] = len(children)

		switch e.op {
		case opStart:
			parents = append(parents, parent{kind: e.kind, first: len(children)})

		case opStartAt:
			first := marks[e.at]
			if first > len(children) || len(parents) > 0 && first < parents[len(parents)-1].first {
				panic(fmt.Sprintf("gqlsyntax/green: checkpoint %d is not in the current node", e.at))
			}
			parents = append(parents, parent{kind: e.kind, first: first})

		case opToken:
			children = append(children, cache.Token(e.kind, e.text))

		case opFinish:
			top := parents[len(parents)-1]
			parents = parents[:len(parents)-1]

			node := cache.Node(top.kind, children[top.first:])
			children = append(children[:top.first], node)
		}
	}

	if len(children) != 1 {
		panic(fmt.Sprintf("gqlsyntax/green: event log produced %d roots", len(children)))
	}
	root, ok := children[0].(*Node)
	if !ok {
		panic("gqlsyntax/green: event log produced a bare token")
	}
	return root
}
