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
	"fmt"
	"iter"
	"strings"
)

// Event is an event in a preorder walk of a tree.
type Event struct {
	Element Element

	// Set when leaving a node; every node produces an enter event followed,
	// after all of its descendants, by a leave event. Tokens produce only an
	// enter event.
	Leave bool
}

// Preorder returns an iterator over the enter and leave events of every
// element in this subtree.
func (n *Node) Preorder() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(Event) bool) bool {
	if !yield(Event{Element: n}) {
		return false
	}
	for child := range n.Children() {
		switch child := child.(type) {
		case *Node:
			if !child.preorder(yield) {
				return false
			}
		case *Token:
			if !yield(Event{Element: child}) {
				return false
			}
		}
	}
	return yield(Event{Element: n, Leave: true})
}

// Debug renders a subtree as an indented outline, one element per line:
//
//	- DOCUMENT@0..9
//	    - OPERATION_DEFINITION@0..9
//	        - SELECTION_SET@0..9
//	            - L_CURLY@0..1 "{"
//
// The output is deterministic, and ends in a newline.
func Debug(n *Node) string {
	var out strings.Builder
	depth := 0
	for e := range n.Preorder() {
		if e.Leave {
			depth--
			continue
		}

		out.WriteString(strings.Repeat("    ", depth))
		start := e.Element.Offset()
		fmt.Fprintf(&out, "- %v@%d..%d", e.Element.Kind(), start, start+e.Element.Width())
		if tok, ok := e.Element.(*Token); ok {
			fmt.Fprintf(&out, " %q", tok.Text())
		} else {
			depth++
		}
		out.WriteByte('\n')
	}
	return out.String()
}
