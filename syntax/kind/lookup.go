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

package kind

import (
	"fmt"
	"iter"
)

var (
	keywords  = make(map[string]Kind)
	locations = make(map[string]Kind)
	puncts    = make(map[string]Kind)
)

func init() {
	for k := range All() {
		switch p := k.properties(); {
		case p&location != 0:
			locations[k.Text()] = k
			keywords[k.Text()] = k
		case p&keyword != 0:
			keywords[k.Text()] = k
		case p&punct != 0:
			puncts[k.Text()] = k
		}
	}
}

// All returns an iterator over every valid kind, in ascending order.
func All() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := EOF + 1; int(k) < total; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// Lookup looks up the keyword kind for a name.
//
// The match is exact and case-sensitive. Returns [Ident] if text is not a
// keyword.
func Lookup(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}

// FromChar returns the kind of single-character punctuation.
func FromChar(c rune) (Kind, bool) {
	if c >= 0x80 {
		return Tombstone, false
	}
	k, ok := puncts[string(c)]
	return k, ok
}

// FromPunct returns the kind of a punctuation token, including the
// three-character spread.
func FromPunct(text string) (Kind, bool) {
	k, ok := puncts[text]
	return k, ok
}

// Location resolves a directive location name, such as "FIELD", to its
// keyword kind.
func Location(name string) (Kind, bool) {
	k, ok := locations[name]
	return k, ok
}

// T returns the kind of the keyword or punctuation with the given text.
//
// This is intended for referring to a kind by its spelling, e.g. T("{") or
// T("query"), and panics if text is neither.
func T(text string) Kind {
	if k, ok := puncts[text]; ok {
		return k
	}
	if k, ok := keywords[text]; ok {
		return k
	}
	panic(fmt.Sprintf("gqlsyntax/kind: no keyword or punctuation spelled %q", text))
}
