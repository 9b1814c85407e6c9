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

package parser

import "github.com/bufbuild/gqlsyntax/report"

// Diagnostic tags produced by the parser. See [report.Tag].
const (
	// A token did not match what the grammar required at that point.
	TagUnexpectedToken report.Tag = "unexpected-token"
	// A construct that requires at least one of several optional clauses had
	// none of them.
	TagMissingClause report.Tag = "missing-clause"
	// A directive definition named a location that does not exist.
	TagUnknownDirectiveLocation report.Tag = "unknown-directive-location"
	// A variable was used where only constant values are allowed.
	TagInvalidConst report.Tag = "invalid-const"
	// A token was malformed, such as an unterminated string.
	TagLexical report.Tag = "lexical"
	// The input was nested more deeply than [Parser.RecursionLimit] allows.
	TagRecursionLimit report.Tag = "recursion-limit"
	// The input had more tokens than [Parser.TokenLimit] allows.
	TagTokenLimit report.Tag = "token-limit"
)
