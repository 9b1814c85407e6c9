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

// Package parser implements a lossless, error-tolerant parser for GraphQL
// documents.
//
// The parser accepts both executable documents and the schema definition
// language, following the October 2021 edition of the GraphQL specification.
// It never fails: every call produces a syntax tree containing every byte of
// the input, plus a list of diagnostics describing whatever was wrong with it.
//
// The grammar is implemented as a recursive-descent parser over the token
// stream produced by the lexer, with one function per grammar production.
// Productions build the tree through a small set of primitives on the parser
// state (peek, bump, startNode and pushErr), which handle trivia and error
// recording for them.
package parser
