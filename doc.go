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

// Package gqlsyntax is a lossless, error-tolerant parser for GraphQL.
//
// The parser itself lives in package [github.com/bufbuild/gqlsyntax/parser],
// and produces trees described by package
// [github.com/bufbuild/gqlsyntax/syntax]. Every tree contains every byte of
// its input, including whitespace, commas and comments, so the input can
// always be reconstructed from the tree; syntax errors are reported as
// diagnostics through package [github.com/bufbuild/gqlsyntax/report] rather
// than by failing the parse.
//
// The packages are layered as follows:
//
//   - source: files, byte offsets and line/column information.
//   - report: diagnostics and their rendering.
//   - syntax/kind: the closed vocabulary of token and node kinds.
//   - syntax/green: immutable, position-independent trees that may share
//     structure.
//   - syntax: views over green trees with absolute positions and parent
//     links.
//   - parser: the GraphQL grammar, as of the October 2021 specification.
//
// The gqlcst command in cmd/gqlcst prints the trees of GraphQL files.
package gqlsyntax
