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

// Package kind provides [Kind], the closed vocabulary of token and node
// kinds that appear in a GraphQL syntax tree.
//
// The set of kinds is generated from kind.yaml. This package adds the
// classification predicates and the lookup tables derived from it: keyword
// text to kind, punctuation to kind, and directive location names to their
// keyword kinds. All tables are built once at package initialization and are
// read-only afterwards, so they may be used from any number of goroutines.
package kind

//go:generate go run github.com/bufbuild/gqlsyntax/internal/enum kind.yaml
