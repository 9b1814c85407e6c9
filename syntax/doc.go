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

// Package syntax provides the navigable "red" view of a GraphQL concrete
// syntax tree.
//
// A red [Node] or [Token] pairs a green element with its absolute offset and
// its parent. Red elements are created on demand as the tree is navigated and
// are never stored; two red values for the same position compare unequal as
// pointers, so use [Node.Green] and [Node.Offset] to test identity.
package syntax
