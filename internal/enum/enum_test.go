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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeDocs(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Empty(makeDocs("", "\t"))
	assert.Equal("\t// A kind.\n\t//\n\t// More.\n", makeDocs("A kind.\n\nMore.\n", "\t"))
}

func TestMethod(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	name, err := Method{Kind: MethodString}.Name()
	require.NoError(t, err)
	assert.Equal("String", name)
	assert.Equal("String implements [fmt.Stringer].", Method{Kind: MethodString}.Docs())

	name, err = Method{Kind: MethodGoString}.Name()
	require.NoError(t, err)
	assert.Equal("GoString", name)

	_, err = Method{Kind: MethodFromString}.Name()
	assert.Error(err)
	name, err = Method{Kind: MethodFromString, Name_: "FromString"}.Name()
	require.NoError(t, err)
	assert.Equal("FromString", name)

	assert.Equal("X", Value{Name: "X"}.String())
	assert.Equal("x_KW", Value{Name: "X", String_: "x_KW"}.String())
}

func TestLeadingComments(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "doc.go")
	require.NoError(t, os.WriteFile(path, []byte("// Header.\n//\n// More.\n\npackage x\n"), 0o644))

	header, err := leadingComments(path)
	require.NoError(t, err)
	assert.Equal("// Header.\n//\n// More.\n\n", header)

	header, err = leadingComments("")
	require.NoError(t, err)
	assert.Empty(header)
}
