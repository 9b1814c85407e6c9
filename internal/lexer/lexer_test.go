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

package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/gqlsyntax/internal/lexer"
	"github.com/bufbuild/gqlsyntax/syntax/kind"
)

// summarize renders tokens as KIND:"text" strings, with a !problem suffix.
func summarize(text string, tokens []lexer.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		s := fmt.Sprintf("%v:%q", tok.Kind, tok.Text(text))
		if tok.Problem != lexer.NoProblem {
			s += "!" + tok.Problem.String()
		}
		out = append(out, s)
	}
	return out
}

func TestLex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		want       []string
	}{
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "query",
			text: "query { a, b }",
			want: []string{
				`query_KW:"query"`, `WHITESPACE:" "`, `L_CURLY:"{"`, `WHITESPACE:" "`,
				`IDENT:"a"`, `COMMA:","`, `WHITESPACE:" "`, `IDENT:"b"`, `WHITESPACE:" "`, `R_CURLY:"}"`,
			},
		},
		{
			name: "punct",
			text: "!$&()...:=@[]{|}",
			want: []string{
				`BANG:"!"`, `DOLLAR:"$"`, `AMP:"&"`, `L_PAREN:"("`, `R_PAREN:")"`, `SPREAD:"..."`,
				`COLON:":"`, `EQ:"="`, `AT:"@"`, `L_BRACK:"["`, `R_BRACK:"]"`, `L_CURLY:"{"`,
				`PIPE:"|"`, `R_CURLY:"}"`,
			},
		},
		{
			name: "keywords",
			text: "on FIELD queryx Query _x9",
			want: []string{
				`on_KW:"on"`, `WHITESPACE:" "`, `FIELD_KW:"FIELD"`, `WHITESPACE:" "`,
				`IDENT:"queryx"`, `WHITESPACE:" "`, `IDENT:"Query"`, `WHITESPACE:" "`, `IDENT:"_x9"`,
			},
		},
		{
			name: "comments",
			text: "# hi\r\n\ufeffa#x",
			want: []string{
				`COMMENT:"# hi"`, `WHITESPACE:"\r\n\ufeff"`, `IDENT:"a"`, `COMMENT:"#x"`,
			},
		},
		{
			name: "numbers",
			text: "0 -12 1.5 2e10 3.1E-2 -0.0",
			want: []string{
				`INT:"0"`, `WHITESPACE:" "`, `INT:"-12"`, `WHITESPACE:" "`, `FLOAT:"1.5"`,
				`WHITESPACE:" "`, `FLOAT:"2e10"`, `WHITESPACE:" "`, `FLOAT:"3.1E-2"`,
				`WHITESPACE:" "`, `FLOAT:"-0.0"`,
			},
		},
		{
			name: "bad numbers",
			text: "007 1. 2e 0x1F 1.2.3",
			want: []string{
				`INT:"007"!invalid number literal`, `WHITESPACE:" "`,
				`INT:"1."!invalid number literal`, `WHITESPACE:" "`,
				`FLOAT:"2e"!invalid number literal`, `WHITESPACE:" "`,
				`INT:"0x1F"!invalid number literal`, `WHITESPACE:" "`,
				`FLOAT:"1.2.3"!invalid number literal`,
			},
		},
		{
			name: "strings",
			text: `"a\"b" "\u00e9\u{1F600}" """x\"""y"""`,
			want: []string{
				`STRING:"\"a\\\"b\""`, `WHITESPACE:" "`,
				`STRING:"\"\\u00e9\\u{1F600}\""`, `WHITESPACE:" "`,
				`STRING:"\"\"\"x\\\"\"\"y\"\"\""`,
			},
		},
		{
			name: "bad strings",
			text: "\"\\q\" \"abc\n\"\"\"open",
			want: []string{
				`STRING:"\"\\q\""!invalid escape sequence in string literal`, `WHITESPACE:" "`,
				`STRING:"\"abc"!unterminated string literal`, `WHITESPACE:"\n"`,
				`STRING:"\"\"\"open"!unterminated block string literal`,
			},
		},
		{
			name: "bad unicode escapes",
			text: `"\u12" "\u{}" "\u{110000}"`,
			want: []string{
				`STRING:"\"\\u12\""!invalid escape sequence in string literal`, `WHITESPACE:" "`,
				`STRING:"\"\\u{}\""!invalid escape sequence in string literal`, `WHITESPACE:" "`,
				`STRING:"\"\\u{110000}\""!invalid escape sequence in string literal`,
			},
		},
		{
			name: "unknown",
			text: "a .. ~%é- b \xff",
			want: []string{
				`IDENT:"a"`, `WHITESPACE:" "`, `UNKNOWN:".."!unrecognized token`, `WHITESPACE:" "`,
				`UNKNOWN:"~%é-"!unrecognized token`, `WHITESPACE:" "`, `IDENT:"b"`, `WHITESPACE:" "`,
				`UNKNOWN:"\xff"!unrecognized token`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := lexer.Lex(tt.text, 0)
			assert.False(t, result.Truncated)
			assert.Equal(t, tt.want, summarize(tt.text, result.Tokens))
		})
	}
}

func TestCoverage(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"query Q($a: [Int!]! = [1, 2]) @d { f(x: {y: \"z\"}) ...F ... on T { g } }",
		"\"\"\"unterminated",
		"\"line\r",
		"\\\x00\x80\"\\",
		"-",
		"1e+",
		strings.Repeat("{", 100),
	}

	for _, text := range inputs {
		result := lexer.Lex(text, 0)
		var offset int
		for _, tok := range result.Tokens {
			assert.Equal(t, offset, tok.Start, "%q", text)
			assert.Positive(t, tok.Len(), "%q", text)
			offset = tok.End
		}
		assert.Equal(t, len(text), offset, "%q", text)
	}
}

func TestLimit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text := "a b ~ c d"
	result := lexer.Lex(text, 3)
	assert.True(result.Truncated)
	assert.Equal([]string{`IDENT:"a"`, `WHITESPACE:" "`, `IDENT:"b"`, `UNKNOWN:" ~ c d"`},
		summarize(text, result.Tokens))

	// Text past the limit is never classified.
	text = "a~~b"
	result = lexer.Lex(text, 1)
	assert.True(result.Truncated)
	assert.Equal([]string{`IDENT:"a"`, `UNKNOWN:"~~b"`}, summarize(text, result.Tokens))

	// An unrecognized run still being accumulated counts towards the limit.
	text = "%%{ a"
	result = lexer.Lex(text, 1)
	assert.True(result.Truncated)
	assert.Equal([]string{`UNKNOWN:"%"!unrecognized token`, `UNKNOWN:"%{ a"`},
		summarize(text, result.Tokens))

	result = lexer.Lex(text, 2)
	assert.True(result.Truncated)
	assert.Equal([]string{`UNKNOWN:"%%"!unrecognized token`, `L_CURLY:"{"`, `UNKNOWN:" a"`},
		summarize(text, result.Tokens))

	result = lexer.Lex("a b", 3)
	assert.False(result.Truncated)
	assert.Len(result.Tokens, 3)
}

func TestKinds(t *testing.T) {
	t.Parallel()

	for _, tok := range lexer.Lex("query { a }", 0).Tokens {
		assert.True(t, tok.Kind.IsToken(), "%v", tok.Kind)
		assert.NotEqual(t, kind.EOF, tok.Kind)
	}
}
