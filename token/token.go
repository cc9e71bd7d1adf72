// Copyright 2023-2026 The Flint Authors
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

// Package token defines the token stream representation that the lexer
// produces and the parser and formatter consume.
//
// Unlike most compilers, Flint's stream retains every byte of the input:
// whitespace and comments are tokens too. This is what makes a formatter
// possible; trivia that a parser would throw away is still addressable by
// position after parsing is done.
package token

import (
	"fmt"
	"strings"

	"github.com/flintlang/flint/internal/ext/stringsx"
)

// Zero is the zero [Token], which represents no token at all.
var Zero Token

// Token is a handle to a token within a [Stream].
//
// Tokens are small values and should be passed by value. The zero value is
// [Zero]; almost every method on it returns a zero or empty result.
type Token struct {
	stream *Stream
	index  int32
}

// IsZero reports whether this is the zero token.
func (t Token) IsZero() bool {
	return t.stream == nil
}

// Stream returns the stream this token belongs to, or nil for [Zero].
func (t Token) Stream() *Stream {
	return t.stream
}

// Index returns this token's position in its stream.
func (t Token) Index() int {
	return int(t.index)
}

// Kind returns this token's kind. Returns [Unrecognized] for [Zero].
func (t Token) Kind() Kind {
	if t.IsZero() {
		return Unrecognized
	}
	return t.stream.kinds[t.index]
}

// Text returns this token's source text.
func (t Token) Text() string {
	if t.IsZero() {
		return ""
	}
	start, end := t.offsets()
	return t.stream.text[start:end]
}

// Span returns this token's span in its source file.
func (t Token) Span() Span {
	if t.IsZero() {
		return Span{}
	}
	start, end := t.offsets()
	return t.stream.Span(start, end)
}

// Prev returns the token immediately before this one in the stream,
// regardless of kind, or [Zero] at the start of the stream.
func (t Token) Prev() Token {
	if t.IsZero() {
		return Zero
	}
	return t.stream.Token(int(t.index) - 1)
}

// Next returns the token immediately after this one in the stream,
// regardless of kind, or [Zero] at the end of the stream.
func (t Token) Next() Token {
	if t.IsZero() {
		return Zero
	}
	return t.stream.Token(int(t.index) + 1)
}

// Newlines returns the number of line breaks within this token.
//
// Only [Space] and block [Comment] tokens can contain line breaks.
func (t Token) Newlines() int {
	return stringsx.CountByte(t.Text(), '\n')
}

// IsLineComment reports whether this is a comment that runs to the end of
// its line.
func (t Token) IsLineComment() bool {
	return t.Kind() == Comment && strings.HasPrefix(t.Text(), "//")
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.IsZero() {
		return "Zero"
	}
	return fmt.Sprintf("%v(%q)", t.Kind(), t.Text())
}

func (t Token) offsets() (start, end int) {
	if t.index > 0 {
		start = int(t.stream.ends[t.index-1])
	}
	return start, int(t.stream.ends[t.index])
}
