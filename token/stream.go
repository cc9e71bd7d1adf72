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

package token

import (
	"fmt"
	"iter"
	"sort"

	"github.com/petermattis/goid"

	"github.com/flintlang/flint/internal/ext/slicesx"
)

// Stream is the token stream for a single source file.
//
// A stream is built by the lexer, one token at a time, and covers every byte
// of the file: whitespace, comments, and unrecognized garbage are all tokens
// (see [Kind.IsSkippable]). Once lexing completes the stream is frozen, after
// which it is immutable and safe to share across goroutines.
//
// Until it is frozen, a stream may only be mutated by the goroutine that
// created it. Mutation of a frozen stream, or from the wrong goroutine,
// panics.
type Stream struct {
	name string
	text string

	kinds []Kind
	// The end offset of each token; token i spans [ends[i-1], ends[i]),
	// with an implicit 0 before the first token.
	ends []int32

	// The offset of the first byte of each line.
	lines []int32

	owner  int64
	frozen bool
}

// NewStream creates an empty stream for the given file.
//
// The name is diagnostic-only; it is not opened or read.
func NewStream(name, text string) *Stream {
	s := &Stream{
		name:  name,
		text:  text,
		lines: []int32{0},
		owner: goid.Get(),
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.lines = append(s.lines, int32(i+1))
		}
	}
	return s
}

// Name returns the file name this stream was created with.
func (s *Stream) Name() string {
	return s.name
}

// Text returns the full source text of the file.
func (s *Stream) Text() string {
	return s.text
}

// Len returns the number of tokens pushed so far.
func (s *Stream) Len() int {
	return len(s.kinds)
}

// Token returns the token at the given index, or [Zero] if the index is out
// of bounds.
func (s *Stream) Token(i int) Token {
	if i < 0 || i >= len(s.kinds) {
		return Zero
	}
	return Token{stream: s, index: int32(i)}
}

// All returns an iterator over every token in the stream, including
// skippable ones.
func (s *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := range s.kinds {
			if !yield(Token{stream: s, index: int32(i)}) {
				return
			}
		}
	}
}

// Cursor returns a new cursor positioned at the start of the stream.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s}
}

// Push appends a new token of the given kind to the stream, spanning the
// next length bytes of text.
//
// Panics if the stream is frozen, if called off the creating goroutine, or
// if the new token would extend past the end of the text.
func (s *Stream) Push(kind Kind, length int) Token {
	if s.frozen {
		panic("flint/token: Push() on frozen stream")
	}
	if goid.Get() != s.owner {
		panic("flint/token: Push() off of the stream's owning goroutine")
	}
	end := s.end() + length
	if length < 0 || end > len(s.text) {
		panic(fmt.Sprintf("flint/token: Push() of %d bytes at offset %d, out of %d", length, s.end(), len(s.text)))
	}

	s.kinds = append(s.kinds, kind)
	s.ends = append(s.ends, int32(end))
	return Token{stream: s, index: int32(len(s.kinds) - 1)}
}

// Freeze marks the stream as complete. After freezing, mutation panics and
// the stream may be shared freely across goroutines.
//
// Panics if the pushed tokens do not cover the whole text.
func (s *Stream) Freeze() {
	if s.end() != len(s.text) {
		panic(fmt.Sprintf("flint/token: Freeze() of stream covering %d of %d bytes", s.end(), len(s.text)))
	}
	s.frozen = true
}

// IsFrozen reports whether Freeze has been called.
func (s *Stream) IsFrozen() bool {
	return s.frozen
}

// Span constructs a span for the given offset range within this stream.
func (s *Stream) Span(start, end int) Span {
	return Span{stream: s, Start: start, End: end}
}

// EOF returns an empty span at the end of the file.
func (s *Stream) EOF() Span {
	return s.Span(len(s.text), len(s.text))
}

// Pos converts a byte offset into a [Position].
//
// Lines and columns are one-indexed; columns count bytes, not runes.
func (s *Stream) Pos(offset int) Position {
	line := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i] > int32(offset)
	})
	return Position{
		Filename: s.name,
		Offset:   offset,
		Line:     line,
		Col:      offset - int(s.lines[line-1]) + 1,
	}
}

func (s *Stream) end() int {
	end, _ := slicesx.Last(s.ends)
	return int(end)
}
