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

import "fmt"

// Span is a byte offset range within a source file.
//
// The zero span belongs to no file; [Span.IsZero] reports this.
type Span struct {
	stream *Stream

	// The start (inclusive) and end (exclusive) byte offsets of the span.
	Start, End int
}

// Join returns the smallest span containing all the given spans.
//
// Zero spans are skipped; if all spans are zero, the result is zero.
func Join(spans ...Span) Span {
	var out Span
	for _, span := range spans {
		if span.IsZero() {
			continue
		}
		if out.IsZero() {
			out = span
			continue
		}
		out.Start = min(out.Start, span.Start)
		out.End = max(out.End, span.End)
	}
	return out
}

// IsZero reports whether this is the zero span.
func (s Span) IsZero() bool {
	return s.stream == nil
}

// Span returns this span, so that anything with a span (tokens, syntax
// nodes, spans themselves) can be used interchangeably when reporting.
func (s Span) Span() Span {
	return s
}

// Stream returns the stream this span points into, or nil for the zero span.
func (s Span) Stream() *Stream {
	return s.stream
}

// File returns the name of the file this span points into.
func (s Span) File() string {
	if s.IsZero() {
		return ""
	}
	return s.stream.name
}

// Text returns the source text this span covers.
func (s Span) Text() string {
	if s.IsZero() {
		return ""
	}
	return s.stream.text[s.Start:s.End]
}

// Len returns the length of this span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the given offset lies within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// StartPos returns the position of the first byte of this span.
func (s Span) StartPos() Position {
	if s.IsZero() {
		return Position{}
	}
	return s.stream.Pos(s.Start)
}

// EndPos returns the position one past the last byte of this span.
func (s Span) EndPos() Position {
	if s.IsZero() {
		return Position{}
	}
	return s.stream.Pos(s.End)
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return s.StartPos().String()
}

// Position is a location within a source file.
type Position struct {
	Filename string

	// The byte offset of the position within the file.
	Offset int

	// The line and column, both one-indexed. Columns count bytes.
	Line, Col int
}

// String implements [fmt.Stringer]. The result is of the familiar form
// file.fl:3:14.
func (p Position) String() string {
	if p.Filename == "" && p.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}
