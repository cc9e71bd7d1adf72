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

// Cursor is an iterator over the significant tokens of a [Stream]; skippable
// tokens (see [Kind.IsSkippable]) are passed over silently.
type Cursor struct {
	stream *Stream
	index  int
}

// Clone returns an independent copy of this cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	return &clone
}

// Done reports whether there are no significant tokens left.
func (c *Cursor) Done() bool {
	return c.Peek().IsZero()
}

// Peek returns the next significant token without advancing, or [Zero] at
// the end of the stream.
func (c *Cursor) Peek() Token {
	for i := c.index; i < c.stream.Len(); i++ {
		if tok := c.stream.Token(i); !tok.Kind().IsSkippable() {
			return tok
		}
	}
	return Zero
}

// Pop returns the next significant token and advances past it, or returns
// [Zero] at the end of the stream.
func (c *Cursor) Pop() Token {
	tok := c.Peek()
	if !tok.IsZero() {
		c.index = tok.Index() + 1
	} else {
		c.index = c.stream.Len()
	}
	return tok
}
