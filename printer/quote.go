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

package printer

import "strings"

// requote rewrites a string literal, taken verbatim from the source, to use
// the quote character that needs the fewest escapes in its body; pref breaks
// ties. Escape sequences other than the quotes themselves are kept exactly
// as written, so the literal's value never changes.
//
// Literals that do not look like complete strings, such as the partial
// tokens error recovery leaves behind, come back untouched.
func requote(text string, pref QuoteStyle) string {
	if pref == QuotePreserve || len(text) < 2 {
		return text
	}
	quote := text[0]
	if (quote != '"' && quote != '\'') || text[len(text)-1] != quote {
		return text
	}
	body := text[1 : len(text)-1]

	// Count the quote characters in the literal's value. An escaped quote
	// still counts: \" is a double quote as far as the value is concerned.
	var singles, doubles int
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			i++
			if i >= len(body) {
				// A trailing backslash would swallow the closing quote.
				// Whatever this is, it is not worth rewriting.
				return text
			}
			c = body[i]
		}
		switch c {
		case '\'':
			singles++
		case '"':
			doubles++
		}
	}

	want := byte('"')
	switch {
	case doubles < singles:
		want = '"'
	case singles < doubles:
		want = '\''
	case pref == QuoteSingle:
		want = '\''
	}
	if want == quote {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))
	buf.WriteByte(want)
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			i++
			next := body[i]
			if next == quote && next != want {
				// The old quote character no longer needs its escape.
				buf.WriteByte(next)
			} else {
				buf.WriteByte('\\')
				buf.WriteByte(next)
			}
			continue
		}
		if c == want {
			buf.WriteByte('\\')
		}
		buf.WriteByte(c)
	}
	buf.WriteByte(want)
	return buf.String()
}
