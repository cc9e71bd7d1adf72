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

	"github.com/flintlang/flint/internal/ext/slicesx"
)

const (
	Unrecognized Kind = iota // Unrecognized garbage in the input file.

	Space   // Contiguous non-comment whitespace, including newlines.
	Comment // A single comment, line or block.
	Ident   // An identifier or keyword.
	String  // A quoted string literal.
	Number  // A run of digits that is some kind of number.
	Punct   // Some punctuation, such as a delimiter or operator.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// IsSkippable returns whether this is a token that should be skipped during
// syntactic analysis.
func (t Kind) IsSkippable() bool {
	return slicesx.Among(t, Space, Comment, Unrecognized)
}

// IsTrivia returns whether this token carries no syntax of its own, but may
// carry comments or blank lines that the formatter must preserve.
func (t Kind) IsTrivia() bool {
	return slicesx.Among(t, Space, Comment)
}

// String implements [fmt.Stringer].
func (t Kind) String() string {
	switch t {
	case Unrecognized:
		return "Unrecognized"
	case Space:
		return "Space"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case String:
		return "String"
	case Number:
		return "Number"
	case Punct:
		return "Punct"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(t))
	}
}
