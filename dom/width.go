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

package dom

import (
	"github.com/rivo/uniseg"

	"github.com/flintlang/flint/internal/ext/iterx"
	"github.com/flintlang/flint/internal/ext/stringsx"
)

// stringWidth returns the column that text ends on when it starts at the
// given column. A tab does not have a fixed width; it advances to the next
// multiple of TabWidth, so the same text measures differently at different
// starting columns, and plain uniseg.StringWidth over the whole string
// would get it wrong. The text is measured between tabs instead, with each
// tab jumping the running column to its stop.
//
// A column of -1 measures every tab at the full TabWidth, an upper bound
// for when the starting column is not known yet.
func stringWidth(options Options, column int, text string) int {
	maxWidth := column < 0
	column = max(0, column)

	for i, next := range iterx.Enumerate(stringsx.Split(text, '\t')) {
		if i > 0 {
			tab := options.TabWidth
			if !maxWidth {
				tab -= (column % options.TabWidth)
			}
			column += tab
		}
		column += uniseg.StringWidth(next)
	}

	return column
}
