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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flintlang/flint/dom"
)

// ErrInvalidOptions is wrapped by the errors [PrintFile] returns when its
// Options fail validation.
var ErrInvalidOptions = errors.New("invalid printer options")

// DefaultMaxWidth is the column limit most Flint style configurations use.
const DefaultMaxWidth = 80

// IndentKind selects the whitespace used for one level of indentation.
type IndentKind byte

const (
	// IndentSpaces indents with [Options.IndentSize] spaces per level.
	IndentSpaces IndentKind = iota
	// IndentTabs indents with one tab per level.
	IndentTabs
)

// QuoteStyle selects the quote character string literals are rewritten to
// use when either choice needs equally few escapes.
type QuoteStyle byte

const (
	// QuoteDouble prefers double quotes.
	QuoteDouble QuoteStyle = iota
	// QuoteSingle prefers single quotes.
	QuoteSingle
	// QuotePreserve keeps whatever quote each literal was written with.
	QuotePreserve
)

// Options configures how [PrintFile] lays out a file. The zero value is not
// usable: callers must pick a MaxWidth.
type Options struct {
	// MaxWidth is the column the printer tries to keep every line within.
	// It must be positive; a construct that cannot be split any further,
	// such as a single overlong token, may still exceed it.
	MaxWidth int

	// Indent selects spaces or tabs for indentation.
	Indent IndentKind

	// IndentSize is the number of spaces per indentation level when Indent
	// is [IndentSpaces]. Zero means 2. Tabs ignore it.
	IndentSize int

	// TabWidth is the number of columns a tab occupies when measuring line
	// widths. Zero means 4.
	TabWidth int

	// Quote is the preferred quote character for string literals.
	Quote QuoteStyle

	// KeepEdgeBlanks keeps a blank line at the very start and very end of
	// the file when the source had one. By default both are dropped.
	KeepEdgeBlanks bool
}

func (o Options) validate() error {
	switch {
	case o.MaxWidth <= 0:
		return fmt.Errorf("%w: max width must be positive (got %d)", ErrInvalidOptions, o.MaxWidth)
	case o.Indent > IndentTabs:
		return fmt.Errorf("%w: unknown indent kind %d", ErrInvalidOptions, o.Indent)
	case o.IndentSize < 0:
		return fmt.Errorf("%w: indent size must not be negative (got %d)", ErrInvalidOptions, o.IndentSize)
	case o.TabWidth < 0:
		return fmt.Errorf("%w: tab width must not be negative (got %d)", ErrInvalidOptions, o.TabWidth)
	case o.Quote > QuotePreserve:
		return fmt.Errorf("%w: unknown quote style %d", ErrInvalidOptions, o.Quote)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.IndentSize == 0 {
		o.IndentSize = 2
	}
	if o.TabWidth == 0 {
		o.TabWidth = 4
	}
	return o
}

// domOptions translates printer options into the rendering options the
// layout engine understands.
func (o Options) domOptions() dom.Options {
	indent := "\t"
	if o.Indent == IndentSpaces {
		indent = strings.Repeat(" ", o.IndentSize)
	}
	return dom.Options{
		MaxWidth: o.MaxWidth,
		Indent:   indent,
		TabWidth: o.TabWidth,
	}
}
