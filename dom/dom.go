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

// Package dom provides the layout document that sits between the formatter's
// language rules and its rendered output.
//
// The formatter frontend maps syntax into a [Doc]: source text interleaved
// with layout structure, such as [Group], [Indent], and the various line
// breaks, but with no widths or line numbers decided yet. [Render] then
// resolves that structure against a column limit.
//
// The main benefit of the split is smart line wrapping. A [Group] collects
// content that can be rendered either "flat" on one line, or "broken" across
// several; the renderer lays a group out flat exactly when it fits within
// the configured maximum width. Everything else a formatter needs is built
// from that: [IfBroken] content keyed to those decisions, [Fill] sequences
// that wrap like paragraphs, and [LineSuffix] content that trails at the
// ends of lines.
//
// Documents are plain immutable values with no notion of syntax, files, or
// configuration beyond [Options]; building one cannot fail, and rendering
// one always produces output.
package dom

import (
	"fmt"
	"strings"
)

// Doc is a node of the layout document: source text annotated with
// width-agnostic layout structure, produced by a formatter frontend and
// resolved into concrete line breaks by [Render].
//
// Docs are immutable values; constructing one never fails. The zero Doc
// renders as nothing.
type Doc struct {
	kind kind

	// Which of these is meaningful depends on kind; see each constructor.
	text     string
	line     lineKind
	id       GroupID
	children []Doc
	flat     []Doc // kindIf only: the alternative for flat context.

	// Whether this subtree unavoidably emits a line break, forcing every
	// group that contains it to render broken.
	breaks bool
}

type kind byte

const (
	kindZero kind = iota
	kindText
	kindLine
	kindSeq
	kindGroup
	kindIndent
	kindFill
	kindLineSuffix
	kindIf
)

type lineKind byte

const (
	lineSoft  lineKind = iota // Flat: nothing.
	lineSpace                 // Flat: one space.
	lineHard                  // Always a line break.
	lineBlank                 // Always a line break, preserving one blank line.
)

// GroupID names a [Group] so that an [IfGroupBroken] elsewhere in the tree
// can key off of that group's chosen layout. The zero ID means "no name".
//
// IDs must be unique within a single document tree; [Render] panics when it
// sees the same ID on two groups.
type GroupID uint32

// Text returns a Doc for a fixed run of source text.
//
// Text is emitted exactly as given. If it contains newlines (which happens
// only for verbatim source fallbacks), it behaves like a hard break for
// layout purposes: groups containing it render broken, and the embedded
// newlines are emitted without re-indentation.
func Text(text string) Doc {
	if text == "" {
		return Doc{}
	}
	return Doc{
		kind:   kindText,
		text:   text,
		breaks: strings.ContainsRune(text, '\n'),
	}
}

// Textf is shorthand for [Text] of fmt.Sprintf.
func Textf(format string, args ...any) Doc {
	return Text(fmt.Sprintf(format, args...))
}

// Line returns a line break that renders as a single space when its
// enclosing group is flat.
func Line() Doc {
	return Doc{kind: kindLine, line: lineSpace}
}

// SoftLine returns a line break that renders as nothing when its enclosing
// group is flat.
func SoftLine() Doc {
	return Doc{kind: kindLine, line: lineSoft}
}

// HardLine returns a line break that always renders as a line break, and
// forces every enclosing group to render broken.
func HardLine() Doc {
	return Doc{kind: kindLine, line: lineHard, breaks: true}
}

// BlankLine is like [HardLine], but keeps one full blank line between the
// text before and after it.
func BlankLine() Doc {
	return Doc{kind: kindLine, line: lineBlank, breaks: true}
}

// Seq concatenates the given documents.
func Seq(docs ...Doc) Doc {
	switch len(docs) {
	case 0:
		return Doc{}
	case 1:
		return docs[0]
	}
	return Doc{kind: kindSeq, children: docs, breaks: anyBreaks(docs)}
}

// Group wraps documents in a group: the unit of layout choice. When the
// group's contents fit on the current line they render flat, with each
// [Line] and [SoftLine] inside collapsed; otherwise they render broken.
func Group(docs ...Doc) Doc {
	return Doc{kind: kindGroup, children: docs, breaks: anyBreaks(docs)}
}

// Indent wraps documents in one additional level of indentation. The indent
// only materializes after line breaks inside; it never produces text mid-line.
func Indent(docs ...Doc) Doc {
	return Doc{kind: kindIndent, children: docs, breaks: anyBreaks(docs)}
}

// Fill interleaves items with sep and lays them out like words in a
// paragraph: each separator breaks independently, depending only on whether
// the item after it fits next to the item before it. A group, by contrast,
// breaks all of its lines at once.
func Fill(sep Doc, items ...Doc) Doc {
	switch len(items) {
	case 0:
		return Doc{}
	case 1:
		return items[0]
	}
	children := make([]Doc, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			children = append(children, sep)
		}
		children = append(children, item)
	}
	return Doc{kind: kindFill, children: children, breaks: anyBreaks(children)}
}

// LineSuffix defers documents to the end of the current line: they render
// just before the next unavoidable line break (or at the end of the
// document). Trailing comments use this so that they never push the tokens
// after them onto another line.
//
// Deferred content does not participate in fitting measurements, and breaks
// inside it do not force enclosing groups to render broken.
func LineSuffix(docs ...Doc) Doc {
	return Doc{kind: kindLineSuffix, children: docs}
}

// IfBroken returns broken when the nearest enclosing group renders broken,
// and flat when it renders flat. A trailing comma in a broken argument list
// is the typical use.
//
// Breaks inside either alternative do not propagate outward; only the chosen
// alternative is rendered.
func IfBroken(broken, flat Doc) Doc {
	return Doc{kind: kindIf, children: []Doc{broken}, flat: []Doc{flat}}
}

// IfGroupBroken is [IfBroken] keyed to the mode of the group named by id
// rather than the nearest enclosing group. If no group with that id has been
// laid out yet, the flat alternative is used.
func IfGroupBroken(id GroupID, broken, flat Doc) Doc {
	return Doc{kind: kindIf, id: id, children: []Doc{broken}, flat: []Doc{flat}}
}

// Join is [Seq] with sep placed between consecutive items.
func Join(sep Doc, items ...Doc) Doc {
	if len(items) == 0 {
		return Doc{}
	}
	docs := make([]Doc, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			docs = append(docs, sep)
		}
		docs = append(docs, item)
	}
	return Seq(docs...)
}

// WithID names a group. Panics if d is not a [Group].
func (d Doc) WithID(id GroupID) Doc {
	if d.kind != kindGroup {
		panic("flint/dom: WithID() on non-group")
	}
	d.id = id
	return d
}

// WithBreak marks a group as already broken: it renders broken regardless of
// width, and forces enclosing groups to render broken too. Formatters use
// this to preserve layout the author chose deliberately, such as a map
// literal written across several lines.
//
// Panics if d is not a [Group].
func (d Doc) WithBreak() Doc {
	if d.kind != kindGroup {
		panic("flint/dom: WithBreak() on non-group")
	}
	d.breaks = true
	return d
}

// IsZero reports whether this is the zero Doc, which renders as nothing.
func (d Doc) IsZero() bool {
	return d.kind == kindZero
}

func anyBreaks(docs []Doc) bool {
	for i := range docs {
		if docs[i].breaks {
			return true
		}
	}
	return false
}
