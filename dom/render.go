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
	"fmt"
	"math"
	"strings"

	"github.com/flintlang/flint/internal/ext/slicesx"
	"github.com/flintlang/flint/internal/ext/stringsx"
)

// Render resolves a document into concrete text.
//
// Rendering walks the document depth-first, deciding for each [Group]
// whether it fits on the current line: a group fits if the group and
// everything after it, up to the next unavoidable line break, can be
// rendered flat without exceeding Options.MaxWidth. Groups that fit render
// flat; all others render broken. Everything else follows from those
// decisions.
//
// Render is deterministic, and never fails: for any document it returns
// some output, with exactly one layout chosen.
func Render(options Options, doc Doc) string {
	r := renderer{
		Options: options.WithDefaults(),
		modes:   make(map[GroupID]bool),
		stack:   []cmd{{doc: doc}},
	}

	var drained bool
	for {
		r.run()
		if len(r.suffixes) == 0 {
			break
		}

		// Content deferred past the last line break still renders, at the
		// end of the final line.
		for i := len(r.suffixes) - 1; i >= 0; i-- {
			r.stack = append(r.stack, r.suffixes[i])
		}
		r.suffixes = r.suffixes[:0]
		drained = true
	}
	if drained {
		// A document that ends in deferred content still ends in a break.
		r.pendingNewlines = max(r.pendingNewlines, 1)
	}

	if r.out.Len() > 0 && r.pendingNewlines > 0 {
		r.out.WriteString(strings.Repeat("\n", r.pendingNewlines))
	}
	return r.out.String()
}

// cmd is a unit of pending rendering work: a document, the indentation
// depth it renders at, and whether it renders flat.
type cmd struct {
	doc    Doc
	indent int
	flat   bool
}

type renderer struct {
	Options

	out   strings.Builder
	stack []cmd

	// Deferred [LineSuffix] content, in the order it was reached.
	suffixes []cmd

	// The chosen layout of each named group seen so far.
	modes map[GroupID]bool

	// col is the rendered width of the current line. pendingSpaces and
	// pendingNewlines buffer whitespace that is only emitted once text
	// follows it; spaces before a line break are dropped, which is what
	// keeps lines free of trailing whitespace, and consecutive breaks
	// merge rather than stack.
	col             int
	pendingSpaces   int
	pendingNewlines int
}

func (r *renderer) run() {
	for len(r.stack) > 0 {
		c, _ := slicesx.Pop(&r.stack)
		switch c.doc.kind {
		case kindZero:

		case kindText:
			r.text(c)

		case kindLine:
			r.lineBreak(c)

		case kindSeq:
			r.push(c.doc.children, c.indent, c.flat)

		case kindIndent:
			r.push(c.doc.children, c.indent+1, c.flat)

		case kindGroup:
			flat := c.flat
			if !flat {
				flat = !c.doc.breaks && r.fits(c)
			}
			if c.doc.id != 0 {
				if _, seen := r.modes[c.doc.id]; seen {
					panic(fmt.Sprintf("flint/dom: duplicate group id %d", c.doc.id))
				}
				r.modes[c.doc.id] = !flat
			}
			r.push(c.doc.children, c.indent, flat)

		case kindFill:
			r.fill(c)

		case kindLineSuffix:
			r.suffixes = append(r.suffixes, cmd{
				doc:    Seq(c.doc.children...),
				indent: c.indent,
				flat:   c.flat,
			})

		case kindIf:
			broken := !c.flat
			if c.doc.id != 0 {
				broken = r.modes[c.doc.id]
			}
			branch := c.doc.flat[0]
			if broken {
				branch = c.doc.children[0]
			}
			r.stack = append(r.stack, cmd{doc: branch, indent: c.indent, flat: c.flat})
		}
	}
}

// push schedules docs for rendering, in order.
func (r *renderer) push(docs []Doc, indent int, flat bool) {
	for i := len(docs) - 1; i >= 0; i-- {
		r.stack = append(r.stack, cmd{doc: docs[i], indent: indent, flat: flat})
	}
}

func (r *renderer) text(c cmd) {
	first, rest, multiline := strings.Cut(c.doc.text, "\n")
	r.flushSpace(c.indent)
	r.out.WriteString(first)
	r.col = stringWidth(r.Options, r.col, first)

	if multiline {
		// Verbatim multi-line text: the remaining lines are emitted exactly
		// as given, with no re-indentation.
		r.out.WriteString("\n")
		r.out.WriteString(rest)
		r.col = stringWidth(r.Options, 0, stringsx.LastLine(rest))
	}
}

func (r *renderer) lineBreak(c cmd) {
	switch c.doc.line {
	case lineSoft, lineSpace:
		if c.flat {
			if c.doc.line == lineSpace {
				r.pendingSpaces++
			}
			return
		}
		r.newline(1, c)
	case lineHard:
		r.newline(1, c)
	case lineBlank:
		r.newline(2, c)
	}
}

func (r *renderer) newline(n int, c cmd) {
	// Deferred suffix content renders before the break does: requeue the
	// break behind the suffixes and go again.
	if len(r.suffixes) > 0 {
		r.stack = append(r.stack, c)
		for i := len(r.suffixes) - 1; i >= 0; i-- {
			r.stack = append(r.stack, r.suffixes[i])
		}
		r.suffixes = r.suffixes[:0]
		return
	}

	r.pendingSpaces = 0
	r.pendingNewlines = max(r.pendingNewlines, n)
}

// flushSpace emits any buffered whitespace; it is called right before text.
// Line breaks beat spaces, and indentation materializes only here, so blank
// lines and line ends never carry trailing whitespace.
func (r *renderer) flushSpace(indent int) {
	switch {
	case r.pendingNewlines > 0:
		r.out.WriteString(strings.Repeat("\n", r.pendingNewlines))
		prefix := strings.Repeat(r.Indent, indent)
		r.out.WriteString(prefix)
		r.col = stringWidth(r.Options, 0, prefix)
	case r.pendingSpaces > 0:
		r.out.WriteString(strings.Repeat(" ", r.pendingSpaces))
		r.col += r.pendingSpaces
	}
	r.pendingSpaces = 0
	r.pendingNewlines = 0
}

// fits reports whether the group in c, followed by everything still pending
// up to the next unavoidable line break, fits on the current line when
// rendered flat.
func (r *renderer) fits(c cmd) bool {
	if r.MaxWidth == math.MaxInt {
		return true
	}

	local := make([]cmd, 0, len(c.doc.children))
	for i := len(c.doc.children) - 1; i >= 0; i-- {
		local = append(local, cmd{doc: c.doc.children[i], indent: c.indent, flat: true})
	}
	return r.measure(local, c.indent, true)
}

// fitsAlone is like [renderer.fits], but measures a single document by
// itself, ignoring pending content. [renderer.fill] uses it to size items
// independently of their neighbors.
func (r *renderer) fitsAlone(doc Doc, indent int) bool {
	if r.MaxWidth == math.MaxInt {
		return true
	}
	return r.measure([]cmd{{doc: doc, indent: indent, flat: true}}, indent, false)
}

func (r *renderer) measure(local []cmd, indent int, withPending bool) bool {
	col := r.col + r.pendingSpaces
	if r.pendingNewlines > 0 {
		col = stringWidth(r.Options, 0, strings.Repeat(r.Indent, indent))
	}

	rest := len(r.stack) - 1
	for {
		var m cmd
		switch {
		case len(local) > 0:
			m, _ = slicesx.Pop(&local)
		case withPending && rest >= 0:
			m = r.stack[rest]
			rest--
		default:
			// Ran out of content before running out of room.
			return true
		}

		switch m.doc.kind {
		case kindZero:

		case kindText:
			first, _, multiline := strings.Cut(m.doc.text, "\n")
			col = stringWidth(r.Options, col, first)
			if col > r.MaxWidth {
				return false
			}
			if multiline {
				return true
			}

		case kindLine:
			switch {
			case m.doc.line == lineHard || m.doc.line == lineBlank || !m.flat:
				// Reached a break: everything up to here fit.
				return true
			case m.doc.line == lineSpace:
				col++
				if col > r.MaxWidth {
					return false
				}
			}

		case kindSeq, kindIndent, kindFill:
			for i := len(m.doc.children) - 1; i >= 0; i-- {
				local = append(local, cmd{doc: m.doc.children[i], indent: m.indent, flat: m.flat})
			}

		case kindGroup:
			flat := m.flat && !m.doc.breaks
			for i := len(m.doc.children) - 1; i >= 0; i-- {
				local = append(local, cmd{doc: m.doc.children[i], indent: m.indent, flat: flat})
			}

		case kindLineSuffix:
			// Deferred content renders at the end of the line; it never
			// counts against fitting.

		case kindIf:
			broken := !m.flat
			if m.doc.id != 0 {
				if mode, seen := r.modes[m.doc.id]; seen {
					broken = mode
				}
			}
			branch := m.doc.flat[0]
			if broken {
				branch = m.doc.children[0]
			}
			local = append(local, cmd{doc: branch, indent: m.indent, flat: m.flat})
		}
	}
}

// fill renders an interleaved item/separator sequence, deciding each
// separator on its own: a separator stays flat when the item after it fits
// alongside the item before it.
func (r *renderer) fill(c cmd) {
	parts := c.doc.children
	if len(parts) == 0 {
		return
	}

	content := cmd{doc: parts[0], indent: c.indent, flat: r.fitsAlone(parts[0], c.indent)}
	if len(parts) == 1 {
		r.stack = append(r.stack, content)
		return
	}

	sep := cmd{doc: parts[1], indent: c.indent}
	if len(parts) == 2 {
		sep.flat = content.flat
		r.stack = append(r.stack, sep, content)
		return
	}

	remainder := cmd{
		doc:    Doc{kind: kindFill, children: parts[2:], breaks: anyBreaks(parts[2:])},
		indent: c.indent,
		flat:   c.flat,
	}

	// The separator stays flat only if this item and the next fit together.
	pair := Seq(parts[0], parts[1], parts[2])
	switch {
	case r.fitsAlone(pair, c.indent):
		sep.flat = true
		content.flat = true
	case content.flat:
		// Item fits, pair does not: break the separator only.
	default:
		// Not even the item fits; render it broken too.
	}
	r.stack = append(r.stack, remainder, sep, content)
}
