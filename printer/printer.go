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

// Package printer renders parsed Flint files back to source text.
//
// The printer maps each syntax node to a layout document (see [dom]) and
// lets the layout engine choose between flat and broken renderings of each
// group against the configured maximum width. Every construct it does not
// know how to lay out is kept exactly as written, so formatting never
// changes what a program means: the output of [PrintFile] always parses
// back to the tree it was printed from.
//
// [dom]: github.com/flintlang/flint/dom
package printer

import (
	"fmt"
	"strings"

	"github.com/flintlang/flint/ast"
	"github.com/flintlang/flint/dom"
	"github.com/flintlang/flint/reporter"
	"github.com/flintlang/flint/token"
)

// PrintFile renders file as formatted source text.
//
// file must be a complete tree over its token stream, which is what
// [parser.Parse] produces, including the error-recovery nodes of a parse
// that reported diagnostics. Constructs the printer keeps verbatim are
// reported to handler as warnings; handler may be nil when the caller does
// not care. The returned error is non-nil only for invalid options or a
// nil file. Formatting itself cannot fail.
func PrintFile(options Options, file *ast.File, handler *reporter.Handler) (string, error) {
	if err := options.validate(); err != nil {
		return "", err
	}
	options = options.withDefaults()
	if file == nil || file.Stream == nil {
		return "", fmt.Errorf("cannot print a nil file")
	}
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}

	p := &printer{
		options:  options,
		comments: newCommentTable(file),
		handler:  handler,
	}
	doc := p.fileDoc(file)
	if n := p.comments.remaining(); n > 0 {
		panic(fmt.Sprintf("flint/printer: %d comment(s) were never printed; the tree does not cover its stream", n))
	}
	return dom.Render(options.domOptions(), doc), nil
}

// printer carries the state shared by the node rules: the options, the
// comment attachments still waiting to be printed, and the warning sink.
type printer struct {
	options  Options
	comments *commentTable
	handler  *reporter.Handler
}

// fileDoc lays out the whole file: statements on their own lines, one blank
// kept wherever the author left at least one, and a single final newline.
func (p *printer) fileDoc(file *ast.File) dom.Doc {
	var docs []dom.Doc
	for i, stmt := range file.Stmts {
		blank := p.comments.blankBefore(spanOf(stmt))
		switch {
		case i > 0 && blank:
			docs = append(docs, dom.BlankLine())
		case i > 0:
			docs = append(docs, dom.HardLine())
		case blank && p.options.KeepEdgeBlanks:
			// Before any text a single break already reads as a blank line.
			docs = append(docs, dom.HardLine())
		}
		docs = append(docs, p.stmtDoc(stmt))
	}
	for _, c := range p.comments.takeDangling(file) {
		switch {
		case len(docs) == 0:
			if c.blankBefore && p.options.KeepEdgeBlanks {
				docs = append(docs, dom.HardLine())
			}
		case c.blankBefore:
			docs = append(docs, dom.BlankLine())
		default:
			docs = append(docs, dom.HardLine())
		}
		docs = append(docs, dom.Text(c.tok.Text()))
	}
	if len(docs) == 0 {
		return dom.Doc{}
	}
	if p.options.KeepEdgeBlanks && p.comments.blankAtEOF() {
		docs = append(docs, dom.BlankLine())
	} else {
		docs = append(docs, dom.HardLine())
	}
	return dom.Seq(docs...)
}

// tokenDoc renders one source token as written, together with the comments
// attached to it.
func (p *printer) tokenDoc(tok token.Token) dom.Doc {
	if tok.IsZero() {
		return dom.Doc{}
	}
	return p.tokenDocAs(tok, tok.Text())
}

// tokenDocAs renders a token with replacement text: own-line leading
// comments on the lines above, inline ones right before it, and trailing
// ones deferred to the end of its line.
func (p *printer) tokenDocAs(tok token.Token, text string) dom.Doc {
	span := tok.Span()
	lead := p.leadingDocs(span.Start, text)
	trail := p.trailingDocs(span.End)
	if lead == nil && trail == nil {
		return dom.Text(text)
	}
	docs := append(lead, dom.Text(text))
	return dom.Seq(append(docs, trail...)...)
}

// leadingDocs consumes and renders the comments that lead the token
// starting at the given offset. The caller is responsible for whatever
// separates the first comment from the previous line; the blank such a
// comment may want is reported by [commentTable.blankBefore].
func (p *printer) leadingDocs(start int, anchorText string) []dom.Doc {
	comments := p.comments.takeLeading(start)
	if len(comments) == 0 {
		return nil
	}
	var docs []dom.Doc
	if !comments[0].ownLine && hugsPrevious(anchorText) {
		// An inline comment displaced a separator or closer from the text
		// before it; the space between them survives.
		docs = append(docs, dom.Text(" "))
	}
	for i, c := range comments {
		if i > 0 {
			switch {
			case !c.ownLine:
				docs = append(docs, dom.Text(" "))
			case c.blankBefore:
				docs = append(docs, dom.BlankLine())
			default:
				docs = append(docs, dom.HardLine())
			}
		}
		docs = append(docs, dom.Text(c.tok.Text()))
	}
	switch last := comments[len(comments)-1]; {
	case !last.ownLine:
		if !hugsPrevious(anchorText) {
			docs = append(docs, dom.Text(" "))
		}
	case p.comments.blankAt(start):
		docs = append(docs, dom.BlankLine())
	default:
		docs = append(docs, dom.HardLine())
	}
	return docs
}

// trailingDocs consumes and renders the comments that trail the token
// ending at the given offset, deferred to the end of the line. A line
// comment also pins a break, since the source cannot have continued on its
// line and the formatted output must not either.
func (p *printer) trailingDocs(end int) []dom.Doc {
	comments := p.comments.takeTrailing(end)
	if len(comments) == 0 {
		return nil
	}
	suffix := make([]dom.Doc, 0, len(comments)*2)
	breaks := false
	for _, c := range comments {
		suffix = append(suffix, dom.Text(" "), dom.Text(c.tok.Text()))
		breaks = breaks || c.tok.IsLineComment()
	}
	docs := []dom.Doc{dom.LineSuffix(suffix...)}
	if breaks {
		docs = append(docs, dom.HardLine())
	}
	return docs
}

// hugsPrevious reports whether text, as the text of a token, leans directly
// on what precedes it with no space, the way separators and closing
// delimiters do.
func hugsPrevious(text string) bool {
	return len(text) > 0 && strings.ContainsRune(",;)]}", rune(text[0]))
}

// closerDocs splits a closing delimiter into the part that renders inside
// the breakable group around it and the trailing comments that must stay
// outside, so that a comment after the closer cannot force the group open.
// Own-line comments before a closer have already been routed to dangling.
func (p *printer) closerDocs(tok token.Token) (in, after dom.Doc) {
	if tok.IsZero() {
		return dom.Doc{}, dom.Doc{}
	}
	span := tok.Span()
	in = dom.Text(tok.Text())
	if lead := p.leadingDocs(span.Start, tok.Text()); lead != nil {
		in = dom.Seq(append(lead, in)...)
	}
	if trail := p.trailingDocs(span.End); trail != nil {
		after = dom.Seq(trail...)
	}
	return in, after
}

// verbatim emits a source region exactly as written. The comments inside it
// are part of the text; the ones leaning on its edges reattach around it.
func (p *printer) verbatim(span token.Span) dom.Doc {
	if span.IsZero() || span.Len() == 0 {
		return dom.Doc{}
	}
	p.comments.consumeWithin(span)
	lead := p.leadingDocs(span.Start, "")
	trail := p.trailingDocs(span.End)
	docs := append(lead, dom.Text(span.Text()))
	return dom.Seq(append(docs, trail...)...)
}

// fallback reports that a construct could not be formatted and emits its
// source text unchanged.
func (p *printer) fallback(span token.Span, format string, args ...any) dom.Doc {
	p.handler.HandleWarningf(span, format, args...)
	return p.verbatim(span)
}

// danglingDocs renders comments that leaned on a closing delimiter. When
// hard is set, every comment gets a line of its own regardless of how it
// was written. When atEdge is set, the first comment follows the opening
// delimiter directly, with no blank above it and no space before it.
func danglingDocs(comments []comment, hard, atEdge bool) []dom.Doc {
	var docs []dom.Doc
	for i, c := range comments {
		switch edge := atEdge && i == 0; {
		case (hard || c.ownLine) && c.blankBefore && !edge:
			docs = append(docs, dom.BlankLine())
		case hard || c.ownLine:
			docs = append(docs, dom.HardLine())
		case !edge:
			docs = append(docs, dom.Text(" "))
		}
		docs = append(docs, dom.Text(c.tok.Text()))
	}
	return docs
}

// spanOf returns n's span, tolerating nil.
func spanOf(n ast.Node) token.Span {
	if n == nil {
		return token.Span{}
	}
	return n.Span()
}
