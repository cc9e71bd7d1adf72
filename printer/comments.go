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
	"github.com/tidwall/btree"

	"github.com/flintlang/flint/ast"
	"github.com/flintlang/flint/internal/interval"
	"github.com/flintlang/flint/token"
)

// comment is one source comment together with its attachment decision.
type comment struct {
	tok token.Token

	// Whether a blank line separated this comment from whatever came before
	// it, be that a token or another comment.
	blankBefore bool

	// Whether the comment had a line break before it. Comments that shared
	// their line with the token they lead render inline again.
	ownLine bool
}

// commentTable holds every comment of a file, classified by the token or
// node it must reattach to in formatted output.
//
// The printing rules consume attachments as they emit their anchors; a
// verbatim region consumes everything inside its span instead. After a full
// print the table must have drained, since a comment left behind is a
// comment missing from the output.
type commentTable struct {
	// Offset-ordered index of every unconsumed comment, keyed by the
	// comment's start offset.
	byOffset btree.Map[int, token.Token]

	// Comments that render before a token, keyed by the token's start
	// offset, and comments that render at the end of a token's line, keyed
	// by the token's end offset.
	leading  map[int][]comment
	trailing map[int][]comment

	// Comments whose only following token is the closing delimiter of the
	// node that contains them.
	dangling map[ast.Node][]comment

	// Start offsets of tokens with a blank line between them and whatever
	// came before, including a preceding comment.
	blanks map[int]bool

	// Whether a blank line separated the last token or comment from the end
	// of the file.
	eofBlank bool
}

// isDanglingHost reports whether comments leaning on n's closing delimiter
// belong inside n. Comments that lean on a closer of any other node instead
// ride the closer itself.
func isDanglingHost(n ast.Node) bool {
	switch n.(type) {
	case *ast.File, *ast.BlockStmt, *ast.ArrayLit, *ast.MapLit, *ast.CallExpr,
		*ast.ParamList, *ast.ParenExpr, *ast.IndexExpr:
		return true
	}
	return false
}

// newCommentTable classifies every comment in the file's stream.
//
// A comment that opens on the same line as a token before it trails that
// token if its line ends there, and leads the next token inline otherwise.
// A comment on a line of its own leads the next token, unless that token
// closes the node the comment sits in, which makes the comment dangle from
// the node. Comments after the last token dangle from the file.
func newCommentTable(file *ast.File) *commentTable {
	t := &commentTable{
		leading:  make(map[int][]comment),
		trailing: make(map[int][]comment),
		dangling: make(map[ast.Node][]comment),
		blanks:   make(map[int]bool),
	}

	// Innermost-node lookup over the tree's spans, for the dangling rule.
	spans := interval.New[int, ast.Node]()
	ast.Inspect(file, func(n ast.Node) bool {
		if span := n.Span(); !span.IsZero() && span.Len() > 0 {
			spans.Insert(span.Start, span.End, n)
		}
		return true
	})

	var (
		pending  []comment
		prevSig  token.Token
		newlines int
	)

	// Before anything at all, one newline already makes the first line
	// blank; everywhere else a blank takes two.
	sof := true
	isBlank := func() bool {
		return newlines >= 2 || (sof && newlines > 0)
	}

	// flush assigns the buffered comments once the token that ends the run
	// is known; next is zero at the end of the file.
	flush := func(next token.Token) {
		if len(pending) == 0 {
			return
		}

		// Comments that opened on prevSig's line: if the line ended before
		// next arrived, they trail prevSig; otherwise they stay inline.
		sameLine := 0
		for sameLine < len(pending) && !pending[sameLine].ownLine {
			sameLine++
		}
		lineEnded := newlines > 0 || sameLine < len(pending) || next.IsZero()
		if sameLine > 0 && lineEnded {
			if !prevSig.IsZero() {
				end := prevSig.Span().End
				t.trailing[end] = append(t.trailing[end], pending[:sameLine]...)
				pending = pending[sameLine:]
			} else {
				// Comments that open the file with a break after them have
				// nothing to trail; give them their own lines.
				for i := range pending[:sameLine] {
					pending[i].ownLine = true
				}
			}
		}

		for _, c := range pending {
			if next.IsZero() {
				t.dangling[file] = append(t.dangling[file], c)
				continue
			}
			if ent, ok := spans.Innermost(c.tok.Span().Start); ok &&
				isDanglingHost(ent.Value) && next.Span().End == ent.End {
				t.dangling[ent.Value] = append(t.dangling[ent.Value], c)
				continue
			}
			start := next.Span().Start
			t.leading[start] = append(t.leading[start], c)
		}
		pending = pending[:0]
	}

	for tok := range file.Stream.All() {
		switch tok.Kind() {
		case token.Space:
			newlines += tok.Newlines()
		case token.Comment:
			pending = append(pending, comment{
				tok:         tok,
				blankBefore: isBlank(),
				ownLine:     newlines > 0,
			})
			t.byOffset.Set(tok.Span().Start, tok)
			sof = false
			newlines = 0
		case token.Unrecognized:
			// Dropped from output; the parse already failed on it.
		default:
			flush(tok)
			if isBlank() {
				t.blanks[tok.Span().Start] = true
			}
			prevSig = tok
			sof = false
			newlines = 0
		}
	}
	flush(token.Zero)
	t.eofBlank = newlines >= 2
	return t
}

// takeLeading removes and returns the comments that lead the token starting
// at the given offset.
func (t *commentTable) takeLeading(start int) []comment {
	list := t.leading[start]
	if len(list) == 0 {
		return nil
	}
	delete(t.leading, start)
	for _, c := range list {
		t.byOffset.Delete(c.tok.Span().Start)
	}
	return list
}

// takeTrailing removes and returns the comments that trail the token ending
// at the given offset.
func (t *commentTable) takeTrailing(end int) []comment {
	list := t.trailing[end]
	if len(list) == 0 {
		return nil
	}
	delete(t.trailing, end)
	for _, c := range list {
		t.byOffset.Delete(c.tok.Span().Start)
	}
	return list
}

// takeDangling removes and returns the comments dangling from n.
func (t *commentTable) takeDangling(n ast.Node) []comment {
	list := t.dangling[n]
	if len(list) == 0 {
		return nil
	}
	delete(t.dangling, n)
	for _, c := range list {
		t.byOffset.Delete(c.tok.Span().Start)
	}
	return list
}

// consumeWithin drops every comment whose text lies inside span. Verbatim
// regions call this, since the region's source text already contains them.
func (t *commentTable) consumeWithin(span token.Span) {
	var doomed []int
	t.byOffset.Ascend(span.Start, func(off int, _ token.Token) bool {
		if off >= span.End {
			return false
		}
		doomed = append(doomed, off)
		return true
	})
	if len(doomed) == 0 {
		return
	}
	for _, off := range doomed {
		t.byOffset.Delete(off)
	}

	inside := func(c comment) bool {
		off := c.tok.Span().Start
		return off >= span.Start && off < span.End
	}
	for key, list := range t.leading {
		if kept := discard(list, inside); len(kept) != len(list) {
			if len(kept) == 0 {
				delete(t.leading, key)
			} else {
				t.leading[key] = kept
			}
		}
	}
	for key, list := range t.trailing {
		if kept := discard(list, inside); len(kept) != len(list) {
			if len(kept) == 0 {
				delete(t.trailing, key)
			} else {
				t.trailing[key] = kept
			}
		}
	}
	for key, list := range t.dangling {
		if kept := discard(list, inside); len(kept) != len(list) {
			if len(kept) == 0 {
				delete(t.dangling, key)
			} else {
				t.dangling[key] = kept
			}
		}
	}
}

func discard(list []comment, drop func(comment) bool) []comment {
	kept := list[:0:0]
	for _, c := range list {
		if !drop(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// blankBefore reports whether the author left a blank line right before the
// region starting at span, counting a blank before its first leading
// comment if it has one.
func (t *commentTable) blankBefore(span token.Span) bool {
	if list := t.leading[span.Start]; len(list) > 0 {
		return list[0].blankBefore
	}
	return t.blanks[span.Start]
}

// blankAt reports whether a blank line directly preceded the token starting
// at the given offset, not counting any comments attached to it.
func (t *commentTable) blankAt(start int) bool {
	return t.blanks[start]
}

// blankAtEOF reports whether the file ended with a blank line.
func (t *commentTable) blankAtEOF() bool {
	return t.eofBlank
}

// hasAttachments reports whether any unconsumed comment leads or trails tok.
func (t *commentTable) hasAttachments(tok token.Token) bool {
	if tok.IsZero() {
		return false
	}
	span := tok.Span()
	return len(t.leading[span.Start]) > 0 || len(t.trailing[span.End]) > 0
}

// hasOwnLineLeading reports whether the token starting at the given offset
// is led by a comment that needs a line of its own.
func (t *commentTable) hasOwnLineLeading(start int) bool {
	list := t.leading[start]
	return len(list) > 0 && list[0].ownLine
}

// remaining counts the comments nothing has consumed yet.
func (t *commentTable) remaining() int {
	return t.byOffset.Len()
}
