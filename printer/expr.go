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
	"slices"
	"strings"

	"github.com/flintlang/flint/ast"
	"github.com/flintlang/flint/dom"
	"github.com/flintlang/flint/token"
)

func (p *printer) exprDoc(expr ast.Expr) dom.Doc {
	switch e := expr.(type) {
	case *ast.Ident:
		return p.tokenDoc(e.Name)
	case *ast.Literal:
		return p.literalDoc(e)
	case *ast.ArrayLit:
		if e.Lbrack.IsZero() || e.Rbrack.IsZero() {
			return p.fallback(e.Span(), "array literal is missing a bracket; keeping it as written")
		}
		items := make([]dom.Doc, len(e.Elems))
		for i, elem := range e.Elems {
			items[i] = p.exprDoc(elem)
		}
		return p.listDoc(e, e.Lbrack, items, e.Commas, e.Rbrack)
	case *ast.MapLit:
		return p.mapDoc(e)
	case *ast.MapEntry:
		return p.entryDoc(e)
	case *ast.FnLit:
		if e.Fn.IsZero() || e.Params == nil || e.Body == nil {
			return p.fallback(e.Span(), "function literal is missing pieces; keeping it as written")
		}
		return dom.Seq(
			p.tokenDoc(e.Fn), dom.Text(" "),
			p.paramsDoc(e.Params),
			dom.Text(" "),
			p.blockDoc(e.Body),
		)
	case *ast.CallExpr:
		if e.Fn == nil || e.Lparen.IsZero() || e.Rparen.IsZero() {
			return p.fallback(e.Span(), "call is missing pieces; keeping it as written")
		}
		args := make([]dom.Doc, len(e.Args))
		for i, arg := range e.Args {
			args[i] = p.exprDoc(arg)
		}
		return dom.Seq(p.exprDoc(e.Fn), p.listDoc(e, e.Lparen, args, e.Commas, e.Rparen))
	case *ast.IndexExpr:
		return p.indexDoc(e)
	case *ast.SelectorExpr:
		if e.X == nil || e.Dot.IsZero() || e.Name.IsZero() {
			return p.fallback(e.Span(), "selector is missing pieces; keeping it as written")
		}
		return dom.Seq(p.exprDoc(e.X), p.tokenDoc(e.Dot), p.tokenDoc(e.Name))
	case *ast.UnaryExpr:
		if e.Op.IsZero() || e.X == nil {
			return p.fallback(e.Span(), "unary expression is missing pieces; keeping it as written")
		}
		return dom.Seq(p.tokenDoc(e.Op), p.exprDoc(e.X))
	case *ast.BinaryExpr:
		return p.binaryDoc(e)
	case *ast.CondExpr:
		return p.condDoc(e)
	case *ast.AssignExpr:
		if e.Lhs == nil || e.Eq.IsZero() || e.Rhs == nil {
			return p.fallback(e.Span(), "assignment is missing pieces; keeping it as written")
		}
		return dom.Seq(p.exprDoc(e.Lhs), dom.Text(" "), p.tokenDoc(e.Eq), p.rhsDoc(e.Rhs))
	case *ast.ParenExpr:
		return p.parenDoc(e)
	case *ast.BadExpr:
		// The parser already diagnosed this region; print it as written.
		return p.verbatim(e.Span())
	case nil:
		p.handler.HandleWarningf(token.Span{}, "missing expression")
		return dom.Doc{}
	default:
		return p.fallback(spanOf(expr), "no formatting rule for %T; keeping it as written", expr)
	}
}

// literalDoc renders a literal token, normalizing string quotes to
// whichever needs the fewest escapes.
func (p *printer) literalDoc(e *ast.Literal) dom.Doc {
	if e.Tok.IsZero() {
		return dom.Doc{}
	}
	text := e.Tok.Text()
	if e.IsString() {
		text = requote(text, p.options.Quote)
	}
	return p.tokenDocAs(e.Tok, text)
}

// listDoc renders a delimited, comma-separated list: flat when it fits,
// broken with the items packed as densely as they go when it does not.
// Separator commas ride the item before them so a break never strands one.
func (p *printer) listDoc(owner ast.Node, open token.Token, items []dom.Doc, commas []token.Token, close token.Token) dom.Doc {
	dangling := p.comments.takeDangling(owner)
	if len(items) == 0 && len(dangling) == 0 {
		return dom.Seq(p.tokenDoc(open), p.tokenDoc(close))
	}

	body := []dom.Doc{dom.SoftLine()}
	if len(items) > 0 {
		parts := make([]dom.Doc, len(items))
		for i := range items {
			parts[i] = items[i]
			if i < len(items)-1 {
				parts[i] = dom.Seq(items[i], p.commaDoc(commas, i))
			}
		}
		body = append(body, dom.Fill(dom.Line(), parts...))
		if comma := p.trailingCommaDoc(commas, len(items)); !comma.IsZero() {
			body = append(body, comma)
		}
	}
	body = append(body, danglingDocs(dangling, false, len(items) == 0)...)

	in, after := p.closerDocs(close)
	g := dom.Group(
		p.tokenDoc(open),
		dom.Indent(body...),
		dom.SoftLine(),
		in,
	)
	if after.IsZero() {
		return g
	}
	return dom.Seq(g, after)
}

// commaDoc returns the separator comma after item i, synthesizing one when
// the tree has no token for it.
func (p *printer) commaDoc(commas []token.Token, i int) dom.Doc {
	if i < len(commas) && !commas[i].IsZero() {
		return p.tokenDoc(commas[i])
	}
	return dom.Text(",")
}

// trailingCommaDoc handles a trailing comma the author wrote: kept in
// broken layouts, dropped in flat ones. One that carries comments is kept
// unconditionally so that they have somewhere to live.
func (p *printer) trailingCommaDoc(commas []token.Token, n int) dom.Doc {
	if n == 0 || len(commas) < n || commas[n-1].IsZero() {
		return dom.Doc{}
	}
	if last := commas[n-1]; p.comments.hasAttachments(last) {
		return p.tokenDoc(last)
	}
	return dom.IfBroken(dom.Text(","), dom.Doc{})
}

// mapDoc renders a map literal. Unlike arrays and calls, entries break all
// or nothing, the braces keep a space around the contents when flat, and a
// literal the author wrote across several lines stays broken no matter how
// short it is.
func (p *printer) mapDoc(e *ast.MapLit) dom.Doc {
	if e.Lbrace.IsZero() || e.Rbrace.IsZero() {
		return p.fallback(e.Span(), "map literal is missing a brace; keeping it as written")
	}
	dangling := p.comments.takeDangling(e)
	if len(e.Entries) == 0 && len(dangling) == 0 {
		return dom.Seq(p.tokenDoc(e.Lbrace), p.tokenDoc(e.Rbrace))
	}

	body := []dom.Doc{dom.Line()}
	for i, entry := range e.Entries {
		if i > 0 {
			if p.comments.blankBefore(spanOf(entry)) {
				body = append(body, dom.BlankLine())
			} else {
				body = append(body, dom.Line())
			}
		}
		part := p.entryDoc(entry)
		if i < len(e.Entries)-1 {
			part = dom.Seq(part, p.commaDoc(e.Commas, i))
		}
		body = append(body, part)
	}
	if comma := p.trailingCommaDoc(e.Commas, len(e.Entries)); !comma.IsZero() {
		body = append(body, comma)
	}
	body = append(body, danglingDocs(dangling, false, len(e.Entries) == 0)...)

	in, after := p.closerDocs(e.Rbrace)
	g := dom.Group(
		p.tokenDoc(e.Lbrace),
		dom.Indent(body...),
		dom.Line(),
		in,
	)
	if strings.ContainsRune(e.Span().Text(), '\n') {
		g = g.WithBreak()
	}
	if after.IsZero() {
		return g
	}
	return dom.Seq(g, after)
}

func (p *printer) entryDoc(e *ast.MapEntry) dom.Doc {
	if e.Key == nil || e.Colon.IsZero() || e.Value == nil {
		if _, bad := e.Key.(*ast.BadExpr); bad {
			return p.verbatim(e.Span())
		}
		return p.fallback(e.Span(), "map entry is missing pieces; keeping it as written")
	}
	return dom.Seq(p.exprDoc(e.Key), p.tokenDoc(e.Colon), dom.Text(" "), p.exprDoc(e.Value))
}

// binaryDoc renders a run of binary operations in one precedence tier as a
// unit: all on one line, or broken after every operator with the
// continuation lines indented once. Tiers that differ nest instead.
func (p *printer) binaryDoc(e *ast.BinaryExpr) dom.Doc {
	if e.X == nil || e.Op.IsZero() || e.Y == nil {
		return p.fallback(e.Span(), "binary expression is missing pieces; keeping it as written")
	}

	tier := binaryTier(e.Op.Text())
	var chain []*ast.BinaryExpr
	left := ast.Expr(e)
	for {
		bin, ok := left.(*ast.BinaryExpr)
		if !ok || bin.X == nil || bin.Op.IsZero() || bin.Y == nil ||
			binaryTier(bin.Op.Text()) != tier {
			break
		}
		chain = append(chain, bin)
		left = bin.X
	}
	slices.Reverse(chain)

	var tail []dom.Doc
	first := p.exprDoc(left)
	for _, bin := range chain {
		tail = append(tail, dom.Text(" "), p.tokenDoc(bin.Op), dom.Line(), p.exprDoc(bin.Y))
	}
	return dom.Group(first, dom.Indent(tail...))
}

// binaryTier groups operators whose runs lay out as one chain; higher binds
// tighter. This mirrors the grammar's precedence ladder.
func binaryTier(op string) int {
	switch op {
	case "||":
		return 1
	case "&&":
		return 2
	case "==", "!=":
		return 3
	case "<", "<=", ">", ">=":
		return 4
	case "+", "-":
		return 5
	case "*", "/", "%":
		return 6
	default:
		return 0
	}
}

func (p *printer) condDoc(e *ast.CondExpr) dom.Doc {
	if e.Cond == nil || e.Question.IsZero() || e.Then == nil || e.Colon.IsZero() || e.Orelse == nil {
		return p.fallback(e.Span(), "conditional expression is missing pieces; keeping it as written")
	}
	return dom.Group(
		p.exprDoc(e.Cond),
		dom.Indent(
			dom.Line(), p.tokenDoc(e.Question), dom.Text(" "), p.exprDoc(e.Then),
			dom.Line(), p.tokenDoc(e.Colon), dom.Text(" "), p.exprDoc(e.Orelse),
		),
	)
}

func (p *printer) parenDoc(e *ast.ParenExpr) dom.Doc {
	if e.Lparen.IsZero() || e.X == nil || e.Rparen.IsZero() {
		return p.fallback(e.Span(), "parenthesized expression is missing pieces; keeping it as written")
	}
	body := []dom.Doc{dom.SoftLine(), p.exprDoc(e.X)}
	body = append(body, danglingDocs(p.comments.takeDangling(e), false, false)...)

	in, after := p.closerDocs(e.Rparen)
	g := dom.Group(
		p.tokenDoc(e.Lparen),
		dom.Indent(body...),
		dom.SoftLine(),
		in,
	)
	if after.IsZero() {
		return g
	}
	return dom.Seq(g, after)
}

func (p *printer) indexDoc(e *ast.IndexExpr) dom.Doc {
	if e.X == nil || e.Lbrack.IsZero() || e.Index == nil || e.Rbrack.IsZero() {
		return p.fallback(e.Span(), "index expression is missing pieces; keeping it as written")
	}
	body := []dom.Doc{dom.SoftLine(), p.exprDoc(e.Index)}
	body = append(body, danglingDocs(p.comments.takeDangling(e), false, false)...)

	in, after := p.closerDocs(e.Rbrack)
	g := dom.Group(
		p.exprDoc(e.X),
		p.tokenDoc(e.Lbrack),
		dom.Indent(body...),
		dom.SoftLine(),
		in,
	)
	if after.IsZero() {
		return g
	}
	return dom.Seq(g, after)
}
