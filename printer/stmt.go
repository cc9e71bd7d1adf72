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
	"github.com/flintlang/flint/ast"
	"github.com/flintlang/flint/dom"
	"github.com/flintlang/flint/token"
)

func (p *printer) stmtDoc(stmt ast.Stmt) dom.Doc {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return p.varDeclDoc(s)
	case *ast.FnDecl:
		return p.fnDeclDoc(s)
	case *ast.BlockStmt:
		return p.blockDoc(s)
	case *ast.ExprStmt:
		if s.X == nil || s.Semi.IsZero() {
			return p.fallback(s.Span(), "statement is missing pieces; keeping it as written")
		}
		return dom.Seq(p.exprDoc(s.X), p.tokenDoc(s.Semi))
	case *ast.IfStmt:
		return p.ifDoc(s)
	case *ast.WhileStmt:
		return p.whileDoc(s)
	case *ast.ForStmt:
		return p.forDoc(s)
	case *ast.ReturnStmt:
		return p.returnDoc(s)
	case *ast.BranchStmt:
		if s.Keyword.IsZero() || s.Semi.IsZero() {
			return p.fallback(s.Span(), "statement is missing pieces; keeping it as written")
		}
		return dom.Seq(p.tokenDoc(s.Keyword), p.tokenDoc(s.Semi))
	case *ast.EmptyStmt:
		return p.tokenDoc(s.Semi)
	case *ast.BadStmt:
		// The parser already diagnosed this region; print it as written.
		return p.verbatim(s.Span())
	case nil:
		p.handler.HandleWarningf(token.Span{}, "missing statement")
		return dom.Doc{}
	default:
		return p.fallback(spanOf(stmt), "no formatting rule for %T; keeping it as written", stmt)
	}
}

// blockDoc renders a braced statement list, always broken. Comments leaning
// on the closing brace get lines of their own, which is how an otherwise
// empty block keeps its contents.
func (p *printer) blockDoc(s *ast.BlockStmt) dom.Doc {
	if s.Lbrace.IsZero() || s.Rbrace.IsZero() {
		return p.fallback(s.Span(), "block is missing a brace; keeping it as written")
	}
	dangling := p.comments.takeDangling(s)
	if len(s.Stmts) == 0 && len(dangling) == 0 {
		return dom.Seq(p.tokenDoc(s.Lbrace), p.tokenDoc(s.Rbrace))
	}

	var body []dom.Doc
	for i, stmt := range s.Stmts {
		if i > 0 && p.comments.blankBefore(spanOf(stmt)) {
			body = append(body, dom.BlankLine())
		} else {
			body = append(body, dom.HardLine())
		}
		body = append(body, p.stmtDoc(stmt))
	}
	body = append(body, danglingDocs(dangling, true, len(s.Stmts) == 0)...)
	return dom.Group(
		p.tokenDoc(s.Lbrace),
		dom.Indent(body...),
		dom.HardLine(),
		p.tokenDoc(s.Rbrace),
	)
}

func (p *printer) ifDoc(s *ast.IfStmt) dom.Doc {
	if s.If.IsZero() || s.Lparen.IsZero() || s.Cond == nil || s.Rparen.IsZero() ||
		s.Then == nil || (!s.Else.IsZero() && s.Orelse == nil) {
		return p.fallback(s.Span(), "if statement is missing pieces; keeping it as written")
	}
	docs := []dom.Doc{
		p.tokenDoc(s.If), dom.Text(" "),
		p.parensDoc(s.Lparen, s.Cond, s.Rparen),
		p.armDoc(s.Then),
	}
	if !s.Else.IsZero() {
		if _, ok := s.Then.(*ast.BlockStmt); ok {
			docs = append(docs, dom.Text(" "))
		} else {
			docs = append(docs, dom.HardLine())
		}
		docs = append(docs, p.tokenDoc(s.Else))
		if orelse, ok := s.Orelse.(*ast.IfStmt); ok {
			docs = append(docs, dom.Text(" "), p.ifDoc(orelse))
		} else {
			docs = append(docs, p.armDoc(s.Orelse))
		}
	}
	return dom.Seq(docs...)
}

func (p *printer) whileDoc(s *ast.WhileStmt) dom.Doc {
	if s.While.IsZero() || s.Lparen.IsZero() || s.Cond == nil || s.Rparen.IsZero() || s.Body == nil {
		return p.fallback(s.Span(), "while statement is missing pieces; keeping it as written")
	}
	return dom.Seq(
		p.tokenDoc(s.While), dom.Text(" "),
		p.parensDoc(s.Lparen, s.Cond, s.Rparen),
		p.armDoc(s.Body),
	)
}

// forDoc renders a for header. The init statement brings its own semicolon,
// and the clauses it leaves empty simply print nothing, so for (;;) comes
// out clean.
func (p *printer) forDoc(s *ast.ForStmt) dom.Doc {
	if s.For.IsZero() || s.Lparen.IsZero() || s.Init == nil || s.Semi.IsZero() ||
		s.Rparen.IsZero() || s.Body == nil {
		return p.fallback(s.Span(), "for statement is missing pieces; keeping it as written")
	}
	docs := []dom.Doc{
		p.tokenDoc(s.For), dom.Text(" "), p.tokenDoc(s.Lparen),
		p.stmtDoc(s.Init),
	}
	if s.Cond != nil {
		docs = append(docs, dom.Text(" "), p.exprDoc(s.Cond))
	}
	docs = append(docs, p.tokenDoc(s.Semi))
	if s.Step != nil {
		docs = append(docs, dom.Text(" "), p.exprDoc(s.Step))
	}
	docs = append(docs, p.tokenDoc(s.Rparen), p.armDoc(s.Body))
	return dom.Seq(docs...)
}

func (p *printer) returnDoc(s *ast.ReturnStmt) dom.Doc {
	if s.Return.IsZero() || s.Semi.IsZero() {
		return p.fallback(s.Span(), "return statement is missing pieces; keeping it as written")
	}
	docs := []dom.Doc{p.tokenDoc(s.Return)}
	if s.Value != nil {
		docs = append(docs, p.rhsDoc(s.Value))
	}
	docs = append(docs, p.tokenDoc(s.Semi))
	return dom.Seq(docs...)
}

// armDoc renders a statement hanging off a control header: block arms stay
// on the header's line, anything else gets its own indented line.
func (p *printer) armDoc(arm ast.Stmt) dom.Doc {
	if block, ok := arm.(*ast.BlockStmt); ok {
		return dom.Seq(dom.Text(" "), p.blockDoc(block))
	}
	return dom.Indent(dom.HardLine(), p.stmtDoc(arm))
}

// parensDoc renders a parenthesized condition that breaks onto its own
// indented line when long.
func (p *printer) parensDoc(open token.Token, x ast.Expr, close token.Token) dom.Doc {
	in, after := p.closerDocs(close)
	g := dom.Group(
		p.tokenDoc(open),
		dom.Indent(dom.SoftLine(), p.exprDoc(x)),
		dom.SoftLine(),
		in,
	)
	if after.IsZero() {
		return g
	}
	return dom.Seq(g, after)
}
