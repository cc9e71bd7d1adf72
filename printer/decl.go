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
)

// varDeclDoc renders a let or const declaration. The semicolon sits outside
// any breakable group so that a comment trailing it cannot reflow the
// declaration itself.
func (p *printer) varDeclDoc(d *ast.VarDecl) dom.Doc {
	if d.Keyword.IsZero() || d.Name.IsZero() || d.Eq.IsZero() || d.Value == nil || d.Semi.IsZero() {
		return p.fallback(d.Span(), "declaration is missing pieces; keeping it as written")
	}
	return dom.Seq(
		p.tokenDoc(d.Keyword), dom.Text(" "),
		p.tokenDoc(d.Name), dom.Text(" "),
		p.tokenDoc(d.Eq),
		p.rhsDoc(d.Value),
		p.tokenDoc(d.Semi),
	)
}

// rhsDoc renders a value after an = or a return keyword. A value that can
// break internally hugs the line it starts on; one that cannot, or one led
// by comments on their own lines, gets an indented line to drop to when the
// line runs long.
func (p *printer) rhsDoc(value ast.Expr) dom.Doc {
	if p.comments.hasOwnLineLeading(spanOf(value).Start) || !hugsLine(value) {
		return dom.Group(dom.Indent(dom.Line(), p.exprDoc(value)))
	}
	return dom.Seq(dom.Text(" "), p.exprDoc(value))
}

// hugsLine reports whether a value offers break opportunities of its own: a
// delimited list, an operator chain, branches. Identifiers, literals, and
// chains of selectors or unary operators over them have none.
func hugsLine(value ast.Expr) bool {
	switch e := value.(type) {
	case *ast.Ident, *ast.Literal:
		return false
	case *ast.SelectorExpr:
		return e.X != nil && hugsLine(e.X)
	case *ast.UnaryExpr:
		return e.X != nil && hugsLine(e.X)
	default:
		return value != nil
	}
}

func (p *printer) fnDeclDoc(d *ast.FnDecl) dom.Doc {
	if d.Fn.IsZero() || d.Name.IsZero() || d.Params == nil || d.Body == nil {
		return p.fallback(d.Span(), "function declaration is missing pieces; keeping it as written")
	}
	return dom.Seq(
		p.tokenDoc(d.Fn), dom.Text(" "),
		p.tokenDoc(d.Name),
		p.paramsDoc(d.Params),
		dom.Text(" "),
		p.blockDoc(d.Body),
	)
}

// paramsDoc renders a parameter list, wrapping like any delimited list.
func (p *printer) paramsDoc(l *ast.ParamList) dom.Doc {
	if l.Lparen.IsZero() || l.Rparen.IsZero() {
		return p.fallback(l.Span(), "parameter list is missing a parenthesis; keeping it as written")
	}
	items := make([]dom.Doc, len(l.Names))
	for i, name := range l.Names {
		items[i] = p.tokenDoc(name)
	}
	return p.listDoc(l, l.Lparen, items, l.Commas, l.Rparen)
}
