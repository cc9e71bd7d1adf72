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

package ast

import "github.com/flintlang/flint/token"

// VarDecl is a variable binding: let x = 1; or const x = 1;.
type VarDecl struct {
	Keyword token.Token // let or const
	Name    token.Token
	Eq      token.Token
	Value   Expr
	Semi    token.Token
}

// IsConst reports whether this declaration was introduced with const.
func (d *VarDecl) IsConst() bool {
	return d.Keyword.Text() == "const"
}

// Span implements [Node].
func (d *VarDecl) Span() token.Span {
	return token.Join(d.Keyword.Span(), d.Name.Span(), d.Eq.Span(), spanOf(d.Value), d.Semi.Span())
}

func (*VarDecl) isDecl() {}
func (*VarDecl) isStmt() {}

// FnDecl is a named function declaration: fn f(a, b) { ... }.
type FnDecl struct {
	Fn     token.Token
	Name   token.Token
	Params *ParamList
	Body   *BlockStmt
}

// Span implements [Node].
func (d *FnDecl) Span() token.Span {
	return token.Join(d.Fn.Span(), d.Name.Span(), spanOf(d.Params), spanOf(d.Body))
}

func (*FnDecl) isDecl() {}
func (*FnDecl) isStmt() {}

// ParamList is a parenthesized, comma-separated list of parameter names.
type ParamList struct {
	Lparen token.Token
	Names  []token.Token
	Commas []token.Token // Between and possibly after the names.
	Rparen token.Token
}

// Span implements [Node].
func (l *ParamList) Span() token.Span {
	return token.Join(l.Lparen.Span(), l.Rparen.Span())
}
