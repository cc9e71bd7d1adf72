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

// Ident is a name.
type Ident struct {
	Name token.Token
}

// Span implements [Node].
func (e *Ident) Span() token.Span {
	return e.Name.Span()
}

func (*Ident) isExpr() {}

// Literal is a number, string, true, false, or null.
type Literal struct {
	Tok token.Token
}

// IsString reports whether this literal is a quoted string.
func (e *Literal) IsString() bool {
	return e.Tok.Kind() == token.String
}

// Span implements [Node].
func (e *Literal) Span() token.Span {
	return e.Tok.Span()
}

func (*Literal) isExpr() {}

// ArrayLit is an array literal: [a, b, c].
type ArrayLit struct {
	Lbrack token.Token
	Elems  []Expr
	Commas []token.Token
	Rbrack token.Token
}

// Span implements [Node].
func (e *ArrayLit) Span() token.Span {
	return token.Join(e.Lbrack.Span(), e.Rbrack.Span())
}

func (*ArrayLit) isExpr() {}

// MapLit is a map literal: {a: 1, "b c": 2}.
type MapLit struct {
	Lbrace  token.Token
	Entries []*MapEntry
	Commas  []token.Token
	Rbrace  token.Token
}

// Span implements [Node].
func (e *MapLit) Span() token.Span {
	return token.Join(e.Lbrace.Span(), e.Rbrace.Span())
}

func (*MapLit) isExpr() {}

// MapEntry is one key: value pair of a [MapLit].
type MapEntry struct {
	Key   Expr // An [Ident] or string [Literal].
	Colon token.Token
	Value Expr
}

// Span implements [Node].
func (e *MapEntry) Span() token.Span {
	return token.Join(spanOf(e.Key), e.Colon.Span(), spanOf(e.Value))
}

func (*MapEntry) isExpr() {}

// FnLit is an anonymous function: fn (a, b) { ... }.
type FnLit struct {
	Fn     token.Token
	Params *ParamList
	Body   *BlockStmt
}

// Span implements [Node].
func (e *FnLit) Span() token.Span {
	return token.Join(e.Fn.Span(), spanOf(e.Params), spanOf(e.Body))
}

func (*FnLit) isExpr() {}

// CallExpr is a function call: f(a, b).
type CallExpr struct {
	Fn     Expr
	Lparen token.Token
	Args   []Expr
	Commas []token.Token
	Rparen token.Token
}

// Span implements [Node].
func (e *CallExpr) Span() token.Span {
	return token.Join(spanOf(e.Fn), e.Rparen.Span())
}

func (*CallExpr) isExpr() {}

// IndexExpr is a subscript: a[i].
type IndexExpr struct {
	X      Expr
	Lbrack token.Token
	Index  Expr
	Rbrack token.Token
}

// Span implements [Node].
func (e *IndexExpr) Span() token.Span {
	return token.Join(spanOf(e.X), e.Rbrack.Span())
}

func (*IndexExpr) isExpr() {}

// SelectorExpr is a member access: a.b.
type SelectorExpr struct {
	X    Expr
	Dot  token.Token
	Name token.Token
}

// Span implements [Node].
func (e *SelectorExpr) Span() token.Span {
	return token.Join(spanOf(e.X), e.Dot.Span(), e.Name.Span())
}

func (*SelectorExpr) isExpr() {}

// UnaryExpr is a prefix operation: -x or !x.
type UnaryExpr struct {
	Op token.Token
	X  Expr
}

// Span implements [Node].
func (e *UnaryExpr) Span() token.Span {
	return token.Join(e.Op.Span(), spanOf(e.X))
}

func (*UnaryExpr) isExpr() {}

// BinaryExpr is an infix operation: x + y.
type BinaryExpr struct {
	X  Expr
	Op token.Token
	Y  Expr
}

// Span implements [Node].
func (e *BinaryExpr) Span() token.Span {
	return token.Join(spanOf(e.X), e.Op.Span(), spanOf(e.Y))
}

func (*BinaryExpr) isExpr() {}

// CondExpr is a ternary conditional: c ? a : b.
type CondExpr struct {
	Cond     Expr
	Question token.Token
	Then     Expr
	Colon    token.Token
	Orelse   Expr
}

// Span implements [Node].
func (e *CondExpr) Span() token.Span {
	return token.Join(spanOf(e.Cond), e.Question.Span(), spanOf(e.Then), e.Colon.Span(), spanOf(e.Orelse))
}

func (*CondExpr) isExpr() {}

// AssignExpr is an assignment: x = y. Assignment is an expression and
// associates to the right.
type AssignExpr struct {
	Lhs Expr
	Eq  token.Token
	Rhs Expr
}

// Span implements [Node].
func (e *AssignExpr) Span() token.Span {
	return token.Join(spanOf(e.Lhs), e.Eq.Span(), spanOf(e.Rhs))
}

func (*AssignExpr) isExpr() {}

// ParenExpr is a parenthesized expression: (x).
type ParenExpr struct {
	Lparen token.Token
	X      Expr
	Rparen token.Token
}

// Span implements [Node].
func (e *ParenExpr) Span() token.Span {
	return token.Join(e.Lparen.Span(), e.Rparen.Span())
}

func (*ParenExpr) isExpr() {}

// BadExpr covers the tokens of an expression the parser could not make
// sense of. From and To are the first and last tokens of the region,
// inclusive; they may be the same token.
type BadExpr struct {
	From, To token.Token
}

// Span implements [Node].
func (e *BadExpr) Span() token.Span {
	return token.Join(e.From.Span(), e.To.Span())
}

func (*BadExpr) isExpr() {}
