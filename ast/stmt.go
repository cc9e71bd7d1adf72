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

// BlockStmt is a braced statement list.
type BlockStmt struct {
	Lbrace token.Token
	Stmts  []Stmt
	Rbrace token.Token
}

// Span implements [Node].
func (s *BlockStmt) Span() token.Span {
	return token.Join(s.Lbrace.Span(), s.Rbrace.Span())
}

func (*BlockStmt) isStmt() {}

// ExprStmt is an expression evaluated for its effect: f(x);.
type ExprStmt struct {
	X    Expr
	Semi token.Token
}

// Span implements [Node].
func (s *ExprStmt) Span() token.Span {
	return token.Join(spanOf(s.X), s.Semi.Span())
}

func (*ExprStmt) isStmt() {}

// IfStmt is a conditional, with an optional else arm. Any statement can be
// an arm; else-if chains are [IfStmt] arms.
type IfStmt struct {
	If     token.Token
	Lparen token.Token
	Cond   Expr
	Rparen token.Token
	Then   Stmt
	Else   token.Token // Zero if there is no else arm.
	Orelse Stmt        // Nil if there is no else arm.
}

// Span implements [Node].
func (s *IfStmt) Span() token.Span {
	return token.Join(s.If.Span(), s.Rparen.Span(), spanOf(s.Then), s.Else.Span(), spanOf(s.Orelse))
}

func (*IfStmt) isStmt() {}

// WhileStmt is a while loop.
type WhileStmt struct {
	While  token.Token
	Lparen token.Token
	Cond   Expr
	Rparen token.Token
	Body   Stmt
}

// Span implements [Node].
func (s *WhileStmt) Span() token.Span {
	return token.Join(s.While.Span(), s.Rparen.Span(), spanOf(s.Body))
}

func (*WhileStmt) isStmt() {}

// ForStmt is a C-style three-clause loop: for (init; cond; step) body.
//
// Init is a [VarDecl], [ExprStmt], or [EmptyStmt]; its semicolon is the
// clause separator. Cond and Step may be nil.
type ForStmt struct {
	For    token.Token
	Lparen token.Token
	Init   Stmt
	Cond   Expr
	Semi   token.Token // After Cond.
	Step   Expr
	Rparen token.Token
	Body   Stmt
}

// Span implements [Node].
func (s *ForStmt) Span() token.Span {
	return token.Join(s.For.Span(), s.Rparen.Span(), spanOf(s.Body))
}

func (*ForStmt) isStmt() {}

// ReturnStmt is a return, with an optional value.
type ReturnStmt struct {
	Return token.Token
	Value  Expr // Nil for a bare return.
	Semi   token.Token
}

// Span implements [Node].
func (s *ReturnStmt) Span() token.Span {
	return token.Join(s.Return.Span(), spanOf(s.Value), s.Semi.Span())
}

func (*ReturnStmt) isStmt() {}

// BranchStmt is a break; or continue;.
type BranchStmt struct {
	Keyword token.Token
	Semi    token.Token
}

// Span implements [Node].
func (s *BranchStmt) Span() token.Span {
	return token.Join(s.Keyword.Span(), s.Semi.Span())
}

func (*BranchStmt) isStmt() {}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Semi token.Token
}

// Span implements [Node].
func (s *EmptyStmt) Span() token.Span {
	return s.Semi.Span()
}

func (*EmptyStmt) isStmt() {}

// BadStmt covers the tokens of a statement the parser could not make sense
// of. From and To are the first and last tokens of the region, inclusive.
type BadStmt struct {
	From, To token.Token
}

// Span implements [Node].
func (s *BadStmt) Span() token.Span {
	return token.Join(s.From.Span(), s.To.Span())
}

func (*BadStmt) isStmt() {}
