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

// Package ast defines Flint's syntax tree.
//
// The tree is deliberately concrete: every node records the tokens it was
// parsed from, punctuation included, and therefore knows its exact span in
// the source file. Tools that need the original text of any region, the
// formatter's verbatim fallback among them, can always get it back.
//
// Nodes that could not be parsed are represented rather than dropped:
// [BadStmt] and [BadExpr] cover the tokens of a region the parser gave up
// on, so a file with syntax errors still has a complete tree.
package ast

import "github.com/flintlang/flint/token"

// Node is implemented by all syntax tree nodes.
type Node interface {
	// Span returns the source region this node covers.
	Span() token.Span
}

// Decl is implemented by declaration nodes. Flint declarations are also
// statements; see [Stmt].
type Decl interface {
	Node
	isDecl()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	isStmt()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	isExpr()
}

// File is the root of the syntax tree for one source file.
type File struct {
	// The token stream the file was parsed from. Never nil.
	Stream *token.Stream

	// The file's statements, in source order.
	Stmts []Stmt
}

// Span implements [Node]; it covers the whole file.
func (f *File) Span() token.Span {
	return f.Stream.Span(0, len(f.Stream.Text()))
}

// spanOf is a nil-tolerant [Node.Span].
func spanOf(n Node) token.Span {
	if n == nil {
		return token.Span{}
	}
	return n.Span()
}
