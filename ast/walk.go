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

// Inspect traverses the tree rooted at n in depth-first order: it calls
// f(n), and if f returns true, recurses into each of n's children.
//
// Nil children are skipped, so f never sees a nil node.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *File:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}

	case *VarDecl:
		Inspect(n.Value, f)

	case *FnDecl:
		if n.Params != nil {
			Inspect(n.Params, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *ParamList:

	case *BlockStmt:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}

	case *ExprStmt:
		Inspect(n.X, f)

	case *IfStmt:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Orelse, f)

	case *WhileStmt:
		Inspect(n.Cond, f)
		Inspect(n.Body, f)

	case *ForStmt:
		Inspect(n.Init, f)
		Inspect(n.Cond, f)
		Inspect(n.Step, f)
		Inspect(n.Body, f)

	case *ReturnStmt:
		Inspect(n.Value, f)

	case *BranchStmt, *EmptyStmt, *BadStmt:

	case *Ident, *Literal, *BadExpr:

	case *ArrayLit:
		for _, e := range n.Elems {
			Inspect(e, f)
		}

	case *MapLit:
		for _, e := range n.Entries {
			Inspect(e, f)
		}

	case *MapEntry:
		Inspect(n.Key, f)
		Inspect(n.Value, f)

	case *FnLit:
		if n.Params != nil {
			Inspect(n.Params, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *CallExpr:
		Inspect(n.Fn, f)
		for _, e := range n.Args {
			Inspect(e, f)
		}

	case *IndexExpr:
		Inspect(n.X, f)
		Inspect(n.Index, f)

	case *SelectorExpr:
		Inspect(n.X, f)

	case *UnaryExpr:
		Inspect(n.X, f)

	case *BinaryExpr:
		Inspect(n.X, f)
		Inspect(n.Y, f)

	case *CondExpr:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Orelse, f)

	case *AssignExpr:
		Inspect(n.Lhs, f)
		Inspect(n.Rhs, f)

	case *ParenExpr:
		Inspect(n.X, f)
	}
}
