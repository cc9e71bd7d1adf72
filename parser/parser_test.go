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

package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlang/flint/ast"
	"github.com/flintlang/flint/parser"
	"github.com/flintlang/flint/reporter"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "decls",
			src:  `let x = 1; const y = "s";`,
			want: `(file (let x 1) (const y "s"))`,
		},
		{
			name: "precedence",
			src:  `x = a + b * c - d % e;`,
			want: `(file (expr (= x (- (+ a (* b c)) (% d e)))))`,
		},
		{
			name: "logic",
			src:  `f(a && b || !c == d);`,
			want: `(file (expr (call f (|| (&& a b) (== (! c) d)))))`,
		},
		{
			name: "ternary",
			src:  `x = c ? a : b ? d : e;`,
			want: `(file (expr (= x (?: c a (?: b d e)))))`,
		},
		{
			name: "postfix-chain",
			src:  `obj.items[0].run(1, 2);`,
			want: `(file (expr (call (sel (index (sel obj items) 0) run) 1 2)))`,
		},
		{
			name: "unary",
			src:  `-a.b; !!ok;`,
			want: `(file (expr (- (sel a b))) (expr (! (! ok))))`,
		},
		{
			name: "paren",
			src:  `let y = (a + b) * c;`,
			want: `(file (let y (* (paren (+ a b)) c)))`,
		},
		{
			name: "array",
			src:  `let a = [1, 2, [3]];`,
			want: `(file (let a (array 1 2 (array 3))))`,
		},
		{
			name: "map",
			src:  `let m = {x: 1, "y z": fn (q) { return q; }};`,
			want: `(file (let m (map (x 1) ("y z" (fn (params q) (block (return q)))))))`,
		},
		{
			name: "trailing-commas",
			src:  `f(a, b,); g([1,]);`,
			want: `(file (expr (call f a b)) (expr (call g (array 1))))`,
		},
		{
			name: "fn-decl-and-lit",
			src:  `fn add(a, b) { return a + b; } let id = fn (x) { return x; };`,
			want: `(file (fn add (params a b) (block (return (+ a b)))) (let id (fn (params x) (block (return x)))))`,
		},
		{
			name: "if-chain",
			src:  `if (a) { f(); } else if (b) g(); else { h(); }`,
			want: `(file (if a (block (expr (call f))) (if b (expr (call g)) (block (expr (call h))))))`,
		},
		{
			name: "while",
			src:  `while (true) { break; }`,
			want: `(file (while true (block (break))))`,
		},
		{
			name: "for",
			src:  `for (let i = 0; i < n; i = i + 1) { f(i); }`,
			want: `(file (for (let i 0) (< i n) (= i (+ i 1)) (block (expr (call f i)))))`,
		},
		{
			name: "for-empty-clauses",
			src:  `for (;;) ;`,
			want: `(file (for (empty) - - (empty)))`,
		},
		{
			name: "literals",
			src:  `f(null, true, false);`,
			want: `(file (expr (call f null true false)))`,
		},
		{
			name: "empty",
			src:  "",
			want: `(file)`,
		},
		{
			name: "only-trivia",
			src:  "  // nothing here\n\n",
			want: `(file)`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			file, err := parser.Parse("test.fl", test.src, reporter.NewHandler(nil))
			require.NoError(t, err)

			if diff := cmp.Diff(test.want, sexp(file)); diff != "" {
				t.Errorf("unexpected tree (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		want     string
		wantErrs int
	}{
		{
			name:     "missing-name",
			src:      `let = 1; let y = 2;`,
			want:     `(file (bad "let = 1;") (let y 2))`,
			wantErrs: 1,
		},
		{
			name:     "stray-closer",
			src:      `} let x = 1;`,
			want:     `(file (bad "}") (let x 1))`,
			wantErrs: 1,
		},
		{
			name:     "bad-argument",
			src:      `f(a, let, b);`,
			want:     `(file (expr (call f a (bad "let") b)))`,
			wantErrs: 1,
		},
		{
			name:     "bad-map-key",
			src:      `let m = {1: 2, b: 3};`,
			want:     `(file (let m (map (bad "1: 2") (b 3))))`,
			wantErrs: 1,
		},
		{
			name:     "unterminated-string",
			src:      `let s = "abc;`,
			want:     `(file (bad "let s = \"abc;"))`,
			wantErrs: 2,
		},
		{
			name:     "unclosed-block",
			src:      `fn f() { return 1;`,
			want:     `(file (bad "fn f() { return 1;"))`,
			wantErrs: 1,
		},
		{
			name:     "bad-statement-in-block",
			src:      `fn f() { let ; return 1; }`,
			want:     `(file (fn f (params) (block (bad "let ;") (return 1))))`,
			wantErrs: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var errs []reporter.ErrorWithPos
			h := reporter.NewHandler(reporter.NewReporter(
				func(err reporter.ErrorWithPos) error {
					errs = append(errs, err)
					return nil
				},
				nil,
			))

			file, err := parser.Parse("test.fl", test.src, h)
			require.ErrorIs(t, err, reporter.ErrInvalidSource)
			require.NotNil(t, file)
			assert.Len(t, errs, test.wantErrs)

			if diff := cmp.Diff(test.want, sexp(file)); diff != "" {
				t.Errorf("unexpected tree (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseAborts(t *testing.T) {
	t.Parallel()

	// A nil reporter aborts on the first error.
	file, err := parser.Parse("test.fl", `let = 1; let y = 2;`, reporter.NewHandler(nil))
	require.Error(t, err)
	require.NotNil(t, file)
	assert.Empty(t, file.Stmts)
	assert.Contains(t, err.Error(), "test.fl:1:5")
}

func TestParseRejectsBinary(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(reporter.NewReporter(
		func(reporter.ErrorWithPos) error { return nil },
		nil,
	))
	file, err := parser.Parse("test.fl", "let \xff = 1;", h)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Nil(t, file)
}

// sexp renders a tree as a compact s-expression, which keeps the expected
// values in this file readable.
func sexp(n ast.Node) string {
	if n == nil {
		return "-"
	}
	switch n := n.(type) {
	case *ast.File:
		return group("file", stmts(n.Stmts)...)
	case *ast.VarDecl:
		return group(n.Keyword.Text(), n.Name.Text(), sexp(n.Value))
	case *ast.FnDecl:
		return group("fn", n.Name.Text(), params(n.Params), sexp(n.Body))
	case *ast.BlockStmt:
		return group("block", stmts(n.Stmts)...)
	case *ast.ExprStmt:
		return group("expr", sexp(n.X))
	case *ast.IfStmt:
		if n.Orelse == nil {
			return group("if", sexp(n.Cond), sexp(n.Then))
		}
		return group("if", sexp(n.Cond), sexp(n.Then), sexp(n.Orelse))
	case *ast.WhileStmt:
		return group("while", sexp(n.Cond), sexp(n.Body))
	case *ast.ForStmt:
		return group("for", sexp(n.Init), sexp(n.Cond), sexp(n.Step), sexp(n.Body))
	case *ast.ReturnStmt:
		if n.Value == nil {
			return "(return)"
		}
		return group("return", sexp(n.Value))
	case *ast.BranchStmt:
		return group(n.Keyword.Text())
	case *ast.EmptyStmt:
		return "(empty)"
	case *ast.BadStmt:
		return fmt.Sprintf("(bad %q)", n.Span().Text())
	case *ast.Ident:
		return n.Name.Text()
	case *ast.Literal:
		return n.Tok.Text()
	case *ast.ArrayLit:
		return group("array", exprs(n.Elems)...)
	case *ast.MapLit:
		parts := make([]string, len(n.Entries))
		for i, e := range n.Entries {
			parts[i] = sexp(e)
		}
		return group("map", parts...)
	case *ast.MapEntry:
		if n.Colon.IsZero() {
			return sexp(n.Key)
		}
		return group(sexp(n.Key), sexp(n.Value))
	case *ast.FnLit:
		return group("fn", params(n.Params), sexp(n.Body))
	case *ast.CallExpr:
		return group("call", append([]string{sexp(n.Fn)}, exprs(n.Args)...)...)
	case *ast.IndexExpr:
		return group("index", sexp(n.X), sexp(n.Index))
	case *ast.SelectorExpr:
		return group("sel", sexp(n.X), n.Name.Text())
	case *ast.UnaryExpr:
		return group(n.Op.Text(), sexp(n.X))
	case *ast.BinaryExpr:
		return group(n.Op.Text(), sexp(n.X), sexp(n.Y))
	case *ast.CondExpr:
		return group("?:", sexp(n.Cond), sexp(n.Then), sexp(n.Orelse))
	case *ast.AssignExpr:
		return group("=", sexp(n.Lhs), sexp(n.Rhs))
	case *ast.ParenExpr:
		return group("paren", sexp(n.X))
	case *ast.BadExpr:
		return fmt.Sprintf("(bad %q)", n.Span().Text())
	default:
		return fmt.Sprintf("<%T>", n)
	}
}

func group(head string, parts ...string) string {
	return "(" + strings.Join(append([]string{head}, parts...), " ") + ")"
}

func stmts(list []ast.Stmt) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = sexp(s)
	}
	return out
}

func exprs(list []ast.Expr) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = sexp(e)
	}
	return out
}

func params(l *ast.ParamList) string {
	parts := []string{"params"}
	for _, name := range l.Names {
		parts = append(parts, name.Text())
	}
	return group(parts[0], parts[1:]...)
}
