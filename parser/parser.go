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

package parser

import (
	"errors"

	"github.com/flintlang/flint/ast"
	"github.com/flintlang/flint/reporter"
	"github.com/flintlang/flint/token"
)

// errRecover is a sentinel returned within the parser when an error has
// already been handed to the reporter and the parse should resynchronize at
// the nearest statement or list element. It never escapes [Parse].
var errRecover = errors.New("recovering from syntax error")

// keywords are the identifiers that Flint reserves.
var keywords = map[string]bool{
	"let": true, "const": true, "fn": true,
	"if": true, "else": true, "while": true, "for": true,
	"return": true, "break": true, "continue": true,
	"true": true, "false": true, "null": true,
}

// Parse parses the source text of a single Flint file.
//
// Syntax problems go to handler as they are found; as long as the handler
// does not abort, parsing recovers at statement boundaries and the bad
// regions are covered by [ast.BadStmt] and [ast.BadExpr] nodes, so the
// returned tree is complete even for a broken file. The error is nil only
// if nothing was reported.
//
// The returned File is nil only when the text could not be tokenized at
// all, or when the handler aborted during lexing.
func Parse(filename, text string, handler *reporter.Handler) (*ast.File, error) {
	stream := token.NewStream(filename, text)
	if err := lex(stream, handler); err != nil {
		return nil, err
	}

	p := &parser{
		stream:  stream,
		cursor:  stream.Cursor(),
		handler: handler,
	}
	file := &ast.File{Stream: stream}
	for !p.cursor.Done() {
		stmt, err := p.parseStmtRecovering()
		if err != nil {
			return file, err
		}
		file.Stmts = append(file.Stmts, stmt)
	}
	return file, handler.Err()
}

type parser struct {
	stream  *token.Stream
	cursor  *token.Cursor
	handler *reporter.Handler

	// The most recently consumed token; recovery uses it to bound the
	// region a Bad node covers.
	last token.Token
}

func (p *parser) peek() token.Token {
	return p.cursor.Peek()
}

func (p *parser) pop() token.Token {
	tok := p.cursor.Pop()
	if !tok.IsZero() {
		p.last = tok
	}
	return tok
}

// at reports whether the next significant token has exactly this text.
func (p *parser) at(text string) bool {
	return p.peek().Text() == text
}

// expect consumes the next token if its text matches want, and otherwise
// reports what was found instead.
func (p *parser) expect(want, where string) (token.Token, error) {
	if p.at(want) {
		return p.pop(), nil
	}
	return token.Zero, p.unexpected("`"+want+"`", where)
}

// expectIdent consumes the next token if it is a non-keyword identifier.
func (p *parser) expectIdent(where string) (token.Token, error) {
	next := p.peek()
	if next.Kind() == token.Ident && !keywords[next.Text()] {
		return p.pop(), nil
	}
	return token.Zero, p.unexpected("an identifier", where)
}

// unexpected reports the next token (or the end of the file) as a syntax
// error. The returned error is the handler's abort error if it has one, and
// [errRecover] otherwise.
func (p *parser) unexpected(want, where string) error {
	var err error
	if next := p.peek(); next.IsZero() {
		err = p.handler.HandleErrorf(p.stream.EOF(), "unexpected end of file in %s, expecting %s", where, want)
	} else {
		err = p.handler.HandleErrorf(next, "unexpected %q in %s, expecting %s", next.Text(), where, want)
	}
	if err != nil {
		return err
	}
	return errRecover
}

// parseStmtRecovering parses one statement. If the statement is malformed,
// it consumes tokens through the next semicolon (or up to the next closing
// brace) and yields an [ast.BadStmt] covering them, so that parsing can
// continue with the statement after the damage.
func (p *parser) parseStmtRecovering() (ast.Stmt, error) {
	from := p.peek()
	stmt, err := p.parseStmt()
	switch {
	case err == nil:
		return stmt, nil
	case !errors.Is(err, errRecover):
		return nil, err
	}

	if from.IsZero() {
		from = p.last
	}
	to := p.last
	for {
		next := p.peek()
		if next.IsZero() || next.Text() == "}" {
			break
		}
		to = p.pop()
		if to.Text() == ";" {
			break
		}
	}
	if to.IsZero() || to.Index() < from.Index() {
		// The parse failed without consuming anything, on a token the
		// loop above refuses to cross. Take it, or the loop calling us
		// would spin.
		to = p.pop()
		if to.IsZero() {
			to = from
		}
	}
	return &ast.BadStmt{From: from, To: to}, nil
}

func (p *parser) parseStmt() (ast.Stmt, error) {
	switch p.peek().Text() {
	case "let", "const":
		return p.parseVarDecl()
	case "fn":
		// A named function is a declaration; an anonymous one is an
		// expression, and can head an expression statement.
		lookahead := p.cursor.Clone()
		lookahead.Pop()
		if next := lookahead.Peek(); next.Kind() == token.Ident {
			return p.parseFnDecl()
		}
		return p.parseExprStmt()
	case "{":
		return p.parseBlock()
	case "if":
		return p.parseIf()
	case "while":
		return p.parseWhile()
	case "for":
		return p.parseFor()
	case "return":
		return p.parseReturn()
	case "break", "continue":
		keyword := p.pop()
		semi, err := p.expect(";", keyword.Text()+" statement")
		if err != nil {
			return nil, err
		}
		return &ast.BranchStmt{Keyword: keyword, Semi: semi}, nil
	case ";":
		return &ast.EmptyStmt{Semi: p.pop()}, nil
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseVarDecl() (ast.Stmt, error) {
	keyword := p.pop()
	where := keyword.Text() + " declaration"

	name, err := p.expectIdent(where)
	if err != nil {
		return nil, err
	}
	eq, err := p.expect("=", where)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(";", where)
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Keyword: keyword, Name: name, Eq: eq, Value: value, Semi: semi}, nil
}

func (p *parser) parseFnDecl() (ast.Stmt, error) {
	fn := p.pop()
	name, err := p.expectIdent("function declaration")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FnDecl{Fn: fn, Name: name, Params: params, Body: body}, nil
}

func (p *parser) parseParams() (*ast.ParamList, error) {
	lparen, err := p.expect("(", "parameter list")
	if err != nil {
		return nil, err
	}
	list := &ast.ParamList{Lparen: lparen}
	for !p.at(")") {
		name, err := p.expectIdent("parameter list")
		if err != nil {
			return nil, err
		}
		list.Names = append(list.Names, name)
		if !p.at(",") {
			break
		}
		list.Commas = append(list.Commas, p.pop())
	}
	list.Rparen, err = p.expect(")", "parameter list")
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (p *parser) parseBlock() (*ast.BlockStmt, error) {
	lbrace, err := p.expect("{", "block")
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{Lbrace: lbrace}
	for {
		next := p.peek()
		if next.IsZero() || next.Text() == "}" {
			break
		}
		stmt, err := p.parseStmtRecovering()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	block.Rbrace, err = p.expect("}", "block")
	if err != nil {
		return nil, err
	}
	return block, nil
}

func (p *parser) parseIf() (ast.Stmt, error) {
	ifTok := p.pop()
	lparen, err := p.expect("(", "if condition")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(")", "if condition")
	if err != nil {
		return nil, err
	}
	then, err := p.parseStmtRecovering()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{If: ifTok, Lparen: lparen, Cond: cond, Rparen: rparen, Then: then}
	if p.at("else") {
		stmt.Else = p.pop()
		stmt.Orelse, err = p.parseStmtRecovering()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *parser) parseWhile() (ast.Stmt, error) {
	while := p.pop()
	lparen, err := p.expect("(", "while condition")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(")", "while condition")
	if err != nil {
		return nil, err
	}
	body, err := p.parseStmtRecovering()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{While: while, Lparen: lparen, Cond: cond, Rparen: rparen, Body: body}, nil
}

func (p *parser) parseFor() (ast.Stmt, error) {
	forTok := p.pop()
	lparen, err := p.expect("(", "for clauses")
	if err != nil {
		return nil, err
	}

	// The init clause is a statement that carries its own semicolon: a
	// variable declaration, an expression statement, or just the semicolon.
	var init ast.Stmt
	switch p.peek().Text() {
	case "let", "const":
		init, err = p.parseVarDecl()
	case ";":
		init = &ast.EmptyStmt{Semi: p.pop()}
	default:
		init, err = p.parseExprStmt()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.at(";") {
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	semi, err := p.expect(";", "for clauses")
	if err != nil {
		return nil, err
	}

	var step ast.Expr
	if !p.at(")") {
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	rparen, err := p.expect(")", "for clauses")
	if err != nil {
		return nil, err
	}

	body, err := p.parseStmtRecovering()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{
		For: forTok, Lparen: lparen,
		Init: init, Cond: cond, Semi: semi, Step: step,
		Rparen: rparen, Body: body,
	}, nil
}

func (p *parser) parseReturn() (ast.Stmt, error) {
	ret := p.pop()
	var value ast.Expr
	var err error
	if !p.at(";") {
		value, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	semi, err := p.expect(";", "return statement")
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Return: ret, Value: value, Semi: semi}, nil
}

func (p *parser) parseExprStmt() (ast.Stmt, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(";", "statement")
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x, Semi: semi}, nil
}
