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
	"github.com/flintlang/flint/token"
)

// binaryPrec ranks Flint's infix operators, C style. Higher binds tighter;
// zero means not an infix operator at all.
var binaryPrec = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func (p *parser) parseExpr() (ast.Expr, error) {
	return p.parseAssign()
}

// parseAssign parses assignment, the loosest-binding expression form.
// Assignment associates to the right: a = b = c is a = (b = c).
func (p *parser) parseAssign() (ast.Expr, error) {
	lhs, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if !p.at("=") {
		return lhs, nil
	}
	eq := p.pop()
	rhs, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpr{Lhs: lhs, Eq: eq, Rhs: rhs}, nil
}

func (p *parser) parseTernary() (ast.Expr, error) {
	cond, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if !p.at("?") {
		return cond, nil
	}

	question := p.pop()
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(":", "conditional expression")
	if err != nil {
		return nil, err
	}
	orelse, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.CondExpr{Cond: cond, Question: question, Then: then, Colon: colon, Orelse: orelse}, nil
}

// parseBinary is precedence climbing over binaryPrec. Operators of equal
// precedence associate to the left.
func (p *parser) parseBinary(min int) (ast.Expr, error) {
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec := binaryPrec[p.peek().Text()]
		if prec == 0 || prec < min {
			return x, nil
		}
		op := p.pop()
		y, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		x = &ast.BinaryExpr{X: x, Op: op, Y: y}
	}
}

func (p *parser) parseUnary() (ast.Expr, error) {
	if p.at("-") || p.at("!") {
		op := p.pop()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, X: x}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (ast.Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Text() {
		case "(":
			lparen := p.pop()
			args, commas, rparen, err := p.parseExprList(")", "call arguments")
			if err != nil {
				return nil, err
			}
			x = &ast.CallExpr{Fn: x, Lparen: lparen, Args: args, Commas: commas, Rparen: rparen}
		case "[":
			lbrack := p.pop()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			rbrack, err := p.expect("]", "index expression")
			if err != nil {
				return nil, err
			}
			x = &ast.IndexExpr{X: x, Lbrack: lbrack, Index: index, Rbrack: rbrack}
		case ".":
			dot := p.pop()
			name, err := p.expectIdent("member access")
			if err != nil {
				return nil, err
			}
			x = &ast.SelectorExpr{X: x, Dot: dot, Name: name}
		default:
			return x, nil
		}
	}
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	next := p.peek()
	switch next.Text() {
	case "(":
		lparen := p.pop()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(")", "parenthesized expression")
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Lparen: lparen, X: x, Rparen: rparen}, nil
	case "[":
		lbrack := p.pop()
		elems, commas, rbrack, err := p.parseExprList("]", "array literal")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLit{Lbrack: lbrack, Elems: elems, Commas: commas, Rbrack: rbrack}, nil
	case "{":
		return p.parseMap()
	case "fn":
		return p.parseFnLit()
	case "true", "false", "null":
		return &ast.Literal{Tok: p.pop()}, nil
	}

	switch next.Kind() {
	case token.Number, token.String:
		return &ast.Literal{Tok: p.pop()}, nil
	case token.Ident:
		if keywords[next.Text()] {
			break
		}
		return &ast.Ident{Name: p.pop()}, nil
	}
	return nil, p.unexpected("an expression", "expression")
}

// parseExprList parses the comma-separated expressions of a call or array
// up to (and including) the given closer. Trailing commas are allowed. A
// malformed element becomes an [ast.BadExpr] and the list continues at the
// next comma.
func (p *parser) parseExprList(closer, where string) ([]ast.Expr, []token.Token, token.Token, error) {
	var elems []ast.Expr
	var commas []token.Token
	for !p.at(closer) {
		from := p.peek()
		elem, err := p.parseExpr()
		if err != nil {
			if !errors.Is(err, errRecover) {
				return nil, nil, token.Zero, err
			}
			elem = p.syncExpr(from, closer)
		}
		elems = append(elems, elem)
		if !p.at(",") {
			break
		}
		commas = append(commas, p.pop())
	}
	end, err := p.expect(closer, where)
	if err != nil {
		return nil, nil, token.Zero, err
	}
	return elems, commas, end, nil
}

func (p *parser) parseMap() (ast.Expr, error) {
	lbrace := p.pop()
	m := &ast.MapLit{Lbrace: lbrace}
	for !p.at("}") {
		from := p.peek()
		entry, err := p.parseMapEntry()
		if err != nil {
			if !errors.Is(err, errRecover) {
				return nil, err
			}
			// Keep the damage inside this entry; the printer falls back
			// to the source text for it.
			entry = &ast.MapEntry{Key: p.syncExpr(from, "}")}
		}
		m.Entries = append(m.Entries, entry)
		if !p.at(",") {
			break
		}
		m.Commas = append(m.Commas, p.pop())
	}
	rbrace, err := p.expect("}", "map literal")
	if err != nil {
		return nil, err
	}
	m.Rbrace = rbrace
	return m, nil
}

func (p *parser) parseMapEntry() (*ast.MapEntry, error) {
	var key ast.Expr
	next := p.peek()
	switch {
	case next.Kind() == token.String:
		key = &ast.Literal{Tok: p.pop()}
	case next.Kind() == token.Ident && !keywords[next.Text()]:
		key = &ast.Ident{Name: p.pop()}
	default:
		return nil, p.unexpected("a map key", "map literal")
	}

	colon, err := p.expect(":", "map literal")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.MapEntry{Key: key, Colon: colon, Value: value}, nil
}

func (p *parser) parseFnLit() (ast.Expr, error) {
	fn := p.pop()
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FnLit{Fn: fn, Params: params, Body: body}, nil
}

// syncExpr consumes tokens until an element boundary: a comma, the given
// closer, a semicolon, a closing brace, or the end of the file. It returns
// a Bad node covering from through the last token consumed.
func (p *parser) syncExpr(from token.Token, closer string) *ast.BadExpr {
	if from.IsZero() {
		from = p.last
	}
	to := p.last
	for {
		next := p.peek()
		if next.IsZero() || next.Text() == "," || next.Text() == ";" ||
			next.Text() == "}" || next.Text() == closer {
			break
		}
		to = p.pop()
	}
	if to.IsZero() || to.Index() < from.Index() {
		to = p.pop()
		if to.IsZero() {
			to = from
		}
	}
	return &ast.BadExpr{From: from, To: to}
}
