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
	"strings"
	"unicode/utf8"

	"github.com/flintlang/flint/reporter"
	"github.com/flintlang/flint/token"
)

// lexer is a Flint lexer: a cursor over the text of a [token.Stream] that
// has not been filled in yet.
type lexer struct {
	*token.Stream
	handler *reporter.Handler

	cursor int
}

// lex performs lexical analysis on the file held by stream, reporting any
// problems to handler.
//
// Every byte of the file becomes part of some token: whitespace and comments
// become [token.Space] and [token.Comment] tokens, and garbage becomes
// [token.Unrecognized] tokens. On success the stream is frozen. A non-nil
// error means lexing could not produce a complete stream; the stream is left
// unfrozen and must be discarded.
func lex(stream *token.Stream, handler *reporter.Handler) error {
	l := &lexer{Stream: stream, handler: handler}

	if !utf8.ValidString(l.Text()) {
		idx := invalidByte(l.Text())
		if err := handler.HandleErrorf(l.Span(idx, idx+1), "file is not valid UTF-8; invalid byte at offset %d", idx); err != nil {
			return err
		}
		return handler.Err()
	}

	for !l.done() {
		start := l.cursor
		r := l.pop()

		switch {
		case strings.ContainsRune(" \t\r\n\f\v", r):
			l.takeWhile(func(r rune) bool {
				return strings.ContainsRune(" \t\r\n\f\v", r)
			})
			l.push(start, token.Space)

		case r == '/' && l.peek() == '/':
			l.cursor++ // Skip the second /.

			// Line comments do not include their terminating newline; it
			// becomes part of the following Space token.
			if idx := strings.IndexByte(l.rest(), '\n'); idx >= 0 {
				l.cursor += idx
			} else {
				l.cursor += len(l.rest())
			}
			l.push(start, token.Comment)

		case r == '/' && l.peek() == '*':
			l.cursor++ // Skip the *.
			if !l.seekPast("*/") {
				l.cursor = len(l.Text())
				if err := handler.HandleErrorf(l.Span(start, start+2), "block comment never terminates, unexpected EOF"); err != nil {
					return err
				}
			}
			l.push(start, token.Comment)

		case r == '"' || r == '\'':
			if err := l.lexString(start, r); err != nil {
				return err
			}

		case isDigit(r), r == '.' && isDigit(l.peek()):
			l.lexNumber()
			l.push(start, token.Number)

		case r == '_' || isAlpha(r):
			l.takeWhile(func(r rune) bool {
				return r == '_' || isAlpha(r) || isDigit(r)
			})
			l.push(start, token.Ident)

		case r == '&' && l.peek() == '&', r == '|' && l.peek() == '|':
			l.pop()
			l.push(start, token.Punct)

		case strings.ContainsRune("=!<>", r):
			if l.peek() == '=' {
				l.pop()
			}
			l.push(start, token.Punct)

		case strings.ContainsRune("+-*/%?:.,;()[]{}", r):
			l.push(start, token.Punct)

		default:
			l.takeWhile(func(r rune) bool {
				return !strings.ContainsRune(" \t\r\n\f\v&|=!<>+-*/%?:.,;()[]{}\"'", r) &&
					!isDigit(r) && !isAlpha(r) && r != '_'
			})
			tok := l.push(start, token.Unrecognized)
			if err := handler.HandleErrorf(tok, "unrecognized token %q", tok.Text()); err != nil {
				return err
			}
		}
	}

	l.Freeze()
	return nil
}

// lexString scans a string literal. The opening quote has been consumed
// already; start is its offset.
//
// Escapes are not decoded: a backslash simply makes the next rune part of
// the token, whatever it is. The literal must close with the same quote
// before the end of its line.
func (l *lexer) lexString(start int, quote rune) error {
	for {
		r := l.pop()
		switch r {
		case quote:
			l.push(start, token.String)
			return nil
		case '\\':
			if next := l.peek(); next != -1 && next != '\n' {
				l.pop()
			}
		case '\n', -1:
			msg := "unexpected EOF before end of string literal"
			if r == '\n' {
				l.cursor--
				msg = "encountered end-of-line before end of string literal"
			}
			tok := l.push(start, token.String)
			return l.handler.HandleErrorf(tok, "%s", msg)
		}
	}
}

// lexNumber scans the tail of a number literal. Values are never computed;
// the formatter passes number text through untouched, so the scan is
// deliberately loose and malformed numbers surface as parse or runtime
// errors elsewhere.
func (l *lexer) lexNumber() {
	allowSign := false
	for !l.done() {
		r := l.peek()
		switch {
		case r == '+' || r == '-':
			if !allowSign {
				return
			}
		case r == '.' || r == '_' || isDigit(r) || isAlpha(r):
		default:
			return
		}
		allowSign = r == 'e' || r == 'E'
		l.pop()
	}
}

// done returns whether or not we're done lexing runes.
func (l *lexer) done() bool {
	return l.cursor >= len(l.Text())
}

// rest returns unlexed text.
func (l *lexer) rest() string {
	return l.Text()[l.cursor:]
}

// peek peeks the next rune. Returns -1 if l.done().
func (l *lexer) peek() rune {
	return decodeRune(l.rest())
}

// pop consumes the next rune. Returns -1 if l.done().
func (l *lexer) pop() rune {
	r := l.peek()
	if r != -1 {
		l.cursor += utf8.RuneLen(r)
	}
	return r
}

// takeWhile consumes runes while they match the given predicate.
func (l *lexer) takeWhile(f func(rune) bool) {
	for {
		r := l.peek()
		if r == -1 || !f(r) {
			return
		}
		l.pop()
	}
}

// seekPast seeks until the given needle is found, leaving the cursor after
// it. Reports whether the needle was found; on failure the cursor does not
// move.
func (l *lexer) seekPast(needle string) bool {
	if idx := strings.Index(l.rest(), needle); idx != -1 {
		l.cursor += idx + len(needle)
		return true
	}
	return false
}

// push mints the token covering start up to the cursor.
func (l *lexer) push(start int, kind token.Kind) token.Token {
	return l.Push(kind, l.cursor-start)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// decodeRune is a wrapper around [utf8.DecodeRuneInString] that returns -1
// on empty or invalid input, rather than RuneError (which is a valid rune).
func decodeRune(s string) rune {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n < 2 {
		return -1
	}
	return r
}

// invalidByte returns the offset of the first non-UTF-8 byte in s, which
// must contain one.
func invalidByte(s string) int {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n < 2 {
			return i
		}
		i += n
	}
	return 0
}
