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

// Package parser contains the lexer and parser for Flint source files.
//
// The parser is built for tooling rather than execution: it never evaluates
// anything, it keeps every byte of the input addressable through the token
// stream, and it recovers from syntax errors at statement boundaries so that
// a broken file still produces a complete tree. Regions it gave up on are
// covered by [github.com/flintlang/flint/ast.BadStmt] and
// [github.com/flintlang/flint/ast.BadExpr] nodes.
package parser
