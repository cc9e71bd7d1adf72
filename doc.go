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

// Package flint provides the entry point for the Flint source code
// formatter. Formatting here means parsing a file, deciding a layout for
// every construct the formatter understands, and printing the result
// back out; anything the formatter does not understand is kept exactly
// as written, so a formatted file always means what the original meant.
//
// The sub-packages implement the individual phases and can be used on
// their own:
//  1. Tokenize and parse into a syntax tree.
//     Also see: [parser.Parse]
//  2. Decide the layout and print.
//     Also see: [printer.PrintFile]
//
// The layout language the printer targets lives in the dom package, and
// the diagnostics produced along the way flow through [reporter]. This
// package ties the phases together, adds file resolution, and formats
// independent files in parallel.
//
// # Resolvers
//
// A Resolver is how the formatter locates the files it is asked to
// format. A resolver can answer a query with either of the following:
//   - Source text: the formatter reads, parses, and prints it.
//   - A parsed file: the parsing step is skipped and the file is
//     printed directly. Useful for tools that already hold a syntax
//     tree, such as an editor integration or a lint pipeline.
//
// # Formatter
//
// A Formatter accepts a list of file paths and produces the formatted
// text of each. It has several fields that control how it works, but
// none are required. A minimal Formatter that reads files from the file
// system relative to the current working directory:
//
//	formatter := flint.Formatter{}
//	texts, err := formatter.Format(ctx, "src/main.fl")
//
// This minimal Formatter uses default parallelism equal to the number of
// CPU cores detected, formats with the default style, and fails fast on
// the first syntax error. All of these aspects can be customized by
// setting other fields.
package flint
