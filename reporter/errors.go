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

package reporter

import (
	"errors"
	"fmt"

	"github.com/flintlang/flint/token"
)

// ErrInvalidSource is a sentinel error that is returned when a file cannot
// be parsed but the configured reporter swallowed every underlying error.
// Details were delivered to the reporter; this error only signals failure.
var ErrInvalidSource = errors.New("parse failed: invalid flint source")

// Spanner is any value that knows its location in a source file. Tokens,
// spans, and syntax nodes all implement it.
type Spanner interface {
	Span() token.Span
}

// ErrorWithPos is an error that pins the problem to a location in a
// source file.
type ErrorWithPos interface {
	error

	// GetPosition returns the position of the problem.
	GetPosition() token.Position

	// GetSpan returns the full source span of the problem.
	GetSpan() token.Span

	// Unwrap returns the underlying error.
	Unwrap() error
}

// Error creates an [ErrorWithPos] from the given error and location. A nil
// location produces an error with an unknown position.
func Error(at Spanner, err error) ErrorWithPos {
	var span token.Span
	if at != nil {
		span = at.Span()
	}
	return &errorWithSpan{underlying: err, span: span}
}

// Errorf creates an [ErrorWithPos] whose underlying error is created with
// [fmt.Errorf].
func Errorf(at Spanner, format string, args ...any) ErrorWithPos {
	return Error(at, fmt.Errorf(format, args...))
}

type errorWithSpan struct {
	underlying error
	span       token.Span
}

func (e *errorWithSpan) Error() string {
	return fmt.Sprintf("%s: %v", e.span.StartPos(), e.underlying)
}

func (e *errorWithSpan) GetPosition() token.Position {
	return e.span.StartPos()
}

func (e *errorWithSpan) GetSpan() token.Span {
	return e.span
}

func (e *errorWithSpan) Unwrap() error {
	return e.underlying
}
