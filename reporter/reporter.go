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

// Package reporter funnels the errors and warnings that the parser and
// formatter produce to the calling program.
//
// Errors mean a file could not be fully parsed; warnings mean the formatter
// had to degrade, for example by emitting a region of a file verbatim. A
// [Reporter] decides what to do with each, including whether an error should
// abort further work.
package reporter

import "sync"

// ErrorReporter is responsible for reporting the given error. If the
// reporter returns a non-nil error, work on the file aborts with that error.
// If the reporter returns nil, work continues, allowing as many problems as
// possible to be reported in one pass.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// never stop work on a file; though they are just warnings, the details are
// supplied via the same positioned error type.
type WarningReporter func(ErrorWithPos)

// Reporter receives the problems found while parsing and formatting.
type Reporter interface {
	// Error is called for each error encountered. A non-nil return aborts
	// work on the current file.
	Error(ErrorWithPos) error

	// Warning is called for each warning encountered.
	Warning(ErrorWithPos)
}

// NewReporter makes a Reporter out of the given functions, either of which
// may be nil. A nil errs aborts on the first error reported.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler wraps a [Reporter] with the bookkeeping the parser and formatter
// need: whether anything was reported, and whether the reporter asked to
// abort. A Handler is safe for concurrent use.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a Handler for the given reporter. A nil reporter
// aborts on the first error and discards warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleError reports an error. The returned error is nil if work should
// continue, and the abort error otherwise; once aborted, every subsequent
// call returns the same error.
func (h *Handler) HandleError(err ErrorWithPos) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	h.err = h.reporter.Error(err)
	return h.err
}

// HandleErrorf is [Handler.HandleError] with formatting.
func (h *Handler) HandleErrorf(span Spanner, format string, args ...any) error {
	return h.HandleError(Errorf(span, format, args...))
}

// HandleWarning reports a warning. Warnings never abort.
func (h *Handler) HandleWarning(err ErrorWithPos) {
	// No lock needed; warnings don't touch the mutable fields.
	h.reporter.Warning(err)
}

// HandleWarningf is [Handler.HandleWarning] with formatting.
func (h *Handler) HandleWarningf(span Spanner, format string, args ...any) {
	h.HandleWarning(Errorf(span, format, args...))
}

// Err returns the error state of this handler: the abort error if the
// reporter aborted, [ErrInvalidSource] if errors were reported but the
// reporter swallowed them all, and nil if no errors were reported.
func (h *Handler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}
