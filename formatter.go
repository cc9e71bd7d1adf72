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

package flint

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/semaphore"

	"github.com/flintlang/flint/config"
	"github.com/flintlang/flint/parser"
	"github.com/flintlang/flint/printer"
	"github.com/flintlang/flint/reporter"
)

// Formatter formats Flint source files. Each file is resolved, parsed,
// and printed independently of the others; the formatter only adds the
// scheduling on top, so formatting a set of files gives the same text as
// formatting each one alone.
type Formatter struct {
	// Resolves paths into source text or already-parsed files. If
	// unspecified, files are read from disk relative to the current
	// working directory.
	Resolver Resolver
	// The maximum number of files formatted concurrently. If unspecified
	// or set to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified, the first
	// error aborts the run and warnings are discarded.
	Reporter reporter.Reporter
	// Style settings plus the ignore patterns. The zero value formats
	// with the defaults of [printer.Options] and ignores nothing.
	Config config.Config
}

// Format formats the given files and returns the formatted text of each,
// in the same order. The formatter's resolver locates the text (or an
// already-parsed file) for every path, and up to MaxParallelism files
// are worked on at once. The first file that cannot be resolved, parsed,
// or printed fails the whole call.
//
// Paths matched by the configured ignore patterns come back exactly as
// the resolver served them, without being parsed.
func (f *Formatter) Format(ctx context.Context, paths ...string) ([]string, error) {
	results, err := f.run(ctx, paths)
	if err != nil || len(results) == 0 {
		return nil, err
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.text
	}
	return texts, nil
}

// Diff formats the given files like [Formatter.Format] but returns one
// unified diff per file instead of the formatted text. Files already in
// formatted form yield the empty string. The diff compares a/<path>, the
// text as served by the resolver, against b/<path>, the formatted text.
func (f *Formatter) Diff(ctx context.Context, paths ...string) ([]string, error) {
	results, err := f.run(ctx, paths)
	if err != nil || len(results) == 0 {
		return nil, err
	}

	diffs := make([]string, len(results))
	for i, r := range results {
		if r.text == r.orig {
			continue
		}
		diffs[i], err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(r.orig),
			B:        difflib.SplitLines(r.text),
			FromFile: "a/" + paths[i],
			ToFile:   "b/" + paths[i],
			Context:  3,
		})
		if err != nil {
			return nil, err
		}
	}
	return diffs, nil
}

// FormatText formats a single file held in memory. It is a convenience
// for callers that already have the text on hand and do not need the
// resolution or scheduling machinery of [Formatter]. Diagnostics go to
// handler; a nil handler aborts on the first syntax error. Callers that
// want output even for files with syntax errors should use
// [parser.Parse] and [printer.PrintFile] directly and decide for
// themselves how to treat the parse error.
func FormatText(options printer.Options, path, text string, handler *reporter.Handler) (string, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	file, err := parser.Parse(path, text, handler)
	if err != nil {
		return "", err
	}
	return printer.PrintFile(options, file, handler)
}

func (f *Formatter) run(ctx context.Context, paths []string) ([]*result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := f.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	opts, err := f.Config.Options()
	if err != nil {
		return nil, err
	}

	e := executor{
		f:       f,
		h:       reporter.NewHandler(f.Reporter),
		opts:    opts,
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	results := make([]*result, len(paths))
	for i, p := range paths {
		results[i] = e.format(ctx, p)
	}

	for _, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
	}
	return results, nil
}

// The outcome of formatting one file. ready is closed once the other
// fields are settled; duplicate requests for a path share one result.
type result struct {
	ready chan struct{}
	orig  string
	text  string
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(orig, text string) {
	r.orig = orig
	r.text = text
	close(r.ready)
}

type executor struct {
	f    *Formatter
	h    *reporter.Handler
	opts printer.Options
	s    *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) format(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[path] = r
	go func() {
		e.doFormat(ctx, path, r)
	}()
	return r
}

func (e *executor) doFormat(ctx context.Context, path string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	res := e.f.Resolver
	if res == nil {
		res = &SourceResolver{}
	}
	sr, err := res.FindFileByPath(path)
	if err != nil {
		r.fail(err)
		return
	}

	defer func() {
		// if the result carried a reader, don't leave it open if it can
		// be closed
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	file := sr.AST
	var text string
	switch {
	case file != nil:
		if got := file.Stream.Name(); got != path {
			r.fail(fmt.Errorf("search result for %q returned file %q", path, got))
			return
		}
		text = file.Stream.Text()
	case sr.Source != nil:
		b, err := io.ReadAll(sr.Source)
		if err != nil {
			r.fail(fmt.Errorf("reading %s: %w", path, err))
			return
		}
		text = string(b)
	default:
		r.fail(fmt.Errorf("search result for %q carries neither source nor a parsed file", path))
		return
	}

	if e.f.Config.Ignored(path) {
		r.complete(text, text)
		return
	}

	if file == nil {
		file, err = parser.Parse(path, text, e.h)
		if err != nil {
			r.fail(err)
			return
		}
	}

	printed, err := printer.PrintFile(e.opts, file, e.h)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(text, printed)
}
