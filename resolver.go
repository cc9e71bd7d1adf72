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
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/flintlang/flint/ast"
)

// ErrNotFound is returned by a [CompositeResolver] that has no resolvers
// to consult. Individual resolvers signal a missing file with their own
// errors, such as [fs.ErrNotExist] from a [SourceResolver].
var ErrNotFound = errors.New("file not found")

// Resolver locates the files a [Formatter] is asked to format.
type Resolver interface {
	FindFileByPath(string) (SearchResult, error)
}

// SearchResult is what a [Resolver] produces for one path.
type SearchResult struct {
	// Only one of the following must be set, based on what the resolver
	// is able to find or produce; if multiple are set, the formatter
	// prefers them in opposite order listed: so it uses the parsed file
	// if present and only falls back to reading and parsing Source when
	// nothing else is available.

	// Source text for the file. If the reader also implements
	// [io.Closer], the formatter closes it once the text is consumed.
	Source io.Reader
	// An already-parsed file. Its stream must have been built for the
	// requested path.
	AST *ast.File
}

// ResolverFunc adapts a plain function to the [Resolver] interface.
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver asks each resolver in turn and returns the first
// answer. If every resolver fails, the first error is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, ErrNotFound
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver resolves paths into source text via an accessor
// function.
type SourceResolver struct {
	// Accessor opens the file at the given path. If nil, files are read
	// from disk with [os.Open].
	Accessor func(path string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	accessor := r.Accessor
	if accessor == nil {
		accessor = func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		}
	}
	reader, err := accessor(path)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Source: reader}, nil
}

// SourceAccessorFromMap returns an accessor for a [SourceResolver] that
// serves the contents of the given map, keyed by path. Queries for paths
// not in the map fail the same way [os.Open] fails on a missing file, so
// a map-backed resolver can stand in for the disk during tests.
func SourceAccessorFromMap(files map[string]string) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		text, ok := files[path]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
		return io.NopCloser(strings.NewReader(text)), nil
	}
}
