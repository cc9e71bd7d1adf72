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

package flint_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlang/flint"
)

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	found := flint.ResolverFunc(func(path string) (flint.SearchResult, error) {
		return flint.SearchResult{Source: strings.NewReader("let x = 1;\n")}, nil
	})
	errFirst := errors.New("first failure")
	failing := flint.ResolverFunc(func(string) (flint.SearchResult, error) {
		return flint.SearchResult{}, errFirst
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		_, err := flint.CompositeResolver{}.FindFileByPath("a.fl")
		assert.ErrorIs(t, err, flint.ErrNotFound)
	})

	t.Run("FallsThrough", func(t *testing.T) {
		t.Parallel()
		sr, err := flint.CompositeResolver{failing, found}.FindFileByPath("a.fl")
		require.NoError(t, err)
		assert.NotNil(t, sr.Source)
	})

	t.Run("FirstError", func(t *testing.T) {
		t.Parallel()
		second := flint.ResolverFunc(func(string) (flint.SearchResult, error) {
			return flint.SearchResult{}, errors.New("second failure")
		})
		_, err := flint.CompositeResolver{failing, second}.FindFileByPath("a.fl")
		assert.ErrorIs(t, err, errFirst)
	})
}

func TestSourceResolverDefaultsToDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "on_disk.fl")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;\n"), 0o600))

	resolver := &flint.SourceResolver{}
	sr, err := resolver.FindFileByPath(path)
	require.NoError(t, err)
	require.NotNil(t, sr.Source)
	defer func() {
		if c, ok := sr.Source.(io.Closer); ok {
			assert.NoError(t, c.Close())
		}
	}()

	text, err := io.ReadAll(sr.Source)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", string(text))

	_, err = resolver.FindFileByPath(filepath.Join(dir, "absent.fl"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSourceAccessorFromMap(t *testing.T) {
	t.Parallel()

	accessor := flint.SourceAccessorFromMap(map[string]string{
		"a.fl": "let a = 1;\n",
	})

	reader, err := accessor("a.fl")
	require.NoError(t, err)
	text, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "let a = 1;\n", string(text))

	_, err = accessor("b.fl")
	require.ErrorIs(t, err, fs.ErrNotExist)
	var perr *fs.PathError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "b.fl", perr.Path)
}
