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
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlang/flint"
	"github.com/flintlang/flint/config"
	"github.com/flintlang/flint/parser"
	"github.com/flintlang/flint/printer"
	"github.com/flintlang/flint/reporter"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	formatter := &flint.Formatter{
		Resolver: &flint.SourceResolver{Accessor: flint.SourceAccessorFromMap(map[string]string{
			"messy.fl": "let  x=1;\nfn  add(a,b){return a+b;}\n",
			"clean.fl": "let y = 2;\n",
		})},
	}

	texts, err := formatter.Format(context.Background(), "messy.fl", "clean.fl")
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Equal(t, "let x = 1;\nfn add(a, b) {\n  return a + b;\n}\n", texts[0])
	assert.Equal(t, "let y = 2;\n", texts[1], "formatted input must come back unchanged")
}

func TestFormatNoPaths(t *testing.T) {
	t.Parallel()

	formatter := &flint.Formatter{}
	texts, err := formatter.Format(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, texts)

	diffs, err := formatter.Diff(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, diffs)
}

func TestFormatFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "main.fl")
	require.NoError(t, os.WriteFile(path, []byte("let  x=1;\n"), 0o600))

	formatter := &flint.Formatter{}
	texts, err := formatter.Format(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "let x = 1;\n", texts[0])
}

func TestFormatParallel(t *testing.T) {
	t.Parallel()

	files := map[string]string{}
	var paths []string
	for i := range 40 {
		path := fmt.Sprintf("f%02d.fl", i)
		files[path] = fmt.Sprintf("let  v%d=%d;\n", i, i)
		paths = append(paths, path)
	}
	// A duplicate request must share the original's work.
	paths = append(paths, "f00.fl")

	var mu sync.Mutex
	counts := map[string]int{}
	base := flint.SourceAccessorFromMap(files)
	formatter := &flint.Formatter{
		Resolver: &flint.SourceResolver{Accessor: func(path string) (io.ReadCloser, error) {
			mu.Lock()
			counts[path]++
			mu.Unlock()
			return base(path)
		}},
		MaxParallelism: 4,
	}

	texts, err := formatter.Format(context.Background(), paths...)
	require.NoError(t, err)
	require.Len(t, texts, len(paths))
	for i := range 40 {
		assert.Equal(t, fmt.Sprintf("let v%d = %d;\n", i, i), texts[i])
	}
	assert.Equal(t, texts[0], texts[40])

	mu.Lock()
	defer mu.Unlock()
	for path, n := range counts {
		assert.Equal(t, 1, n, "%s must be resolved exactly once", path)
	}
}

func TestFormatCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	formatter := &flint.Formatter{
		Resolver: &flint.SourceResolver{Accessor: flint.SourceAccessorFromMap(map[string]string{
			"a.fl": "let x = 1;\n",
		})},
	}
	_, err := formatter.Format(ctx, "a.fl")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormatSyntaxError(t *testing.T) {
	t.Parallel()

	resolver := &flint.SourceResolver{Accessor: flint.SourceAccessorFromMap(map[string]string{
		"bad.fl":  "let = 1;\n",
		"good.fl": "let x = 1;\n",
	})}

	t.Run("FailFast", func(t *testing.T) {
		t.Parallel()
		formatter := &flint.Formatter{Resolver: resolver}
		_, err := formatter.Format(context.Background(), "good.fl", "bad.fl")
		require.Error(t, err)
		var ewp reporter.ErrorWithPos
		require.ErrorAs(t, err, &ewp)
		assert.Contains(t, err.Error(), "bad.fl:1:")
		assert.Contains(t, err.Error(), "expecting an identifier")
	})

	t.Run("Collected", func(t *testing.T) {
		t.Parallel()
		var reported []reporter.ErrorWithPos
		formatter := &flint.Formatter{
			Resolver: resolver,
			Reporter: reporter.NewReporter(func(err reporter.ErrorWithPos) error {
				reported = append(reported, err)
				return nil
			}, nil),
		}
		_, err := formatter.Format(context.Background(), "bad.fl")
		require.ErrorIs(t, err, reporter.ErrInvalidSource)
		assert.NotEmpty(t, reported, "the swallowed errors must still reach the reporter")
	})
}

func TestFormatIgnored(t *testing.T) {
	t.Parallel()

	formatter := &flint.Formatter{
		Resolver: &flint.SourceResolver{Accessor: flint.SourceAccessorFromMap(map[string]string{
			"src/gen/schema.fl": "let   z=3   ;\n",
			"src/main.fl":       "let  x=1;\n",
		})},
		Config: config.Config{Ignore: []string{"**/gen/**"}},
	}

	texts, err := formatter.Format(context.Background(), "src/gen/schema.fl", "src/main.fl")
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Equal(t, "let   z=3   ;\n", texts[0], "ignored files must come back byte for byte")
	assert.Equal(t, "let x = 1;\n", texts[1])
}

func TestFormatMissingFile(t *testing.T) {
	t.Parallel()

	formatter := &flint.Formatter{
		Resolver: &flint.SourceResolver{Accessor: flint.SourceAccessorFromMap(nil)},
	}
	_, err := formatter.Format(context.Background(), "missing.fl")
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.fl")
}

func TestFormatParsedInput(t *testing.T) {
	t.Parallel()

	file, err := parser.Parse("pre.fl", "let  q=9;\n", reporter.NewHandler(nil))
	require.NoError(t, err)

	formatter := &flint.Formatter{
		Resolver: flint.ResolverFunc(func(string) (flint.SearchResult, error) {
			return flint.SearchResult{AST: file}, nil
		}),
	}

	texts, err := formatter.Format(context.Background(), "pre.fl")
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "let q = 9;\n", texts[0])

	_, err = formatter.Format(context.Background(), "other.fl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `search result for "other.fl" returned file "pre.fl"`)
}

type closeRecorder struct {
	io.Reader
	closed atomic.Bool
}

func (c *closeRecorder) Close() error {
	c.closed.Store(true)
	return nil
}

func TestFormatClosesSource(t *testing.T) {
	t.Parallel()

	rec := &closeRecorder{Reader: strings.NewReader("let x = 1;\n")}
	formatter := &flint.Formatter{
		Resolver: flint.ResolverFunc(func(string) (flint.SearchResult, error) {
			return flint.SearchResult{Source: rec}, nil
		}),
	}

	_, err := formatter.Format(context.Background(), "a.fl")
	require.NoError(t, err)
	assert.Eventually(t, rec.closed.Load, time.Second, time.Millisecond,
		"the source reader must be closed once its text is consumed")
}

func TestFormatConfigError(t *testing.T) {
	t.Parallel()

	formatter := &flint.Formatter{
		Resolver: &flint.SourceResolver{Accessor: flint.SourceAccessorFromMap(map[string]string{
			"a.fl": "let x = 1;\n",
		})},
		Config: config.Config{Quotes: "fancy"},
	}

	_, err := formatter.Format(context.Background(), "a.fl")
	var cerr *config.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "quotes", cerr.Field)
}

func TestFormatWithConfig(t *testing.T) {
	t.Parallel()

	formatter := &flint.Formatter{
		Resolver: &flint.SourceResolver{Accessor: flint.SourceAccessorFromMap(map[string]string{
			"a.fl": "if(x){f(1);}\nlet s=\"hi\";\n",
		})},
		Config: config.Config{Indent: "tabs", Quotes: "single"},
	}

	texts, err := formatter.Format(context.Background(), "a.fl")
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "if (x) {\n\tf(1);\n}\nlet s = 'hi';\n", texts[0])
}

func TestDiff(t *testing.T) {
	t.Parallel()

	formatter := &flint.Formatter{
		Resolver: &flint.SourceResolver{Accessor: flint.SourceAccessorFromMap(map[string]string{
			"a.fl":     "let  x=1;\n",
			"clean.fl": "let y = 2;\n",
		})},
	}

	diffs, err := formatter.Diff(context.Background(), "a.fl", "clean.fl")
	require.NoError(t, err)
	require.Len(t, diffs, 2)

	want := "--- a/a.fl\n" +
		"+++ b/a.fl\n" +
		"@@ -1,2 +1,2 @@\n" +
		"-let  x=1;\n" +
		"+let x = 1;\n" +
		" \n"
	assert.Equal(t, want, diffs[0])
	assert.Empty(t, diffs[1], "a formatted file must produce no diff")
}

func TestFormatText(t *testing.T) {
	t.Parallel()

	options := printer.Options{MaxWidth: printer.DefaultMaxWidth}

	got, err := flint.FormatText(options, "t.fl", "let  a=1;\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "let a = 1;\n", got)

	_, err = flint.FormatText(options, "t.fl", "let = 1;\n", nil)
	require.Error(t, err)
	var ewp reporter.ErrorWithPos
	assert.ErrorAs(t, err, &ewp)

	_, err = flint.FormatText(printer.Options{MaxWidth: -5}, "t.fl", "let a = 1;\n", nil)
	require.ErrorIs(t, err, printer.ErrInvalidOptions)
}
