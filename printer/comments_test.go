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

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlang/flint/parser"
	"github.com/flintlang/flint/reporter"
)

func TestCommentClassification(t *testing.T) {
	t.Parallel()

	src := "// one\n" +
		"let a = 1; // two\n" +
		"\n" +
		"// three\n" +
		"let b = [2, 3];\n" +
		"fn f() {\n" +
		"  // four\n" +
		"}\n" +
		"// five\n"
	file, err := parser.Parse("test.fl", src, reporter.NewHandler(nil))
	require.NoError(t, err)

	table := newCommentTable(file)
	assert.Equal(t, 5, table.remaining())

	leading := make(map[string]comment)
	for _, list := range table.leading {
		for _, c := range list {
			leading[c.tok.Text()] = c
		}
	}
	require.Len(t, leading, 2)

	one, ok := leading["// one"]
	require.True(t, ok, "a comment opening the file leads the first statement")
	assert.True(t, one.ownLine)
	assert.False(t, one.blankBefore)

	three, ok := leading["// three"]
	require.True(t, ok)
	assert.True(t, three.ownLine)
	assert.True(t, three.blankBefore, "the blank above a leading comment rides with it")

	var trailing []comment
	for _, list := range table.trailing {
		trailing = append(trailing, list...)
	}
	require.Len(t, trailing, 1)
	assert.Equal(t, "// two", trailing[0].tok.Text())
	assert.False(t, trailing[0].ownLine)

	require.Len(t, table.dangling, 2)
	fileDangling := table.dangling[file]
	require.Len(t, fileDangling, 1)
	assert.Equal(t, "// five", fileDangling[0].tok.Text())
	for node, list := range table.dangling {
		if node == file {
			continue
		}
		require.Len(t, list, 1)
		assert.Equal(t, "// four", list[0].tok.Text(), "a comment against a closing brace dangles from its block")
	}
}

func TestCommentBlankTracking(t *testing.T) {
	t.Parallel()

	file, err := parser.Parse("test.fl", "let a = 1;\n\n\nlet b = 2;\n\n", reporter.NewHandler(nil))
	require.NoError(t, err)
	require.Len(t, file.Stmts, 2)

	table := newCommentTable(file)
	assert.False(t, table.blankBefore(file.Stmts[0].Span()))
	assert.True(t, table.blankBefore(file.Stmts[1].Span()))
	assert.True(t, table.blankAt(file.Stmts[1].Span().Start))
	assert.True(t, table.blankAtEOF())
}

// TestCommentsAllConsumed pushes comments against every delimiter the
// printer splits attachments around and checks that laying the file out
// consumes every one of them. A leftover here would be a panic in
// [PrintFile].
func TestCommentsAllConsumed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{
			name: "around call arguments",
			src:  "f(/* a */ x /* b */, /* c */ y /* d */);",
		},
		{
			name: "around map entries",
			src:  "let m = { /* k */ a: 1, b: 2 /* v */ };\n",
		},
		{
			name: "against condition and block closers",
			src:  "if (x /* c1 */) {} else { /* c2 */ }",
		},
		{
			name: "on list separators",
			src:  "let a = [\n  1, // one\n  2,\n];\n",
		},
		{
			name: "inside for clauses",
			src:  "for (/* i */;;) {}",
		},
		{
			name:    "inside a recovered region",
			src:     "let bad = /* in */ ;\nlet ok = 1;\n",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rep := reporter.NewReporter(func(reporter.ErrorWithPos) error { return nil }, nil)
			file, err := parser.Parse("test.fl", test.src, reporter.NewHandler(rep))
			if test.wantErr {
				require.ErrorIs(t, err, reporter.ErrInvalidSource)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, file)

			p := &printer{
				options:  Options{MaxWidth: DefaultMaxWidth}.withDefaults(),
				comments: newCommentTable(file),
				handler:  reporter.NewHandler(nil),
			}
			p.fileDoc(file)
			assert.Zero(t, p.comments.remaining(), "every comment must be printed or deliberately dropped")
		})
	}
}

func TestPrintFilePanicsOnOrphans(t *testing.T) {
	t.Parallel()

	file, err := parser.Parse("test.fl", "f(); // x\n", reporter.NewHandler(nil))
	require.NoError(t, err)

	// Detach the tree from its stream: the comment trailing the call now
	// has no anchor left to print it.
	file.Stmts = nil

	assert.PanicsWithValue(t,
		"flint/printer: 1 comment(s) were never printed; the tree does not cover its stream",
		func() { _, _ = PrintFile(Options{MaxWidth: DefaultMaxWidth}, file, nil) },
	)
}
