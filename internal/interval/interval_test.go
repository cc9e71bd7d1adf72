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

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlang/flint/internal/interval"
)

func TestInnermost(t *testing.T) {
	t.Parallel()

	tree := interval.New[int, string]()
	tree.Insert(0, 100, "file")
	tree.Insert(10, 60, "fn")
	tree.Insert(20, 60, "body") // Shares its end with fn.
	tree.Insert(30, 40, "call")

	tests := []struct {
		point int
		want  string
		ok    bool
	}{
		{point: 35, want: "call", ok: true},
		{point: 45, want: "body", ok: true},
		{point: 59, want: "body", ok: true},
		{point: 15, want: "fn", ok: true},
		{point: 5, want: "file", ok: true},
		{point: 99, want: "file", ok: true},
		{point: 100, ok: false}, // Ends are exclusive.
		{point: -1, ok: false},
	}
	for _, test := range tests {
		entry, ok := tree.Innermost(test.point)
		require.Equal(t, test.ok, ok, "point %d", test.point)
		if ok {
			assert.Equal(t, test.want, entry.Value, "point %d", test.point)
			assert.True(t, entry.Contains(test.point))
		}
	}
}

func TestInsertReplacesEqualSpans(t *testing.T) {
	t.Parallel()

	tree := interval.New[int, string]()
	tree.Insert(30, 40, "outer")
	tree.Insert(30, 40, "inner")

	assert.Equal(t, 1, tree.Len())
	entry, ok := tree.Innermost(35)
	require.True(t, ok)
	assert.Equal(t, "inner", entry.Value)
}

func TestInsertPanics(t *testing.T) {
	t.Parallel()

	tree := interval.New[int, int]()
	assert.Panics(t, func() { tree.Insert(5, 3, 0) })
}

func TestAllOrder(t *testing.T) {
	t.Parallel()

	tree := interval.New[int, string]()
	tree.Insert(20, 25, "c")
	tree.Insert(0, 100, "a")
	tree.Insert(20, 60, "b")

	var got []string
	for entry := range tree.All() {
		got = append(got, entry.Value)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	tree := interval.New[int, string]()
	_, ok := tree.Innermost(0)
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Len())
}
