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

// Package interval provides a containment map over half-open intervals.
//
// The intended use is syntax tree spans: a laminar family of intervals where
// any two members either nest or are disjoint. Queries find the innermost
// interval containing a point, which is how the formatter decides which node
// owns a comment that has no neighbor to attach to.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is one interval in a [Tree] and the value stored with it.
type Entry[K Endpoint, V any] struct {
	Start, End K // Half-open: the interval is [Start, End).
	Value      V
}

// Contains returns whether an entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point < e.End
}

// Tree is an interval containment map. It must be created with [New].
type Tree[K Endpoint, V any] struct {
	tree *btree.BTreeG[Entry[K, V]]
}

// New creates an empty tree.
func New[K Endpoint, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		// Outer intervals order before inner ones, so a reverse walk from
		// a point sees candidates innermost-first.
		tree: btree.NewBTreeG(func(a, b Entry[K, V]) bool {
			if a.Start != b.Start {
				return a.Start < b.Start
			}
			return a.End > b.End
		}),
	}
}

// Len returns the number of intervals in the tree.
func (t *Tree[K, V]) Len() int {
	return t.tree.Len()
}

// Insert adds the interval [start, end) with the given value.
//
// Inserting an interval equal to an existing one replaces it; when the tree
// is filled by a pre-order tree walk this makes the deepest node win, which
// is what containment queries want. Panics if start > end.
func (t *Tree[K, V]) Insert(start, end K, value V) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}
	t.tree.Set(Entry[K, V]{Start: start, End: end, Value: value})
}

// Innermost returns the smallest interval containing point, if any.
func (t *Tree[K, V]) Innermost(point K) (Entry[K, V], bool) {
	var (
		found Entry[K, V]
		ok    bool
	)
	pivot := Entry[K, V]{Start: point, End: point}
	t.tree.Descend(pivot, func(e Entry[K, V]) bool {
		if e.End > point {
			found, ok = e, true
			return false
		}
		// An earlier-starting interval that ends at or before the point
		// cannot contain it, but one of its ancestors still may.
		return true
	})
	return found, ok
}

// All returns an iterator over the entries, ordered by start (outermost
// first among intervals sharing a start).
func (t *Tree[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		t.tree.Scan(yield)
	}
}
