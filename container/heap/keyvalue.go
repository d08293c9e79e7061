// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "fmt"

// entry is a key and its associated value; heaps of entries are
// ordered by key alone.
type entry[K Ordered, V any] struct {
	k K
	v V
}

func (e entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.k, e.v)
}

// T implements a heap of keys with an opaque value carried alongside
// each key. The pop order is determined by the constructor used, that
// is, NewMin pops the smallest key first and NewMax the largest.
// Duplicate keys are allowed. The zero value is not usable, use NewMin
// or NewMax.
type T[K Ordered, V any] struct {
	items []entry[K, V]
	// before is the pop order: before(a, b) is true if a pops before b.
	before func(a, b K) bool
	// cmp is before reversed over entries, the ordering handed to the
	// heap functions so that the entry popped first sits at the root.
	cmp func(a, b entry[K, V]) bool
}

// NewMin returns a heap that pops the smallest key first.
func NewMin[K Ordered, V any](opts ...Option[K, V]) *T[K, V] {
	return newT(Less[K], opts)
}

// NewMax returns a heap that pops the largest key first.
func NewMax[K Ordered, V any](opts ...Option[K, V]) *T[K, V] {
	return newT(func(a, b K) bool { return b < a }, opts)
}

func newT[K Ordered, V any](before func(a, b K) bool, opts []Option[K, V]) *T[K, V] {
	var o options[K, V]
	for _, fn := range opts {
		fn(&o)
	}
	t := &T[K, V]{
		before: before,
		cmp: func(a, b entry[K, V]) bool {
			return before(b.k, a.k)
		},
	}
	switch {
	case len(o.keys) > 0:
		t.items = make([]entry[K, V], len(o.keys))
		for i, k := range o.keys {
			t.items[i] = entry[K, V]{k: k, v: o.vals[i]}
		}
		InitFunc(t.items, t.cmp)
	case o.sliceCap > 0:
		t.items = make([]entry[K, V], 0, o.sliceCap)
	}
	return t
}

// Len returns the number of items in the heap.
func (t *T[K, V]) Len() int {
	return len(t.items)
}

// Cap returns the capacity of the heap's backing storage.
func (t *T[K, V]) Cap() int {
	return cap(t.items)
}

// Push adds the key and value to the heap.
func (t *T[K, V]) Push(k K, v V) {
	t.items = append(t.items, entry[K, V]{k: k, v: v})
	PushFunc(t.items, t.cmp)
}

// Pop removes and returns the first key in the heap's pop order and its
// value. The heap must not be empty.
func (t *T[K, V]) Pop() (K, V) {
	PopFunc(t.items, t.cmp)
	n := len(t.items) - 1
	e := t.items[n]
	t.items = t.items[:n]
	return e.k, e.v
}

// Peek returns the key and value that Pop would return without removing
// them. The heap must not be empty.
func (t *T[K, V]) Peek() (K, V) {
	return t.items[0].k, t.items[0].v
}

// Remove removes and returns the entry at position i.
func (t *T[K, V]) Remove(i int) (K, V) {
	RemoveFunc(t.items, i, t.cmp)
	n := len(t.items) - 1
	e := t.items[n]
	t.items = t.items[:n]
	return e.k, e.v
}

// Fix changes the key at position i to k and restores the heap
// ordering, for use when an entry's priority changes.
func (t *T[K, V]) Fix(i int, k K) {
	t.items[i].k = k
	FixFunc(t.items, i, t.cmp)
}

// PushN is like Push but bounds the heap to at most n items. When the
// heap is full the root entry is replaced by the new one, unless the
// new key would pop before the root's key, in which case the push is
// dropped. Pushing into a NewMin heap therefore retains the n largest
// keys seen, and pushing into a NewMax heap the n smallest.
func (t *T[K, V]) PushN(k K, v V, n int) {
	if n <= 0 {
		return
	}
	if len(t.items) >= n {
		if t.before(k, t.items[0].k) {
			return
		}
		t.items[0] = entry[K, V]{k: k, v: v}
		FixFunc(t.items, 0, t.cmp)
		return
	}
	t.Push(k, v)
}

// Dump returns a rendering of the heap's tree structure for debugging.
func (t *T[K, V]) Dump() string {
	return Dump(t.items)
}
