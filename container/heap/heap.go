// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides heap algorithms that operate in place over
// caller owned slices, together with a small set of heap containers
// built on them. The algorithms maintain the implicit binary tree
// ordering, that is, the children of position i are at positions 2i+1
// and 2i+2 and no element compares greater than its parent, so the
// largest element under the comparison function is at position 0.
// Sorting a heap therefore yields ascending order. The algorithms never
// allocate, never retain references to the slices they are handed and
// report misuse via out of range panics rather than errors.
package heap

// Ordered represents the set of types that can be compared with the <
// operator and hence used with the natural order forms of the heap
// functions.
type Ordered interface {
	~string | ~byte | ~int8 | ~int16 | ~int | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ArithmeticTypes represents the set of types that can be used in a heap that
// keeps a running total of the items it contains. They must be both comparable
// and support addition and subtraction.
type ArithmeticTypes interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Index maintains a mapping from keys to their current position within
// a heap. Heap positions are not stable, hence implementations must be
// updated as elements move; the unexported sift routines in this
// package accept a hook for doing so.
type Index[T comparable] interface {
	Insert(k T, v int)
	Lookup(k T) (v int, ok bool)
	Delete(k T)
}

// MapIndex is a map backed implementation of Index.
type MapIndex[T comparable] map[T]int

func (mi MapIndex[T]) Insert(k T, v int) {
	mi[k] = v
}

func (mi MapIndex[T]) Lookup(k T) (int, bool) {
	v, ok := mi[k]
	return v, ok
}

func (mi MapIndex[T]) Delete(k T) {
	delete(mi, k)
}
