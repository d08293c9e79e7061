// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Value represents the interface that must be implemented by types that
// can be used as values in the generic Heap implementation.
// It requires a Less method that compares the current instance with another
// instance of the same type and returns true if the current instance is less
// than the other instance.
type Value[T any] interface {
	Less(x T) bool
}

// Heap is a generic heap implementation that can be used with any type
// that implements the Value interface. It provides methods to push, pop,
// remove, and fix elements in the heap. The heap is stored in a slice
// in the same manner as the standard library's heap package and shares
// its ordering convention: Pop returns the smallest element.
type Heap[T Value[T]] []T

// gtr reverses Value.Less so that the smallest element sits at the
// root.
func gtr[T Value[T]](a, b T) bool {
	return b.Less(a)
}

func (h Heap[T]) Len() int {
	return len(h)
}

func (h Heap[T]) Init() {
	InitFunc(h, gtr[T])
}

// Push is like heap.Push.
func (h *Heap[T]) Push(x T) {
	*h = append(*h, x)
	PushFunc(*h, gtr[T])
}

// Pop is like heap.Pop.
func (h *Heap[T]) Pop() T {
	PopFunc(*h, gtr[T])
	n := len(*h) - 1
	x := (*h)[n]
	*h = (*h)[:n]
	return x
}

// Remove is like heap.Remove.
func (h *Heap[T]) Remove(i int) T {
	RemoveFunc(*h, i, gtr[T])
	n := len(*h) - 1
	x := (*h)[n]
	*h = (*h)[:n]
	return x
}

// Fix is like heap.Fix.
func (h Heap[T]) Fix(i int) {
	FixFunc(h, i, gtr[T])
}
