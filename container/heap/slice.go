// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// The functions in this file treat a slice as an implicit binary tree
// and rearrange it in place. Elements are moved hole-wise: the element
// being repositioned is captured in a single temporary, displaced
// elements are shifted into the hole one assignment at a time and the
// temporary is written exactly once into the final hole. The comparison
// function must be a strict weak ordering (a < rather than a <=); the
// element for which less never returns true against any other sits at
// position 0.

// Less reports a < b. It is the ordering used by the natural order
// forms of the functions in this package; the Func forms accept any
// strict weak ordering in its place.
func Less[T Ordered](a, b T) bool {
	return a < b
}

// siftUp moves the hole at pos towards top, shifting parents down into
// it while they compare less than value, and then places value in the
// final hole. placed, if non-nil, is invoked with each position
// written; the public entry points pass nil, the keyed containers use
// it to keep their position indexes current.
func siftUp[T any](h []T, top, pos int, value T, less func(a, b T) bool, placed func(int)) {
	for pos > top {
		parent := (pos - 1) / 2
		if !less(h[parent], value) {
			break
		}
		h[pos] = h[parent]
		if placed != nil {
			placed(pos)
		}
		pos = parent
	}
	h[pos] = value
	if placed != nil {
		placed(pos)
	}
}

// siftDown moves the hole at pos down the chain of larger children to
// the bottom of the heap bounded by size, shifting children up into it,
// and then sifts value back up from the final hole, bounded by top.
// Equal children resolve to the right child.
func siftDown[T any](h []T, top, size, pos int, value T, less func(a, b T) bool, placed func(int)) {
	child := 2*pos + 2
	for child < size && child > 0 { // child < 0 after int overflow
		if less(h[child], h[child-1]) {
			child--
		}
		h[pos] = h[child]
		if placed != nil {
			placed(pos)
		}
		pos = child
		child = 2*child + 2
	}
	if child == size {
		// The bottom node has a left child only.
		h[pos] = h[child-1]
		if placed != nil {
			placed(pos)
		}
		pos = child - 1
	}
	siftUp(h, top, pos, value, less, placed)
}

// Push moves the element at h[len(h)-1] into its heap position.
// h[:len(h)-1] must already be a heap.
func Push[T Ordered](h []T) {
	PushFunc(h, Less[T])
}

// PushFunc is like Push but uses the supplied comparison function.
func PushFunc[T any](h []T, less func(a, b T) bool) {
	n := len(h) - 1
	value := h[n]
	siftUp(h, 0, n, value, less, nil)
}

// Pop moves the largest element from h[0] to h[len(h)-1] and
// re-establishes the heap over h[:len(h)-1]; the caller truncates the
// slice to complete the removal. h must be a non-empty heap.
func Pop[T Ordered](h []T) {
	PopFunc(h, Less[T])
}

// PopFunc is like Pop but uses the supplied comparison function.
func PopFunc[T any](h []T, less func(a, b T) bool) {
	n := len(h) - 1
	value := h[n]
	h[n] = h[0]
	siftDown(h, 0, n, 0, value, less, nil)
}

// Init rearranges h into a heap, bottom up, in O(len(h)) time.
func Init[T Ordered](h []T) {
	InitFunc(h, Less[T])
}

// InitFunc is like Init but uses the supplied comparison function.
func InitFunc[T any](h []T, less func(a, b T) bool) {
	n := len(h)
	if n < 2 {
		return
	}
	for pos := (n - 2) / 2; pos >= 0; pos-- {
		value := h[pos]
		siftDown(h, pos, n, pos, value, less, nil)
	}
}

// Sort sorts a heap into ascending order; the heap ordering is
// destroyed. h must be a heap.
func Sort[T Ordered](h []T) {
	SortFunc(h, Less[T])
}

// SortFunc is like Sort but uses the supplied comparison function;
// ascending order is with respect to that function.
func SortFunc[T any](h []T, less func(a, b T) bool) {
	for n := len(h); n > 1; n-- {
		PopFunc(h[:n], less)
	}
}

// Remove moves the element at position i to h[len(h)-1] and
// re-establishes the heap over h[:len(h)-1]; the caller truncates the
// slice to complete the removal. h must be a heap.
func Remove[T Ordered](h []T, i int) {
	RemoveFunc(h, i, Less[T])
}

// RemoveFunc is like Remove but uses the supplied comparison function.
func RemoveFunc[T any](h []T, i int, less func(a, b T) bool) {
	n := len(h) - 1
	value := h[n]
	h[n] = h[i]
	siftDown(h, 0, n, i, value, less, nil)
}

// Fix re-establishes the heap ordering after the element at position i
// has changed in place, whether it compares greater or less than
// before. Equivalent to removing the element and pushing it again, but
// with the slice length unchanged.
func Fix[T Ordered](h []T, i int) {
	FixFunc(h, i, Less[T])
}

// FixFunc is like Fix but uses the supplied comparison function.
func FixFunc[T any](h []T, i int, less func(a, b T) bool) {
	RemoveFunc(h, i, less)
	n := len(h) - 1
	value := h[n]
	siftUp(h, 0, n, value, less, nil)
}

// IsHeapUntil returns the position of the first element that compares
// greater than its parent, or len(h) if there is no such element, that
// is, the length of the longest prefix of h that is a heap.
func IsHeapUntil[T Ordered](h []T) int {
	return IsHeapUntilFunc(h, Less[T])
}

// IsHeapUntilFunc is like IsHeapUntil but uses the supplied comparison
// function.
func IsHeapUntilFunc[T any](h []T, less func(a, b T) bool) int {
	parent := 0
	for child := 1; child < len(h); child++ {
		if less(h[parent], h[child]) {
			return child
		}
		if child&1 == 0 {
			parent++
		}
	}
	return len(h)
}

// IsHeap reports whether h is a heap.
func IsHeap[T Ordered](h []T) bool {
	return IsHeapUntil(h) == len(h)
}

// IsHeapFunc is like IsHeap but uses the supplied comparison function.
func IsHeapFunc[T any](h []T, less func(a, b T) bool) bool {
	return IsHeapUntilFunc(h, less) == len(h)
}
