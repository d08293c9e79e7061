// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"testing"

	"cloudeng.io/algo/container/heap"
)

func ExampleT() {
	h := heap.NewMin[int, string]()
	h.Push(3, "three")
	h.Push(1, "one")
	h.Push(2, "two")
	for h.Len() > 0 {
		k, v := h.Pop()
		fmt.Printf("%v %v ", k, v)
	}
	fmt.Println()
	// Output:
	// 1 one 2 two 3 three
}

func ascending(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

func descending(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = n - 1 - i
	}
	return r
}

func popKeys[K heap.Ordered, V any](h *heap.T[K, V]) []K {
	keys := []K{}
	for h.Len() > 0 {
		k, _ := h.Pop()
		keys = append(keys, k)
	}
	return keys
}

func TestKeyValue(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x0f0f)) // #nosec: G404
	keys := rnd.Perm(65)
	hmin := heap.NewMin[int, int]()
	hmax := heap.NewMax[int, int]()
	for _, k := range keys {
		hmin.Push(k, k*10)
		hmax.Push(k, k*10)
	}
	hmin.Verify(t)
	hmax.Verify(t)
	if got, want := hmin.Len(), len(keys); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 0; i < len(keys); i++ {
		k, v := hmin.Pop()
		if got, want := k, i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := v, i*10; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		k, v = hmax.Pop()
		if got, want := k, len(keys)-1-i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := v, (len(keys)-1-i)*10; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestKeyValueOptions(t *testing.T) {
	keys := []int{5, 3, 7, 2, 8}
	vals := []string{"e", "c", "g", "b", "h"}
	h := heap.NewMin(heap.WithData(keys, vals))
	h.Verify(t)
	if got, want := h.Len(), len(keys); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	k, v := h.Peek()
	if got, want := k, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := v, "b"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	out := []string{}
	for h.Len() > 0 {
		_, v := h.Pop()
		out = append(out, v)
	}
	if got, want := strings.Join(out, ""), "bcegh"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	h = heap.NewMin(heap.WithSliceCap[int, string](64))
	if got, want := h.Cap(), 64; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestKeyValueMismatched(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic")
		}
	}()
	heap.NewMin(heap.WithData[int, string]([]int{1}, nil))
}

func TestKeyValueRemove(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x7777)) // #nosec: G404
	keys := rnd.Perm(33)
	vals := make([]int, len(keys))
	for i, k := range keys {
		vals[i] = k * 2
	}
	h := heap.NewMin(heap.WithData(keys, vals))
	removed := []int{}
	for h.Len() > 0 {
		k, v := h.Remove(rnd.Intn(h.Len()))
		if got, want := v, k*2; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		removed = append(removed, k)
		h.Verify(t)
	}
	// Removal moves items around but loses none.
	sort.Ints(removed)
	for i, k := range removed {
		if got, want := k, i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestKeyValueFix(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x3131)) // #nosec: G404
	h := heap.NewMax[int, int]()
	for _, k := range rnd.Perm(33) {
		h.Push(k, 0)
	}
	for iter := 0; iter < 100; iter++ {
		h.Fix(rnd.Intn(h.Len()), rnd.Intn(100))
		h.Verify(t)
	}
	h.Fix(h.Len()-1, 1000)
	if k, _ := h.Peek(); k != 1000 {
		t.Errorf("got %v, want 1000", k)
	}
	h.Fix(0, -1)
	h.Verify(t)
	// The lowered key pops last in a max heap.
	var last int
	for h.Len() > 0 {
		last, _ = h.Pop()
	}
	if got, want := last, -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestKeyValueBounded(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x5555)) // #nosec: G404
	for i := 0; i <= 32; i++ {
		n := i / 2
		if n == 0 {
			n = 1
		}
		all := ascending(i)

		// A min heap bounded to n retains the n largest keys.
		h := heap.NewMin[int, int]()
		for _, k := range all {
			h.PushN(k, k, n)
			h.Verify(t)
		}
		want := []int{}
		if i > n {
			want = append(want, all[i-n:]...)
		} else {
			want = append(want, all...)
		}
		if got := popKeys(h); !reflect.DeepEqual(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}

		// Insertion order does not affect the retained keys.
		h = heap.NewMin[int, int]()
		for _, k := range rnd.Perm(i) {
			h.PushN(k, k, n)
			h.Verify(t)
		}
		if got := popKeys(h); !reflect.DeepEqual(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}

		// A max heap bounded to n retains the n smallest keys.
		h = heap.NewMax[int, int]()
		for _, k := range descending(i) {
			h.PushN(k, k, n)
			h.Verify(t)
		}
		if i > n {
			want = descending(n)
		} else {
			want = descending(i)
		}
		if got := popKeys(h); !reflect.DeepEqual(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestKeyValueBoundedTies(t *testing.T) {
	h := heap.NewMin[int, string]()
	h.PushN(1, "a", 2)
	h.PushN(1, "b", 2)
	h.PushN(1, "c", 2) // evicts one of the earlier 1s
	h.PushN(0, "z", 2) // discarded
	h.PushN(2, "d", 2)
	if got, want := h.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := fmt.Sprint(popKeys(h)), "[1 2]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
