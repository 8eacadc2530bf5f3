package seq

import (
	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Edge accessors
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element of items.
// Returns the zero value and false when items is empty.
func Head[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element of items.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Initial returns a copy of items without its last element.
// An empty input yields an empty slice, never an error.
func Initial[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	out := make([]T, len(items)-1)
	copy(out, items[:len(items)-1])
	return out
}

// Nth returns the element at index.
// Returns the zero value and false when index is negative or >= len(items).
func Nth[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Compaction
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns the elements of items that are not the zero value of T
// (0, "", false, nil pointers and interfaces), preserving order.
//
// Zero-value comparison cannot detect NaN; use [CompactFloat] for float
// slices that may contain NaN, or [CompactFunc] for any other notion of
// truthiness.
func Compact[T comparable](items []T) []T {
	var zero T
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

// CompactFloat returns the elements of items that are neither zero nor NaN,
// preserving order.
func CompactFloat[F constraints.Float](items []F) []F {
	out := make([]F, 0, len(items))
	for _, item := range items {
		if item != 0 && item == item { // NaN != NaN
			out = append(out, item)
		}
	}
	return out
}

// CompactFunc returns the elements of items for which truthy returns true,
// preserving order. truthy is called exactly once per element.
func CompactFunc[T any](items []T, truthy func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if truthy(item) {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Drop family
// ─────────────────────────────────────────────────────────────────────────────

// DropWhile returns a copy of items with leading elements removed while fn
// returns true. The first element for which fn returns false is kept, and fn
// is not called for any element after it.
func DropWhile[T any](items []T, fn func(T) bool) []T {
	for i, item := range items {
		if !fn(item) {
			out := make([]T, len(items)-i)
			copy(out, items[i:])
			return out
		}
	}
	return []T{}
}

// DropRightWhile returns a copy of items with trailing elements removed while
// fn returns true, scanning from the back. The last element for which fn
// returns false is kept, and fn is not called for any element before it.
func DropRightWhile[T any](items []T, fn func(T) bool) []T {
	for i := len(items) - 1; i >= 0; i-- {
		if !fn(items[i]) {
			out := make([]T, i+1)
			copy(out, items[:i+1])
			return out
		}
	}
	return []T{}
}

// Drop returns a copy of items without its first n elements.
// A negative n drops nothing; n >= len(items) yields an empty slice.
func Drop[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// DropRight returns a copy of items without its last n elements.
// A negative n drops nothing; n >= len(items) yields an empty slice.
func DropRight[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, len(items)-n)
	copy(out, items[:len(items)-n])
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Fill
// ─────────────────────────────────────────────────────────────────────────────

// Fill returns a copy of items in which every position i with
// from <= i < to holds value; positions outside the range keep their
// original element. Bounds are clamped to [0, len(items)] and an inverted
// range fills nothing. The input slice is never mutated.
func Fill[T any](items []T, value T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if from < 0 {
		from = 0
	}
	if to > len(out) {
		to = len(out)
	}
	for i := from; i < to; i++ {
		out[i] = value
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Index search
// ─────────────────────────────────────────────────────────────────────────────

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T) bool) int {
	return FindIndexFrom(items, fn, 0)
}

// FindIndexFrom scans forward starting at from and returns the index of the
// first element satisfying fn, or -1 if none does. A negative from clamps
// to 0; from at or beyond len(items) returns -1.
func FindIndexFrom[T any](items []T, fn func(T) bool, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(items); i++ {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// FindLastIndex returns the index of the last element satisfying fn, or -1.
// The backward scan runs down to and including index 0.
func FindLastIndex[T any](items []T, fn func(T) bool) int {
	return FindLastIndexFrom(items, fn, len(items)-1)
}

// FindLastIndexFrom scans backward starting at from and returns the index of
// the first element (highest index <= from) satisfying fn, or -1 if none
// does. from at or beyond len(items) clamps to the last valid index; a
// negative from returns -1.
func FindLastIndexFrom[T any](items []T, fn func(T) bool, from int) int {
	if from >= len(items) {
		from = len(items) - 1
	}
	for i := from; i >= 0; i-- {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking & zipping
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns an empty [][]T if size <= 0 or items is empty; never panics.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Flatten concatenates a slice of slices into a single flat slice.
// It is the inverse of [Chunk]: Flatten(Chunk(s, n)) equals s for any n >= 1.
func Flatten[T any](chunks [][]T) []T {
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	return out
}

// Zip groups the elements at each index of seqs into a tuple (realised as a
// []T), truncated to the length of the shortest input. Calling Zip with no
// sequences, or with any empty sequence, yields an empty [][]T.
//
// For zipping sequences of different element types, see [Zip2] and [Zip3].
func Zip[T any](seqs ...[]T) [][]T {
	if len(seqs) == 0 {
		return [][]T{}
	}
	n := len(seqs[0])
	for _, s := range seqs[1:] {
		if len(s) < n {
			n = len(s)
		}
	}
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		tuple := make([]T, len(seqs))
		for j, s := range seqs {
			tuple[j] = s[i]
		}
		out[i] = tuple
	}
	return out
}

// Zip2 pairs elements from a and b at the same index, truncated to the
// shorter input.
func Zip2[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Zip3 groups elements from a, b and c at the same index, truncated to the
// shortest input.
func Zip3[A, B, C any](a []A, b []B, c []C) []Triple[A, B, C] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(c) < n {
		n = len(c)
	}
	out := make([]Triple[A, B, C], n)
	for i := 0; i < n; i++ {
		out[i] = Triple[A, B, C]{First: a[i], Second: b[i], Third: c[i]}
	}
	return out
}
