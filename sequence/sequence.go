package sequence

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/seq"
)

// Sequence is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the sequence returns a *new* Sequence,
// leaving the original unchanged. This design is goroutine-safe for reads
// (multiple goroutines may read the same sequence concurrently) and avoids
// accidental aliasing bugs in pipelines.
//
// # Creating a sequence
//
//	s := sequence.New(1, 2, 3, 4, 5)
//	s := sequence.From([]string{"a", "b", "c"})
//	s := sequence.Empty[int]()
//
// # Method chaining
//
//	result := sequence.New(0, 1, 0, 2, 3, 4).
//	    CompactFunc(func(n int) bool { return n != 0 }).
//	    Drop(1).
//	    DropRightWhile(func(n int) bool { return n > 3 })
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are exposed as package-level
// functions in this package:
//
//	labels := sequence.Map(s, func(n int, _ int) string {
//	    return strconv.Itoa(n)
//	})
//	pairs := sequence.Zip(names, ages)
//
// # lodash equivalents
//
// The method names map 1-to-1 to lodash's Array functions where possible.
// Differences:
//   - Absent values are explicit: Head, Last, Nth and Get return (T, bool)
//     instead of undefined.
//   - compact's dynamic truthiness becomes an explicit predicate
//     (CompactFunc); fixed per-type forms live in the seq package.
//   - Type-transforming operations (Map, Zip, …) are package-level functions.
type Sequence[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of items (copied).
func New[T any](items ...T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

// wrap adopts a slice already owned by this package, skipping the copy.
func wrap[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (s *Sequence[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// ToSlice is an alias for [Sequence.All].
func (s *Sequence[T]) ToSlice() []T { return s.All() }

// ToJSON serialises the sequence items to a JSON array.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// Count returns the number of items in the sequence.
func (s *Sequence[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no items.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one item.
func (s *Sequence[T]) IsNotEmpty() bool { return len(s.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (s *Sequence[T]) Get(index int) (T, bool) {
	return seq.Nth(s.items, index)
}

// Has reports whether index is a valid position in the sequence.
func (s *Sequence[T]) Has(index int) bool {
	return index >= 0 && index < len(s.items)
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (s *Sequence[T]) Each(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// Tap calls fn(s) for side-effects (e.g. logging or debugging) and returns
// s unchanged for further chaining.
func (s *Sequence[T]) Tap(fn func(*Sequence[T])) *Sequence[T] {
	fn(s)
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Edge accessors
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first item.
// Returns the zero value and false when the sequence is empty.
func (s *Sequence[T]) Head() (T, bool) {
	return seq.Head(s.items)
}

// HeadOrFail returns the first item, or [ErrEmptySequence].
func (s *Sequence[T]) HeadOrFail() (T, error) {
	item, ok := s.Head()
	if !ok {
		return item, ErrEmptySequence
	}
	return item, nil
}

// Last returns the last item.
// Returns the zero value and false when the sequence is empty.
func (s *Sequence[T]) Last() (T, bool) {
	return seq.Last(s.items)
}

// LastOrFail returns the last item, or [ErrEmptySequence].
func (s *Sequence[T]) LastOrFail() (T, error) {
	item, ok := s.Last()
	if !ok {
		return item, ErrEmptySequence
	}
	return item, nil
}

// Initial returns a new sequence without the last item.
// An empty sequence yields an empty sequence.
func (s *Sequence[T]) Initial() *Sequence[T] {
	return wrap(seq.Initial(s.items))
}

// Nth returns the item at index.
// Returns the zero value and false when index is out of range.
func (s *Sequence[T]) Nth(index int) (T, bool) {
	return seq.Nth(s.items, index)
}

// NthOrFail returns the item at index, or [ErrIndexOutOfRange].
func (s *Sequence[T]) NthOrFail(index int) (T, error) {
	item, ok := s.Nth(index)
	if !ok {
		return item, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return item, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Compaction
// ─────────────────────────────────────────────────────────────────────────────

// CompactFunc returns a new sequence containing only the items for which
// truthy returns true, in original order.
//
// Fixed per-type truthiness (zero value, NaN) is available through the
// seq package: seq.Compact, seq.CompactFloat.
func (s *Sequence[T]) CompactFunc(truthy func(T) bool) *Sequence[T] {
	return wrap(seq.CompactFunc(s.items, truthy))
}

// ─────────────────────────────────────────────────────────────────────────────
// Drop family
// ─────────────────────────────────────────────────────────────────────────────

// Drop returns a new sequence without the first n items.
func (s *Sequence[T]) Drop(n int) *Sequence[T] {
	return wrap(seq.Drop(s.items, n))
}

// DropRight returns a new sequence without the last n items.
func (s *Sequence[T]) DropRight(n int) *Sequence[T] {
	return wrap(seq.DropRight(s.items, n))
}

// DropWhile returns a new sequence with leading items removed while fn
// returns true. The first failing item is kept.
func (s *Sequence[T]) DropWhile(fn func(T) bool) *Sequence[T] {
	return wrap(seq.DropWhile(s.items, fn))
}

// DropRightWhile returns a new sequence with trailing items removed while fn
// returns true, scanning from the back.
func (s *Sequence[T]) DropRightWhile(fn func(T) bool) *Sequence[T] {
	return wrap(seq.DropRightWhile(s.items, fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Fill
// ─────────────────────────────────────────────────────────────────────────────

// Fill returns a new sequence with positions from <= i < to replaced by
// value. Bounds are clamped to the sequence length; the receiver is never
// mutated.
func (s *Sequence[T]) Fill(value T, from, to int) *Sequence[T] {
	return wrap(seq.Fill(s.items, value, from, to))
}

// ─────────────────────────────────────────────────────────────────────────────
// Index search
// ─────────────────────────────────────────────────────────────────────────────

// FindIndex returns the index of the first item satisfying fn, or -1.
func (s *Sequence[T]) FindIndex(fn func(T) bool) int {
	return seq.FindIndex(s.items, fn)
}

// FindIndexFrom scans forward starting at from; see [seq.FindIndexFrom].
func (s *Sequence[T]) FindIndexFrom(fn func(T) bool, from int) int {
	return seq.FindIndexFrom(s.items, fn, from)
}

// FindLastIndex returns the index of the last item satisfying fn, or -1.
// The backward scan runs down to and including index 0.
func (s *Sequence[T]) FindLastIndex(fn func(T) bool) int {
	return seq.FindLastIndex(s.items, fn)
}

// FindLastIndexFrom scans backward starting at from; see
// [seq.FindLastIndexFrom].
func (s *Sequence[T]) FindLastIndexFrom(fn func(T) bool, from int) int {
	return seq.FindLastIndexFrom(s.items, fn, from)
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits the sequence into consecutive groups of size, returning a
// plain [][]T. The last group may contain fewer than size items.
// Returns an empty [][]T if size <= 0 or the sequence is empty.
//
// To work with each chunk as a *Sequence, wrap with [From]:
//
//	for _, chunk := range s.Chunk(2) {
//	    sub := sequence.From(chunk)
//	    // ...
//	}
func (s *Sequence[T]) Chunk(size int) [][]T {
	return seq.Chunk(s.items, size)
}
