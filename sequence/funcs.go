package sequence

import "github.com/hasbyte1/go-lodash-utils/seq"

// This file contains package-level generic functions for operations that
// transform a Sequence[T] to a Sequence[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. They are designed to be
// composable with method-chaining calls:
//
//	labels := sequence.Map(
//	    sequence.New(0, 1, 0, 2).CompactFunc(func(n int) bool { return n != 0 }),
//	    func(n, _ int) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item and returns a new Sequence[U].
//
//	doubled := sequence.Map(sequence.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](s *Sequence[T], fn func(T, int) U) *Sequence[U] {
	out := make([]U, len(s.items))
	for i, item := range s.items {
		out[i] = fn(item, i)
	}
	return wrap(out)
}

// Zip pairs the items of a and b at the same index, truncated to the
// shorter sequence.
//
//	pairs := sequence.Zip(sequence.New("a", "b"), sequence.New(1, 2))
//	// → Sequence[(a, 1), (b, 2)]
func Zip[A, B any](a *Sequence[A], b *Sequence[B]) *Sequence[seq.Pair[A, B]] {
	return wrap(seq.Zip2(a.items, b.items))
}

// ZipWith combines the items of a and b at the same index through fn,
// truncated to the shorter sequence.
//
//	sums := sequence.ZipWith(sequence.New(1, 2), sequence.New(10, 20),
//	    func(x, y int) int { return x + y }) // → Sequence[11, 22]
func ZipWith[A, B, C any](a *Sequence[A], b *Sequence[B], fn func(A, B) C) *Sequence[C] {
	n := len(a.items)
	if len(b.items) < n {
		n = len(b.items)
	}
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a.items[i], b.items[i])
	}
	return wrap(out)
}
