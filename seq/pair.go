package seq

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip2].
//
// Portability note: in Python this maps to a 2-tuple; in TypeScript to
// [A, B]; in Rust to (A, B).
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple holds three values of possibly different types.
// It is the element type produced by [Zip3].
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// String returns a human-readable representation: "(first, second, third)".
func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
