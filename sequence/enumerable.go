package sequence

// Enumerable is the interface satisfied by [Sequence][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Sequence type.
//
// A minimal implementation only needs to provide these methods; all higher-
// level Sequence helpers are built on top of this surface.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// Head returns the first item.
	// Returns the zero value and false when the sequence is empty.
	Head() (T, bool)

	// IsEmpty reports whether the sequence contains no items.
	IsEmpty() bool

	// IsNotEmpty reports whether the sequence contains at least one item.
	IsNotEmpty() bool

	// Last returns the last item.
	// Returns the zero value and false when the sequence is empty.
	Last() (T, bool)

	// Nth returns the item at index.
	// Returns the zero value and false when index is out of range.
	Nth(index int) (T, bool)

	// ToSlice is an alias for All.
	ToSlice() []T
}
