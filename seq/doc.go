// Package seq provides standalone, framework-agnostic helper functions for
// Go slices, inspired by lodash's Array functions (chunk, compact, drop,
// fill, findIndex, zip, …).
//
// # Design
//
// All helpers are generic (Go 1.18+) and operate on plain []T values — no
// wrapper type required:
//
//	rest   := seq.Drop([]int{1, 2, 3, 4}, 2)             // → [3 4]
//	alive  := seq.Compact([]int{1, 0, 2, 0, 3})          // → [1 2 3]
//	chunks := seq.Chunk([]int{1, 2, 3, 4, 5}, 2)         // → [[1 2] [3 4] [5]]
//	i      := seq.FindIndex(users, func(u User) bool { return u.Active })
//
// Every function is pure: the input slice is never mutated, and every
// returned slice is freshly allocated. Fill, despite its lodash namesake,
// returns a new slice rather than writing through the argument.
//
// # Sentinels instead of errors
//
// No function in this package returns an error or panics. Absence is
// explicit in the signature: element accessors return (T, bool), index
// searches return -1 when nothing matches, and degenerate inputs (empty
// slices, non-positive chunk sizes, out-of-range fill bounds) resolve to
// empty or clamped results as documented per function.
//
// # Truthiness
//
// lodash's compact relies on dynamic truthiness, which has no single
// equivalent for a statically typed element. Three explicit forms are
// provided: [Compact] (zero value of a comparable T), [CompactFloat]
// (zero or NaN), and [CompactFunc] (caller-supplied predicate).
//
// # Portability
//
// The helpers follow lodash's documented contracts and translate directly
// to other languages. See the repository README for Node.js and Python
// equivalents.
package seq
