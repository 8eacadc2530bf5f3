// Package sequence provides a generic, fluent Sequence type wrapping the
// pure helpers in the seq package, inspired by lodash chaining (_.chain).
//
// # Overview
//
// The central type is [Sequence][T], a generic wrapper around a slice of T
// that exposes a chainable API over the lodash Array operations:
//
//	result := sequence.New(0, 1, 0, 2, 3, 4, 5).
//	    CompactFunc(func(n int) bool { return n != 0 }).
//	    Drop(1).
//	    DropRightWhile(func(n int) bool { return n > 3 }).
//	    All() // → [2 3]
//
// # Immutability
//
// All transformation methods return a *new* Sequence, leaving the original
// unchanged. This makes Sequence values safe to pass across goroutines
// without locking and avoids accidental aliasing bugs in pipelines.
//
// # Sentinels and OrFail variants
//
// Like the seq package, the core methods never return errors: Head, Last,
// Nth and Get return (T, bool); FindIndex and FindLastIndex return -1.
// The OrFail variants (HeadOrFail, LastOrFail, NthOrFail) report absence as
// a sentinel error ([ErrEmptySequence], [ErrIndexOutOfRange]) for callers
// that prefer error plumbing.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions: [Map], [Zip], [ZipWith].
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Sequence.Macro]:
//
//	sequence.RegisterMacro("trimZeroes", func(s any, _ ...any) any {
//	    return s.(*sequence.Sequence[int]).DropWhile(func(n int) bool { return n == 0 })
//	})
//
//	trimmed, _ := sequence.New(0, 0, 1, 2).Macro("trimZeroes")
package sequence
