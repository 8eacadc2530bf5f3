package sequence

import "errors"

// Sentinel errors returned by the OrFail accessors and the macro registry.
// The core transforms never return errors; absence and out-of-range inputs
// resolve to (T, bool) pairs, -1 indexes or empty results.
var (
	// ErrEmptySequence is returned by HeadOrFail / LastOrFail when the
	// sequence contains no items.
	ErrEmptySequence = errors.New("sequence: operation on empty sequence")

	// ErrIndexOutOfRange is returned by NthOrFail when the index is outside
	// [0, Count()-1].
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("sequence: macro not found")
)
