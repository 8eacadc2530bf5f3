package sequence_test

import (
	"testing"

	"github.com/hasbyte1/go-lodash-utils/sequence"
)

// makeInts creates a Sequence[int] of size n for benchmarks.
func makeInts(n int) *sequence.Sequence[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return sequence.From(items)
}

func BenchmarkCompactFunc(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.CompactFunc(func(n int) bool { return n%3 != 0 })
	}
}

func BenchmarkDropChain(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Drop(100).DropRight(100)
	}
}

func BenchmarkMapFunc(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sequence.Map(s, func(n, _ int) int { return n * 2 })
	}
}

func BenchmarkZipWith(b *testing.B) {
	x := makeInts(10_000)
	y := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sequence.ZipWith(x, y, func(a, b int) int { return a + b })
	}
}
