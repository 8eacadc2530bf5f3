package sequence_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/sequence"
)

func ExampleNew() {
	s := sequence.New(0, 1, 0, 2, 3, 4, 5).
		CompactFunc(func(n int) bool { return n != 0 }).
		Drop(1).
		DropRightWhile(func(n int) bool { return n > 3 })
	fmt.Println(s)
	// Output: [2,3]
}

func ExampleSequence_Fill() {
	fmt.Println(sequence.New(4, 6, 8, 10).Fill(0, 1, 3))
	// Output: [4,0,0,10]
}

func ExampleSequence_Chunk() {
	for _, chunk := range sequence.New(1, 2, 3, 4, 5).Chunk(2) {
		fmt.Println(chunk)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleZipWith() {
	sums := sequence.ZipWith(
		sequence.New(1, 2, 3),
		sequence.New(10, 20, 30),
		func(a, b int) int { return a + b },
	)
	fmt.Println(sums)
	// Output: [11,22,33]
}

func ExampleMap() {
	labels := sequence.Map(sequence.New(1, 2, 3), func(n, _ int) string {
		return fmt.Sprintf("#%d", n)
	})
	fmt.Println(labels.All())
	// Output: [#1 #2 #3]
}
