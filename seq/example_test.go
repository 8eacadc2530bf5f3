package seq_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/seq"
)

func ExampleChunk() {
	for _, c := range seq.Chunk([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Println(c)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleCompact() {
	fmt.Println(seq.Compact([]int{1, 0, 2, 0, 3}))
	// Output: [1 2 3]
}

func ExampleDrop() {
	fmt.Println(seq.Drop([]int{1, 2, 3, 4}, 2))
	// Output: [3 4]
}

func ExampleDropWhile() {
	fmt.Println(seq.DropWhile([]int{1, 2, 3, 4, 5, 1}, func(v int) bool { return v < 3 }))
	// Output: [3 4 5 1]
}

func ExampleFill() {
	fmt.Println(seq.Fill([]int{4, 6, 8, 10}, 0, 1, 3))
	// Output: [4 0 0 10]
}

func ExampleFindLastIndex() {
	i := seq.FindLastIndex([]int{4, 6, 8, 10}, func(v int) bool { return v == 6 })
	fmt.Println(i)
	// Output: 1
}

func ExampleZip2() {
	for _, p := range seq.Zip2([]string{"a", "b"}, []int{1, 2}) {
		fmt.Println(p)
	}
	// Output:
	// (a, 1)
	// (b, 2)
}

func ExampleZip3() {
	for _, tr := range seq.Zip3([]string{"a", "b"}, []int{1, 2}, []bool{true, false}) {
		fmt.Println(tr)
	}
	// Output:
	// (a, 1, true)
	// (b, 2, false)
}
