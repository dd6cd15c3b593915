package cartesian_test

import (
	"fmt"
	"iter"
	"slices"

	"github.com/authzed/cartesian/pkg/cartesian"
)

func ExampleProduct2() {
	for x, y := range cartesian.Product2(cartesian.Range(0, 2), cartesian.Range(0, 2)) {
		fmt.Println(x, y)
	}
	// Output:
	// 0 0
	// 0 1
	// 1 0
	// 1 1
}

func ExampleProduct3() {
	grid := [2][2][3]int{}
	for t := range cartesian.Product3(cartesian.Range(0, 2), cartesian.Range(0, 2), cartesian.Range(0, 3)) {
		x, y, z := t.Unpack()
		grid[x][y][z] = x*y + z
	}
	fmt.Println(grid)
	// Output: [[[0 1 2] [0 1 2]] [[0 1 2] [1 2 3]]]
}

func ExampleProduct3_break() {
	for t := range cartesian.Product3(cartesian.Range(0, 3), cartesian.Range(0, 3), cartesian.Range(0, 3)) {
		if t.V2 == 1 {
			// Leaves all three levels at once.
			break
		}
		fmt.Println(t)
	}
	// Output:
	// (0, 0, 0)
	// (0, 0, 1)
	// (0, 0, 2)
}

func ExampleProduct() {
	sizes := slices.Values([]string{"s", "m"})
	colors := slices.Values([]string{"red", "blue"})
	fits := slices.Values([]string{"slim"})

	product, err := cartesian.Product(sizes, colors, fits)
	if err != nil {
		panic(err)
	}
	for row := range product {
		fmt.Println(row)
	}
	// Output:
	// [s red slim]
	// [s blue slim]
	// [m red slim]
	// [m blue slim]
}

func ExampleProduct_arity() {
	_, err := cartesian.Product(slices.Values([]int{1, 2, 3}))
	fmt.Println(err)
	// Output: cartesian product requires at least 2 sequences, got 1
}

func ExampleDefer() {
	lines := func() iter.Seq[string] {
		ch := make(chan string, 2)
		ch <- "a"
		ch <- "b"
		close(ch)
		return func(yield func(string) bool) {
			for line := range ch {
				if !yield(line) {
					return
				}
			}
		}
	}

	for n, line := range cartesian.Product2(cartesian.Range(0, 2), cartesian.Defer(lines)) {
		fmt.Println(n, line)
	}
	// Output:
	// 0 a
	// 0 b
	// 1 a
	// 1 b
}
