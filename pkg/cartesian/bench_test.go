package cartesian

import (
	"slices"
	"testing"
)

var benchSink int

func BenchmarkNestedLoops(b *testing.B) {
	xs, ys, zs := slices.Repeat([]int{1}, 32), slices.Repeat([]int{2}, 32), slices.Repeat([]int{3}, 32)
	for b.Loop() {
		sum := 0
		for _, x := range xs {
			for _, y := range ys {
				for _, z := range zs {
					sum += x * y * z
				}
			}
		}
		benchSink = sum
	}
}

func BenchmarkProduct3(b *testing.B) {
	xs, ys, zs := slices.Repeat([]int{1}, 32), slices.Repeat([]int{2}, 32), slices.Repeat([]int{3}, 32)
	for b.Loop() {
		sum := 0
		for t := range Product3(slices.Values(xs), slices.Values(ys), slices.Values(zs)) {
			sum += t.V1 * t.V2 * t.V3
		}
		benchSink = sum
	}
}

func BenchmarkProductVariadic(b *testing.B) {
	xs, ys, zs := slices.Repeat([]int{1}, 32), slices.Repeat([]int{2}, 32), slices.Repeat([]int{3}, 32)
	for b.Loop() {
		sum := 0
		for row := range MustProduct(slices.Values(xs), slices.Values(ys), slices.Values(zs)) {
			sum += row[0] * row[1] * row[2]
		}
		benchSink = sum
	}
}
