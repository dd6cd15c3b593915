package cartesian

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range returns the integers in the half-open interval [start, end) in
// increasing order. The sequence is empty when end <= start.
func Range[T constraints.Integer](start, end T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Defer returns a sequence that calls fn at the start of every traversal and
// ranges over the sequence it returns. Use it for inner levels of a product
// whose source can only be consumed once, such as a channel or a reader.
func Defer[T any](fn func() iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range fn() {
			if !yield(v) {
				return
			}
		}
	}
}
