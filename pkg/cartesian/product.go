package cartesian

import (
	"iter"
	"slices"
)

//go:generate go run ../../cmd/cartesian gen --output zz_generated.product.go

// Product2 returns the Cartesian product of a and b as pairs, with a as the
// outer loop and b as the inner loop. b is ranged over once for every value
// produced by a.
//
// Breaking out of a range over the result stops both loops.
func Product2[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for va := range a {
			for vb := range b {
				if !yield(va, vb) {
					return
				}
			}
		}
	}
}

// Pairs is Product2 yielding Tuple2 values instead of an iter.Seq2.
func Pairs[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[Tuple2[A, B]] {
	return func(yield func(Tuple2[A, B]) bool) {
		for va, vb := range Product2(a, b) {
			if !yield(Tuple2[A, B]{V1: va, V2: vb}) {
				return
			}
		}
	}
}

// Product returns the Cartesian product of any number of sequences sharing an
// element type. Each yielded slice is freshly allocated, holds one value per
// sequence in argument order and may be retained by the caller.
//
// At least MinArity sequences are required; fewer returns an *ArityError and
// no iterator.
func Product[T any](seqs ...iter.Seq[T]) (iter.Seq[[]T], error) {
	if len(seqs) < MinArity {
		return nil, &ArityError{Got: len(seqs)}
	}

	seqs = slices.Clone(seqs)
	return func(yield func([]T) bool) {
		current := make([]T, len(seqs))
		walk(seqs, current, 0, yield)
	}, nil
}

// MustProduct is Product, panicking on a usage error.
func MustProduct[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	product, err := Product(seqs...)
	if err != nil {
		panic(err)
	}
	return product
}

// walk fills current[depth:] from seqs[depth:] and yields each completed row.
// It reports false once yield has asked to stop, and every enclosing level
// returns as soon as it sees that.
func walk[T any](seqs []iter.Seq[T], current []T, depth int, yield func([]T) bool) bool {
	last := depth == len(seqs)-1
	for v := range seqs[depth] {
		current[depth] = v
		if last {
			if !yield(slices.Clone(current)) {
				return false
			}
			continue
		}

		if !walk(seqs, current, depth+1, yield) {
			return false
		}
	}
	return true
}
