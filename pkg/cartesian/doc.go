// Package cartesian flattens N nested loops into a single range-over-func
// iterator over the Cartesian product of N sequences.
//
// The following two loops visit the same values in the same order:
//
//	for x := range xs {
//		for y := range ys {
//			for z := range zs {
//				grid[x][y][z] = x*y + z
//			}
//		}
//	}
//
//	for t := range cartesian.Product3(xs, ys, zs) {
//		x, y, z := t.Unpack()
//		grid[x][y][z] = x*y + z
//	}
//
// Tuples are produced in lexicographic order: the first sequence varies the
// slowest and the last sequence varies the fastest, exactly like the
// innermost loop of a hand-written nest.
//
// The one difference from a hand-written nest is break: a break in the body
// of the flattened loop stops every level at once. continue still advances
// only the innermost position.
//
// Every sequence other than the first is ranged over again each time the
// level enclosing it advances, so inner sequences must be re-traversable.
// Sequences built from slices, maps or Range are; single-use sources such as
// channels should be wrapped with Defer so that the expression producing them
// is evaluated once per traversal.
//
// Product2 returns an iter.Seq2 so that the two values can be bound directly
// by the range statement. Product3 through Product26 are generated (see
// zz_generated.product.go) and yield TupleN values. Product accepts any number
// of sequences of a single element type and is checked when constructed.
package cartesian
