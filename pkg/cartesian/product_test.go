package cartesian

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authzed/cartesian/pkg/testutil"
)

// countTraversals wraps seq so that every range over it increments *count.
func countTraversals[T any](seq iter.Seq[T], count *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		*count++
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

func collectPairs[A, B any](seq iter.Seq2[A, B]) []Tuple2[A, B] {
	var pairs []Tuple2[A, B]
	for a, b := range seq {
		pairs = append(pairs, Tuple2[A, B]{V1: a, V2: b})
	}
	return pairs
}

func TestProduct2(t *testing.T) {
	testCases := []struct {
		name     string
		a        []int
		b        []string
		expected []Tuple2[int, string]
	}{
		{
			name: "two by two",
			a:    []int{0, 1},
			b:    []string{"x", "y"},
			expected: []Tuple2[int, string]{
				{0, "x"}, {0, "y"}, {1, "x"}, {1, "y"},
			},
		},
		{
			name: "one by three",
			a:    []int{7},
			b:    []string{"a", "b", "c"},
			expected: []Tuple2[int, string]{
				{7, "a"}, {7, "b"}, {7, "c"},
			},
		},
		{
			name: "three by one",
			a:    []int{1, 2, 3},
			b:    []string{"z"},
			expected: []Tuple2[int, string]{
				{1, "z"}, {2, "z"}, {3, "z"},
			},
		},
		{
			name:     "empty outer",
			a:        []int{},
			b:        []string{"a", "b"},
			expected: nil,
		},
		{
			name:     "empty inner",
			a:        []int{0, 1, 2},
			b:        nil,
			expected: nil,
		},
		{
			name:     "both empty",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			product := Product2(slices.Values(tc.a), slices.Values(tc.b))
			testutil.RequireEqualEmptyNil(t, tc.expected, collectPairs(product))

			testutil.RequireSeqEqual(t, tc.expected, Pairs(slices.Values(tc.a), slices.Values(tc.b)))
			require.Len(t, collectPairs(product), len(tc.a)*len(tc.b))
		})
	}
}

func TestProduct2Ranges(t *testing.T) {
	var got []string
	for a, b := range Product2(Range(0, 2), Range(0, 2)) {
		got = append(got, fmt.Sprintf("(%d,%d)", a, b))
	}
	require.Equal(t, []string{"(0,0)", "(0,1)", "(1,0)", "(1,1)"}, got)

	calls := 0
	for range Product2(Range(0, 3), Range(0, 0)) {
		calls++
	}
	require.Zero(t, calls)
}

func TestProduct2Chars(t *testing.T) {
	var acc strings.Builder
	for a, b := range Product2(Range(0, 2), slices.Values([]rune("xy"))) {
		fmt.Fprintf(&acc, "%d%c ", a, b)
	}
	require.Equal(t, "0x 0y 1x 1y ", acc.String())
}

func TestProduct3MatchesNestedLoops(t *testing.T) {
	xs := []int{0, 1}
	ys := []string{"0", "1"}
	zs := []bool{false, true}

	var expected []Tuple3[int, string, bool]
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				expected = append(expected, Tuple3[int, string, bool]{x, y, z})
			}
		}
	}

	testutil.RequireSeqEqual(t, expected, Product3(slices.Values(xs), slices.Values(ys), slices.Values(zs)))
}

func TestProduct3BinaryNumbers(t *testing.T) {
	strs := []string{"0", "1"}
	ints := []int{0, 1}

	var acc strings.Builder
	for tuple := range Product3(Range(0, 2), slices.Values(ints), slices.Values(strs)) {
		a, b, c := tuple.Unpack()
		fmt.Fprintf(&acc, "%d%d%s ", a, b, c)
	}
	require.Equal(t, "000 001 010 011 100 101 110 111 ", acc.String())
}

func TestProductEmptyLevel(t *testing.T) {
	full := []int{1, 2, 3}
	for position := range 4 {
		t.Run(fmt.Sprintf("empty at %d", position), func(t *testing.T) {
			seqs := make([]iter.Seq[int], 4)
			for i := range seqs {
				if i == position {
					seqs[i] = slices.Values([]int{})
				} else {
					seqs[i] = slices.Values(full)
				}
			}

			bodyCalls := 0
			for range Product4(seqs[0], seqs[1], seqs[2], seqs[3]) {
				bodyCalls++
			}
			require.Zero(t, bodyCalls)

			bodyCalls = 0
			for range MustProduct(seqs...) {
				bodyCalls++
			}
			require.Zero(t, bodyCalls)
		})
	}
}

func TestProductBreakStopsAllLevels(t *testing.T) {
	testCases := []struct {
		name     string
		stopAt   Tuple3[int, int, int]
		expected int
	}{
		{
			name:     "first tuple",
			stopAt:   Tuple3[int, int, int]{0, 0, 0},
			expected: 1,
		},
		{
			name:     "end of an inner run",
			stopAt:   Tuple3[int, int, int]{0, 0, 2},
			expected: 3,
		},
		{
			name:     "middle level advance",
			stopAt:   Tuple3[int, int, int]{0, 1, 0},
			expected: 4,
		},
		{
			name:     "outer level advance",
			stopAt:   Tuple3[int, int, int]{1, 0, 0},
			expected: 10,
		},
		{
			name:     "last tuple",
			stopAt:   Tuple3[int, int, int]{1, 2, 2},
			expected: 18,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen []Tuple3[int, int, int]
			for tuple := range Product3(Range(0, 2), Range(0, 3), Range(0, 3)) {
				seen = append(seen, tuple)
				if tuple == tc.stopAt {
					break
				}
			}
			require.Len(t, seen, tc.expected)
			require.Equal(t, tc.stopAt, seen[len(seen)-1])

			var rows [][]int
			for row := range MustProduct(Range(0, 2), Range(0, 3), Range(0, 3)) {
				rows = append(rows, row)
				if slices.Equal(row, []int{tc.stopAt.V1, tc.stopAt.V2, tc.stopAt.V3}) {
					break
				}
			}
			require.Len(t, rows, tc.expected)
		})
	}
}

func TestProductBreakDoesNotPullFurther(t *testing.T) {
	pulled := 0
	counting := func(n int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := range n {
				pulled++
				if !yield(i) {
					return
				}
			}
		}
	}

	for a, b := range Product2(counting(10), counting(10)) {
		if a == 0 && b == 4 {
			break
		}
	}

	// One value from the outer level, five from the inner level.
	require.Equal(t, 6, pulled)
}

func TestProductBreakOnInfiniteOuter(t *testing.T) {
	naturals := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	var got []Tuple2[int, string]
	for tuple := range Pairs(naturals, slices.Values([]string{"a", "b"})) {
		if tuple.V1 == 3 {
			break
		}
		got = append(got, tuple)
	}
	require.Len(t, got, 6)
}

func TestProductContinueAdvancesInnermost(t *testing.T) {
	var got []Tuple3[int, int, int]
	for tuple := range Product3(Range(0, 2), Range(0, 2), Range(0, 3)) {
		if tuple.V3 == 1 {
			continue
		}
		got = append(got, tuple)
	}

	require.Equal(t, []Tuple3[int, int, int]{
		{0, 0, 0}, {0, 0, 2},
		{0, 1, 0}, {0, 1, 2},
		{1, 0, 0}, {1, 0, 2},
		{1, 1, 0}, {1, 1, 2},
	}, got)
}

func TestProductReinstantiatesInnerLevels(t *testing.T) {
	var outer, middle, inner int
	product := Product3(
		countTraversals(Range(0, 2), &outer),
		countTraversals(Range(0, 3), &middle),
		countTraversals(Range(0, 4), &inner),
	)

	require.Zero(t, outer, "constructing a product must not range over anything")

	count := 0
	for range product {
		count++
	}

	require.Equal(t, 24, count)
	require.Equal(t, 1, outer)
	require.Equal(t, 2, middle)
	require.Equal(t, 6, inner)

	// Ranging again starts a fresh traversal of every level.
	count = 0
	for range product {
		count++
	}
	require.Equal(t, 24, count)
	require.Equal(t, 2, outer)
}

func TestProductPanicsPropagate(t *testing.T) {
	boom := errors.New("boom")
	failing := func(yield func(int) bool) {
		if !yield(1) {
			return
		}
		panic(boom)
	}

	require.PanicsWithError(t, "boom", func() {
		for range Product2(Range(0, 2), iter.Seq[int](failing)) {
		}
	})

	require.PanicsWithError(t, "boom", func() {
		for range Product2(Range(0, 2), Range(0, 2)) {
			panic(boom)
		}
	})
}

func TestProductOverMapKeys(t *testing.T) {
	colors := map[string]int{"red": 1, "blue": 2}
	sizes := []string{"s", "m"}

	var got []string
	for color, size := range Product2(maps.Keys(colors), slices.Values(sizes)) {
		got = append(got, color+"/"+size)
	}

	slices.Sort(got)
	require.Equal(t, []string{"blue/m", "blue/s", "red/m", "red/s"}, got)
}

func TestProductVariadic(t *testing.T) {
	t.Run("matches Product3", func(t *testing.T) {
		a, b, c := []int{1, 2}, []int{3}, []int{4, 5, 6}

		var expected [][]int
		for tuple := range Product3(slices.Values(a), slices.Values(b), slices.Values(c)) {
			expected = append(expected, []int{tuple.V1, tuple.V2, tuple.V3})
		}

		product, err := Product(slices.Values(a), slices.Values(b), slices.Values(c))
		require.NoError(t, err)
		require.Equal(t, expected, slices.Collect(product))
	})

	t.Run("rows may be retained", func(t *testing.T) {
		product, err := Product(slices.Values([]string{"a", "b"}), slices.Values([]string{"c", "d"}))
		require.NoError(t, err)

		var rows [][]string
		for row := range product {
			rows = append(rows, row)
		}
		require.Equal(t, [][]string{{"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}}, rows)
	})

	t.Run("arguments slice is not aliased", func(t *testing.T) {
		seqs := []iter.Seq[int]{Range(0, 2), Range(0, 2)}
		product, err := Product(seqs...)
		require.NoError(t, err)

		seqs[1] = Range(0, 0)
		require.Len(t, slices.Collect(product), 4)
	})

	t.Run("wide product", func(t *testing.T) {
		seqs := make([]iter.Seq[int], 10)
		for i := range seqs {
			seqs[i] = Range(0, 2)
		}

		product, err := Product(seqs...)
		require.NoError(t, err)

		count := 0
		for row := range product {
			require.Len(t, row, 10)
			count++
		}
		require.Equal(t, 1024, count)
	})
}

func TestProductArity(t *testing.T) {
	testCases := []struct {
		name string
		seqs []iter.Seq[int]
	}{
		{
			name: "no sequences",
			seqs: nil,
		},
		{
			name: "single sequence",
			seqs: []iter.Seq[int]{Range(0, 3)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			product, err := Product(tc.seqs...)
			require.Nil(t, product)
			require.ErrorIs(t, err, ErrTooFewSequences)

			var arityErr *ArityError
			require.ErrorAs(t, err, &arityErr)
			require.Equal(t, len(tc.seqs), arityErr.Got)
			require.Contains(t, err.Error(), fmt.Sprintf("got %d", len(tc.seqs)))

			require.Panics(t, func() {
				MustProduct(tc.seqs...)
			})
		})
	}
}
