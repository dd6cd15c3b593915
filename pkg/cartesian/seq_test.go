package cartesian

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authzed/cartesian/pkg/testutil"
)

func TestRange(t *testing.T) {
	testCases := []struct {
		name     string
		start    int
		end      int
		expected []int
	}{
		{"ascending", 0, 3, []int{0, 1, 2}},
		{"negative", -2, 1, []int{-2, -1, 0}},
		{"empty", 0, 0, nil},
		{"reversed", 3, 0, nil},
		{"single", 5, 6, []int{5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.RequireSeqEqual(t, tc.expected, Range(tc.start, tc.end))
		})
	}
}

func TestRangeUnsignedBounds(t *testing.T) {
	testutil.RequireSeqEqual(t, []uint8{253, 254}, Range[uint8](253, 255))

	var got []int8
	for v := range Range[int8](-128, 127) {
		got = append(got, v)
	}
	require.Len(t, got, 255)
	require.Equal(t, int8(126), got[len(got)-1])
}

func TestRangeBreak(t *testing.T) {
	var got []int
	for v := range Range(0, 100) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

// channelSeq returns a sequence backed by a closed, buffered channel. It can
// only be consumed once.
func channelSeq(values ...string) iter.Seq[string] {
	ch := make(chan string, len(values))
	for _, v := range values {
		ch <- v
	}
	close(ch)

	return func(yield func(string) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

func TestSingleUseInnerLevel(t *testing.T) {
	t.Run("without Defer the inner level is exhausted after one outer step", func(t *testing.T) {
		var got []Tuple2[int, string]
		for a, b := range Product2(Range(0, 2), channelSeq("x", "y")) {
			got = append(got, Tuple2[int, string]{a, b})
		}
		require.Equal(t, []Tuple2[int, string]{{0, "x"}, {0, "y"}}, got)
	})

	t.Run("Defer re-evaluates the inner level for each outer step", func(t *testing.T) {
		evaluations := 0
		inner := Defer(func() iter.Seq[string] {
			evaluations++
			return channelSeq("x", "y")
		})

		var got []Tuple2[int, string]
		for a, b := range Product2(Range(0, 2), inner) {
			got = append(got, Tuple2[int, string]{a, b})
		}
		require.Equal(t, []Tuple2[int, string]{{0, "x"}, {0, "y"}, {1, "x"}, {1, "y"}}, got)
		require.Equal(t, 2, evaluations)
	})
}

func TestDeferIsLazy(t *testing.T) {
	evaluations := 0
	seq := Defer(func() iter.Seq[int] {
		evaluations++
		return slices.Values([]int{1, 2, 3})
	})
	require.Zero(t, evaluations)

	for v := range seq {
		if v == 2 {
			break
		}
	}
	require.Equal(t, 1, evaluations)

	testutil.RequireSeqEqual(t, []int{1, 2, 3}, seq)
	require.Equal(t, 2, evaluations)
}
