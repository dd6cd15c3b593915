package testutil

import (
	"slices"
	"testing"
)

func TestRequireEqualEmptyNil(t *testing.T) {
	t.Parallel()
	RequireEqualEmptyNil(t, []int(nil), []int(nil))
	RequireEqualEmptyNil(t, []int(nil), []int{})
	RequireEqualEmptyNil(t, []int{}, []int(nil))
	RequireEqualEmptyNil(t, []int{}, []int{})
}

func TestRequireSeqEqual(t *testing.T) {
	t.Parallel()
	RequireSeqEqual(t, []string{"a", "b"}, slices.Values([]string{"a", "b"}))
	RequireSeqEqual(t, nil, slices.Values([]string{}))
	RequireSeqEqual(t, []int{}, slices.Values([]int(nil)))
}
