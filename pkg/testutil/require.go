// Package testutil implements various utilities to reduce boilerplate in unit
// tests a la testify.
package testutil

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// RequireEqualEmptyNil is a version of require.Equal, but considers nil
// slices/maps to be equal to empty slices/maps.
func RequireEqualEmptyNil(t testing.TB, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	opts := []cmp.Option{cmpopts.EquateEmpty()}
	msgAndArgs = append(msgAndArgs, cmp.Diff(expected, actual, opts...))
	require.Truef(t, cmp.Equal(expected, actual, opts...), "Should be equal", msgAndArgs...)
}

// RequireSeqEqual collects seq and requires it to produce exactly expected,
// in order. An empty expected slice matches a sequence that yields nothing.
func RequireSeqEqual[T any](t testing.TB, expected []T, seq iter.Seq[T], msgAndArgs ...any) {
	t.Helper()
	RequireEqualEmptyNil(t, expected, slices.Collect(seq), msgAndArgs...)
}
