package cmd

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authzed/cartesian/pkg/testutil"
)

func TestParseSequence(t *testing.T) {
	testCases := []struct {
		arg      string
		expected []string
	}{
		{"0..3", []string{"0", "1", "2"}},
		{"-2..1", []string{"-2", "-1", "0"}},
		{"0..=3", []string{"0", "1", "2", "3"}},
		{"3..3", nil},
		{"3..=3", []string{"3"}},
		{"5..2", nil},
		{"a,b,c", []string{"a", "b", "c"}},
		{"single", []string{"single"}},
		{"a,,b", []string{"a", "", "b"}},
		{"", nil},
		{"a..b,c", []string{"a..b", "c"}},
		{"0..3,", []string{"0..3", ""}},
		{"x,0..=2", []string{"x", "0..=2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.arg, func(t *testing.T) {
			seq, err := ParseSequence(tc.arg)
			require.NoError(t, err)
			testutil.RequireSeqEqual(t, tc.expected, seq)

			// Sequences are re-traversable.
			testutil.RequireSeqEqual(t, tc.expected, seq)
		})
	}
}

func TestParseSequenceErrors(t *testing.T) {
	testCases := []struct {
		arg         string
		errContains string
	}{
		{"a..3", "lower bound"},
		{"0..b", "upper bound"},
		{"0..1..2", "expected exactly one"},
		{"0...3", "upper bound"},
		{"0..=" + strconv.Itoa(int(^uint(0)>>1)), "too large"},
	}

	for _, tc := range testCases {
		t.Run(tc.arg, func(t *testing.T) {
			seq, err := ParseSequence(tc.arg)
			require.Nil(t, seq)
			require.ErrorContains(t, err, tc.errContains)
		})
	}
}

func TestParseSequences(t *testing.T) {
	seqs, err := ParseSequences([]string{"0..2", "x,y"})
	require.NoError(t, err)
	require.Len(t, seqs, 2)

	_, err = ParseSequences([]string{"0..2", "x..y"})
	require.Error(t, err)
}
