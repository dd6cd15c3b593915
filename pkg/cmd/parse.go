package cmd

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/jzelinskie/stringz"

	"github.com/authzed/cartesian/pkg/cartesian"
)

const (
	inclusiveRangeSep = "..="
	rangeSep          = ".."
	listSep           = ","
)

// ParseSequence parses one sequence argument of the expand command:
//
//	lo..hi    the integers from lo up to but excluding hi
//	lo..=hi   the integers from lo up to and including hi
//	a,b,c     the listed values, in order
//
// An argument containing a comma is always a list, even when a value contains
// "..". The empty string is the empty sequence.
func ParseSequence(arg string) (iter.Seq[string], error) {
	switch {
	case arg == "":
		return slices.Values([]string(nil)), nil

	case strings.Contains(arg, listSep):
		return slices.Values(strings.Split(arg, listSep)), nil

	case strings.Contains(arg, inclusiveRangeSep):
		lo, hi, err := parseBounds(arg, inclusiveRangeSep)
		if err != nil {
			return nil, err
		}
		if hi == math.MaxInt {
			return nil, fmt.Errorf("invalid range %q: upper bound is too large", arg)
		}
		return formatInts(cartesian.Range(lo, hi+1)), nil

	case strings.Contains(arg, rangeSep):
		lo, hi, err := parseBounds(arg, rangeSep)
		if err != nil {
			return nil, err
		}
		return formatInts(cartesian.Range(lo, hi)), nil

	default:
		return slices.Values([]string{arg}), nil
	}
}

// ParseSequences parses every argument with ParseSequence.
func ParseSequences(args []string) ([]iter.Seq[string], error) {
	seqs := make([]iter.Seq[string], 0, len(args))
	for _, arg := range args {
		seq, err := ParseSequence(arg)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

func parseBounds(arg, sep string) (int, int, error) {
	var loStr, hiStr string
	if err := stringz.SplitExact(arg, sep, &loStr, &hiStr); err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: expected exactly one %q", arg, sep)
	}

	lo, err := strconv.Atoi(loStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: lower bound: %w", arg, err)
	}

	hi, err := strconv.Atoi(hiStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: upper bound: %w", arg, err)
	}

	return lo, hi, nil
}

func formatInts(seq iter.Seq[int]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for v := range seq {
			if !yield(strconv.Itoa(v)) {
				return
			}
		}
	}
}
