package cartesian

import (
	"errors"
	"fmt"
)

const (
	// MinArity is the smallest number of sequences a product accepts.
	MinArity = 2

	// MaxArity is the largest arity with a generated ProductN function.
	MaxArity = 26
)

// ErrTooFewSequences is wrapped by every *ArityError.
var ErrTooFewSequences = errors.New("too few sequences for a cartesian product")

// ArityError is returned when a product is constructed from fewer than
// MinArity sequences.
type ArityError struct {
	// Got is the number of sequences that were supplied.
	Got int
}

func (err *ArityError) Error() string {
	return fmt.Sprintf("cartesian product requires at least %d sequences, got %d", MinArity, err.Got)
}

// Unwrap returns ErrTooFewSequences.
func (err *ArityError) Unwrap() error {
	return ErrTooFewSequences
}
