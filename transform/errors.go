package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraint indicates an input value violates the domain
	// precondition of its transform. Use errors.As with *ConstraintError
	// to recover the transform name, value and violated bound.
	ErrConstraint = errors.New("transform: constraint violation")

	// ErrNotPositiveDefinite indicates the covariance factoring routine
	// could not decompose its input.
	ErrNotPositiveDefinite = errors.New("transform: matrix is not positive definite")

	// ErrEmptyMatrix indicates a matrix transform received a 0×0 input.
	ErrEmptyMatrix = errors.New("transform: matrix must have at least one row")
)

// ConstraintError reports which transform rejected which value, and the
// bound it violated. It unwraps to ErrConstraint.
type ConstraintError struct {
	Transform string  // transform name, e.g. "Positive"
	Value     float64 // the offending input value
	Bound     string  // violated bound, e.g. "y >= 0"
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("transform: %s: value %v violates %s", e.Transform, e.Value, e.Bound)
}

func (e *ConstraintError) Unwrap() error { return ErrConstraint }

// constraintErr builds the standard violation error for one transform.
func constraintErr(transform string, value float64, bound string) error {
	return &ConstraintError{Transform: transform, Value: value, Bound: bound}
}
