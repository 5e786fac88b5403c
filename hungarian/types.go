package hungarian

import (
	"errors"
	"math"
)

// DefaultTolerance is the tightness tolerance used when Options.Tolerance is 0.
const DefaultTolerance = 1e-4

var (
	// ErrNoMatch is returned when no perfect matching was found within the
	// iteration budget.
	ErrNoMatch = errors.New("hungarian: no match found")

	// ErrNonSquare is returned for a weight matrix with rows != cols.
	ErrNonSquare = errors.New("hungarian: weight matrix is not square")

	// ErrDimensionMismatch is returned when the two point sets differ in size.
	ErrDimensionMismatch = errors.New("hungarian: point sets differ in size")

	// ErrNonFinite is returned for NaN or infinite weights.
	ErrNonFinite = errors.New("hungarian: non-finite weight")

	// ErrBadTolerance is returned for a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("hungarian: invalid tolerance")

	// ErrBadIterations is returned for a negative iteration budget.
	ErrBadIterations = errors.New("hungarian: negative iteration budget")
)

// Options configures Solve and Reorder.
type Options struct {
	// Tolerance absorbs floating error in tightness tests. 0 ⇒ DefaultTolerance.
	Tolerance float64

	// MaxIterations caps the number of tree-growing rounds over the whole
	// solve. 0 ⇒ n³.
	MaxIterations int
}

// DefaultOptions returns Options{Tolerance: DefaultTolerance}.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Validate reports ErrBadTolerance for a negative or non-finite Tolerance and
// ErrBadIterations for a negative MaxIterations.
func (o Options) Validate() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return ErrBadTolerance
	}
	if o.MaxIterations < 0 {
		return ErrBadIterations
	}

	return nil
}

// Result is a perfect matching.
type Result struct {
	// Assignment[i] is the column matched to row i.
	Assignment []int

	// Weight is the total weight Σ w(i, Assignment[i]).
	Weight float64

	// Iterations is the number of tree-growing rounds used.
	Iterations int
}
