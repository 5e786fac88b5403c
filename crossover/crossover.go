package crossover

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/hungarian"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/rng"
)

// DefaultAlpha is the BLX-α exploration factor used by the genetic loop.
const DefaultAlpha = 0.5

// blxEpsilon widens every sampling interval so that equal parents still give
// a non-empty range.
const blxEpsilon = 1e-3

var (
	// ErrLengthMismatch is returned when the parents differ in length.
	ErrLengthMismatch = errors.New("crossover: parents differ in length")

	// ErrBadAlpha is returned for a negative or non-finite alpha.
	ErrBadAlpha = errors.New("crossover: invalid alpha")
)

// negDistance is the matching weight: maximizing it minimizes total distance.
func negDistance(a, b geom.Point) float64 {
	return -a.Distance(b)
}

// Homogenize returns p1 unchanged and a copy of p2 whose points are reordered,
// block by block, to minimize the total distance to the matching block of p1.
//
// A block whose matching fails keeps its original order. The returned states
// are always usable; the error (if any) joins every block failure and wraps
// hungarian.ErrNoMatch, so callers may count fallbacks and carry on.
//
// Complexity: O(Σ k_i³) over group sizes k_i.
func Homogenize(cfg placement.Configuration, p1, p2 placement.State, opts hungarian.Options) (placement.State, placement.State, error) {
	if len(p1) != len(p2) {
		return p1, p2, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(p1), len(p2))
	}
	out := p2.Clone()

	var (
		errs []error
		err  error
		b    placement.Block
	)
	for _, b = range cfg.Blocks() {
		if b.Len() <= 1 || b.End > len(out) {
			continue
		}
		err = hungarian.Reorder(p1[b.Start:b.End], out[b.Start:b.End], negDistance, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("group %d: %w", b.Group, err))
		}
	}

	return p1, out, errors.Join(errs...)
}

// BLXAlpha produces one child from two aligned parents. For each point and
// axis independently, with a and b the parent coordinates:
//
//	lo = min(a,b), hi = max(a,b) + 1e-3, d = hi - lo
//	child ~ U[lo - α·d, hi + α·d]
//
// Complexity: O(n).
func BLXAlpha(p1, p2 placement.State, alpha float64, r *rand.Rand) (placement.State, error) {
	if len(p1) != len(p2) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(p1), len(p2))
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadAlpha, alpha)
	}
	child := make(placement.State, len(p1))

	var i int
	for i = range p1 {
		child[i] = geom.Point{
			X: blend(p1[i].X, p2[i].X, alpha, r),
			Y: blend(p1[i].Y, p2[i].Y, alpha, r),
		}
	}

	return child, nil
}

// blend samples one BLX-α coordinate.
func blend(a, b, alpha float64, r *rand.Rand) float64 {
	var lo, hi, d float64
	lo = math.Min(a, b)
	hi = math.Max(a, b) + blxEpsilon
	d = hi - lo

	return rng.Uniform(r, lo-alpha*d, hi+alpha*d)
}
