package placement

import (
	"errors"

	"github.com/katalvlaran/circlepack/geom"
)

// Sentinel errors returned by Validate, CheckFit and CheckState.
var (
	// ErrCountMismatch indicates that sum(Counts) != N.
	ErrCountMismatch = errors.New("placement: sum of group counts differs from N")

	// ErrGroupMismatch indicates that len(Counts) != len(Radius).
	ErrGroupMismatch = errors.New("placement: counts and radius lists differ in length")

	// ErrNegativeValue indicates a negative width, height, count or radius.
	ErrNegativeValue = errors.New("placement: negative value in configuration")

	// ErrNonFinite indicates a NaN or infinite width, height or radius.
	ErrNonFinite = errors.New("placement: non-finite value in configuration")

	// ErrRadiusTooLarge indicates a radius above W/2 or H/2, for which the
	// boundary clamp cannot keep a circle inside the rectangle.
	ErrRadiusTooLarge = errors.New("placement: radius does not fit the rectangle")

	// ErrStateLength indicates a state whose length differs from N.
	ErrStateLength = errors.New("placement: state length differs from N")
)

// Configuration is the problem definition. Treat it as read-only once built.
type Configuration struct {
	// W and H are the rectangle width and height.
	W, H float64

	// N is the total number of circles.
	N int

	// Counts[i] is the size of group i.
	Counts []int

	// Radius[i] is the radius shared by every circle of group i.
	Radius []float64
}

// State is one candidate placement: N centres in block order.
type State []geom.Point

// Population is the set of states alive in one generation.
type Population []State

// Block is the contiguous slice [Start, End) of a State owned by one group.
type Block struct {
	Group  int
	Start  int
	End    int
	Radius float64
}

// Len returns End-Start.
func (b Block) Len() int { return b.End - b.Start }

// Circle is a derived (centre, radius) view of one point of a State.
type Circle struct {
	Center geom.Point
	Radius float64
}

// Contains reports whether p lies inside or on the boundary of c.
func (c Circle) Contains(p geom.Point) bool {
	return c.Center.Distance(p) <= c.Radius
}
