package mutation

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/circlepack/placement"
)

// StaticSigma is the fixed standard deviation of StaticGaussian.
const StaticSigma = 50.0

var (
	// ErrLengthMismatch is returned when child and parents differ in length.
	ErrLengthMismatch = errors.New("mutation: child and parents differ in length")

	// ErrUnknownKind is returned by ByKind for an unknown Kind.
	ErrUnknownKind = errors.New("mutation: unknown operator kind")
)

// Operator mutates child using the parents it was bred from.
type Operator func(child, parent1, parent2 placement.State, r *rand.Rand) (placement.State, error)

// Kind names a mutation operator.
type Kind int

const (
	// Dynamic selects DynamicGaussian.
	Dynamic Kind = iota

	// Static selects StaticGaussian.
	Static
)

// String returns the lower-case operator name.
func (k Kind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// ParseKind maps a name produced by String back to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "dynamic":
		return Dynamic, nil
	case "static":
		return Static, nil
	default:
		return 0, ErrUnknownKind
	}
}

// ByKind returns the Operator for k.
func ByKind(k Kind) (Operator, error) {
	switch k {
	case Dynamic:
		return DynamicGaussian, nil
	case Static:
		return StaticGaussian, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// DynamicGaussian adds N(0, σ_i²) noise to both axes of child[i], with
// σ_i = |parent1[i].X - parent2[i].X|.
//
// Complexity: O(n).
func DynamicGaussian(child, parent1, parent2 placement.State, r *rand.Rand) (placement.State, error) {
	if len(parent1) != len(child) || len(parent2) != len(child) {
		return nil, fmt.Errorf("%w: child=%d p1=%d p2=%d", ErrLengthMismatch, len(child), len(parent1), len(parent2))
	}
	out := child.Clone()

	var (
		i    int
		norm = distuv.Normal{Mu: 0, Src: r}
	)
	for i = range out {
		norm.Sigma = math.Abs(parent1[i].X - parent2[i].X)
		out[i].X += norm.Rand()
		out[i].Y += norm.Rand()
	}

	return out, nil
}

// StaticGaussian adds N(0, StaticSigma²) noise to both axes of every point.
// The parents are ignored.
//
// Complexity: O(n).
func StaticGaussian(child, _, _ placement.State, r *rand.Rand) (placement.State, error) {
	out := child.Clone()

	var (
		i    int
		norm = distuv.Normal{Mu: 0, Sigma: StaticSigma, Src: r}
	)
	for i = range out {
		out[i].X += norm.Rand()
		out[i].Y += norm.Rand()
	}

	return out, nil
}
