package fitness

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/circlepack/placement"
)

const (
	// DefaultSamples is the cheap Monte Carlo sample count.
	DefaultSamples = 10_000

	// PreciseSamples is the sample count used for final coverage reports.
	PreciseSamples = 1_000_000

	// minChunk is the smallest per-worker sample chunk worth a goroutine.
	minChunk = 4096
)

// MaxFitness is the sentinel returned by InverseOverlap for an overlap-free
// placement.
var MaxFitness = math.Inf(1)

// ErrUnknownKind is returned by ByKind for an unknown Kind.
var ErrUnknownKind = errors.New("fitness: unknown evaluator kind")

// Func scores a state; larger is better.
type Func func(cfg placement.Configuration, s placement.State) float64

// Kind names a fitness evaluator.
type Kind int

const (
	// InverseOverlapKind maximizes 1/Overlap.
	InverseOverlapKind Kind = iota

	// CoverageKind maximizes the Monte Carlo coverage estimate.
	CoverageKind
)

// String returns the lower-case evaluator name.
func (k Kind) String() string {
	switch k {
	case InverseOverlapKind:
		return "overlap"
	case CoverageKind:
		return "coverage"
	default:
		return "unknown"
	}
}

// ParseKind maps a name produced by String back to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "overlap":
		return InverseOverlapKind, nil
	case "coverage":
		return CoverageKind, nil
	default:
		return 0, ErrUnknownKind
	}
}

// CoverageOptions tunes CoverageArea.
type CoverageOptions struct {
	// Samples is the number of Monte Carlo points; <=0 ⇒ DefaultSamples.
	Samples int

	// Workers is the number of goroutines sharing the samples; <=1 ⇒ inline.
	Workers int
}

// DefaultCoverageOptions returns {DefaultSamples, 1}.
func DefaultCoverageOptions() CoverageOptions {
	return CoverageOptions{Samples: DefaultSamples, Workers: 1}
}

// ByKind returns the Func for k. The coverage evaluator closes over r, so the
// returned Func must not be called concurrently.
func ByKind(k Kind, r *rand.Rand, opts CoverageOptions) (Func, error) {
	switch k {
	case InverseOverlapKind:
		return InverseOverlap, nil
	case CoverageKind:
		return func(cfg placement.Configuration, s placement.State) float64 {
			return CoverageArea(cfg, s, r, opts)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}
