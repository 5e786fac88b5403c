package ga

import (
	"errors"
	"time"

	"github.com/katalvlaran/circlepack/placement"
)

// Sentinel errors returned by validation.
var (
	// ErrBadPopulation indicates PopulationSize < 1.
	ErrBadPopulation = errors.New("ga: population size must be positive")

	// ErrBadGenerations indicates Generations < 0.
	ErrBadGenerations = errors.New("ga: negative generation count")

	// ErrBadRatio indicates a CrossRatio or MutateRatio outside [0, 1].
	ErrBadRatio = errors.New("ga: ratio outside [0, 1]")

	// ErrBadAlpha indicates a negative or non-finite BLX alpha.
	ErrBadAlpha = errors.New("ga: invalid BLX alpha")

	// ErrBadWorkers indicates Workers < 0.
	ErrBadWorkers = errors.New("ga: negative worker count")

	// ErrBadTimeLimit indicates TimeLimit < 0.
	ErrBadTimeLimit = errors.New("ga: negative time limit")

	// ErrBadSamples indicates Coverage.Samples < 0.
	ErrBadSamples = errors.New("ga: negative coverage sample count")

	// ErrUnsupportedStrategy indicates an unknown init, mutation, fitness or
	// selection kind.
	ErrUnsupportedStrategy = errors.New("ga: unsupported strategy")

	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("ga: invalid configuration")
)

// Reason tells why a run stopped.
type Reason int

const (
	// ReasonGenerations: every requested generation ran.
	ReasonGenerations Reason = iota

	// ReasonMaxFitness: the best fitness reached fitness.MaxFitness.
	ReasonMaxFitness

	// ReasonCancelled: the context was done.
	ReasonCancelled

	// ReasonTimeLimit: Options.TimeLimit elapsed.
	ReasonTimeLimit
)

// String returns a short label for r.
func (r Reason) String() string {
	switch r {
	case ReasonGenerations:
		return "generations"
	case ReasonMaxFitness:
		return "max-fitness"
	case ReasonCancelled:
		return "cancelled"
	case ReasonTimeLimit:
		return "time-limit"
	default:
		return "unknown"
	}
}

// GenerationStats describes one finished generation.
type GenerationStats struct {
	// Generation is 1-based.
	Generation int

	// GenerationBest is the fitness of rank 0 after selection.
	GenerationBest float64

	// Best is the best-so-far fitness after this generation.
	Best float64

	// Improved reports a strict improvement of the best-so-far.
	Improved bool

	// Children is the number of offspring produced by the pair loop.
	Children int

	// Mutations is the number of children that were mutated.
	Mutations int

	// MatchFallbacks counts crossovers whose homogenization kept the
	// original pairing for at least one group.
	MatchFallbacks int

	// Elapsed is the wall time since Solve started.
	Elapsed time.Duration
}

// Result is the outcome of Solve.
type Result struct {
	// Best is the best state seen during the run.
	Best placement.State

	// Fitness is the score of Best.
	Fitness float64

	// Generations is the number of generations that ran.
	Generations int

	// Reason tells why the run stopped.
	Reason Reason

	// History holds one entry per generation.
	History []GenerationStats
}
