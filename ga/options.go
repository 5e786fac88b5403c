package ga

import (
	"time"

	"github.com/katalvlaran/circlepack/crossover"
	"github.com/katalvlaran/circlepack/fitness"
	"github.com/katalvlaran/circlepack/hungarian"
	"github.com/katalvlaran/circlepack/mutation"
	"github.com/katalvlaran/circlepack/populate"
	"github.com/katalvlaran/circlepack/selection"
)

// Default run parameters.
const (
	DefaultPopulationSize = 20
	DefaultGenerations    = 100
	DefaultCrossRatio     = 0.8
	DefaultMutateRatio    = 0.05
)

// Options configures Solve.
//
// Strategy fields pick one implementation per operator:
//   - Init:      populate.Random | populate.Heuristic
//   - Mutation:  mutation.Dynamic | mutation.Static
//   - Fitness:   fitness.InverseOverlapKind | fitness.CoverageKind
//   - Selection: selection.Truncation
type Options struct {
	PopulationSize int
	Generations    int
	CrossRatio     float64
	MutateRatio    float64

	// Alpha is the BLX-α exploration factor.
	Alpha float64

	Init      populate.Strategy
	Mutation  mutation.Kind
	Fitness   fitness.Kind
	Selection selection.Kind

	// Coverage tunes the Monte Carlo evaluator when Fitness is CoverageKind.
	Coverage fitness.CoverageOptions

	// Match tunes the Hungarian matcher used by homogenization.
	Match hungarian.Options

	// Workers is the number of goroutines of the pair loop; 0 ⇒ 1.
	Workers int

	// Seed drives every random decision; 0 ⇒ rng.DefaultSeed.
	Seed uint64

	// TimeLimit bounds the run, checked between generations; 0 ⇒ unlimited.
	TimeLimit time.Duration

	// OnGeneration, if set, is called after every generation from the
	// goroutine running Solve.
	OnGeneration func(GenerationStats)
}

// DefaultOptions returns the canonical configuration: heuristic init, dynamic
// Gaussian mutation, inverse-overlap fitness, truncation selection.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		CrossRatio:     DefaultCrossRatio,
		MutateRatio:    DefaultMutateRatio,
		Alpha:          crossover.DefaultAlpha,
		Init:           populate.Heuristic,
		Mutation:       mutation.Dynamic,
		Fitness:        fitness.InverseOverlapKind,
		Selection:      selection.Truncation,
		Coverage:       fitness.DefaultCoverageOptions(),
		Match:          hungarian.DefaultOptions(),
		Workers:        1,
	}
}
