package ga

import (
	"fmt"
	"math"

	"github.com/katalvlaran/circlepack/fitness"
	"github.com/katalvlaran/circlepack/mutation"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/populate"
	"github.com/katalvlaran/circlepack/selection"
)

// validateAll checks cfg and opts before any work starts.
func validateAll(cfg placement.Configuration, opts Options) error {
	// Stage 1: options on their own.
	if err := validateOptions(opts); err != nil {
		return err
	}

	// Stage 2: configuration structure and clamp precondition.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.CheckFit(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// validateOptions checks ranges and strategy kinds.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.PopulationSize < 1 {
		return fmt.Errorf("%w: %d", ErrBadPopulation, opts.PopulationSize)
	}
	if opts.Generations < 0 {
		return fmt.Errorf("%w: %d", ErrBadGenerations, opts.Generations)
	}
	if !isRatio(opts.CrossRatio) || !isRatio(opts.MutateRatio) {
		return fmt.Errorf("%w: cross=%g mutate=%g", ErrBadRatio, opts.CrossRatio, opts.MutateRatio)
	}
	if math.IsNaN(opts.Alpha) || math.IsInf(opts.Alpha, 0) || opts.Alpha < 0 {
		return fmt.Errorf("%w: %g", ErrBadAlpha, opts.Alpha)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, opts.Workers)
	}
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: %s", ErrBadTimeLimit, opts.TimeLimit)
	}
	if opts.Coverage.Samples < 0 {
		return fmt.Errorf("%w: %d", ErrBadSamples, opts.Coverage.Samples)
	}

	if err := opts.Match.Validate(); err != nil {
		return fmt.Errorf("ga: match options: %w", err)
	}

	switch opts.Init {
	case populate.Random, populate.Heuristic:
	default:
		return fmt.Errorf("%w: init %d", ErrUnsupportedStrategy, int(opts.Init))
	}
	switch opts.Mutation {
	case mutation.Dynamic, mutation.Static:
	default:
		return fmt.Errorf("%w: mutation %d", ErrUnsupportedStrategy, int(opts.Mutation))
	}
	switch opts.Fitness {
	case fitness.InverseOverlapKind, fitness.CoverageKind:
	default:
		return fmt.Errorf("%w: fitness %d", ErrUnsupportedStrategy, int(opts.Fitness))
	}
	if opts.Selection != selection.Truncation {
		return fmt.Errorf("%w: selection %d", ErrUnsupportedStrategy, int(opts.Selection))
	}

	return nil
}

// isRatio reports v ∈ [0, 1].
func isRatio(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
