package ga

import (
	"context"
	"time"

	"github.com/katalvlaran/circlepack/fitness"
	"github.com/katalvlaran/circlepack/mutation"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/populate"
	"github.com/katalvlaran/circlepack/rng"
	"github.com/katalvlaran/circlepack/selection"
)

// historyPrealloc caps the up-front History capacity; a run may stop long
// before Generations.
const historyPrealloc = 1024

// Stream identifiers derived from the master generator.
const (
	streamInit uint64 = iota + 1
	streamFitness
)

// Solve evolves a population for cfg and returns the best state seen.
//
// Errors: ErrInvalidConfig (wrapping placement errors), ErrBad*,
// ErrUnsupportedStrategy. Cancellation and time limits are not errors: the
// best-so-far is returned with the matching Reason.
//
// Complexity: O(G · P² · Σk_i³) for G generations, population P and group
// sizes k_i, plus the fitness cost of ranking P + children per generation.
func Solve(ctx context.Context, cfg placement.Configuration, opts Options) (Result, error) {
	// Stage 1: validate.
	if err := validateAll(cfg, opts); err != nil {
		return Result{}, err
	}
	if opts.Workers == 0 {
		opts.Workers = 1
	}
	if opts.Seed == 0 {
		opts.Seed = rng.DefaultSeed
	}

	// Stage 2: wire operators. Each consumer gets its own stream.
	var (
		master = rng.FromSeed(opts.Seed)
		initR  = rng.Derive(master, streamInit)
		evalR  = rng.Derive(master, streamFitness)
	)
	score, err := fitness.ByKind(opts.Fitness, evalR, opts.Coverage)
	if err != nil {
		return Result{}, err
	}
	mutate, err := mutation.ByKind(opts.Mutation)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: initial population, ranked once.
	pop, err := populate.Init(opts.Init, cfg, opts.PopulationSize, initR)
	if err != nil {
		return Result{}, err
	}
	ranked := selection.Best(score, cfg, pop, opts.PopulationSize)
	pop = selection.States(ranked)

	res := Result{
		Best:    ranked[0].State.Clone(),
		Fitness: ranked[0].Fitness,
		Reason:  ReasonGenerations,
		History: make([]GenerationStats, 0, min(opts.Generations, historyPrealloc)),
	}

	// Stage 4: generations.
	var (
		start = time.Now()
		gen   int
		bred  brood
	)
	for gen = 0; gen < opts.Generations; gen++ {
		if res.Fitness == fitness.MaxFitness {
			res.Reason = ReasonMaxFitness
			break
		}
		if ctx.Err() != nil {
			res.Reason = ReasonCancelled
			break
		}
		if opts.TimeLimit > 0 && time.Since(start) >= opts.TimeLimit {
			res.Reason = ReasonTimeLimit
			break
		}

		bred, err = breed(cfg, pop, opts, mutate, master)
		if err != nil {
			return res, err
		}
		populate.Normalize(cfg, bred.children)

		merged := make(placement.Population, 0, len(pop)+len(bred.children))
		merged = append(merged, pop...)
		merged = append(merged, bred.children...)
		ranked = selection.Best(score, cfg, merged, opts.PopulationSize)
		pop = selection.States(ranked)

		stats := GenerationStats{
			Generation:     gen + 1,
			GenerationBest: ranked[0].Fitness,
			Children:       len(bred.children),
			Mutations:      bred.mutations,
			MatchFallbacks: bred.fallbacks,
		}
		if ranked[0].Fitness > res.Fitness {
			res.Best = ranked[0].State.Clone()
			res.Fitness = ranked[0].Fitness
			stats.Improved = true
		}
		stats.Best = res.Fitness
		stats.Elapsed = time.Since(start)

		res.Generations++
		res.History = append(res.History, stats)
		if opts.OnGeneration != nil {
			opts.OnGeneration(stats)
		}
	}
	if res.Fitness == fitness.MaxFitness {
		res.Reason = ReasonMaxFitness
	}

	return res, nil
}

// SolveWith runs Solve with DefaultOptions, overriding the four run
// parameters, and returns only the best state.
func SolveWith(cfg placement.Configuration, populationSize, generations int, crossRatio, mutateRatio float64) (placement.State, error) {
	opts := DefaultOptions()
	opts.PopulationSize = populationSize
	opts.Generations = generations
	opts.CrossRatio = crossRatio
	opts.MutateRatio = mutateRatio

	res, err := Solve(context.Background(), cfg, opts)
	if err != nil {
		return nil, err
	}

	return res.Best, nil
}
