package ga

import (
	"errors"
	"math/rand/v2"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/circlepack/crossover"
	"github.com/katalvlaran/circlepack/hungarian"
	"github.com/katalvlaran/circlepack/mutation"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/populate"
	"github.com/katalvlaran/circlepack/rng"
)

// brood is the offspring of one generation, in row-major pair order.
type brood struct {
	children  placement.Population
	mutations int
	fallbacks int
}

// breed runs the pair loop. Row i pairs pop[i] with every pop[j]; rows run on
// up to opts.Workers goroutines, each with its own pre-derived stream, and are
// concatenated in row order.
func breed(cfg placement.Configuration, pop placement.Population, opts Options, mutate mutation.Operator, master *rand.Rand) (brood, error) {
	var (
		streams = rng.DeriveN(master, len(pop))
		rows    = make([]brood, len(pop))
		p       = pool.New().WithErrors().WithMaxGoroutines(opts.Workers)
		i       int
	)
	for i = 0; i < len(pop); i++ {
		row := i
		p.Go(func() error {
			var err error
			rows[row], err = breedRow(cfg, pop, row, opts, mutate, streams[row])
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return brood{}, err
	}

	var (
		out brood
		b   brood
	)
	for _, b = range rows {
		out.children = append(out.children, b.children...)
		out.mutations += b.mutations
		out.fallbacks += b.fallbacks
	}

	return out, nil
}

// breedRow produces the children of row i. pop is read-only here.
func breedRow(cfg placement.Configuration, pop placement.Population, i int, opts Options, mutate mutation.Operator, r *rand.Rand) (brood, error) {
	var (
		out    brood
		s1     = pop[i]
		h1, h2 placement.State
		child  placement.State
		err    error
		j      int
	)
	for j = 0; j < len(pop); j++ {
		if s1.Equal(pop[j]) {
			continue
		}
		if r.Float64() >= opts.CrossRatio {
			continue
		}

		h1, h2, err = crossover.Homogenize(cfg, s1, pop[j], opts.Match)
		if err != nil {
			if !errors.Is(err, hungarian.ErrNoMatch) {
				return brood{}, err
			}
			out.fallbacks++
		}
		child, err = crossover.BLXAlpha(h1, h2, opts.Alpha, r)
		if err != nil {
			return brood{}, err
		}

		if r.Float64() < opts.MutateRatio {
			child, err = mutate(child, h1, h2, r)
			if err != nil {
				return brood{}, err
			}
			populate.Relax(cfg, child)
			populate.NormalizeState(cfg, child)
			out.mutations++
		}
		out.children = append(out.children, child)
	}

	return out, nil
}
