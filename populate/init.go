package populate

import (
	"math/rand/v2"

	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/rng"
)

// RandomPoints draws size points uniformly over the cfg rectangle.
//
// Complexity: O(size).
func RandomPoints(cfg placement.Configuration, size int, r *rand.Rand) []geom.Point {
	if size <= 0 {
		return []geom.Point{}
	}
	out := make([]geom.Point, size)

	var i int
	for i = 0; i < size; i++ {
		out[i] = geom.Point{X: rng.Uniform(r, 0, cfg.W), Y: rng.Uniform(r, 0, cfg.H)}
	}

	return out
}

// RandomState returns N independent uniform centres.
func RandomState(cfg placement.Configuration, r *rand.Rand) placement.State {
	return placement.State(RandomPoints(cfg, cfg.N, r))
}

// HeuristicState lays the circles out in shuffled order using skyline rows.
//
// The cursor starts at the bottom-left corner. Each circle is placed with its
// left edge on the cursor and its bottom on the current row baseline, then the
// cursor advances by the diameter. When the circle would pass W (and the row
// is not empty) the row wraps: the baseline rises by the tallest diameter seen
// in the finished row and the cursor returns to x=0.
//
// The rise is a full diameter, not a radius, on purpose: a radius offset lets
// the next row overlap the previous one.
//
// The result may exceed H; Normalize clamps it.
//
// Complexity: O(n).
func HeuristicState(cfg placement.Configuration, r *rand.Rand) placement.State {
	var (
		radii = cfg.SlotRadii()
		order = rng.Perm(len(radii), r)
		out   = make(placement.State, len(radii))
	)

	var (
		cursor  float64 // left edge of the next circle
		base    float64 // bottom of the current row
		rowMaxR float64 // tallest radius in the current row
		rad     float64
		idx     int
	)
	for _, idx = range order {
		rad = radii[idx]
		if cursor > 0 && cursor+2*rad > cfg.W {
			base += 2 * rowMaxR
			cursor = 0
			rowMaxR = 0
		}
		out[idx] = geom.Point{X: cursor + rad, Y: base + rad}
		cursor += 2 * rad
		if rad > rowMaxR {
			rowMaxR = rad
		}
	}

	return out
}

// RandomInit generates size random states, relaxes each once and clamps all.
func RandomInit(cfg placement.Configuration, size int, r *rand.Rand) placement.Population {
	if size < 0 {
		size = 0
	}
	pop := make(placement.Population, size)

	var i int
	for i = 0; i < size; i++ {
		pop[i] = Relax(cfg, RandomState(cfg, r))
	}
	Normalize(cfg, pop)

	return pop
}

// HeuristicInit generates size heuristic states and clamps them. No relaxation
// pass is applied.
func HeuristicInit(cfg placement.Configuration, size int, r *rand.Rand) placement.Population {
	if size < 0 {
		size = 0
	}
	pop := make(placement.Population, size)

	var i int
	for i = 0; i < size; i++ {
		pop[i] = HeuristicState(cfg, r)
	}
	Normalize(cfg, pop)

	return pop
}

// Init dispatches on strategy.
func Init(strategy Strategy, cfg placement.Configuration, size int, r *rand.Rand) (placement.Population, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	switch strategy {
	case Random:
		return RandomInit(cfg, size, r), nil
	case Heuristic:
		return HeuristicInit(cfg, size, r), nil
	default:
		return nil, ErrUnknownStrategy
	}
}
