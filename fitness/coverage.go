package fitness

import (
	"math/rand/v2"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/rng"
)

// CoverageArea estimates the covered area of s by Monte Carlo sampling.
//
// With opts.Workers > 1 the samples are split into chunks; chunk k draws from
// rng.Derive(r, k), the streams being derived before any goroutine starts.
// Hits are summed, so the estimate does not depend on scheduling.
//
// Complexity: O(L·n) time, O(n) space.
func CoverageArea(cfg placement.Configuration, s placement.State, r *rand.Rand, opts CoverageOptions) float64 {
	var samples = opts.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}
	var circles = placement.Circles(cfg, s)

	var workers = opts.Workers
	if workers > samples/minChunk {
		workers = samples / minChunk
	}
	if workers <= 1 {
		return cfg.Area() / float64(samples) * float64(countHits(cfg, circles, samples, r))
	}

	var (
		streams = rng.DeriveN(r, workers)
		chunk   = samples / workers
		p       = pool.NewWithResults[int]().WithMaxGoroutines(workers)
		k       int
	)
	for k = 0; k < workers; k++ {
		var (
			size = chunk
			src  = streams[k]
		)
		if k == workers-1 {
			size = samples - chunk*(workers-1)
		}
		p.Go(func() int {
			return countHits(cfg, circles, size, src)
		})
	}

	var hits, h int
	for _, h = range p.Wait() {
		hits += h
	}

	return cfg.Area() / float64(samples) * float64(hits)
}

// countHits draws size uniform points and counts those inside any circle.
func countHits(cfg placement.Configuration, circles []placement.Circle, size int, r *rand.Rand) int {
	var (
		hits int
		i, j int
		x, y float64
		dx   float64
		dy   float64
		c    placement.Circle
	)
	for i = 0; i < size; i++ {
		x = rng.Uniform(r, 0, cfg.W)
		y = rng.Uniform(r, 0, cfg.H)
		for j = 0; j < len(circles); j++ {
			c = circles[j]
			dx = c.Center.X - x
			dy = c.Center.Y - y
			if dx*dx+dy*dy <= c.Radius*c.Radius {
				hits++
				break
			}
		}
	}

	return hits
}
