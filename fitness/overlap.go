package fitness

import (
	"math"

	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/placement"
)

// Overlap returns the overlap index of s: 0 is optimal, larger is worse.
//
// With r1 ≥ r2 the two largest group radii and rk the smallest:
//
//	beta = ((r1+r2)·r2) / (r1·rk) + 0.01
//
// For every ordered pair of circles (ci, cj), i≠j, at distance d > 0:
//   - |ri-rj| ≤ d < ri+rj (proper intersection):
//     += gamma·(ri+rj-d), gamma = ((ri+rj)·min(ri,rj)) / (r1·max(ri,rj));
//   - d < |ri-rj| (containment): += beta·min(ri,rj).
//
// For every circle and rectangle corner at distance dc < r: += (r-dc)·r.
//
// Complexity: O(n²).
func Overlap(cfg placement.Configuration, s placement.State) float64 {
	var (
		circles = placement.Circles(cfg, s)
		corners = [4]geom.Point{
			{X: 0, Y: 0},
			{X: 0, Y: cfg.H},
			{X: cfg.W, Y: 0},
			{X: cfg.W, Y: cfg.H},
		}
		r1, beta = radiusFactors(cfg)
	)

	var (
		ov       float64
		i, j     int
		ci, cj   placement.Circle
		d        float64
		sum      float64
		diff     float64
		lo, hi   float64
		gamma    float64
		corner   geom.Point
		toCorner float64
	)
	for i = 0; i < len(circles); i++ {
		ci = circles[i]
		for j = 0; j < len(circles); j++ {
			if i == j {
				continue
			}
			cj = circles[j]
			d = ci.Center.Distance(cj.Center)
			if d == 0 {
				continue
			}
			sum = ci.Radius + cj.Radius
			diff = math.Abs(ci.Radius - cj.Radius)
			lo = math.Min(ci.Radius, cj.Radius)
			hi = math.Max(ci.Radius, cj.Radius)

			if d < sum && d >= diff {
				gamma = (sum * lo) / (r1 * hi)
				ov += gamma * (sum - d)
			} else if d < diff {
				ov += beta * lo
			}
		}
		for _, corner = range corners {
			toCorner = ci.Center.Distance(corner)
			if toCorner < ci.Radius {
				ov += (ci.Radius - toCorner) * ci.Radius
			}
		}
	}

	return ov
}

// radiusFactors returns r1 and beta over the radii of non-empty groups.
// With a single group r2 = r1. When r1·rk == 0 beta falls back to its
// additive constant.
func radiusFactors(cfg placement.Configuration) (float64, float64) {
	var (
		r1, r2 float64
		rk     = math.Inf(1)
		groups int
		i      int
		r      float64
	)
	for i = 0; i < len(cfg.Counts) && i < len(cfg.Radius); i++ {
		if cfg.Counts[i] == 0 {
			continue
		}
		r = cfg.Radius[i]
		groups++
		if r >= r1 {
			r2 = r1
			r1 = r
		} else if r > r2 {
			r2 = r
		}
		if r < rk {
			rk = r
		}
	}
	if groups == 1 {
		r2 = r1
	}
	if groups == 0 || r1*rk == 0 {
		return r1, 0.01
	}

	return r1, ((r1+r2)*r2)/(r1*rk) + 0.01
}

// InverseOverlap is MaxFitness when Overlap(cfg, s) == 0 and 1/Overlap
// otherwise.
func InverseOverlap(cfg placement.Configuration, s placement.State) float64 {
	var ov = Overlap(cfg, s)
	if ov == 0 {
		return MaxFitness
	}

	return 1 / ov
}
