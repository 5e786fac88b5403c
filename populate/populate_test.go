package populate_test

import (
	"testing"

	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/populate"
	"github.com/katalvlaran/circlepack/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tol absorbs one-ulp differences between x+r <= W and x <= W-r.
const tol = 1e-9

func sample() placement.Configuration {
	return placement.Configuration{W: 60, H: 100, N: 3, Counts: []int{1, 2}, Radius: []float64{10, 20}}
}

func many() placement.Configuration {
	return placement.Configuration{W: 100, H: 80, N: 17, Counts: []int{5, 7, 5}, Radius: []float64{4, 7.5, 12}}
}

// requireInside asserts the clamp postcondition for every point of s.
func requireInside(t *testing.T, cfg placement.Configuration, s placement.State) {
	t.Helper()
	radii := cfg.SlotRadii()
	require.Len(t, s, len(radii))
	for i, p := range s {
		r := radii[i]
		require.GreaterOrEqual(t, p.X, r-tol, "point %d x", i)
		require.LessOrEqual(t, p.X, cfg.W-r+tol, "point %d x", i)
		require.GreaterOrEqual(t, p.Y, r-tol, "point %d y", i)
		require.LessOrEqual(t, p.Y, cfg.H-r+tol, "point %d y", i)
	}
}

// TestRandomState_ShapeAndBounds covers the random generator contract over a
// few seeds and configurations.
func TestRandomState_ShapeAndBounds(t *testing.T) {
	for _, cfg := range []placement.Configuration{sample(), many(), {W: 5, H: 0, N: 2, Counts: []int{2}, Radius: []float64{0}}} {
		for seed := uint64(1); seed <= 5; seed++ {
			s := populate.RandomState(cfg, rng.FromSeed(seed))
			require.Len(t, s, cfg.N)
			for _, p := range s {
				require.GreaterOrEqual(t, p.X, 0.0)
				require.LessOrEqual(t, p.X, cfg.W)
				require.GreaterOrEqual(t, p.Y, 0.0)
				require.LessOrEqual(t, p.Y, cfg.H)
			}
		}
	}
}

func TestRandomState_Deterministic(t *testing.T) {
	a := populate.RandomState(many(), rng.FromSeed(9))
	b := populate.RandomState(many(), rng.FromSeed(9))
	assert.True(t, a.Equal(b))
}

// TestHeuristicState_Rows checks the skyline layout before clamping: the first
// circle sits on the bottom-left corner, no two circles of the same row
// overlap and every circle is inside [0,W] horizontally.
func TestHeuristicState_Rows(t *testing.T) {
	cfg := many()
	radii := cfg.SlotRadii()
	s := populate.HeuristicState(cfg, rng.FromSeed(4))
	require.Len(t, s, cfg.N)

	for i, p := range s {
		assert.GreaterOrEqual(t, p.X-radii[i], -tol)
		assert.LessOrEqual(t, p.X+radii[i], cfg.W+tol)
	}
	for i := range s {
		for j := range s {
			if i == j {
				continue
			}
			d := s[i].Distance(s[j])
			assert.GreaterOrEqual(t, d, radii[i]+radii[j]-tol, "circles %d and %d overlap", i, j)
		}
	}
}

// TestHeuristicState_SingleRow packs three equal circles that fit one row.
func TestHeuristicState_SingleRow(t *testing.T) {
	cfg := placement.Configuration{W: 60, H: 60, N: 3, Counts: []int{3}, Radius: []float64{10}}
	s := populate.HeuristicState(cfg, rng.FromSeed(1))

	xs := map[float64]bool{}
	for _, p := range s {
		assert.Equal(t, 10.0, p.Y)
		xs[p.X] = true
	}
	assert.Equal(t, map[float64]bool{10: true, 30: true, 50: true}, xs)
}

// TestHeuristicState_Wrap forces a second row and checks its baseline.
func TestHeuristicState_Wrap(t *testing.T) {
	cfg := placement.Configuration{W: 40, H: 100, N: 3, Counts: []int{3}, Radius: []float64{10}}
	s := populate.HeuristicState(cfg, rng.FromSeed(2))

	rows := map[float64]int{}
	for _, p := range s {
		rows[p.Y]++
	}
	assert.Equal(t, map[float64]int{10: 2, 30: 1}, rows)
}

// TestNormalize_BoundsAndIdempotent covers the clamp postcondition and
// idempotence, including points far outside the rectangle.
func TestNormalize_BoundsAndIdempotent(t *testing.T) {
	cfg := sample()
	pop := placement.Population{
		{{X: -50, Y: 500}, {X: 61, Y: -1}, {X: 30, Y: 50}},
		populate.RandomState(cfg, rng.FromSeed(5)),
	}
	populate.Normalize(cfg, pop)
	for _, s := range pop {
		requireInside(t, cfg, s)
	}

	again := pop.Clone()
	populate.Normalize(cfg, again)
	for i := range pop {
		assert.True(t, pop[i].Equal(again[i]), "normalize must be idempotent")
	}

	assert.Equal(t, geom.Point{X: 10, Y: 90}, pop[0][0])
	assert.Equal(t, geom.Point{X: 40, Y: 20}, pop[0][1])
	assert.Equal(t, geom.Point{X: 30, Y: 50}, pop[0][2], "inside points are untouched")
}

// TestNormalize_OversizedRadius documents the one-sided clamp when r > W/2.
func TestNormalize_OversizedRadius(t *testing.T) {
	cfg := placement.Configuration{W: 10, H: 10, N: 1, Counts: []int{1}, Radius: []float64{8}}
	s := placement.State{{X: 9, Y: 1}}
	populate.NormalizeState(cfg, s)
	first := s.Clone()
	populate.NormalizeState(cfg, s)

	assert.Equal(t, geom.Point{X: 8, Y: 8}, first[0])
	assert.True(t, first.Equal(s))
}

// TestRelax_PushesOverlappingApart checks the sign of the force on two
// overlapping circles in the middle of a large rectangle.
func TestRelax_PushesOverlappingApart(t *testing.T) {
	cfg := placement.Configuration{W: 1000, H: 1000, N: 2, Counts: []int{2}, Radius: []float64{10}}
	s := placement.State{{X: 495, Y: 500}, {X: 505, Y: 500}}
	before := s[0].Distance(s[1])

	populate.Relax(cfg, s)
	assert.Greater(t, s[0].Distance(s[1]), before)
	assert.Less(t, s[0].X, 495.0)
	assert.Greater(t, s[1].X, 505.0)
}

// TestRelax_SkipsCoincident verifies that d==0 pairs contribute nothing and no
// NaN leaks out.
func TestRelax_SkipsCoincident(t *testing.T) {
	cfg := placement.Configuration{W: 100, H: 100, N: 2, Counts: []int{2}, Radius: []float64{5}}
	s := placement.State{{X: 50, Y: 50}, {X: 50, Y: 50}}
	populate.Relax(cfg, s)

	for _, p := range s {
		assert.False(t, p.X != p.X || p.Y != p.Y, "NaN leaked: %+v", p)
	}
	// By symmetry of the four corners the centre stays put.
	assert.InDelta(t, 50, s[0].X, 1e-9)
	assert.InDelta(t, 50, s[0].Y, 1e-9)
}

func TestInit_Dispatch(t *testing.T) {
	cfg := many()
	pop, err := populate.Init(populate.Random, cfg, 6, rng.FromSeed(1))
	require.NoError(t, err)
	require.Len(t, pop, 6)
	for _, s := range pop {
		requireInside(t, cfg, s)
	}

	pop, err = populate.Init(populate.Heuristic, cfg, 4, rng.FromSeed(1))
	require.NoError(t, err)
	require.Len(t, pop, 4)
	for _, s := range pop {
		requireInside(t, cfg, s)
	}

	_, err = populate.Init(populate.Strategy(9), cfg, 1, nil)
	assert.ErrorIs(t, err, populate.ErrUnknownStrategy)
	_, err = populate.Init(populate.Random, cfg, -1, nil)
	assert.ErrorIs(t, err, populate.ErrBadSize)
}

func TestStrategy_Names(t *testing.T) {
	for _, s := range []populate.Strategy{populate.Random, populate.Heuristic} {
		got, err := populate.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := populate.ParseStrategy("skyline")
	assert.ErrorIs(t, err, populate.ErrUnknownStrategy)
}
