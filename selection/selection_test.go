package selection_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/circlepack/fitness"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/populate"
	"github.com/katalvlaran/circlepack/rng"
	"github.com/katalvlaran/circlepack/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cfg1 = placement.Configuration{W: 10, H: 10, N: 1, Counts: []int{1}, Radius: []float64{1}}

// byX scores a one-point state by its X coordinate.
func byX(_ placement.Configuration, s placement.State) float64 { return s[0].X }

func one(x float64) placement.State { return placement.State{{X: x}} }

func TestBest_OrderAndSize(t *testing.T) {
	pop := placement.Population{one(3), one(9), one(1), one(7)}

	got := selection.Best(byX, cfg1, pop, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 9.0, got[0].Fitness)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, 7.0, got[1].Fitness)
	assert.Equal(t, 3, got[1].Index)

	assert.Len(t, selection.Best(byX, cfg1, pop, 10), 4, "keep above len(pop) is capped")
	assert.Empty(t, selection.Best(byX, cfg1, pop, 0))
	assert.Empty(t, selection.Best(byX, cfg1, nil, 3))
}

// TestBest_QuantizedTiesAreStable: fitness differing below 1e-5 ties, and ties
// keep input order.
func TestBest_QuantizedTiesAreStable(t *testing.T) {
	pop := placement.Population{one(1.0000001), one(2), one(1.0000004), one(1.0000002)}

	got := selection.Best(byX, cfg1, pop, 4)
	require.Len(t, got, 4)
	assert.Equal(t, []int{1, 0, 2, 3}, []int{got[0].Index, got[1].Index, got[2].Index, got[3].Index})
}

func TestBest_SentinelAndNaN(t *testing.T) {
	pop := placement.Population{one(math.NaN()), one(5), one(math.Inf(1))}

	got := selection.Best(byX, cfg1, pop, 3)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Index, "MaxFitness ranks first")
	assert.Equal(t, 1, got[1].Index)
	assert.Equal(t, 0, got[2].Index, "NaN ranks last")
}

// TestBest_Properties checks size, provenance and ordering on real overlap
// scores.
func TestBest_Properties(t *testing.T) {
	cfg := placement.Configuration{W: 60, H: 100, N: 3, Counts: []int{1, 2}, Radius: []float64{10, 20}}
	pop := populate.HeuristicInit(cfg, 15, rng.FromSeed(6))

	got := selection.Best(fitness.InverseOverlap, cfg, pop, 5)
	require.Len(t, got, 5)

	used := map[int]bool{}
	for i, r := range got {
		require.False(t, used[r.Index], "an input is selected at most once")
		used[r.Index] = true
		require.True(t, geom.AllEqual(pop[r.Index], r.State), "output state must come from the input")
		require.Equal(t, fitness.InverseOverlap(cfg, pop[r.Index]), r.Fitness)
		if i > 0 {
			require.GreaterOrEqual(t, math.Trunc(got[i-1].Fitness*1e5), math.Trunc(r.Fitness*1e5))
		}
	}

	// Nothing left out scores strictly better than the worst kept entry.
	worst := math.Trunc(got[len(got)-1].Fitness * 1e5)
	for i, s := range pop {
		if used[i] {
			continue
		}
		assert.LessOrEqual(t, math.Trunc(fitness.InverseOverlap(cfg, s)*1e5), worst)
	}

	assert.Len(t, selection.States(got), 5)
}

func TestKind(t *testing.T) {
	k, err := selection.ParseKind(selection.Truncation.String())
	require.NoError(t, err)
	assert.Equal(t, selection.Truncation, k)
	_, err = selection.ParseKind("roulette")
	assert.ErrorIs(t, err, selection.ErrUnknownKind)
}
