package mutation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/circlepack/mutation"
	"github.com/katalvlaran/circlepack/placement"
	"github.com/katalvlaran/circlepack/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDynamicGaussian_ZeroSigma: parents agreeing on X leave the point as is.
func TestDynamicGaussian_ZeroSigma(t *testing.T) {
	child := placement.State{{X: 5, Y: 6}, {X: 1, Y: 1}}
	p1 := placement.State{{X: 3, Y: 0}, {X: 2, Y: 0}}
	p2 := placement.State{{X: 3, Y: 100}, {X: 2, Y: -100}}

	out, err := mutation.DynamicGaussian(child, p1, p2, rng.FromSeed(1))
	require.NoError(t, err)
	assert.Equal(t, child, out, "σ comes from the X displacement only")
}

// TestDynamicGaussian_Spread checks the empirical standard deviation on both
// axes against σ = |Δx| and that the input is not mutated.
func TestDynamicGaussian_Spread(t *testing.T) {
	const n = 20000
	child := make(placement.State, n)
	p1 := make(placement.State, n)
	p2 := make(placement.State, n)
	for i := range p2 {
		p2[i].X = 4
	}

	out, err := mutation.DynamicGaussian(child, p1, p2, rng.FromSeed(3))
	require.NoError(t, err)

	var sx, sy float64
	for _, p := range out {
		sx += p.X * p.X
		sy += p.Y * p.Y
	}
	assert.InDelta(t, 4, math.Sqrt(sx/n), 0.15)
	assert.InDelta(t, 4, math.Sqrt(sy/n), 0.15)
	assert.Equal(t, 0.0, child[0].X)
}

func TestStaticGaussian_Spread(t *testing.T) {
	const n = 20000
	child := make(placement.State, n)

	out, err := mutation.StaticGaussian(child, nil, nil, rng.FromSeed(5))
	require.NoError(t, err)
	require.Len(t, out, n)

	var s float64
	for _, p := range out {
		s += p.X*p.X + p.Y*p.Y
	}
	assert.InDelta(t, mutation.StaticSigma, math.Sqrt(s/(2*n)), 1.5)
}

func TestDynamicGaussian_Mismatch(t *testing.T) {
	_, err := mutation.DynamicGaussian(placement.State{{}}, placement.State{}, placement.State{{}}, rng.FromSeed(1))
	assert.ErrorIs(t, err, mutation.ErrLengthMismatch)
}

func TestByKind(t *testing.T) {
	for _, k := range []mutation.Kind{mutation.Dynamic, mutation.Static} {
		op, err := mutation.ByKind(k)
		require.NoError(t, err)
		require.NotNil(t, op)

		parsed, err := mutation.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := mutation.ByKind(mutation.Kind(7))
	assert.ErrorIs(t, err, mutation.ErrUnknownKind)
	_, err = mutation.ParseKind("cauchy")
	assert.ErrorIs(t, err, mutation.ErrUnknownKind)
}

// TestOperators_Deterministic: same seed, same mutation.
func TestOperators_Deterministic(t *testing.T) {
	child := placement.State{{X: 1, Y: 2}, {X: 3, Y: 4}}
	p1 := placement.State{{X: 0, Y: 0}, {X: 10, Y: 0}}
	p2 := placement.State{{X: 5, Y: 0}, {X: 0, Y: 0}}

	a, err := mutation.DynamicGaussian(child, p1, p2, rng.FromSeed(12))
	require.NoError(t, err)
	b, err := mutation.DynamicGaussian(child, p1, p2, rng.FromSeed(12))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
