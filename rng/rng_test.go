package rng_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/circlepack/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromSeed_Deterministic checks that equal seeds replay the same stream and
// that seed 0 is an alias of DefaultSeed.
func TestFromSeed_Deterministic(t *testing.T) {
	a := rng.FromSeed(42)
	b := rng.FromSeed(42)
	var i int
	for i = 0; i < 16; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}

	z := rng.FromSeed(0)
	d := rng.FromSeed(rng.DefaultSeed)
	require.Equal(t, z.Float64(), d.Float64())
}

// TestDerive_IndependentStreams checks that children differ from one another and
// are reproducible from the same base state.
func TestDerive_IndependentStreams(t *testing.T) {
	s1 := rng.DeriveN(rng.FromSeed(7), 3)
	s2 := rng.DeriveN(rng.FromSeed(7), 3)
	require.Len(t, s1, 3)

	first := make([]uint64, 3)
	var i int
	for i = 0; i < 3; i++ {
		first[i] = s1[i].Uint64()
		require.Equal(t, first[i], s2[i].Uint64(), "stream %d must replay", i)
	}
	assert.NotEqual(t, first[0], first[1])
	assert.NotEqual(t, first[1], first[2])

	assert.Nil(t, rng.DeriveN(rng.FromSeed(1), 0))
	assert.NotNil(t, rng.Derive(nil, 3))
}

func TestDeriveSeed_Avalanche(t *testing.T) {
	assert.NotEqual(t, rng.DeriveSeed(1, 0), rng.DeriveSeed(1, 1))
	assert.NotEqual(t, rng.DeriveSeed(1, 0), rng.DeriveSeed(2, 0))
	assert.Equal(t, rng.DeriveSeed(99, 5), rng.DeriveSeed(99, 5))
}

// TestPerm_IsPermutation verifies the Fisher–Yates output contains 0..n-1 once.
func TestPerm_IsPermutation(t *testing.T) {
	p := rng.Perm(50, rng.FromSeed(3))
	require.Len(t, p, 50)

	cp := append([]int(nil), p...)
	sort.Ints(cp)
	var i int
	for i = range cp {
		require.Equal(t, i, cp[i])
	}

	assert.Empty(t, rng.Perm(0, nil))
	assert.Empty(t, rng.Perm(-2, nil))
}

func TestShuffle_NilRNG(t *testing.T) {
	a := []string{"a", "b", "c", "d"}
	b := []string{"a", "b", "c", "d"}
	rng.Shuffle(a, nil)
	rng.Shuffle(b, rng.FromSeed(0))
	assert.Equal(t, a, b, "nil RNG is the seed-0 stream")
}

func TestUniform(t *testing.T) {
	r := rng.FromSeed(11)
	var i int
	var v float64
	for i = 0; i < 1000; i++ {
		v = rng.Uniform(r, -2, 3)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 3.0)
	}
	assert.Equal(t, 4.0, rng.Uniform(r, 4, 4))
}
