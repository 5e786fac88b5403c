package fitness_test

import (
	"testing"

	"github.com/katalvlaran/circlepack/fitness"
	"github.com/katalvlaran/circlepack/populate"
	"github.com/katalvlaran/circlepack/rng"
)

func BenchmarkOverlap_n40(b *testing.B) {
	cfg := square([]int{10, 20, 10}, []float64{3, 5, 8})
	s := populate.RandomState(cfg, rng.FromSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fitness.Overlap(cfg, s)
	}
}

func BenchmarkCoverageArea_Workers(b *testing.B) {
	cfg := square([]int{10, 20, 10}, []float64{3, 5, 8})
	s := populate.RandomState(cfg, rng.FromSeed(1))
	r := rng.FromSeed(2)
	opts := fitness.CoverageOptions{Samples: fitness.DefaultSamples * 10, Workers: 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fitness.CoverageArea(cfg, s, r, opts)
	}
}
