package hungarian_test

import (
	"testing"

	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/hungarian"
	"github.com/katalvlaran/circlepack/rng"
)

// BenchmarkReorder_n50 measures one homogenization-sized matching.
func BenchmarkReorder_n50(b *testing.B) {
	const n = 50
	r := rng.FromSeed(5)
	g1 := make([]geom.Point, n)
	base := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		g1[i] = geom.Point{X: r.Float64() * 100, Y: r.Float64() * 100}
		base[i] = geom.Point{X: r.Float64() * 100, Y: r.Float64() * 100}
	}
	g2 := make([]geom.Point, n)
	opts := hungarian.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(g2, base)
		if err := hungarian.Reorder(g1, g2, negDist, opts); err != nil {
			b.Fatal(err)
		}
	}
}
