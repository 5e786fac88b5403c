package ga_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/circlepack/ga"
	"github.com/katalvlaran/circlepack/placement"
)

// ExampleSolve packs one circle of radius 10 and two of radius 20 into a
// 60×100 rectangle. The row heuristic already finds an overlap-free layout,
// so the run stops before the first generation.
func ExampleSolve() {
	cfg := placement.Configuration{W: 60, H: 100, N: 3, Counts: []int{1, 2}, Radius: []float64{10, 20}}

	res, err := ga.Solve(context.Background(), cfg, ga.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("circles:", len(res.Best))
	fmt.Println("reason:", res.Reason)
	fmt.Println("generations:", res.Generations)
	// Output:
	// circles: 3
	// reason: max-fitness
	// generations: 0
}
