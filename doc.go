// Package circlepack places circles of several radii inside a rectangle so
// that they cover as much of it as possible while overlapping as little as
// possible. The search is a genetic algorithm with matching-based crossover.
//
// 🚀 What is circlepack?
//
//	A library plus a small CLI that brings together:
//		• Problem model: rectangle, radius groups, states of circle centres
//		• Initialisation: uniform random and row-packing layouts, one
//		  virtual-force relaxation pass, clamping into the rectangle
//		• Crossover: per-group point pairing by the Hungarian method, BLX-α
//		• Mutation: Gaussian noise with dynamic or static σ
//		• Fitness: inverse weighted overlap, Monte Carlo coverage
//		• Selection: truncation on quantised fitness
//
// ✨ Why choose circlepack?
//
//   - Reproducible: one seed drives every random decision, for any worker count
//   - Explicit: every operator is a plain function over plain values
//   - Extensible: strategies are picked by name in ga.Options
//
// Packages:
//
//	geom/       — 2-D points and component-wise arithmetic
//	placement/  — Configuration, State, Population, Circle
//	rng/        — seeded PCG streams and SplitMix64 stream derivation
//	populate/   — random & heuristic init, relaxation, normalisation
//	hungarian/  — maximum-weight perfect matching (gonum/mat input)
//	crossover/  — homogenisation and BLX-α
//	mutation/   — Gaussian mutation operators
//	fitness/    — overlap and coverage evaluators
//	selection/  — truncation selection
//	ga/         — the generational loop
//	codec/      — line-based configuration and result files
//	render/     — gonum/plot pictures of placements and progress
//	history/    — run records in memory or SQLite
//
// Quick example:
//
//	cfg := placement.Configuration{W: 60, H: 100, N: 3,
//		Counts: []int{1, 2}, Radius: []float64{10, 20}}
//	res, err := ga.Solve(ctx, cfg, ga.DefaultOptions())
//
//	go install github.com/katalvlaran/circlepack/cmd/circlepack@latest
package circlepack
