package placement

import (
	"fmt"
	"math"
)

// Validate checks the structural invariants of cfg:
//   - W, H finite and non-negative;
//   - len(Counts) == len(Radius);
//   - every count non-negative, every radius finite and non-negative;
//   - sum(Counts) == N.
//
// Complexity: O(k).
func (cfg Configuration) Validate() error {
	// Stage 1: rectangle.
	if isNonFinite(cfg.W) || isNonFinite(cfg.H) {
		return fmt.Errorf("%w: w=%g h=%g", ErrNonFinite, cfg.W, cfg.H)
	}
	if cfg.W < 0 || cfg.H < 0 || cfg.N < 0 {
		return fmt.Errorf("%w: w=%g h=%g n=%d", ErrNegativeValue, cfg.W, cfg.H, cfg.N)
	}

	// Stage 2: group lists.
	if len(cfg.Counts) != len(cfg.Radius) {
		return fmt.Errorf("%w: %d counts, %d radii", ErrGroupMismatch, len(cfg.Counts), len(cfg.Radius))
	}

	var (
		i   int
		sum int
	)
	for i = 0; i < len(cfg.Counts); i++ {
		if cfg.Counts[i] < 0 {
			return fmt.Errorf("%w: counts[%d]=%d", ErrNegativeValue, i, cfg.Counts[i])
		}
		if isNonFinite(cfg.Radius[i]) {
			return fmt.Errorf("%w: radius[%d]=%g", ErrNonFinite, i, cfg.Radius[i])
		}
		if cfg.Radius[i] < 0 {
			return fmt.Errorf("%w: radius[%d]=%g", ErrNegativeValue, i, cfg.Radius[i])
		}
		sum += cfg.Counts[i]
	}

	// Stage 3: totals.
	if sum != cfg.N {
		return fmt.Errorf("%w: sum=%d n=%d", ErrCountMismatch, sum, cfg.N)
	}

	return nil
}

// CheckFit enforces the clamp precondition radius <= W/2 and radius <= H/2
// for every group that owns at least one circle.
func (cfg Configuration) CheckFit() error {
	var i int
	for i = 0; i < len(cfg.Radius) && i < len(cfg.Counts); i++ {
		if cfg.Counts[i] == 0 {
			continue
		}
		if 2*cfg.Radius[i] > cfg.W || 2*cfg.Radius[i] > cfg.H {
			return fmt.Errorf("%w: radius[%d]=%g in %gx%g", ErrRadiusTooLarge, i, cfg.Radius[i], cfg.W, cfg.H)
		}
	}

	return nil
}

// CheckState verifies that s has exactly N points.
func (cfg Configuration) CheckState(s State) error {
	if len(s) != cfg.N {
		return fmt.Errorf("%w: len=%d n=%d", ErrStateLength, len(s), cfg.N)
	}

	return nil
}

// Area returns W·H.
func (cfg Configuration) Area() float64 {
	return cfg.W * cfg.H
}

// Blocks returns one Block per group in Counts order. Empty groups yield
// empty blocks so that Blocks()[i].Group == i always holds. cfg must pass
// Validate.
//
// Complexity: O(k).
func (cfg Configuration) Blocks() []Block {
	out := make([]Block, len(cfg.Counts))

	var (
		i     int
		start int
	)
	for i = 0; i < len(cfg.Counts); i++ {
		out[i] = Block{Group: i, Start: start, End: start + cfg.Counts[i], Radius: cfg.Radius[i]}
		start += cfg.Counts[i]
	}

	return out
}

// SlotRadii returns the radius of every position of a state, in order.
//
// Complexity: O(n).
func (cfg Configuration) SlotRadii() []float64 {
	out := make([]float64, 0, cfg.N)

	var (
		b Block
		j int
	)
	for _, b = range cfg.Blocks() {
		for j = b.Start; j < b.End; j++ {
			out = append(out, b.Radius)
		}
	}

	return out
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
