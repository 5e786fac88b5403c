package populate

import "github.com/katalvlaran/circlepack/placement"

// NormalizeState clamps every centre of s into [r, W-r]×[r, H-r] in place,
// r being the radius of the point's group.
//
// The clamps are one-sided and applied in order (right, left, top, bottom), so
// when r > W/2 the point ends at x=r rather than in an empty interval. The
// operation is idempotent either way.
//
// Complexity: O(n).
func NormalizeState(cfg placement.Configuration, s placement.State) {
	var (
		b placement.Block
		j int
	)
	for _, b = range cfg.Blocks() {
		for j = b.Start; j < b.End && j < len(s); j++ {
			if s[j].X+b.Radius > cfg.W {
				s[j].X = cfg.W - b.Radius
			}
			if s[j].X-b.Radius < 0 {
				s[j].X = b.Radius
			}
			if s[j].Y+b.Radius > cfg.H {
				s[j].Y = cfg.H - b.Radius
			}
			if s[j].Y-b.Radius < 0 {
				s[j].Y = b.Radius
			}
		}
	}
}

// Normalize applies NormalizeState to every state of pop.
func Normalize(cfg placement.Configuration, pop placement.Population) {
	var i int
	for i = range pop {
		NormalizeState(cfg, pop[i])
	}
}
