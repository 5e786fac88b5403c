// Package crossover recombines two parent states.
//
// Positional blending only makes sense when position i of both parents refers
// to "the same" circle. Homogenize enforces that: within every group block it
// reorders the second parent so that the total distance between paired points
// is minimal (optimal bipartite matching with weight -distance). BLXAlpha then
// blends the aligned parents axis by axis.
//
//	p1: [a0 | a1 a2]        p2: [b0 | b2 b1]   (b2 is nearest to a1)
//	Homogenize → p2' = [b0 | b1 b2]
//	BLXAlpha(p1, p2', α) → child
package crossover
