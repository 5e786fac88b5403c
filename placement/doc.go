// Package placement defines the problem instance and candidate solutions of the
// circle placement search.
//
// A Configuration is the immutable problem definition: a W×H rectangle and
// k circle groups, group i holding Counts[i] circles of radius Radius[i].
// A State is one candidate placement: N centres, positionally partitioned into
// contiguous blocks that follow Counts. Block order is load-bearing: crossover
// and matching rely on positions of two states of the same Configuration
// referring to circles of the same group.
//
//	Counts = [1, 2], Radius = [10, 20]
//	State  = [ p0 | p1 p2 ]
//	           r=10  r=20
//
// Circles are never stored; Circles(cfg, s) derives (centre, radius) views on
// demand in O(n).
package placement
