// Package hungarian implements maximum-weight perfect bipartite matching
// (Kuhn–Munkres, "Hungarian method") on a dense n×n weight matrix.
//
// Algorithm (O(n³)):
//
//  1. Potentials: lx[i] = max_j w(i,j), ly[j] = 0. An edge is tight when
//     |lx[i]+ly[j]-w(i,j)| < Tolerance.
//  2. For each unmatched left vertex (root), grow an alternating tree by BFS
//     over tight edges while tracking, for every right vertex y outside the
//     tree, slack[y] = min over tree vertices x of lx[x]+ly[y]-w(x,y).
//  3. Reaching a free right vertex yields an augmenting path; the matching is
//     flipped along it. Otherwise the potentials move by delta = min slack
//     outside the tree, which makes at least one new edge tight, and the tree
//     keeps growing from there.
//
// Every tree-growing round counts against Options.MaxIterations (default n³).
// Exhausting the budget returns ErrNoMatch instead of looping; callers treat
// that as recoverable.
//
// The augmenting path is walked back iteratively through the prev links; no
// recursion is used.
//
// Minimum-cost assignment is obtained by negating costs, e.g. w = -distance.
package hungarian
