// Package populate builds starting populations for the placement search.
//
// Two generators are provided:
//
//   - RandomState    — every centre uniform in [0,W]×[0,H].
//   - HeuristicState — shuffled skyline packing: circles are laid left to right
//     in rows; a row wraps when the next circle would pass the right edge, and
//     the next row starts one tallest-diameter higher.
//
// and two post-passes:
//
//   - Relax     — ONE virtual-force pass (not iterated to convergence): each
//     circle is pushed away from circles it overlaps and pulled towards the
//     ones it does not, the four rectangle corners acting as zero-radius
//     circles.
//   - Normalize — clamps every centre into [r, W-r]×[r, H-r]. Idempotent.
//
// RandomInit = random + Relax + Normalize; HeuristicInit = heuristic +
// Normalize.
//
// All randomness comes from the *rand.Rand passed in.
package populate
