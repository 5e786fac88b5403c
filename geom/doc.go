// Package geom provides the 2D point algebra used by every other circlepack
// package.
//
// Point is a plain value type. All operations are pure and work on each axis
// independently:
//
//   - Add, Sub, Mul, Div — elementwise arithmetic.
//   - Distance           — Euclidean distance sqrt(dx²+dy²).
//   - Equal, AllEqual    — exact value comparison (no tolerance).
//   - Wrap               — uniform fill {v, v}, handy for zero/unit accumulators.
//
// Equality is intentionally exact: the genetic loop uses it to skip pairing a
// state with a value-identical state, and a tolerance would change which pairs
// are considered distinct.
package geom
