// Package codec reads and writes the line-based text formats of circlepack.
//
// Configuration (one record per line, whitespace-separated tokens):
//
//	<W> <H>        two floats
//	<k> <n>        group count, total point count
//	<count_i>      k lines, one integer each
//	<radius_i>     k lines, one float each
//
// Result:
//
//	<W> <H>
//	<x_j> <y_j> <r_j>   one line per point, r_j the radius of its group
//
// Group boundaries are not kept in the result format. Input is read whole
// before parsing; trailing blank lines are allowed, anything else after the
// last expected record is malformed. Floats are written with
// strconv.FormatFloat(v, 'g', -1, 64) so a parse of the output is exact.
package codec
