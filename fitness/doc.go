// Package fitness scores placements.
//
// Two evaluators are provided:
//
//   - CoverageArea — Monte Carlo estimate of the area covered by at least one
//     circle: draw L uniform points over the rectangle, count hits (linear scan,
//     first hit wins), return W·H/L · hits. L defaults to DefaultSamples
//     (cheap); PreciseSamples is meant for final reporting. Sampling may be
//     split across workers, each with its own derived random stream.
//
//   - Overlap — analytic penalty, 0 is optimal. It charges proper circle
//     intersections, full containment, and circles that spill over a corner of
//     the rectangle. InverseOverlap turns it into a maximized fitness with
//     MaxFitness at overlap == 0.
//
// Func is the common shape used by selection; ByKind builds one per Kind.
package fitness
