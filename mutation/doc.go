// Package mutation perturbs a child state with zero-mean Gaussian noise.
//
//   - DynamicGaussian: σ_i = |parent1[i].X - parent2[i].X|, applied to both
//     axes of point i. Parents that agree on a point leave it untouched, so the
//     step size shrinks as the population converges.
//   - StaticGaussian: σ = StaticSigma on both axes, parents ignored.
//
// The Y axis of DynamicGaussian deliberately reuses the X displacement as its
// σ; see DESIGN.md.
//
// Samples come from gonum's distuv.Normal driven by the caller's generator.
// Operators return a fresh state and never modify their inputs.
package mutation
