// Package ga runs the generational search that ties circlepack together.
//
// Lifecycle:
//
//	Initializing ──► Evolving(gen 0..Generations-1) ──► Terminated
//
// Initializing builds Options.PopulationSize states with the chosen init
// strategy and ranks them once; the best of them seeds the best-so-far.
//
// Each generation:
//
//  1. For every ordered pair (s1, s2) of value-distinct states, with
//     probability CrossRatio: Homogenize the pair, BLX-α cross it, and with
//     probability MutateRatio mutate the child, relax it once and clamp it.
//     This stage is quadratic in the population size by construction.
//  2. Clamp every child to the rectangle.
//  3. Merge children into the population and keep the top PopulationSize.
//  4. Rank 0 is the generation best; a strict improvement replaces the
//     best-so-far.
//
// Termination: all generations done, the best fitness reached
// fitness.MaxFitness, the context was cancelled, or Options.TimeLimit ran out.
// The last three are checked between generations only.
//
// Determinism: one master generator is built from Options.Seed. Every pair-loop
// row gets its own stream derived from the master before the fan-out, so a
// given seed yields the same result for any Options.Workers.
package ga
