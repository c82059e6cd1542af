// Package solve defines the contracts shared by every solvekit solver and
// the primitives their loops are assembled from.
//
// Overview:
//
//   - Neighborhood produces a lazy sequence of candidate solutions derived
//     from a given solution. It is the single extension point for move
//     generation: stateless, shared, and safe to drive from multiple
//     goroutines.
//   - Solver is the uniform entry point (`Solve(initial)`) implemented by
//     the localsearch, threshold, annealing and tabu packages.
//   - Result carries the best evaluated solution together with the
//     iteration count, elapsed time and a TerminationReason. Search
//     exhaustion (local optimum, empty neighborhood, exhausted threshold)
//     is a normal termination state reported through the reason, never
//     through the error channel; errors are reserved for caller bugs
//     (invalid configuration, arithmetic overflow).
//   - StopCondition is a composable predicate checked at iteration
//     boundaries: iteration caps, wall-clock limits, stagnation counts, or
//     any OR-combination of those.
//   - Schedule is the monotonically decaying scalar state (temperature or
//     acceptance threshold) used by the annealing and threshold solvers.
//   - Scan fans candidate evaluation out across a bounded worker pool and
//     reduces deterministically: candidates carry their position in
//     generation order, and reducers break ties by lowest index, so the
//     outcome is independent of worker count and completion order.
//
// Concurrency model:
//
// One driving goroutine advances a solver's iteration state machine.
// Parallel variants fan neighbor evaluation out for the duration of a single
// generation and rendezvous before any iteration-local state (current
// solution, tabu memory, schedule) is touched. Workers only read the shared
// immutable Objective and Neighborhood plus the current solution snapshot,
// so no locks are needed for core correctness; the required discipline is
// that solutions are never mutated in place.
package solve
