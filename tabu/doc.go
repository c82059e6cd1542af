// Package tabu implements tabu search: best-improvement descent over a
// move-labelled neighborhood, where recently used moves are forbidden for a
// fixed number of iterations (the tenure) so the search can escape local
// optima without immediately cycling back.
//
// Each iteration scans every neighbor, discards candidates whose move is
// currently tabu — unless the candidate beats the best solution ever seen
// (the aspiration criterion) — and commits the best admissible candidate,
// ties broken by generation order. The chosen move is then recorded in the
// tabu memory. When every candidate is tabu the solver never deadlocks: it
// commits the best candidate overall as a forced move and flags the
// iteration's progress event accordingly.
//
// With WithWorkers the neighbor evaluations of one generation fan out
// across a bounded pool; the tabu filter runs in the sequential reduction
// step against a single memory snapshot per iteration, so results are
// identical for any worker count. Tabu search walks uphill by design and
// cannot terminate on its own, so at least one stop condition is required.
// The best solution seen during the run is returned.
package tabu
