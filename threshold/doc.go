// Package threshold implements the threshold accepting metaheuristic
// (Dueck & Scheuer, 1990): a deterministic relative of simulated annealing
// that accepts a neighbor whenever its objective value stays below the
// current solution's value plus a threshold, without any probability
// computation.
//
// Each iteration scans the neighborhood in sequence order and commits the
// first acceptable neighbor (first-acceptable, which is weaker than
// first-improvement: the committed neighbor may be worse than the current
// solution). Whenever a non-improving neighbor is committed, the threshold
// is scaled down by the configured decay factor, so the search gradually
// hardens into greedy descent.
//
// The threshold is an objective value with one entry per level; the
// acceptance bound is current + threshold, compared lexicographically. The
// run ends when a full scan finds no acceptable neighbor, or when a stop
// condition fires. The best solution seen during the run is returned, which
// need not be the final current solution.
package threshold
