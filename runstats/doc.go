// Package runstats runs a solver repeatedly over independent random
// streams and aggregates the outcomes: best run, mean and standard
// deviation of the reached objective, and mean wall-clock time.
//
// Stochastic metaheuristics (simulated annealing in particular) are usually
// judged over a batch of runs rather than a single trajectory. Run derives
// one decorrelated seed per run from a base seed, hands each to a
// caller-supplied solver factory, and solves from a clone of the same
// initial solution. The whole experiment is reproducible from the base
// seed.
package runstats
