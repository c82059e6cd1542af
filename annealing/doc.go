// Package annealing implements simulated annealing: a stochastic search
// that always accepts improving neighbors and accepts a worse neighbor with
// probability exp(-delta/T), where delta is the degradation and T the
// current temperature.
//
// Each iteration draws ONE neighbor uniformly at random from the
// neighborhood (no exhaustive scan) and applies the acceptance test to it.
// The temperature decays geometrically every iteration and holds at its
// floor; reaching the floor does not terminate the run, it only hardens the
// acceptance test toward greedy behavior. Because of that, the solver
// requires at least one stop condition.
//
// Randomness is an injected capability: runs are reproducible for a fixed
// seed (WithSeed) and never touch a global generator. The best solution
// seen during the run is returned.
package annealing
