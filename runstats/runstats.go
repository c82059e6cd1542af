// Package runstats - repeated-run experiment driver.
package runstats

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/solvekit/solve"
)

// Sentinel errors of this package.
var (
	// ErrBadRunCount indicates a non-positive number of runs.
	ErrBadRunCount = errors.New("runstats: run count must be positive")

	// ErrNilFactory indicates a nil solver factory.
	ErrNilFactory = errors.New("runstats: factory is nil")
)

// Factory builds one solver instance for one run, seeded with the given
// derived seed. Deterministic solvers may ignore the seed.
type Factory[S any] func(seed int64) (solve.Solver[S], error)

// Summary aggregates the outcomes of a batch of runs.
type Summary[S any] struct {
	// Results holds every run's result, in run order.
	Results []solve.Result[S]

	// BestRun indexes the run with the lowest objective value in Results;
	// ties go to the earliest run.
	BestRun int

	// Best is Results[BestRun].
	Best solve.Result[S]

	// Mean and StdDev summarize the most significant objective level of
	// each run's best value, flattened to float64. StdDev is the corrected
	// sample standard deviation; it is 0 for a single run.
	Mean   float64
	StdDev float64

	// MeanElapsed is the mean wall-clock duration of one run.
	MeanElapsed time.Duration
}

// Run executes runs independent solves from clones of initial. The i-th
// run's solver is built by factory with a seed derived from seed and i, so
// one base seed reproduces the whole batch. Factory and solve errors abort
// the batch.
func Run[S solve.Cloneable[S]](factory Factory[S], initial S, runs int, seed int64) (Summary[S], error) {
	if factory == nil {
		return Summary[S]{}, ErrNilFactory
	}
	if runs <= 0 {
		return Summary[S]{}, ErrBadRunCount
	}

	summary := Summary[S]{Results: make([]solve.Result[S], 0, runs)}
	scores := make([]float64, 0, runs)
	var elapsed time.Duration

	for i := 0; i < runs; i++ {
		solver, err := factory(deriveSeed(seed, uint64(i)))
		if err != nil {
			return Summary[S]{}, err
		}
		res, err := solver.Solve(initial.Clone())
		if err != nil {
			return Summary[S]{}, err
		}

		if len(summary.Results) == 0 || res.Best.Better(summary.Best.Best) {
			summary.BestRun = i
			summary.Best = res
		}
		summary.Results = append(summary.Results, res)
		if res.Best.ObjectiveValue().Len() > 0 {
			scores = append(scores, res.Best.ObjectiveValue().At(0).Float64())
		}
		elapsed += res.Elapsed
	}

	if len(scores) > 0 {
		summary.Mean = stat.Mean(scores, nil)
		if len(scores) > 1 {
			summary.StdDev = stat.StdDev(scores, nil)
		}
	}
	summary.MeanElapsed = elapsed / time.Duration(runs)
	return summary, nil
}

// deriveSeed mixes the base seed and a run index into a decorrelated 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Small input changes
// produce well-distributed output changes, so consecutive run indices yield
// independent streams.
func deriveSeed(base int64, run uint64) int64 {
	x := uint64(base) ^ (run + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
