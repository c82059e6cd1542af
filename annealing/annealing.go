// Package annealing - the simulated annealing loop.
package annealing

import (
	"iter"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/solvekit/objective"
	"github.com/katalvlaran/solvekit/solve"
)

// Solver is a simulated annealing solver. A Solver is constructed once and
// may run Solve repeatedly; the temperature schedule and (unless WithRand
// was given) the random source are re-created per run.
type Solver[S any] struct {
	neigh   solve.Neighborhood[S]
	obj     *objective.Objective[S]
	initial float64
	opts    Options[S]
	stop    solve.StopCondition
}

// New builds a simulated annealing solver. initial is the starting
// temperature; pick it in the magnitude of typical objective degradations.
//
// Validation: neigh and obj must be non-nil (solve.ErrNilNeighborhood,
// solve.ErrNilObjective), initial must be positive (solve.ErrBadInitial),
// Factor must lie in (0,1) (solve.ErrBadDecayFactor), Floor in
// [0, initial] (solve.ErrBadFloor), and at least one stop condition is
// required (solve.ErrNoStopCondition).
func New[S any](neigh solve.Neighborhood[S], obj *objective.Objective[S], initial float64, opts ...Option[S]) (*Solver[S], error) {
	if neigh == nil {
		return nil, solve.ErrNilNeighborhood
	}
	if obj == nil {
		return nil, solve.ErrNilObjective
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := solve.NewGeometric(initial, o.Factor, o.Floor); err != nil {
		return nil, err
	}
	if len(o.Stop) == 0 {
		return nil, solve.ErrNoStopCondition
	}
	return &Solver[S]{neigh: neigh, obj: obj, initial: initial, opts: o, stop: solve.Any(o.Stop...)}, nil
}

// Solve runs simulated annealing from initial and returns the best solution
// seen. The result carries TerminationStopCondition when a configured
// condition fired and TerminationNoCandidates when the neighborhood was
// empty at the current solution.
func (s *Solver[S]) Solve(initial S) (solve.Result[S], error) {
	start := time.Now()
	current, err := s.obj.Evaluate(initial)
	if err != nil {
		return solve.Result[S]{}, err
	}
	best := current

	sched, err := solve.NewGeometric(s.initial, s.opts.Factor, s.opts.Floor)
	if err != nil {
		return solve.Result[S]{}, err
	}
	rng := s.opts.Rand
	if rng == nil {
		rng = rngFromSeed(s.opts.Seed)
	}

	iterations := 0
	sinceImprovement := 0
	for {
		snap := solve.Snapshot{
			Iteration:        iterations,
			Elapsed:          time.Since(start),
			SinceImprovement: sinceImprovement,
			Value:            current.ObjectiveValue(),
		}
		if s.stop(snap) {
			return s.finish(best, iterations, start, solve.TerminationStopCondition), nil
		}

		pick, n := sample(s.neigh.NeighborsOf(current.Solution()), rng)
		if n == 0 {
			return s.finish(best, iterations, start, solve.TerminationNoCandidates), nil
		}
		cand, err := s.obj.Evaluate(pick)
		if err != nil {
			return solve.Result[S]{}, err
		}

		accepted := cand.Better(current)
		if !accepted {
			delta := degradation(current.ObjectiveValue(), cand.ObjectiveValue())
			accepted = rng.Float64() < math.Exp(-delta/sched.Value())
		}

		iterations++
		if accepted {
			previous := current
			current = cand
			if current.Better(best) {
				best = current
				sinceImprovement = 0
			} else {
				sinceImprovement++
			}
			if s.opts.Progress != nil {
				s.opts.Progress(solve.Event[S]{
					Iteration: iterations,
					Current:   current,
					Previous:  &previous,
					Elapsed:   time.Since(start),
				})
			}
		} else {
			sinceImprovement++
		}
		sched.Next()
	}
}

// sample draws one element from the sequence uniformly at random (reservoir
// of size one) and returns it with the sequence length. The first element
// consumes no randomness, so a single-candidate neighborhood is independent
// of the RNG stream.
func sample[S any](seq iter.Seq[S], rng *rand.Rand) (S, int) {
	var pick S
	n := 0
	for cand := range seq {
		n++
		if n == 1 || rng.Intn(n) == 0 {
			pick = cand
		}
	}
	return pick, n
}

// degradation flattens a lexicographic step into a scalar: the float
// difference at the first level where the candidate differs from the
// current value. For a non-improving candidate this is non-negative.
func degradation(current, cand objective.ObjectiveValue) float64 {
	n := current.Len()
	if cand.Len() < n {
		n = cand.Len()
	}
	for i := 0; i < n; i++ {
		if cand.At(i).Cmp(current.At(i)) != 0 {
			return cand.At(i).Float64() - current.At(i).Float64()
		}
	}
	return 0
}

func (s *Solver[S]) finish(best objective.EvaluatedSolution[S], iterations int, start time.Time, reason solve.TerminationReason) solve.Result[S] {
	return solve.Result[S]{
		Best:       best,
		Iterations: iterations,
		Elapsed:    time.Since(start),
		Reason:     reason,
	}
}
