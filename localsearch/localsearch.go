// Package localsearch - the greedy descent loop.
package localsearch

import (
	"time"

	"github.com/katalvlaran/solvekit/objective"
	"github.com/katalvlaran/solvekit/solve"
)

// Solver is a greedy descent solver. A Solver is constructed once and may
// run Solve repeatedly; runs do not share state.
type Solver[S any] struct {
	neigh solve.Neighborhood[S]
	obj   *objective.Objective[S]
	opts  Options[S]
	stop  solve.StopCondition
}

// New builds a local search solver over the given neighborhood and
// objective.
//
// Validation: neigh must be non-nil (solve.ErrNilNeighborhood), obj must be
// non-nil (solve.ErrNilObjective), Workers must be non-negative
// (solve.ErrBadWorkers) and the policy must be known (ErrBadPolicy).
func New[S any](neigh solve.Neighborhood[S], obj *objective.Objective[S], opts ...Option[S]) (*Solver[S], error) {
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
	if o.Workers < 0 {
		return nil, solve.ErrBadWorkers
	}
	if o.Policy > FirstImprovement {
		return nil, ErrBadPolicy
	}
	return &Solver[S]{neigh: neigh, obj: obj, opts: o, stop: solve.Any(o.Stop...)}, nil
}

// Solve runs greedy descent from initial and returns the reached solution.
// The result carries TerminationLocalOptimum when no neighbor improves,
// TerminationNoCandidates when the neighborhood is empty at the current
// solution, and TerminationStopCondition when a configured condition fired
// first. Evaluation errors abort the run.
func (s *Solver[S]) Solve(initial S) (solve.Result[S], error) {
	start := time.Now()
	current, err := s.obj.Evaluate(initial)
	if err != nil {
		return solve.Result[S]{}, err
	}

	iterations := 0
	for {
		snap := solve.Snapshot{
			Iteration: iterations,
			Elapsed:   time.Since(start),
			Value:     current.ObjectiveValue(),
		}
		if s.stop(snap) {
			return s.finish(current, iterations, start, solve.TerminationStopCondition), nil
		}

		next, count, err := s.step(current)
		if err != nil {
			return solve.Result[S]{}, err
		}
		if count == 0 {
			return s.finish(current, iterations, start, solve.TerminationNoCandidates), nil
		}
		if next == nil {
			return s.finish(current, iterations, start, solve.TerminationLocalOptimum), nil
		}

		previous := current
		current = *next
		iterations++
		if s.opts.Progress != nil {
			s.opts.Progress(solve.Event[S]{
				Iteration: iterations,
				Current:   current,
				Previous:  &previous,
				Elapsed:   time.Since(start),
			})
		}
	}
}

// step scans one generation of neighbors and returns the neighbor to
// commit, or nil when no neighbor strictly improves on current. count is
// the number of candidates evaluated.
func (s *Solver[S]) step(current objective.EvaluatedSolution[S]) (*objective.EvaluatedSolution[S], int, error) {
	var (
		chosen    *objective.EvaluatedSolution[S]
		chosenIdx int
	)
	takeFirst := s.opts.Policy == FirstImprovement

	count, err := solve.ScanPlain(s.obj, s.neigh.NeighborsOf(current.Solution()), s.opts.Workers,
		func(index int, cand objective.EvaluatedSolution[S]) bool {
			if cand.ObjectiveValue().Cmp(current.ObjectiveValue()) >= 0 {
				return true
			}
			if takeFirst {
				// Candidates may arrive out of order under a worker pool;
				// keep the lowest improving index so the pick matches the
				// sequential scan.
				if chosen == nil || index < chosenIdx {
					c := cand
					chosen, chosenIdx = &c, index
				}
				return false
			}
			if chosen == nil {
				c := cand
				chosen, chosenIdx = &c, index
				return true
			}
			switch cmp := cand.ObjectiveValue().Cmp(chosen.ObjectiveValue()); {
			case cmp < 0:
				c := cand
				chosen, chosenIdx = &c, index
			case cmp == 0 && index < chosenIdx:
				c := cand
				chosen, chosenIdx = &c, index
			}
			return true
		})
	if err != nil {
		return nil, count, err
	}
	return chosen, count, nil
}

func (s *Solver[S]) finish(current objective.EvaluatedSolution[S], iterations int, start time.Time, reason solve.TerminationReason) solve.Result[S] {
	return solve.Result[S]{
		Best:       current,
		Iterations: iterations,
		Elapsed:    time.Since(start),
		Reason:     reason,
	}
}
