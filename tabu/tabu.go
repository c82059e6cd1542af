// Package tabu - the tabu search loop.
package tabu

import (
	"time"

	"github.com/katalvlaran/solvekit/objective"
	"github.com/katalvlaran/solvekit/solve"
)

// Solver is a tabu search solver over a move-labelled neighborhood. A
// Solver is constructed once and may run Solve repeatedly; the tabu memory
// is re-created per run.
type Solver[S any, M comparable] struct {
	neigh  Neighborhood[S, M]
	obj    *objective.Objective[S]
	tenure int
	opts   Options[S]
	stop   solve.StopCondition
}

// New builds a tabu search solver. tenure is the number of iterations a
// used move stays forbidden.
//
// Validation: neigh and obj must be non-nil (solve.ErrNilNeighborhood,
// solve.ErrNilObjective), tenure must be positive (ErrBadTenure), Capacity
// non-negative (ErrBadCapacity), Workers non-negative (solve.ErrBadWorkers)
// and at least one stop condition is required (solve.ErrNoStopCondition).
func New[S any, M comparable](neigh Neighborhood[S, M], obj *objective.Objective[S], tenure int, opts ...Option[S]) (*Solver[S, M], error) {
	if neigh == nil {
		return nil, solve.ErrNilNeighborhood
	}
	if obj == nil {
		return nil, solve.ErrNilObjective
	}
	if tenure <= 0 {
		return nil, ErrBadTenure
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Capacity < 0 {
		return nil, ErrBadCapacity
	}
	if o.Workers < 0 {
		return nil, solve.ErrBadWorkers
	}
	if len(o.Stop) == 0 {
		return nil, solve.ErrNoStopCondition
	}
	return &Solver[S, M]{neigh: neigh, obj: obj, tenure: tenure, opts: o, stop: solve.Any(o.Stop...)}, nil
}

// Solve runs tabu search from initial and returns the best solution seen.
// The result carries TerminationStopCondition when a configured condition
// fired and TerminationNoCandidates when the neighborhood was empty at the
// current solution. An all-tabu generation is not terminal: the best
// candidate overall is committed as a forced move.
func (s *Solver[S, M]) Solve(initial S) (solve.Result[S], error) {
	start := time.Now()
	current, err := s.obj.Evaluate(initial)
	if err != nil {
		return solve.Result[S]{}, err
	}
	best := current

	capacity := s.opts.Capacity
	if capacity == 0 {
		capacity = s.tenure
	}
	mem := newMemory[M](capacity)

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

		it := iterations + 1
		chosen, forced, count, err := s.step(current, best, mem, it)
		if err != nil {
			return solve.Result[S]{}, err
		}
		if count == 0 {
			return s.finish(best, iterations, start, solve.TerminationNoCandidates), nil
		}

		mem.record(chosen.move, it, s.tenure)
		previous := current
		current = chosen.cand
		iterations++
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
				Forced:    forced,
			})
		}
	}
}

type pick[S any, M comparable] struct {
	cand objective.EvaluatedSolution[S]
	move M
	idx  int
}

// step scans one generation and selects the best admissible candidate: not
// tabu, or better than the best ever seen (aspiration). Ties break by
// generation order. On an all-tabu generation the best candidate overall is
// returned with forced set. The tabu filter runs in the sequential
// reduction step against the memory snapshot taken for this iteration,
// never inside worker evaluation.
func (s *Solver[S, M]) step(current, best objective.EvaluatedSolution[S], mem *memory[M], it int) (*pick[S, M], bool, int, error) {
	var admissible, overall *pick[S, M]

	better := func(cand objective.EvaluatedSolution[S], idx int, than *pick[S, M]) bool {
		if than == nil {
			return true
		}
		cmp := cand.Cmp(than.cand)
		return cmp < 0 || (cmp == 0 && idx < than.idx)
	}

	count, err := solve.Scan(s.obj, s.neigh.NeighborsOf(current.Solution()), s.opts.Workers,
		func(index int, cand objective.EvaluatedSolution[S], move M) bool {
			if better(cand, index, overall) {
				overall = &pick[S, M]{cand: cand, move: move, idx: index}
			}
			if mem.isTabu(move, it) && !cand.Better(best) {
				return true
			}
			if better(cand, index, admissible) {
				admissible = &pick[S, M]{cand: cand, move: move, idx: index}
			}
			return true
		})
	if err != nil {
		return nil, false, count, err
	}
	if admissible != nil {
		return admissible, false, count, nil
	}
	return overall, overall != nil, count, nil
}

func (s *Solver[S, M]) finish(best objective.EvaluatedSolution[S], iterations int, start time.Time, reason solve.TerminationReason) solve.Result[S] {
	return solve.Result[S]{
		Best:       best,
		Iterations: iterations,
		Elapsed:    time.Since(start),
		Reason:     reason,
	}
}
