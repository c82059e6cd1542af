// Package threshold - the threshold accepting loop.
package threshold

import (
	"time"

	"github.com/katalvlaran/solvekit/objective"
	"github.com/katalvlaran/solvekit/solve"
)

// Solver is a threshold accepting solver. A Solver is constructed once and
// may run Solve repeatedly; the threshold schedule is re-created per run.
type Solver[S any] struct {
	neigh   solve.Neighborhood[S]
	obj     *objective.Objective[S]
	initial objective.ObjectiveValue
	opts    Options[S]
	stop    solve.StopCondition
}

// New builds a threshold accepting solver. initial is the starting
// threshold, one value per objective level.
//
// Validation: neigh and obj must be non-nil (solve.ErrNilNeighborhood,
// solve.ErrNilObjective), initial must have at least one level
// (ErrEmptyThreshold), Factor must lie in (0,1) (solve.ErrBadDecayFactor)
// and Floor in [0,1] (solve.ErrBadFloor).
func New[S any](neigh solve.Neighborhood[S], obj *objective.Objective[S], initial objective.ObjectiveValue, opts ...Option[S]) (*Solver[S], error) {
	if neigh == nil {
		return nil, solve.ErrNilNeighborhood
	}
	if obj == nil {
		return nil, solve.ErrNilObjective
	}
	if initial.Len() == 0 {
		return nil, ErrEmptyThreshold
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	// The per-run schedule tracks the threshold scale, starting at 1.
	if _, err := solve.NewGeometric(1, o.Factor, o.Floor); err != nil {
		return nil, err
	}
	return &Solver[S]{neigh: neigh, obj: obj, initial: initial, opts: o, stop: solve.Any(o.Stop...)}, nil
}

// Solve runs threshold accepting from initial and returns the best solution
// seen. The result carries TerminationThresholdExhausted when a full scan
// found no acceptable neighbor, TerminationNoCandidates when the
// neighborhood was empty at the current solution, and
// TerminationStopCondition when a configured condition fired first.
func (s *Solver[S]) Solve(initial S) (solve.Result[S], error) {
	start := time.Now()
	current, err := s.obj.Evaluate(initial)
	if err != nil {
		return solve.Result[S]{}, err
	}
	best := current

	sched, err := solve.NewGeometric(1, s.opts.Factor, s.opts.Floor)
	if err != nil {
		return solve.Result[S]{}, err
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

		bound, err := current.ObjectiveValue().Add(s.initial.Scale(sched.Value()))
		if err != nil {
			return solve.Result[S]{}, err
		}

		accepted, count, err := s.scan(current, bound)
		if err != nil {
			return solve.Result[S]{}, err
		}
		if count == 0 {
			return s.finish(best, iterations, start, solve.TerminationNoCandidates), nil
		}
		if accepted == nil {
			return s.finish(best, iterations, start, solve.TerminationThresholdExhausted), nil
		}

		if accepted.ObjectiveValue().Cmp(current.ObjectiveValue()) >= 0 {
			sched.Next()
		}

		previous := current
		current = *accepted
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
			})
		}
	}
}

// scan walks the neighborhood in sequence order and returns the first
// neighbor whose objective value lies strictly below bound.
func (s *Solver[S]) scan(current objective.EvaluatedSolution[S], bound objective.ObjectiveValue) (*objective.EvaluatedSolution[S], int, error) {
	var accepted *objective.EvaluatedSolution[S]
	count, err := solve.ScanPlain(s.obj, s.neigh.NeighborsOf(current.Solution()), 0,
		func(_ int, cand objective.EvaluatedSolution[S]) bool {
			if cand.ObjectiveValue().Cmp(bound) < 0 {
				c := cand
				accepted = &c
				return false
			}
			return true
		})
	if err != nil {
		return nil, count, err
	}
	return accepted, count, nil
}

func (s *Solver[S]) finish(best objective.EvaluatedSolution[S], iterations int, start time.Time, reason solve.TerminationReason) solve.Result[S] {
	return solve.Result[S]{
		Best:       best,
		Iterations: iterations,
		Elapsed:    time.Since(start),
		Reason:     reason,
	}
}
