// Package solve - composable stop conditions checked at iteration boundaries.
package solve

import (
	"time"

	"github.com/katalvlaran/solvekit/objective"
)

// Snapshot is the slice of solver state visible to a stop condition at an
// iteration boundary.
type Snapshot struct {
	// Iteration is the number of completed iterations.
	Iteration int

	// Elapsed is the wall-clock time since Solve started.
	Elapsed time.Duration

	// SinceImprovement counts completed iterations since the best-seen
	// objective value last improved.
	SinceImprovement int

	// Value is the objective value of the current solution.
	Value objective.ObjectiveValue
}

// StopCondition is a predicate over the solver snapshot. Conditions are
// checked between iterations only, so a time-based condition can overrun by
// at most one generation of neighbor evaluations.
type StopCondition func(Snapshot) bool

// MaxIterations stops after n completed iterations.
func MaxIterations(n int) StopCondition {
	return func(s Snapshot) bool { return s.Iteration >= n }
}

// MaxDuration stops once the run has been going for at least d.
func MaxDuration(d time.Duration) StopCondition {
	return func(s Snapshot) bool { return s.Elapsed >= d }
}

// MaxStagnation stops after n completed iterations without a global
// improvement.
func MaxStagnation(n int) StopCondition {
	return func(s Snapshot) bool { return s.SinceImprovement >= n }
}

// Any combines conditions with logical OR. With no conditions it never
// stops, so solvers can apply it unconditionally.
func Any(conds ...StopCondition) StopCondition {
	return func(s Snapshot) bool {
		for _, cond := range conds {
			if cond(s) {
				return true
			}
		}
		return false
	}
}
