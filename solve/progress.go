// Package solve - per-iteration progress reporting.
package solve

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/solvekit/objective"
)

// Event describes one completed solver iteration. It is passed to the
// optional progress hook after the iteration's state has been committed.
type Event[S any] struct {
	// Iteration is the 1-based number of the completed iteration.
	Iteration int

	// Current is the solution the solver holds after the iteration.
	Current objective.EvaluatedSolution[S]

	// Previous is the solution held before the iteration, if any.
	Previous *objective.EvaluatedSolution[S]

	// Elapsed is the wall-clock time since Solve started.
	Elapsed time.Duration

	// Forced is set by the tabu solvers when every candidate of the
	// generation was tabu and the move was forced.
	Forced bool
}

// ProgressFunc observes solver iterations. The hook runs on the driving
// goroutine between iterations; keep it cheap. A nil hook disables
// reporting — the core never logs on its own.
type ProgressFunc[S any] func(Event[S])

// SlogProgress returns a progress hook that logs each iteration through the
// given slog logger at Info level, formatting the objective value against
// the objective's level names. A nil logger uses slog.Default().
func SlogProgress[S any](logger *slog.Logger, obj *objective.Objective[S]) ProgressFunc[S] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(e Event[S]) {
		attrs := []any{
			slog.Int("iteration", e.Iteration),
			slog.String("objective", obj.Format(e.Current.ObjectiveValue())),
			slog.Duration("elapsed", e.Elapsed),
		}
		if e.Previous != nil {
			attrs = append(attrs, slog.String("previous", obj.Format(e.Previous.ObjectiveValue())))
		}
		if e.Forced {
			attrs = append(attrs, slog.Bool("forced_move", true))
		}
		logger.Info("solver iteration", attrs...)
	}
}
