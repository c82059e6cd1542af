// Package solve - shared contracts and sentinel errors.
package solve

import (
	"errors"
	"iter"
	"time"

	"github.com/katalvlaran/solvekit/objective"
)

// Sentinel errors shared by the solver packages.
var (
	// ErrNilNeighborhood indicates that a solver was constructed without a
	// neighborhood.
	ErrNilNeighborhood = errors.New("solve: neighborhood is nil")

	// ErrNilObjective indicates that a solver was constructed without an
	// objective.
	ErrNilObjective = errors.New("solve: objective is nil")

	// ErrBadWorkers indicates a negative worker-pool size.
	ErrBadWorkers = errors.New("solve: workers must be non-negative")

	// ErrNoStopCondition indicates that a solver which cannot terminate on
	// its own (annealing, tabu search) was constructed without any stop
	// condition.
	ErrNoStopCondition = errors.New("solve: at least one stop condition required")

	// ErrBadInitial indicates a non-positive schedule initial value.
	ErrBadInitial = errors.New("solve: schedule initial value must be positive")

	// ErrBadDecayFactor indicates a schedule decay factor outside (0,1).
	ErrBadDecayFactor = errors.New("solve: decay factor must be in (0,1)")

	// ErrBadFloor indicates a schedule floor that is negative or above the
	// initial value.
	ErrBadFloor = errors.New("solve: floor must be in [0, initial]")
)

// Cloneable is the capability required of solution types by components that
// need an independent copy (e.g., repeated-run experiments). Solvers
// themselves never clone: they only hand solution snapshots to pure
// neighborhoods and indicators.
type Cloneable[S any] interface {
	Clone() S
}

// Neighborhood produces, for a given solution, a lazy sequence of candidate
// solutions reachable by one elementary move.
//
// Contract:
//   - NeighborsOf is a pure function of its input and must not mutate it;
//     every candidate is a fresh value.
//   - The instance carries no per-call mutable state, so the same
//     Neighborhood may be driven from multiple goroutines concurrently.
//   - The sequence may be finite or truncated early by the caller; no
//     solver assumes it is consumed to the end.
type Neighborhood[S any] interface {
	NeighborsOf(solution S) iter.Seq[S]
}

// NeighborhoodFunc adapts a function to the Neighborhood interface.
type NeighborhoodFunc[S any] func(solution S) iter.Seq[S]

// NeighborsOf calls the wrapped function.
func (f NeighborhoodFunc[S]) NeighborsOf(solution S) iter.Seq[S] { return f(solution) }

// Solver is the uniform entry point implemented by every metaheuristic in
// this module. Solve runs the search loop from the given initial solution
// and returns the best (per-strategy) evaluated solution.
type Solver[S any] interface {
	Solve(initial S) (Result[S], error)
}

// TerminationReason classifies why a solve run ended. Exhaustion reasons are
// normal outcomes, not errors.
type TerminationReason uint8

const (
	// TerminationUnknown is the zero value; a returned Result never carries it.
	TerminationUnknown TerminationReason = iota

	// TerminationLocalOptimum: no neighbor strictly improves on the current
	// solution under the configured objective.
	TerminationLocalOptimum

	// TerminationNoCandidates: the neighborhood produced no candidates for
	// the current solution.
	TerminationNoCandidates

	// TerminationStopCondition: a configured stop condition triggered; the
	// best solution found so far is returned.
	TerminationStopCondition

	// TerminationThresholdExhausted: a full threshold-accepting scan found
	// no acceptable neighbor.
	TerminationThresholdExhausted
)

// String names the reason for diagnostics.
func (r TerminationReason) String() string {
	switch r {
	case TerminationLocalOptimum:
		return "local optimum"
	case TerminationNoCandidates:
		return "no candidates"
	case TerminationStopCondition:
		return "stop condition"
	case TerminationThresholdExhausted:
		return "threshold exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one solve run.
type Result[S any] struct {
	// Best is the solution the strategy reports: the local optimum for
	// greedy descent, the best seen for the accepting strategies.
	Best objective.EvaluatedSolution[S]

	// Iterations is the number of completed iterations.
	Iterations int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Reason records why the run terminated.
	Reason TerminationReason
}
