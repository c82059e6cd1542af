// Package tabu - the move-labelled neighborhood contract and solver options.
package tabu

import (
	"errors"
	"iter"

	"github.com/katalvlaran/solvekit/solve"
)

// Sentinel errors of this package.
var (
	// ErrBadTenure indicates a non-positive tabu tenure.
	ErrBadTenure = errors.New("tabu: tenure must be positive")

	// ErrBadCapacity indicates a negative tabu memory capacity.
	ErrBadCapacity = errors.New("tabu: capacity must be non-negative")
)

// Neighborhood produces, for a given solution, a lazy sequence of candidate
// solutions paired with the move that derived each candidate. The move
// label is the unit of tabu bookkeeping: two candidates carrying equal
// moves are forbidden and released together.
//
// The purity and thread-safety contract of solve.Neighborhood applies
// unchanged.
type Neighborhood[S any, M comparable] interface {
	NeighborsOf(solution S) iter.Seq2[S, M]
}

// NeighborhoodFunc adapts a function to the Neighborhood interface.
type NeighborhoodFunc[S any, M comparable] func(solution S) iter.Seq2[S, M]

// NeighborsOf calls the wrapped function.
func (f NeighborhoodFunc[S, M]) NeighborsOf(solution S) iter.Seq2[S, M] { return f(solution) }

// Options configures a tabu search run.
type Options[S any] struct {
	// Capacity bounds the number of live tabu entries. 0 means "as large
	// as the tenure", which never drops an unexpired entry since one move
	// is recorded per iteration. A smaller capacity forgets early.
	Capacity int

	// Workers is the evaluation pool size for one generation. 0 or 1 means
	// sequential scanning. Default: 0.
	Workers int

	// Stop holds the stop conditions, combined with logical OR and checked
	// before each iteration. At least one is required: the tabu loop
	// cannot terminate on its own.
	Stop []solve.StopCondition

	// Progress, when non-nil, observes each committed iteration. Event.
	// Forced marks iterations whose move was forced through an all-tabu
	// generation.
	Progress solve.ProgressFunc[S]
}

// DefaultOptions returns the baseline configuration: sequential scanning,
// capacity derived from the tenure.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{}
}

// Option overrides one field of Options.
type Option[S any] func(*Options[S])

// WithCapacity bounds the tabu memory.
func WithCapacity[S any](n int) Option[S] {
	return func(o *Options[S]) { o.Capacity = n }
}

// WithWorkers sets the evaluation pool size for one generation.
func WithWorkers[S any](n int) Option[S] {
	return func(o *Options[S]) { o.Workers = n }
}

// WithStop appends stop conditions, combined with logical OR.
func WithStop[S any](conds ...solve.StopCondition) Option[S] {
	return func(o *Options[S]) { o.Stop = append(o.Stop, conds...) }
}

// WithProgress sets the per-iteration progress hook.
func WithProgress[S any](fn solve.ProgressFunc[S]) Option[S] {
	return func(o *Options[S]) { o.Progress = fn }
}
