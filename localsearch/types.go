// Package localsearch - selection policy and solver options.
package localsearch

import (
	"errors"

	"github.com/katalvlaran/solvekit/solve"
)

// ErrBadPolicy indicates an unrecognized selection policy.
var ErrBadPolicy = errors.New("localsearch: unknown selection policy")

// Policy selects how descent picks the neighbor to commit.
type Policy uint8

const (
	// BestImprovement scans every neighbor and commits the strictly best
	// one, ties broken by generation order. This is the default.
	BestImprovement Policy = iota

	// FirstImprovement commits the first strictly improving neighbor and
	// skips the rest of the generation.
	FirstImprovement
)

// String names the policy for diagnostics.
func (p Policy) String() string {
	switch p {
	case BestImprovement:
		return "best-improvement"
	case FirstImprovement:
		return "first-improvement"
	default:
		return "unknown"
	}
}

// Options configures a local search run.
type Options[S any] struct {
	// Policy is the neighbor selection policy. Default: BestImprovement.
	Policy Policy

	// Workers is the evaluation pool size for one generation. 0 or 1 means
	// sequential scanning. Default: 0.
	Workers int

	// Stop holds optional stop conditions, combined with logical OR and
	// checked before each iteration. Default: none (run to local optimum).
	Stop []solve.StopCondition

	// Progress, when non-nil, observes each committed iteration.
	Progress solve.ProgressFunc[S]
}

// DefaultOptions returns the baseline configuration: sequential
// best-improvement descent with no stop conditions.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{Policy: BestImprovement}
}

// Option overrides one field of Options.
type Option[S any] func(*Options[S])

// WithPolicy sets the neighbor selection policy.
func WithPolicy[S any](p Policy) Option[S] {
	return func(o *Options[S]) { o.Policy = p }
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
