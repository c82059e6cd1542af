// Package threshold - solver options.
package threshold

import (
	"errors"

	"github.com/katalvlaran/solvekit/solve"
)

// ErrEmptyThreshold indicates an initial threshold with no levels.
var ErrEmptyThreshold = errors.New("threshold: initial threshold must have at least one level")

// Options configures a threshold accepting run.
type Options[S any] struct {
	// Factor scales the threshold down after each non-improving acceptance;
	// must lie in (0,1). Default: 0.9.
	Factor float64

	// Floor bounds the threshold scale from below, as a fraction of the
	// initial threshold in [0, 1]. Default: 0 (the threshold decays toward
	// zero).
	Floor float64

	// Stop holds optional stop conditions, combined with logical OR and
	// checked before each iteration. Default: none (run until a full scan
	// finds no acceptable neighbor).
	Stop []solve.StopCondition

	// Progress, when non-nil, observes each committed iteration.
	Progress solve.ProgressFunc[S]
}

// DefaultOptions returns the baseline configuration: decay factor 0.9, no
// floor, no stop conditions.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{Factor: 0.9}
}

// Option overrides one field of Options.
type Option[S any] func(*Options[S])

// WithFactor sets the threshold decay factor.
func WithFactor[S any](f float64) Option[S] {
	return func(o *Options[S]) { o.Factor = f }
}

// WithFloor sets the threshold floor as a fraction of the initial threshold.
func WithFloor[S any](f float64) Option[S] {
	return func(o *Options[S]) { o.Floor = f }
}

// WithStop appends stop conditions, combined with logical OR.
func WithStop[S any](conds ...solve.StopCondition) Option[S] {
	return func(o *Options[S]) { o.Stop = append(o.Stop, conds...) }
}

// WithProgress sets the per-iteration progress hook.
func WithProgress[S any](fn solve.ProgressFunc[S]) Option[S] {
	return func(o *Options[S]) { o.Progress = fn }
}
