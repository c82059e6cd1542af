// Package annealing - solver options and RNG policy.
package annealing

import (
	"math/rand"

	"github.com/katalvlaran/solvekit/solve"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 uses defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// Options configures a simulated annealing run.
type Options[S any] struct {
	// Factor scales the temperature down once per iteration; must lie in
	// (0,1). Default: 0.9.
	Factor float64

	// Floor bounds the temperature from below, in [0, initial]. The
	// temperature holds there. Default: 0.
	Floor float64

	// Seed seeds the per-run random source. Seed 0 selects a fixed default
	// seed, so runs are reproducible either way. Ignored when Rand is set.
	Seed int64

	// Rand, when non-nil, is used as the random source instead of a
	// seed-derived one. The solver mutates it; do not share it across
	// concurrent runs.
	Rand *rand.Rand

	// Stop holds the stop conditions, combined with logical OR and checked
	// before each iteration. At least one is required: the annealing loop
	// cannot terminate on its own.
	Stop []solve.StopCondition

	// Progress, when non-nil, observes each accepted iteration.
	Progress solve.ProgressFunc[S]
}

// DefaultOptions returns the baseline configuration: cooling factor 0.9, no
// temperature floor, seed 0.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{Factor: 0.9}
}

// Option overrides one field of Options.
type Option[S any] func(*Options[S])

// WithFactor sets the per-iteration cooling factor.
func WithFactor[S any](f float64) Option[S] {
	return func(o *Options[S]) { o.Factor = f }
}

// WithFloor sets the temperature floor.
func WithFloor[S any](f float64) Option[S] {
	return func(o *Options[S]) { o.Floor = f }
}

// WithSeed sets the random seed.
func WithSeed[S any](seed int64) Option[S] {
	return func(o *Options[S]) { o.Seed = seed }
}

// WithRand sets an explicit random source, overriding WithSeed.
func WithRand[S any](rng *rand.Rand) Option[S] {
	return func(o *Options[S]) { o.Rand = rng }
}

// WithStop appends stop conditions, combined with logical OR.
func WithStop[S any](conds ...solve.StopCondition) Option[S] {
	return func(o *Options[S]) { o.Stop = append(o.Stop, conds...) }
}

// WithProgress sets the per-iteration progress hook.
func WithProgress[S any](fn solve.ProgressFunc[S]) Option[S] {
	return func(o *Options[S]) { o.Progress = fn }
}
