// Package objective - Indicator, a named pure measurement of a solution.
package objective

// Indicator is an atomic, named quality of a solution, e.g. "TotalDistance"
// or "PermutationViolation".
//
// Contract:
//   - Evaluate must be deterministic: the same solution always yields the
//     same Value.
//   - Evaluate must not mutate the solution; solvers evaluate shared
//     snapshots from multiple goroutines.
type Indicator[S any] interface {
	// Evaluate measures the solution.
	Evaluate(solution S) Value

	// Name identifies the indicator in formatted objective values.
	Name() string
}

// NewIndicator adapts a named pure function to the Indicator interface.
func NewIndicator[S any](name string, fn func(S) Value) Indicator[S] {
	return &funcIndicator[S]{name: name, fn: fn}
}

type funcIndicator[S any] struct {
	name string
	fn   func(S) Value
}

func (ind *funcIndicator[S]) Evaluate(solution S) Value { return ind.fn(solution) }

func (ind *funcIndicator[S]) Name() string { return ind.name }
