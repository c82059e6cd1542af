// Package objective - EvaluatedSolution, a solution paired with its score.
package objective

// EvaluatedSolution is the immutable pairing of a solution value with the
// ObjectiveValue it evaluated to. The two are produced together by
// Objective.Evaluate and never travel separately; ordering delegates to the
// objective value's lexicographic comparison.
type EvaluatedSolution[S any] struct {
	solution S
	value    ObjectiveValue
}

// NewEvaluatedSolution pairs a solution with its objective value. Usually
// produced by Objective.Evaluate.
func NewEvaluatedSolution[S any](solution S, value ObjectiveValue) EvaluatedSolution[S] {
	return EvaluatedSolution[S]{solution: solution, value: value}
}

// Solution returns the underlying solution value.
func (e EvaluatedSolution[S]) Solution() S { return e.solution }

// ObjectiveValue returns the score the solution evaluated to.
func (e EvaluatedSolution[S]) ObjectiveValue() ObjectiveValue { return e.value }

// Cmp compares by objective value (lexicographic).
func (e EvaluatedSolution[S]) Cmp(other EvaluatedSolution[S]) int {
	return e.value.Cmp(other.value)
}

// Better reports whether e has a strictly smaller (better) objective value
// than other.
func (e EvaluatedSolution[S]) Better(other EvaluatedSolution[S]) bool {
	return e.value.Cmp(other.value) < 0
}
