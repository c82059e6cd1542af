// Package objective - the hierarchical Objective itself.
package objective

import "strings"

// Objective is the full hierarchical objective of an optimization problem:
// an ordered list of LinearCombination levels, most significant first. It is
// built once, immutable afterwards, and safe to share read-only across every
// solver iteration and worker goroutine.
//
// The objective is minimized: smaller ObjectiveValues are better, and level
// order is significant — level 0 strictly dominates level 1, and so on.
type Objective[S any] struct {
	levels []*LinearCombination[S]
}

// New builds an objective from its levels. At least one level is required
// (ErrNoLevels) and every level must be non-nil (ErrNilLevel).
func New[S any](levels ...*LinearCombination[S]) (*Objective[S], error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for _, lvl := range levels {
		if lvl == nil {
			return nil, ErrNilLevel
		}
	}
	o := &Objective[S]{levels: make([]*LinearCombination[S], len(levels))}
	copy(o.levels, levels)
	return o, nil
}

// SingleLevel builds an objective with one level.
func SingleLevel[S any](level *LinearCombination[S]) (*Objective[S], error) {
	return New(level)
}

// SingleIndicator builds a one-level objective from a single unweighted
// indicator.
func SingleIndicator[S any](ind Indicator[S]) (*Objective[S], error) {
	lc, err := NewLinearCombination(Weighted(Coeff(1), ind))
	if err != nil {
		return nil, err
	}
	return New(lc)
}

// IndicatorPerLevel builds an objective with one unweighted indicator per
// level, most significant first.
func IndicatorPerLevel[S any](indicators ...Indicator[S]) (*Objective[S], error) {
	if len(indicators) == 0 {
		return nil, ErrNoLevels
	}
	levels := make([]*LinearCombination[S], len(indicators))
	for i, ind := range indicators {
		lc, err := NewLinearCombination(Weighted(Coeff(1), ind))
		if err != nil {
			return nil, err
		}
		levels[i] = lc
	}
	return New(levels...)
}

// Levels returns the number of hierarchy levels.
func (o *Objective[S]) Levels() int { return len(o.levels) }

// LevelNames returns the formatted name of each level, in order.
func (o *Objective[S]) LevelNames() []string {
	names := make([]string, len(o.levels))
	for i, lvl := range o.levels {
		names[i] = lvl.String()
	}
	return names
}

// Evaluate computes the solution's ObjectiveValue (one value per level, in
// level order) and returns both as an EvaluatedSolution. Evaluation is
// read-only over the solution; arithmetic errors (ErrNumericOverflow)
// propagate to the caller.
func (o *Objective[S]) Evaluate(solution S) (EvaluatedSolution[S], error) {
	values := make([]Value, len(o.levels))
	for i, lvl := range o.levels {
		v, err := lvl.Evaluate(solution)
		if err != nil {
			return EvaluatedSolution[S]{}, err
		}
		values[i] = v
	}
	return NewEvaluatedSolution(solution, ObjectiveValue{values: values}), nil
}

// Zero returns the objective value that is Zero on every level.
func (o *Objective[S]) Zero() ObjectiveValue {
	values := make([]Value, len(o.levels))
	for i := range values {
		values[i] = Zero
	}
	return ObjectiveValue{values: values}
}

// Maximum returns the objective value that is Max on every level; it is
// worse than every evaluated solution.
func (o *Objective[S]) Maximum() ObjectiveValue {
	values := make([]Value, len(o.levels))
	for i := range values {
		values[i] = Max
	}
	return ObjectiveValue{values: values}
}

// Format renders an objective value against the level names, e.g.
// "PermutationViolation=0 SquaredDifference=36". Levels beyond the value's
// depth are omitted.
func (o *Objective[S]) Format(ov ObjectiveValue) string {
	n := min(len(o.levels), ov.Len())
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = o.levels[i].String() + "=" + ov.At(i).String()
	}
	return strings.Join(parts, " ")
}
