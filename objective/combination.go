// Package objective - LinearCombination, one level of the hierarchical
// objective.
package objective

import "strings"

// Summand is one weighted indicator of a LinearCombination.
type Summand[S any] struct {
	Coefficient Coefficient
	Indicator   Indicator[S]
}

// Weighted is a small constructor helper for a Summand.
func Weighted[S any](c Coefficient, ind Indicator[S]) Summand[S] {
	return Summand[S]{Coefficient: c, Indicator: ind}
}

// LinearCombination is a weighted sum of indicators forming one level of an
// Objective. The summand order is fixed at construction; evaluation sums in
// that order, which pins down tie-break behavior for exact values.
type LinearCombination[S any] struct {
	summands []Summand[S]
}

// NewLinearCombination builds a level from its summands. At least one
// summand is required (ErrNoSummands) and every indicator must be non-nil
// (ErrNilIndicator).
func NewLinearCombination[S any](summands ...Summand[S]) (*LinearCombination[S], error) {
	if len(summands) == 0 {
		return nil, ErrNoSummands
	}
	for _, s := range summands {
		if s.Indicator == nil {
			return nil, ErrNilIndicator
		}
	}
	lc := &LinearCombination[S]{summands: make([]Summand[S], len(summands))}
	copy(lc.summands, summands)
	return lc, nil
}

// Evaluate computes the weighted sum of the level's indicators for the given
// solution. Mixed integer/float summands promote to float; integer overflow
// surfaces as ErrNumericOverflow.
func (lc *LinearCombination[S]) Evaluate(solution S) (Value, error) {
	total := Zero
	for _, s := range lc.summands {
		weighted, err := s.Coefficient.Mul(s.Indicator.Evaluate(solution))
		if err != nil {
			return Zero, err
		}
		total, err = total.Add(weighted)
		if err != nil {
			return Zero, err
		}
	}
	return total, nil
}

// String renders the level as "c1*name1 + name2 + ...", eliding unit
// coefficients.
func (lc *LinearCombination[S]) String() string {
	parts := make([]string, len(lc.summands))
	for i, s := range lc.summands {
		if s.Coefficient.IsOne() {
			parts[i] = s.Indicator.Name()
		} else {
			parts[i] = s.Coefficient.String() + "*" + s.Indicator.Name()
		}
	}
	return strings.Join(parts, " + ")
}
