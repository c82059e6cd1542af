// Package objective - sentinel errors shared by the value and objective types.
package objective

import "errors"

// Sentinel errors returned by the objective model.
var (
	// ErrNoLevels indicates that an Objective was constructed with an empty
	// level list. An objective needs at least one level to order solutions.
	ErrNoLevels = errors.New("objective: objective requires at least one level")

	// ErrNoSummands indicates that a LinearCombination was constructed with
	// no (coefficient, indicator) summands.
	ErrNoSummands = errors.New("objective: linear combination requires at least one summand")

	// ErrNilIndicator indicates that a summand carried a nil Indicator.
	ErrNilIndicator = errors.New("objective: indicator is nil")

	// ErrNilLevel indicates that an Objective was constructed with a nil
	// LinearCombination level.
	ErrNilLevel = errors.New("objective: level is nil")

	// ErrNumericOverflow indicates that exact integer arithmetic inside a
	// linear combination overflowed. The error is propagated to the caller
	// of Evaluate; values are never silently wrapped.
	ErrNumericOverflow = errors.New("objective: integer arithmetic overflow")

	// ErrIncompatibleValues indicates that two values of unrelated kinds
	// (e.g., a duration and a float) were combined arithmetically.
	ErrIncompatibleValues = errors.New("objective: incompatible value kinds")

	// ErrLevelMismatch indicates that two ObjectiveValues with a different
	// number of levels were added or subtracted.
	ErrLevelMismatch = errors.New("objective: objective value level count mismatch")
)
