// Package objective defines the hierarchical objective model shared by every
// solvekit solver.
//
// Overview:
//
//   - A Value is a single tagged scalar measurement: an exact integer, a
//     float, a duration, the additive identity Zero, or the worst-possible
//     sentinel Max. Arithmetic never silently truncates: mixing integers
//     with floats promotes to float, and integer overflow surfaces as
//     ErrNumericOverflow instead of wrapping.
//   - An Indicator is a named, pure function mapping a solution to a Value.
//   - A LinearCombination is a weighted sum of indicators and forms one level
//     of the objective.
//   - An Objective is an ordered list of levels. Evaluating a solution yields
//     an ObjectiveValue (one Value per level) compared lexicographically:
//     the first level dominates, later levels only break ties. This makes it
//     cheap to model hard constraints as a high-priority violation level that
//     is driven to zero before the remaining levels are optimized.
//   - An EvaluatedSolution pairs a solution with the ObjectiveValue it was
//     evaluated to; the two never travel separately.
//
// The objective is built once, is immutable afterwards, and is safe to share
// across goroutines: Evaluate performs read-only work over the solution.
// The solution type S is opaque to this package; indicators must not mutate
// it.
//
// Errors (sentinel):
//
//	– ErrNoLevels         if an Objective is constructed without levels.
//	– ErrNoSummands       if a LinearCombination is constructed empty.
//	– ErrNilIndicator     if a summand carries a nil Indicator.
//	– ErrNumericOverflow  if integer arithmetic in a level overflows.
//	– ErrIncompatibleValues if two values admit no common arithmetic kind.
//	– ErrLevelMismatch    if two ObjectiveValues of different depth are combined.
//
// Example usage:
//
//	violation := objective.NewIndicator("Violation", func(s Tour) objective.Value {
//	    return objective.Int(countViolations(s))
//	})
//	distance := objective.NewIndicator("Distance", func(s Tour) objective.Value {
//	    return objective.Float(totalDistance(s))
//	})
//	obj, err := objective.IndicatorPerLevel(violation, distance)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	evaluated, err := obj.Evaluate(tour)
package objective
