// Package objective - ObjectiveValue, the lexicographically ordered result of
// evaluating a solution.
package objective

import "strings"

// ObjectiveValue is the hierarchical score of a solution: one Value per
// objective level, most significant first. It is immutable after
// construction.
type ObjectiveValue struct {
	values []Value
}

// NewObjectiveValue builds an objective value from per-level values. Usually
// produced by Objective.Evaluate; exposed for thresholds and tests.
func NewObjectiveValue(values ...Value) ObjectiveValue {
	vs := make([]Value, len(values))
	copy(vs, values)
	return ObjectiveValue{values: vs}
}

// Len returns the number of levels.
func (ov ObjectiveValue) Len() int { return len(ov.values) }

// At returns the value of level i (0 = most significant).
func (ov ObjectiveValue) At(i int) Value { return ov.values[i] }

// Values returns a copy of the per-level values.
func (ov ObjectiveValue) Values() []Value {
	vs := make([]Value, len(ov.values))
	copy(vs, ov.values)
	return vs
}

// Cmp compares lexicographically: the first level on which the two values
// differ decides; if all shared levels match, the values are equal. Earlier
// levels strictly dominate — no later level can outweigh them.
func (ov ObjectiveValue) Cmp(other ObjectiveValue) int {
	n := min(len(ov.values), len(other.values))
	for i := 0; i < n; i++ {
		if c := ov.values[i].Cmp(other.values[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether ov and other compare as equal on every level.
func (ov ObjectiveValue) Equal(other ObjectiveValue) bool { return ov.Cmp(other) == 0 }

// Add returns the level-wise sum. The two values must have the same depth
// (ErrLevelMismatch).
func (ov ObjectiveValue) Add(other ObjectiveValue) (ObjectiveValue, error) {
	if len(ov.values) != len(other.values) {
		return ObjectiveValue{}, ErrLevelMismatch
	}
	out := make([]Value, len(ov.values))
	for i := range ov.values {
		sum, err := ov.values[i].Add(other.values[i])
		if err != nil {
			return ObjectiveValue{}, err
		}
		out[i] = sum
	}
	return ObjectiveValue{values: out}, nil
}

// Sub returns the level-wise difference. The two values must have the same
// depth (ErrLevelMismatch).
func (ov ObjectiveValue) Sub(other ObjectiveValue) (ObjectiveValue, error) {
	if len(ov.values) != len(other.values) {
		return ObjectiveValue{}, ErrLevelMismatch
	}
	out := make([]Value, len(ov.values))
	for i := range ov.values {
		diff, err := ov.values[i].Sub(other.values[i])
		if err != nil {
			return ObjectiveValue{}, err
		}
		out[i] = diff
	}
	return ObjectiveValue{values: out}, nil
}

// Scale multiplies every level by the float factor. Integer levels promote
// to float, so scaling never truncates; Zero and Max pass through.
func (ov ObjectiveValue) Scale(factor float64) ObjectiveValue {
	c := CoeffFloat(factor)
	out := make([]Value, len(ov.values))
	for i, v := range ov.values {
		// CoeffFloat multiplication cannot overflow an exact kind.
		scaled, _ := c.Mul(v)
		out[i] = scaled
	}
	return ObjectiveValue{values: out}
}

// String renders the value as "[v0 v1 ...]".
func (ov ObjectiveValue) String() string {
	parts := make([]string, len(ov.values))
	for i, v := range ov.values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
