// Package objective - tagged scalar Value with promotion-aware arithmetic and
// a total ordering.
//
// Design:
//   - Exact kinds stay exact: Int+Int and Dur+Dur never round, and overflow
//     is reported via ErrNumericOverflow rather than wrapped.
//   - Mixed Int/Float arithmetic promotes to Float.
//   - Zero is the neutral element for addition and compares as the typed
//     zero of its counterpart; Max is greater (worse) than everything.
//   - Float comparisons use an absolute tolerance to absorb accumulation
//     noise from summing many weighted indicators.
package objective

import (
	"fmt"
	"math"
	"time"
)

// floatTolerance is the absolute tolerance for float comparisons. Two floats
// closer than this are considered equal.
const floatTolerance = 1e-4

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindZero is the additive identity; it compares as the typed zero of
	// whatever kind it meets.
	KindZero Kind = iota
	// KindInt is an exact 64-bit integer.
	KindInt
	// KindFloat is a 64-bit float.
	KindFloat
	// KindDur is a time.Duration.
	KindDur
	// KindMax is larger (worse) than every other value. It is absorbing
	// under addition.
	KindMax
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindZero:
		return "Zero"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindDur:
		return "Dur"
	case KindMax:
		return "Max"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a single tagged scalar measurement: the unit of the objective
// model. The zero Value is Zero, the additive identity.
type Value struct {
	kind Kind
	i    int64
	f    float64
	d    time.Duration
}

// Zero is the additive identity. It is the zero Value.
var Zero = Value{}

// Max is larger (worse) than all other values and absorbing under addition.
// Indicators can return it to mark a solution as unusable on a level.
var Max = Value{kind: KindMax}

// Int returns an exact integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating point Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Dur returns a duration Value.
func Dur(d time.Duration) Value { return Value{kind: KindDur, d: d} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the integer payload; ok is false if v is not an Int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload; ok is false if v is not a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsDur returns the duration payload; ok is false if v is not a Dur.
func (v Value) AsDur() (time.Duration, bool) { return v.d, v.kind == KindDur }

// Float64 flattens v to a float: integers convert exactly (within float64
// range), durations convert to seconds, Zero is 0 and Max is +Inf. Used by
// solvers that need a scalar view of a value (e.g., annealing deltas).
func (v Value) Float64() float64 {
	switch v.kind {
	case KindZero:
		return 0
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	case KindDur:
		return v.d.Seconds()
	default: // KindMax
		return math.Inf(1)
	}
}

// Add returns v + o.
//
// Rules: Max absorbs, Zero is neutral, same exact kinds stay exact (with
// overflow checks), and Int/Float mixes promote to Float. A duration can
// only be added to another duration (ErrIncompatibleValues otherwise).
func (v Value) Add(o Value) (Value, error) {
	if v.kind == KindMax || o.kind == KindMax {
		return Max, nil
	}
	if v.kind == KindZero {
		return o, nil
	}
	if o.kind == KindZero {
		return v, nil
	}
	switch {
	case v.kind == KindInt && o.kind == KindInt:
		sum, ok := addInt64(v.i, o.i)
		if !ok {
			return Zero, ErrNumericOverflow
		}
		return Int(sum), nil
	case v.kind == KindDur && o.kind == KindDur:
		sum, ok := addInt64(int64(v.d), int64(o.d))
		if !ok {
			return Zero, ErrNumericOverflow
		}
		return Dur(time.Duration(sum)), nil
	case v.kind == KindDur || o.kind == KindDur:
		return Zero, fmt.Errorf("%w: cannot add %s and %s", ErrIncompatibleValues, v.kind, o.kind)
	default: // Int/Float mixes promote to Float.
		return Float(v.Float64() + o.Float64()), nil
	}
}

// Sub returns v - o under the same promotion rules as Add. Subtracting Max
// is undefined (ErrIncompatibleValues); Max minus anything stays Max.
func (v Value) Sub(o Value) (Value, error) {
	if o.kind == KindMax {
		return Zero, fmt.Errorf("%w: cannot subtract Max", ErrIncompatibleValues)
	}
	if v.kind == KindMax {
		return Max, nil
	}
	if o.kind == KindZero {
		return v, nil
	}
	if v.kind == KindZero {
		// Zero - x = typed negation of x.
		switch o.kind {
		case KindInt:
			if o.i == math.MinInt64 {
				return Zero, ErrNumericOverflow
			}
			return Int(-o.i), nil
		case KindFloat:
			return Float(-o.f), nil
		default: // KindDur
			if int64(o.d) == math.MinInt64 {
				return Zero, ErrNumericOverflow
			}
			return Dur(-o.d), nil
		}
	}
	switch {
	case v.kind == KindInt && o.kind == KindInt:
		diff, ok := subInt64(v.i, o.i)
		if !ok {
			return Zero, ErrNumericOverflow
		}
		return Int(diff), nil
	case v.kind == KindDur && o.kind == KindDur:
		diff, ok := subInt64(int64(v.d), int64(o.d))
		if !ok {
			return Zero, ErrNumericOverflow
		}
		return Dur(time.Duration(diff)), nil
	case v.kind == KindDur || o.kind == KindDur:
		return Zero, fmt.Errorf("%w: cannot subtract %s from %s", ErrIncompatibleValues, o.kind, v.kind)
	default:
		return Float(v.Float64() - o.Float64()), nil
	}
}

// Cmp returns -1, 0, or +1. The ordering is total:
//
//   - Max is greater than everything (and equal to itself).
//   - Zero compares as the typed zero of its counterpart.
//   - Matching exact kinds (Int/Int, Dur/Dur) compare exactly.
//   - Everything else compares through Float64 with floatTolerance, so
//     mixed Int/Float comparisons are well-defined by numeric promotion.
func (v Value) Cmp(o Value) int {
	if v.kind == KindMax || o.kind == KindMax {
		switch {
		case v.kind == o.kind:
			return 0
		case v.kind == KindMax:
			return 1
		default:
			return -1
		}
	}
	if v.kind == KindZero && o.kind == KindZero {
		return 0
	}
	if v.kind == KindZero {
		return typedZero(o.kind).Cmp(o)
	}
	if o.kind == KindZero {
		return v.Cmp(typedZero(v.kind))
	}
	switch {
	case v.kind == KindInt && o.kind == KindInt:
		return cmpOrdered(v.i, o.i)
	case v.kind == KindDur && o.kind == KindDur:
		return cmpOrdered(v.d, o.d)
	default:
		a, b := v.Float64(), o.Float64()
		switch {
		case a-b > floatTolerance:
			return 1
		case b-a > floatTolerance:
			return -1
		default:
			return 0
		}
	}
}

// Equal reports whether v and o compare as equal.
func (v Value) Equal(o Value) bool { return v.Cmp(o) == 0 }

// String renders the value for diagnostics and progress output.
func (v Value) String() string {
	switch v.kind {
	case KindZero:
		return "0"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%.2f", v.f)
	case KindDur:
		return v.d.String()
	default:
		return "MAX"
	}
}

// typedZero returns the zero of the given concrete kind.
func typedZero(k Kind) Value {
	switch k {
	case KindInt:
		return Int(0)
	case KindFloat:
		return Float(0)
	default: // KindDur
		return Dur(0)
	}
}

func cmpOrdered[T int64 | time.Duration](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// addInt64 reports a+b and whether it stayed within int64 range.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// subInt64 reports a-b and whether it stayed within int64 range.
func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

// mulInt64 reports a*b and whether it stayed within int64 range.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}
