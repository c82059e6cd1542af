// Package objective - Coefficient, the weight attached to an indicator inside
// a linear combination.
package objective

import (
	"fmt"
	"time"
)

// Coefficient is the weight of one summand of a LinearCombination: either an
// exact integer or a float, fixed at construction.
type Coefficient struct {
	isFloat bool
	i       int64
	f       float64
}

// Coeff returns an exact integer coefficient.
func Coeff(i int64) Coefficient { return Coefficient{i: i} }

// CoeffFloat returns a float coefficient.
func CoeffFloat(f float64) Coefficient { return Coefficient{isFloat: true, f: f} }

// IsOne reports whether the coefficient is exactly one; used to abbreviate
// "1*name" to "name" when formatting a combination.
func (c Coefficient) IsOne() bool {
	if c.isFloat {
		return c.f == 1
	}
	return c.i == 1
}

// Mul returns c × v.
//
// Integer coefficients keep integer and duration values exact (with overflow
// checks). Float coefficients promote integers to floats, so weighting an
// exact count by 0.5 yields a float rather than a truncated integer, and
// scale durations at nanosecond resolution. Zero and Max pass through
// unchanged.
func (c Coefficient) Mul(v Value) (Value, error) {
	switch v.kind {
	case KindZero:
		return Zero, nil
	case KindMax:
		return Max, nil
	}
	if !c.isFloat {
		switch v.kind {
		case KindInt:
			prod, ok := mulInt64(c.i, v.i)
			if !ok {
				return Zero, ErrNumericOverflow
			}
			return Int(prod), nil
		case KindFloat:
			return Float(float64(c.i) * v.f), nil
		default: // KindDur
			prod, ok := mulInt64(c.i, int64(v.d))
			if !ok {
				return Zero, ErrNumericOverflow
			}
			return Dur(time.Duration(prod)), nil
		}
	}
	switch v.kind {
	case KindInt:
		return Float(c.f * float64(v.i)), nil
	case KindFloat:
		return Float(c.f * v.f), nil
	default: // KindDur
		return Dur(time.Duration(c.f * float64(v.d))), nil
	}
}

// String renders the coefficient for combination formatting.
func (c Coefficient) String() string {
	if c.isFloat {
		return fmt.Sprintf("%g", c.f)
	}
	return fmt.Sprintf("%d", c.i)
}
