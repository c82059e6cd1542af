// Package solve - geometric decay schedule for temperatures and thresholds.
package solve

// Schedule is the monotonically decaying scalar state driving probabilistic
// or bounded acceptance: a simulated-annealing temperature or a threshold
// multiplier. The value decays geometrically and clamps at a configured
// floor; it never increases and never drops below the floor.
//
// A Schedule belongs to a single solve run (one driving goroutine); it is
// not safe for concurrent use and is not shared across runs.
type Schedule struct {
	value  float64
	factor float64
	floor  float64
}

// NewGeometric builds a geometric decay schedule: each Next multiplies the
// value by factor until it reaches floor, where it holds.
//
// Validation: initial must be positive (ErrBadInitial), factor must lie in
// (0,1) (ErrBadDecayFactor), and floor must lie in [0, initial]
// (ErrBadFloor).
func NewGeometric(initial, factor, floor float64) (*Schedule, error) {
	if initial <= 0 {
		return nil, ErrBadInitial
	}
	if factor <= 0 || factor >= 1 {
		return nil, ErrBadDecayFactor
	}
	if floor < 0 || floor > initial {
		return nil, ErrBadFloor
	}
	return &Schedule{value: initial, factor: factor, floor: floor}, nil
}

// Value returns the current scalar value.
func (s *Schedule) Value() float64 { return s.value }

// Next decays the value one step and returns the new value. At the floor the
// value holds.
func (s *Schedule) Next() float64 {
	next := s.value * s.factor
	if next < s.floor {
		next = s.floor
	}
	s.value = next
	return next
}

// AtFloor reports whether the value has reached the floor.
func (s *Schedule) AtFloor() bool { return s.value <= s.floor }
