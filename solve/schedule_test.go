package solve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGeometric_Validation(t *testing.T) {
	_, err := NewGeometric(0, 0.5, 0)
	require.ErrorIs(t, err, ErrBadInitial)

	_, err = NewGeometric(-1, 0.5, 0)
	require.ErrorIs(t, err, ErrBadInitial)

	for _, factor := range []float64{0, 1, 1.2, -0.5} {
		_, err = NewGeometric(1, factor, 0)
		require.ErrorIs(t, err, ErrBadDecayFactor, "factor=%v", factor)
	}

	_, err = NewGeometric(1, 0.5, -0.1)
	require.ErrorIs(t, err, ErrBadFloor)

	_, err = NewGeometric(1, 0.5, 2)
	require.ErrorIs(t, err, ErrBadFloor)
}

// The value sequence is non-increasing and bounded below by the floor for
// any number of steps.
func TestSchedule_MonotoneAndBounded(t *testing.T) {
	sched, err := NewGeometric(100, 0.7, 0.5)
	require.NoError(t, err)

	prev := sched.Value()
	require.Equal(t, 100.0, prev)
	for i := 0; i < 200; i++ {
		next := sched.Next()
		require.LessOrEqual(t, next, prev, "step %d", i)
		require.GreaterOrEqual(t, next, 0.5, "step %d", i)
		prev = next
	}
	require.True(t, sched.AtFloor())
	require.Equal(t, 0.5, sched.Value())
}

// With floor zero the value decays forever without reaching it.
func TestSchedule_ZeroFloorStaysPositive(t *testing.T) {
	sched, err := NewGeometric(1, 0.5, 0)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		require.Greater(t, sched.Next(), 0.0, "step %d", i)
	}
	require.False(t, sched.AtFloor())
}

func TestSchedule_HoldsAtFloor(t *testing.T) {
	sched, err := NewGeometric(1, 0.5, 0.25)
	require.NoError(t, err)

	sched.Next() // 0.5
	sched.Next() // 0.25, clamped
	require.True(t, sched.AtFloor())
	require.Equal(t, 0.25, sched.Next())
	require.Equal(t, 0.25, sched.Value())
}
