package solve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMaxIterations(t *testing.T) {
	cond := MaxIterations(3)
	require.False(t, cond(Snapshot{Iteration: 2}))
	require.True(t, cond(Snapshot{Iteration: 3}))
	require.True(t, cond(Snapshot{Iteration: 4}))
}

func TestMaxDuration(t *testing.T) {
	cond := MaxDuration(time.Second)
	require.False(t, cond(Snapshot{Elapsed: 999 * time.Millisecond}))
	require.True(t, cond(Snapshot{Elapsed: time.Second}))
}

func TestMaxStagnation(t *testing.T) {
	cond := MaxStagnation(5)
	require.False(t, cond(Snapshot{SinceImprovement: 4}))
	require.True(t, cond(Snapshot{SinceImprovement: 5}))
}

func TestAny(t *testing.T) {
	cond := Any(MaxIterations(10), MaxDuration(time.Minute))
	require.False(t, cond(Snapshot{Iteration: 5, Elapsed: time.Second}))
	require.True(t, cond(Snapshot{Iteration: 10, Elapsed: time.Second}))
	require.True(t, cond(Snapshot{Iteration: 5, Elapsed: time.Hour}))
}

// Any with no conditions never stops, so solvers can apply it blindly.
func TestAny_Empty(t *testing.T) {
	cond := Any()
	require.False(t, cond(Snapshot{Iteration: 1 << 30, Elapsed: time.Hour}))
}

func TestTerminationReason_String(t *testing.T) {
	cases := map[TerminationReason]string{
		TerminationLocalOptimum:       "local optimum",
		TerminationNoCandidates:       "no candidates",
		TerminationStopCondition:      "stop condition",
		TerminationThresholdExhausted: "threshold exhausted",
		TerminationUnknown:            "unknown",
	}
	for reason, want := range cases {
		require.Equal(t, want, reason.String())
	}
}
