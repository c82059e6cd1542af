package runstats_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solvekit/annealing"
	"github.com/katalvlaran/solvekit/localsearch"
	"github.com/katalvlaran/solvekit/objective"
	"github.com/katalvlaran/solvekit/runstats"
	"github.com/katalvlaran/solvekit/solve"
)

// line is a fixture solution space: positions on a number line with a fixed
// height per position.
type line struct {
	heights []int64
	pos     int
}

func (l line) Clone() line {
	return line{heights: slices.Clone(l.heights), pos: l.pos}
}

func lineObjective(t *testing.T) *objective.Objective[line] {
	t.Helper()
	obj, err := objective.SingleIndicator(objective.NewIndicator("Height", func(l line) objective.Value {
		return objective.Int(l.heights[l.pos])
	}))
	require.NoError(t, err)
	return obj
}

var lineNeighborhood = solve.NeighborhoodFunc[line](func(l line) iter.Seq[line] {
	return func(yield func(line) bool) {
		if l.pos+1 < len(l.heights) {
			if !yield(line{heights: l.heights, pos: l.pos + 1}) {
				return
			}
		}
		if l.pos > 0 {
			yield(line{heights: l.heights, pos: l.pos - 1})
		}
	}
})

// A deterministic solver yields identical runs: zero spread, best in the
// first run.
func TestRun_DeterministicSolver(t *testing.T) {
	obj := lineObjective(t)
	factory := func(int64) (solve.Solver[line], error) {
		return localsearch.New(lineNeighborhood, obj)
	}

	summary, err := runstats.Run(factory, line{heights: []int64{3, 2, 1, 0, 4}, pos: 0}, 5, 17)
	require.NoError(t, err)
	require.Len(t, summary.Results, 5)
	require.Equal(t, 0, summary.BestRun)
	require.Equal(t, 3, summary.Best.Best.Solution().pos)
	require.InDelta(t, 0.0, summary.Mean, 1e-12)
	require.InDelta(t, 0.0, summary.StdDev, 1e-12)
	for _, res := range summary.Results {
		require.Equal(t, summary.Best.Best.Solution().pos, res.Best.Solution().pos)
	}
}

// The whole batch must be reproducible from the base seed, and the batch
// must actually spread the derived seeds across runs.
func TestRun_ReproducibleBatch(t *testing.T) {
	obj := lineObjective(t)
	initial := line{heights: []int64{4, 2, 5, 1, 3, 0, 6}, pos: 0}

	batch := func(base int64) runstats.Summary[line] {
		factory := func(seed int64) (solve.Solver[line], error) {
			return annealing.New(lineNeighborhood, obj, 3,
				annealing.WithSeed[line](seed),
				annealing.WithStop[line](solve.MaxIterations(40)))
		}
		summary, err := runstats.Run(factory, initial, 8, base)
		require.NoError(t, err)
		return summary
	}

	first, second := batch(99), batch(99)
	require.Equal(t, first.BestRun, second.BestRun)
	require.InDelta(t, first.Mean, second.Mean, 1e-12)
	require.InDelta(t, first.StdDev, second.StdDev, 1e-12)
	for i := range first.Results {
		require.Equal(t, first.Results[i].Best.Solution().pos, second.Results[i].Best.Solution().pos)
	}
}

func TestRun_SingleRunHasZeroSpread(t *testing.T) {
	obj := lineObjective(t)
	factory := func(int64) (solve.Solver[line], error) {
		return localsearch.New(lineNeighborhood, obj)
	}

	summary, err := runstats.Run(factory, line{heights: []int64{1, 0}, pos: 0}, 1, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, summary.StdDev, 1e-12)
	require.InDelta(t, 0.0, summary.Mean, 1e-12)
}

func TestRun_Validation(t *testing.T) {
	obj := lineObjective(t)
	factory := func(int64) (solve.Solver[line], error) {
		return localsearch.New(lineNeighborhood, obj)
	}
	initial := line{heights: []int64{0}, pos: 0}

	_, err := runstats.Run[line](nil, initial, 3, 0)
	require.ErrorIs(t, err, runstats.ErrNilFactory)

	_, err = runstats.Run(factory, initial, 0, 0)
	require.ErrorIs(t, err, runstats.ErrBadRunCount)
}
