package localsearch_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solvekit/localsearch"
	"github.com/katalvlaran/solvekit/objective"
	"github.com/katalvlaran/solvekit/solve"
)

// perm is the worked example solution space: integer vectors of length 10
// that the search should shape into a permutation of 0..9 with small squared
// cyclic differences.
type perm []int64

func (p perm) changeEntry(i int, v int64) perm {
	q := slices.Clone(p)
	q[i] = v
	return q
}

func (p perm) swapEntries(i, j int) perm {
	q := slices.Clone(p)
	q[i], q[j] = q[j], q[i]
	return q
}

func permutationViolation(p perm) objective.Value {
	var violation int64
	for i := range p {
		var count int64
		for _, v := range p {
			if v == int64(i) {
				count++
			}
		}
		if count >= 1 {
			violation += count - 1
		} else {
			violation += 1 - count
		}
	}
	return objective.Int(violation)
}

func squaredDifference(p perm) objective.Value {
	var sum int64
	for i := range p {
		d := p[i] - p[(i+1)%len(p)]
		sum += d * d
	}
	return objective.Int(sum)
}

func permObjective(t *testing.T) *objective.Objective[perm] {
	t.Helper()
	obj, err := objective.IndicatorPerLevel(
		objective.NewIndicator("PermutationViolation", permutationViolation),
		objective.NewIndicator("SquaredDifference", squaredDifference),
	)
	require.NoError(t, err)
	return obj
}

// changeEntryThenSwap yields every single-entry change to a value in 0..9,
// then every pairwise swap, in a fixed order.
func changeEntryThenSwap(p perm) iter.Seq[perm] {
	return func(yield func(perm) bool) {
		for i := range p {
			for v := int64(0); v < 10; v++ {
				if !yield(p.changeEntry(i, v)) {
					return
				}
			}
		}
		for i := range p {
			for j := range p {
				if !yield(p.swapEntries(i, j)) {
					return
				}
			}
		}
	}
}

var permNeighborhood = solve.NeighborhoodFunc[perm](changeEntryThenSwap)

func TestSolve_PermutationRegression(t *testing.T) {
	cases := []struct {
		name       string
		policy     localsearch.Policy
		want       perm
		iterations int
	}{
		{
			name:       "best improvement",
			policy:     localsearch.BestImprovement,
			want:       perm{1, 0, 2, 4, 5, 7, 9, 8, 6, 3},
			iterations: 13,
		},
		{
			name:       "first improvement",
			policy:     localsearch.FirstImprovement,
			want:       perm{8, 9, 7, 4, 2, 0, 1, 3, 5, 6},
			iterations: 43,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			solver, err := localsearch.New(permNeighborhood, permObjective(t),
				localsearch.WithPolicy[perm](tc.policy))
			require.NoError(t, err)

			res, err := solver.Solve(make(perm, 10))
			require.NoError(t, err)
			require.Equal(t, solve.TerminationLocalOptimum, res.Reason)
			require.Equal(t, tc.want, res.Best.Solution())
			require.True(t, res.Best.ObjectiveValue().Equal(
				objective.NewObjectiveValue(objective.Int(0), objective.Int(36))))
			require.Equal(t, tc.iterations, res.Iterations)
		})
	}
}

// The result of a full descent must have no strictly better neighbor.
func TestSolve_LocalOptimality(t *testing.T) {
	obj := permObjective(t)
	solver, err := localsearch.New(permNeighborhood, obj)
	require.NoError(t, err)

	res, err := solver.Solve(make(perm, 10))
	require.NoError(t, err)

	for neighbor := range permNeighborhood.NeighborsOf(res.Best.Solution()) {
		cand, err := obj.Evaluate(neighbor)
		require.NoError(t, err)
		require.GreaterOrEqual(t, cand.Cmp(res.Best), 0)
	}
}

func TestSolve_ParallelSequentialEquivalence(t *testing.T) {
	for _, policy := range []localsearch.Policy{localsearch.BestImprovement, localsearch.FirstImprovement} {
		t.Run(policy.String(), func(t *testing.T) {
			var reference *solve.Result[perm]
			for _, workers := range []int{0, 1, 2, 4, 8} {
				solver, err := localsearch.New(permNeighborhood, permObjective(t),
					localsearch.WithPolicy[perm](policy),
					localsearch.WithWorkers[perm](workers))
				require.NoError(t, err)

				res, err := solver.Solve(make(perm, 10))
				require.NoError(t, err)
				if reference == nil {
					reference = &res
					continue
				}
				require.Equal(t, reference.Best.Solution(), res.Best.Solution(), "workers=%d", workers)
				require.Equal(t, reference.Iterations, res.Iterations, "workers=%d", workers)
				require.Equal(t, reference.Reason, res.Reason, "workers=%d", workers)
			}
		})
	}
}

func TestSolve_Deterministic(t *testing.T) {
	run := func() solve.Result[perm] {
		solver, err := localsearch.New(permNeighborhood, permObjective(t))
		require.NoError(t, err)
		res, err := solver.Solve(make(perm, 10))
		require.NoError(t, err)
		return res
	}
	first, second := run(), run()
	require.Equal(t, first.Best.Solution(), second.Best.Solution())
	require.Equal(t, first.Iterations, second.Iterations)
}

func TestSolve_StopCondition(t *testing.T) {
	solver, err := localsearch.New(permNeighborhood, permObjective(t),
		localsearch.WithStop[perm](solve.MaxIterations(3)))
	require.NoError(t, err)

	res, err := solver.Solve(make(perm, 10))
	require.NoError(t, err)
	require.Equal(t, solve.TerminationStopCondition, res.Reason)
	require.Equal(t, 3, res.Iterations)
}

func TestSolve_EmptyNeighborhood(t *testing.T) {
	empty := solve.NeighborhoodFunc[perm](func(perm) iter.Seq[perm] {
		return func(func(perm) bool) {}
	})
	solver, err := localsearch.New(empty, permObjective(t))
	require.NoError(t, err)

	initial := perm{3, 1, 2, 0, 4, 5, 6, 7, 8, 9}
	res, err := solver.Solve(initial)
	require.NoError(t, err)
	require.Equal(t, solve.TerminationNoCandidates, res.Reason)
	require.Equal(t, initial, res.Best.Solution())
	require.Equal(t, 0, res.Iterations)
}

func TestSolve_Progress(t *testing.T) {
	var events []solve.Event[perm]
	solver, err := localsearch.New(permNeighborhood, permObjective(t),
		localsearch.WithProgress[perm](func(e solve.Event[perm]) { events = append(events, e) }))
	require.NoError(t, err)

	res, err := solver.Solve(make(perm, 10))
	require.NoError(t, err)
	require.Len(t, events, res.Iterations)
	for i, e := range events {
		require.Equal(t, i+1, e.Iteration)
		require.NotNil(t, e.Previous)
		require.True(t, e.Current.Better(*e.Previous))
		require.False(t, e.Forced)
	}
}

func TestNew_Validation(t *testing.T) {
	obj := permObjective(t)

	_, err := localsearch.New[perm](nil, obj)
	require.ErrorIs(t, err, solve.ErrNilNeighborhood)

	_, err = localsearch.New[perm](permNeighborhood, nil)
	require.ErrorIs(t, err, solve.ErrNilObjective)

	_, err = localsearch.New(permNeighborhood, obj, localsearch.WithWorkers[perm](-1))
	require.ErrorIs(t, err, solve.ErrBadWorkers)

	_, err = localsearch.New(permNeighborhood, obj, localsearch.WithPolicy[perm](localsearch.Policy(42)))
	require.ErrorIs(t, err, localsearch.ErrBadPolicy)
}
