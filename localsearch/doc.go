// Package localsearch implements greedy descent over a neighborhood: each
// iteration scans the neighbors of the current solution and commits a
// strictly improving one, until no neighbor improves (a local optimum) or a
// stop condition triggers.
//
// Two selection policies are supported:
//
//   - BestImprovement scans the whole generation and commits the strictly
//     best neighbor, ties broken by generation order (default).
//   - FirstImprovement commits the first strictly improving neighbor and
//     skips the rest of the generation.
//
// With WithWorkers the neighbor evaluations of one generation fan out
// across a bounded pool. The reduction preserves the sequential tie-break
// rule (lowest generation index wins), so the committed solution is
// identical for any worker count.
//
// Usage:
//
//	solver, err := localsearch.New(neigh, obj,
//	    localsearch.WithPolicy[Tour](localsearch.FirstImprovement),
//	    localsearch.WithStop[Tour](solve.MaxDuration(30*time.Second)),
//	)
//	if err != nil { ... }
//	res, err := solver.Solve(initial)
package localsearch
