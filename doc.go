// Package solvekit is a generic engine for solving combinatorial
// optimization problems with local-search metaheuristics: plug in your own
// solution type, a move-generation strategy and a hierarchical objective,
// and let a solver walk the search space for you.
//
// 🚀 What is solvekit?
//
//	A modern, thread-safe library that brings together:
//		• Hierarchical objectives: indicators → weighted linear combinations
//		  → ordered lexicographic levels
//		• Lazy neighborhoods over an opaque, user-defined solution type
//		• Greedy local search with first- and best-improvement policies
//		• Deterministic parallel neighbor evaluation (same result for any
//		  worker count)
//		• Threshold accepting, simulated annealing, tabu search and
//		  parallel tabu search sharing the same contracts
//		• Batch experiment statistics over seeded, reproducible runs
//
// ✨ Why choose solvekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every random source is an injected, seedable capability
//   - Composable – stop conditions, schedules and progress hooks snap
//     together through functional options
//   - Extensible – the solution type is fully yours; the engine only asks
//     for purity and immutability
//
// Under the hood, everything is organized under focused subpackages:
//
//	objective/   — Value arithmetic, indicators, linear combinations and the
//	               lexicographic Objective
//	solve/       — shared contracts: neighborhoods, stop conditions, decay
//	               schedules, progress hooks, deterministic parallel scans
//	localsearch/ — greedy descent, sequential or parallel
//	threshold/   — threshold accepting (deterministic annealing relative)
//	annealing/   — simulated annealing with seeded randomness
//	tabu/        — (parallel) tabu search with bounded move memory
//	runstats/    — repeated-run experiments and summary statistics
//	examples/    — a complete traveling-salesman setup wired to every solver
//
// Quick sketch:
//
//	obj, _ := objective.IndicatorPerLevel(violations, distance)
//	solver, _ := localsearch.New(neighborhood, obj,
//	    localsearch.WithWorkers[Tour](8))
//	res, _ := solver.Solve(initial)
//	fmt.Println(obj.Format(res.Best.ObjectiveValue()))
//
//	go get github.com/katalvlaran/solvekit
package solvekit
