// Package solve - deterministic parallel evaluation of one candidate
// generation.
//
// Design:
//   - A single producer drains the lazy candidate sequence and tags every
//     candidate with its position in generation order.
//   - A bounded pool of workers evaluates candidates; workers only read the
//     shared objective and candidate snapshots.
//   - The reducer runs on the calling goroutine, one candidate at a time.
//     Candidates may arrive out of generation order, so reducers must break
//     ties by lowest index; reductions written that way are independent of
//     worker count and completion order.
//   - One Scan is one synchronization barrier: every produced candidate is
//     reduced before Scan returns.
//   - A reducer returning false stops production early. Candidates already
//     in flight are still reduced, which keeps lowest-index selections
//     deterministic: the producer emits indices in order, so no unproduced
//     candidate can precede one already seen.
package solve

import (
	"iter"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/solvekit/objective"
)

// Reducer consumes one evaluated candidate together with its position in
// generation order and the move that produced it. Returning false requests
// early termination of the scan.
type Reducer[S, M any] func(index int, candidate objective.EvaluatedSolution[S], move M) bool

type scanJob[S, M any] struct {
	idx  int
	sol  S
	move M
}

type scanResult[S, M any] struct {
	idx  int
	cand objective.EvaluatedSolution[S]
	move M
}

// Scan evaluates every candidate of one generation and feeds the results to
// reduce. With workers <= 1 the scan is sequential and candidates arrive in
// generation order; with workers > 1 evaluation fans out across the pool and
// arrival order is unspecified. Returns the number of candidates evaluated.
// Evaluation errors abort the scan and are returned to the caller.
func Scan[S, M any](obj *objective.Objective[S], candidates iter.Seq2[S, M], workers int, reduce Reducer[S, M]) (int, error) {
	if workers <= 1 {
		return scanSequential(obj, candidates, reduce)
	}
	return scanParallel(obj, candidates, workers, reduce)
}

// ScanPlain is Scan for neighborhoods without move identities.
func ScanPlain[S any](obj *objective.Objective[S], candidates iter.Seq[S], workers int, reduce func(index int, candidate objective.EvaluatedSolution[S]) bool) (int, error) {
	seq := func(yield func(S, struct{}) bool) {
		for sol := range candidates {
			if !yield(sol, struct{}{}) {
				return
			}
		}
	}
	return Scan(obj, seq, workers, func(index int, cand objective.EvaluatedSolution[S], _ struct{}) bool {
		return reduce(index, cand)
	})
}

func scanSequential[S, M any](obj *objective.Objective[S], candidates iter.Seq2[S, M], reduce Reducer[S, M]) (int, error) {
	count := 0
	for sol, move := range candidates {
		cand, err := obj.Evaluate(sol)
		if err != nil {
			return count, err
		}
		idx := count
		count++
		if !reduce(idx, cand, move) {
			break
		}
	}
	return count, nil
}

func scanParallel[S, M any](obj *objective.Objective[S], candidates iter.Seq2[S, M], workers int, reduce Reducer[S, M]) (int, error) {
	jobs := make(chan scanJob[S, M], workers)
	results := make(chan scanResult[S, M], workers)
	stop := make(chan struct{})
	var stopOnce sync.Once
	halt := func() { stopOnce.Do(func() { close(stop) }) }

	g := new(errgroup.Group)

	// Producer: tag candidates with their generation-order index.
	g.Go(func() error {
		defer close(jobs)
		idx := 0
		for sol, move := range candidates {
			select {
			case <-stop:
				return nil
			case jobs <- scanJob[S, M]{idx: idx, sol: sol, move: move}:
				idx++
			}
		}
		return nil
	})

	// Workers: evaluate; an evaluation error halts production and aborts.
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				cand, err := obj.Evaluate(j.sol)
				if err != nil {
					halt()
					return err
				}
				results <- scanResult[S, M]{idx: j.idx, cand: cand, move: j.move}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(results)
	}()

	// Rendezvous: reduce on the calling goroutine until the pool drains.
	count := 0
	for r := range results {
		count++
		if !reduce(r.idx, r.cand, r.move) {
			halt()
		}
	}
	return count, <-done
}
