// Package msm implements a parallel Pippenger windowed-bucket
// multi-scalar multiplication engine: a pointSource cursor, the
// Montgomery-trick batchAffineAdder, per-window workers, and a coordinator
// that picks the window width, dispatches workers across a worker pool,
// and recombines their partial sums.
package msm

import (
	"math"

	"github.com/crate-crypto/go-pippenger/curve"
	"github.com/crate-crypto/go-pippenger/curve/fr"
	"github.com/crate-crypto/go-pippenger/internal/density"
	"github.com/crate-crypto/go-pippenger/internal/log"
	"github.com/crate-crypto/go-pippenger/internal/parallel"
	"github.com/crate-crypto/go-pippenger/msmerr"
)

// chooseWindowWidth picks c, the bit width of each Pippenger window.
// Below 32 terms the 2^c bucket-reduction cost dominates, so a small
// constant wins; above it, the classical Pippenger optimum (ln n)
// balances n additions against 2^c reductions per window.
func chooseWindowWidth(n int) uint {
	if n < 32 {
		return 3
	}
	return uint(math.Ceil(math.Log(float64(n))))
}

// MultiExp computes Σ scalars[i]·points[i] as one task on pool and
// returns a Waiter for the combined result. That task dispatches one
// WindowWorker per c-bit window to a separate pool of its own. d may be nil for a fully dense (every position participates)
// computation.
//
// If d has a known query size it must equal len(scalars); a violation is
// an ErrInvalidArgument returned (not panicked), since it originates from
// caller-supplied arguments rather than an internal bug.
func MultiExp(pool *parallel.Pool, points []curve.G1Affine, d *density.Bitmap, scalars []fr.Element) *parallel.Waiter[curve.G1Jac] {
	return parallel.Compute(pool, func() (curve.G1Jac, error) {
		return multiExp(points, d, scalars)
	})
}

// MultiExpSync is a synchronous convenience wrapper around MultiExp, for
// callers that have no reason to overlap the MSM with other work.
func MultiExpSync(pool *parallel.Pool, points []curve.G1Affine, d *density.Bitmap, scalars []fr.Element) (curve.G1Jac, error) {
	return MultiExp(pool, points, d, scalars).Wait()
}

func multiExp(points []curve.G1Affine, d *density.Bitmap, scalars []fr.Element) (curve.G1Jac, error) {
	if qsize, ok := d.Len(); ok && qsize != len(scalars) {
		return curve.G1Jac{}, msmerr.InvalidArgument("density query size does not match number of scalars")
	}

	var result curve.G1Jac
	result.Identity()
	if len(scalars) == 0 {
		return result, nil
	}

	c := chooseWindowWidth(len(scalars))
	numWindows := int((fr.NumBits + c - 1) / c)

	log.Logger.Debug().
		Int("n", len(scalars)).
		Uint("window_width", c).
		Int("windows", numWindows).
		Msg("dispatching msm windows")

	// Windows fan out on a pool of their own rather than the caller's
	// pool: the caller's pool task (this very function, via MultiExp) is
	// already occupying one of its slots and is about to block on these
	// results, so reusing it here would risk deadlock once window count
	// exceeds remaining capacity.
	windowPool := parallel.New(numWindows)
	waiters := make([]*parallel.Waiter[windowResult], numWindows)
	for k := 0; k < numWindows; k++ {
		k := k
		waiters[k] = parallel.Compute(windowPool, func() (windowResult, error) {
			return runWindow(k, c, points, scalars, d)
		})
	}

	results, err := parallel.WaitAll(waiters)
	if err != nil {
		return curve.G1Jac{}, err
	}

	// Combine by folding highest window first: acc <- (acc doubled c
	// times) + window_k, equivalent to Horner's method evaluating
	// Σ 2^(k·c)·window_k.
	for k := numWindows - 1; k >= 0; k-- {
		for i := uint(0); i < c; i++ {
			result.DoubleAssign()
		}
		result.AddAssign(&results[k].sum)
	}

	return result, nil
}
