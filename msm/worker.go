package msm

import (
	"github.com/crate-crypto/go-pippenger/curve"
	"github.com/crate-crypto/go-pippenger/curve/fr"
	"github.com/crate-crypto/go-pippenger/internal/density"
)

// windowResult is a single window worker's contribution: its weighted
// bucket-reduction sum, folded together with the coordinator's
// double-and-add cascade.
type windowResult struct {
	sum curve.G1Jac
}

// runWindow processes one c-bit window: it drains the shared
// point/scalar/density triple into a fresh batchAffineAdder's buckets,
// reduces the buckets to a weighted sum via the running-sum trick, and
// folds in the bias accumulator for ones (window 0 only).
//
// k is the window index, c the window width in bits. points, scalars and
// d are read-only and shared across every concurrently running window —
// no locking is required.
func runWindow(k int, c uint, points []curve.G1Affine, scalars []fr.Element, d *density.Bitmap) (windowResult, error) {
	source := newPointSource(points)
	adder := newBatchAffineAdder(c)

	var accTrivial curve.G1Jac
	accTrivial.Identity()

	offset := uint(k) * c
	for i, scalar := range scalars {
		if !densityAt(d, i) {
			if err := source.skip(); err != nil {
				return windowResult{}, err
			}
			continue
		}

		switch {
		case scalar.IsZero():
			if err := source.skip(); err != nil {
				return windowResult{}, err
			}
		case scalar.IsOne():
			if k == 0 {
				if err := source.addMixed(&accTrivial); err != nil {
					return windowResult{}, err
				}
			} else if err := source.skip(); err != nil {
				return windowResult{}, err
			}
		default:
			w := scalar.Window(offset, c)
			if w == 0 {
				if err := source.skip(); err != nil {
					return windowResult{}, err
				}
				continue
			}
			p, err := source.next()
			if err != nil {
				return windowResult{}, err
			}
			adder.addToBucket(p, int(w)-1)
		}
	}

	buckets := adder.finalize()

	// Running-sum reduction: Σ j·bucket[j-1] computed as successive
	// partial sums, 2·(2^c-1) additions, no scalar multiplications.
	var running, partial curve.G1Jac
	running.Identity()
	partial.Identity()
	for j := len(buckets) - 1; j >= 0; j-- {
		running.AddMixed(&buckets[j])
		partial.AddAssign(&running)
	}

	partial.AddAssign(&accTrivial)
	return windowResult{sum: partial}, nil
}
